// internal/app/features/promotions/promotions.go
package promotions

import (
	"errors"
	"net/http"

	promotionstore "github.com/gasaunivers/campushub/internal/app/store/promotions"
	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createRequest struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
}

// ServeList handles GET /api/promotions.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list promotions")
	defer cancel()

	promos, err := promotionstore.New(h.DB).List(ctx)
	if err != nil {
		httpx.ServerError(w, h.Log, "list promotions", err)
		return
	}
	if promos == nil {
		promos = []models.Promotion{}
	}
	httpx.Respond(w, http.StatusOK, promos)
}

// ServeCreate handles POST /api/promotions.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create promotion")
	defer cancel()

	created, err := promotionstore.New(h.DB).Create(ctx, models.Promotion{
		Label: req.Label,
		Year:  req.Year,
	})
	if err != nil {
		if errors.Is(err, promotionstore.ErrDuplicatePromotion) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.DomainError(w, h.Log, "create promotion", err)
		return
	}
	httpx.Respond(w, http.StatusCreated, created)
}

// ServeGet handles GET /api/promotions/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get promotion")
	defer cancel()

	promo, err := promotionstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "get promotion", err)
		return
	}
	httpx.Respond(w, http.StatusOK, promo)
}

// ServeDelete handles DELETE /api/promotions/{id}. Enrolled students
// keep their accounts; only the promotion reference is unset.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "delete promotion")
	defer cancel()

	n, err := promotionstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		httpx.ServerError(w, h.Log, "delete promotion", err)
		return
	}
	if n == 0 {
		httpx.NotFound(w)
		return
	}

	if err := userstore.New(h.DB).UnsetPromotionFor(ctx, id); err != nil {
		// the promotion itself is already gone at this point
		httpx.ServerError(w, h.Log, "delete promotion: unset enrollment", err)
		return
	}

	httpx.Respond(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// ServeStudents handles GET /api/promotions/{id}/students - the
// étudiants currently enrolled in the promotion.
func (h *Handler) ServeStudents(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list promotion students")
	defer cancel()

	students, err := userstore.New(h.DB).StudentsOfPromotion(ctx, id)
	if err != nil {
		httpx.ServerError(w, h.Log, "list promotion students", err)
		return
	}
	if students == nil {
		students = []models.User{}
	}
	httpx.Respond(w, http.StatusOK, students)
}
