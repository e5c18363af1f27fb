// internal/app/features/users/create.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Promotion string `json:"promotion"`
}

// createResponse carries the created user plus, when the password was
// generated server-side, the clear-text credential. It is shown once;
// only the bcrypt hash is stored.
type createResponse struct {
	models.User
	GeneratedPassword string `json:"generatedPassword,omitempty"`
}

// ServeCreate handles POST /api/users (directeur only).
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create user")
	defer cancel()

	u := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	}
	if req.Promotion != "" {
		promoID, err := primitive.ObjectIDFromHex(req.Promotion)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid promotion")
			return
		}
		u.PromotionID = &promoID
	}

	password := req.Password
	generated := ""
	if password == "" {
		password = userstore.GeneratePassword()
		generated = password
	}

	created, err := userstore.New(h.DB).Create(ctx, u, password)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpx.Error(w, http.StatusBadRequest, "Email already in use")
			return
		}
		httpx.DomainError(w, h.Log, "create user", err)
		return
	}

	httpx.Respond(w, http.StatusCreated, createResponse{
		User:              created,
		GeneratedPassword: generated,
	})
}
