// internal/app/features/works/list.go
package works

import (
	"net/http"

	workstore "github.com/gasaunivers/campushub/internal/app/store/works"
	"github.com/gasaunivers/campushub/internal/app/system/authz"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
)

// ServeList handles GET /api/works - the caller's own works, newest
// first. Every caller, the directeur included, sees only works they
// created here; the directeur's wider reach applies to direct reads,
// not this listing.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpx.Unauthorized(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list works")
	defer cancel()

	works, err := workstore.New(h.DB).ListByCreator(ctx, userID)
	if err != nil {
		httpx.ServerError(w, h.Log, "list works", err)
		return
	}
	if works == nil {
		works = []models.Work{}
	}

	httpx.Respond(w, http.StatusOK, works)
}
