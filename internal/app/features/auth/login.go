// internal/app/features/auth/login.go
package auth

import (
	"errors"
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// ServeLogin handles POST /api/auth/login.
//
// 200 {token,user} on success, 401 on unknown email or wrong password.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httpx.ServerError(w, h.Log, "login: lookup user", err)
		return
	}
	if !userstore.VerifyPassword(user, req.Password) {
		httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		httpx.ServerError(w, h.Log, "login: issue token", err)
		return
	}

	httpx.Respond(w, http.StatusOK, tokenResponse{Token: token, User: user})
}
