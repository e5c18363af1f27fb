// internal/app/features/auth/register.go
package auth

import (
	"errors"
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// ServeRegister handles POST /api/auth/register.
//
// 201 {token,user} on success, 400 on missing fields or an email that
// is already taken.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register")
	defer cancel()

	store := userstore.New(h.DB)
	user, err := store.Create(ctx, models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	}, req.Password)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpx.Error(w, http.StatusBadRequest, "Email already in use")
			return
		}
		httpx.DomainError(w, h.Log, "register: create user", err)
		return
	}

	token, err := h.Tokens.Issue(user.ID.Hex(), user.Name, user.Role)
	if err != nil {
		httpx.ServerError(w, h.Log, "register: issue token", err)
		return
	}

	httpx.Respond(w, http.StatusCreated, tokenResponse{Token: token, User: user})
}
