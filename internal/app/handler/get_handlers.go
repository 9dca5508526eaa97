package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/app/service"
	"github.com/sstmlab/nfc-redirect/internal/middleware"
	"github.com/sstmlab/nfc-redirect/internal/models"
)

type GetHandler struct {
	resolver service.ResolverIface
	guard    service.ClaimGuardIface
	users    service.UserDirectory
	store    service.RedirectStore
	logger   *zap.Logger
}

func NewGet(resolver service.ResolverIface, guard service.ClaimGuardIface, users service.UserDirectory, store service.RedirectStore, l *zap.Logger) *GetHandler {
	return &GetHandler{
		resolver: resolver,
		guard:    guard,
		users:    users,
		store:    store,
		logger:   l,
	}
}

// Live answers the root path.
func (h *GetHandler) Live(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, map[string]string{"message": "hack the planet"})
}

// Resolve handles GET /resolve/{token}: verify the token, run the resolution
// state machine and answer with exactly one redirect, attaching at most one
// credential as a cookie. Query credentials are already part of the Location.
func (h *GetHandler) Resolve(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	token := chi.URLParam(req, "token")

	resolution, err := h.resolver.Resolve(ctx, token)
	if err != nil {
		status, msg := statusForError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("resolution failed", zap.Error(err))
		}
		http.Error(res, msg, status)
		return
	}

	if cred := resolution.Credential; cred != nil && cred.Kind == service.CredentialCookie {
		cookie := &http.Cookie{
			Name:     cred.Name,
			Value:    cred.Value,
			Domain:   cred.Domain,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		}
		if cred.TTL > 0 {
			cookie.MaxAge = int(cred.TTL.Seconds())
		}
		http.SetCookie(res, cookie)
	}

	http.Redirect(res, req, resolution.Location, http.StatusFound)
}

// Collectible handles GET /redirects/{subject}/collectible.
func (h *GetHandler) Collectible(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	subject := chi.URLParam(req, "subject")

	ref, err := h.guard.Collectible(ctx, subject)
	if err != nil {
		status, msg := statusForError(err)
		http.Error(res, msg, status)
		return
	}

	writeJSON(res, http.StatusOK, struct {
		Message string                `json:"message"`
		Data    models.CollectibleRef `json:"data"`
	}{
		Message: "Collectible found",
		Data:    models.CollectibleRef{Address: ref.Contract, TokenID: ref.TokenID, ChainID: ref.ChainID},
	})
}

// UserByHandle handles GET /users/{handle}.
func (h *GetHandler) UserByHandle(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	user, err := h.users.FindUserByHandle(ctx, chi.URLParam(req, "handle"))
	if err != nil {
		status, msg := statusForError(err)
		http.Error(res, msg, status)
		return
	}

	writeJSON(res, http.StatusOK, map[string]interface{}{
		"message": "User found",
		"user":    user,
	})
}

// UserByNFC handles GET /users/nfc/{subject}.
func (h *GetHandler) UserByNFC(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	user, err := h.users.FindUserByNFC(ctx, chi.URLParam(req, "subject"))
	if err != nil {
		status, msg := statusForError(err)
		http.Error(res, msg, status)
		return
	}

	writeJSON(res, http.StatusOK, map[string]interface{}{
		"message": "User found",
		"user":    user,
	})
}

// WhoAmI handles GET /auth: echoes the verified claims and, when one exists,
// the user associated with the token's subject.
func (h *GetHandler) WhoAmI(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	claims, ok := middleware.ClaimsFromContext(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	body := map[string]interface{}{
		"message": "You are authenticated " + claims.SubjectID,
		"jwt":     claims,
	}

	if user, err := h.users.FindUserByNFC(ctx, claims.SubjectID); err == nil {
		body["user"] = user
	}

	writeJSON(res, http.StatusOK, body)
}

// PingDB reports storage health.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
