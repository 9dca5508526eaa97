// Package server wires the chi router: middleware stack, public resolution
// and claim-status routes, and the authenticated claim/admin routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/app/handler"
	"github.com/sstmlab/nfc-redirect/internal/app/service"
	"github.com/sstmlab/nfc-redirect/internal/middleware"
)

func Init(
	logger *zap.Logger,
	resolver service.ResolverIface,
	guard service.ClaimGuardIface,
	codec service.CodecIface,
	store service.RedirectStore,
	users service.UserDirectory,
) *chi.Mux {
	get := handler.NewGet(resolver, guard, users, store, logger)
	post := handler.NewPost(codec, guard, store, users, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIPPost)

	r.Get("/", get.Live)
	r.Get("/ping", get.PingDB)
	r.Get("/resolve/{token}", get.Resolve)
	r.Get("/redirects/{subject}/collectible", get.Collectible)
	r.Get("/users/{handle}", get.UserByHandle)
	r.Get("/users/nfc/{subject}", get.UserByNFC)
	r.Post("/claims/by-subject", post.ClaimBySubject)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(codec))
		pr.Get("/auth", get.WhoAmI)
		pr.Post("/claims", post.Claim)
		pr.Post("/redirects", post.InsertRedirects)
		pr.Post("/users", post.UpsertUser)
	})

	r.Get("/resolve/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Token is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
