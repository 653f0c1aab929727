package web

import (
	"time"

	"github.com/albertisntreal/showdown-survivor/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, store *sessions.CookieStore, cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render, store))
	r.Get("/login", loginPageHandler(render, store))
	r.Post("/login", loginHandler(ctrl, render, store))
	r.Post("/logout", logoutHandler(store))

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(store))

		r.Get("/lobby", lobbyHandler(ctrl, render, store))

		r.Route("/pools", func(r chi.Router) {
			r.Post("/", createPoolHandler(ctrl, render, store))
			r.Get("/{poolID}", poolHandler(ctrl, render, store, cfg))
			r.Post("/{poolID}/join", joinPoolHandler(ctrl, render, store))
			r.Post("/{poolID}/pick", submitPickHandler(ctrl, render, store))
			r.Post("/{poolID}/buyback", buyBackHandler(ctrl, render, store))
		})

		r.Get("/profile", profilePageHandler(ctrl, render, store))
		r.Post("/profile", updateProfileHandler(ctrl, render, store))
		r.Post("/push/subscribe", pushSubscribeHandler(ctrl, render, store))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("showdown", map[string]string{cfg.AdminUser: cfg.AdminPassword}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Get("/", adminHandler(ctrl, render))
		r.Post("/week", setWeekOverrideHandler(ctrl, render))
		r.Get("/results", resultsFormHandler(ctrl, render))
		r.Post("/results", recordResultsHandler(ctrl, render))
		r.Post("/process", processEliminationsHandler(ctrl, render))
		r.Post("/clear", clearResultsHandler(ctrl, render))
		r.Post("/cleanup", cleanupPoolsHandler(ctrl, render))
	})

	return r
}
