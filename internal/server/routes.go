package server

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (s *Server) routes() http.Handler {
	standardMiddleware := alice.New(s.recoverPanic, s.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()
	mux.NotFound = standardMiddleware.ThenFunc(s.notFound)

	// Jobs. Slash-less patterns go first: pat would otherwise register them
	// as redirects, which turn a POST into a GET.
	mux.Get("/api/jobs/:id", standardMiddleware.ThenFunc(s.getJob))
	mux.Get("/api/jobs/:id/", standardMiddleware.ThenFunc(s.getJob))
	mux.Get("/api/jobs", standardMiddleware.ThenFunc(s.listJobs))
	mux.Get("/api/jobs/", standardMiddleware.ThenFunc(s.listJobs))
	mux.Post("/api/jobs", standardMiddleware.ThenFunc(s.createJob))
	mux.Post("/api/jobs/", standardMiddleware.ThenFunc(s.createJob))

	// Specialists
	mux.Get("/api/users/:id", standardMiddleware.ThenFunc(s.getSpecialist))
	mux.Get("/api/users", standardMiddleware.ThenFunc(s.listSpecialists))
	mux.Post("/api/users", standardMiddleware.ThenFunc(s.createSpecialist))

	// Auth
	mux.Post("/api/login", standardMiddleware.ThenFunc(s.login))
	mux.Post("/api/register", standardMiddleware.ThenFunc(s.register))

	return mux
}
