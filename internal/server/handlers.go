package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmcdole/jobboard/internal/auth"
	"github.com/mmcdole/jobboard/internal/domain"
)

const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

// === Jobs ===

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.board.ListJobs(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, jobs)
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		s.listJobs(w, r)
		return
	}

	job, err := s.board.GetJob(r.Context(), domain.ID(id))
	if err != nil {
		s.lookupError(w, err, "Job not found")
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var draft domain.JobDraft
	if !s.decode(w, r, &draft) {
		return
	}

	job, err := s.board.CreateJob(r.Context(), draft)
	if err != nil {
		s.createError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, job)
}

// === Specialists ===

func (s *Server) listSpecialists(w http.ResponseWriter, r *http.Request) {
	specialists, err := s.board.ListSpecialists(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, specialists)
}

func (s *Server) getSpecialist(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	sp, err := s.board.GetSpecialist(r.Context(), domain.ID(id))
	if err != nil {
		s.lookupError(w, err, "Specialist not found")
		return
	}
	s.writeJSON(w, http.StatusOK, sp)
}

func (s *Server) createSpecialist(w http.ResponseWriter, r *http.Request) {
	var draft domain.SpecialistDraft
	if !s.decode(w, r, &draft) {
		return
	}

	sp, err := s.board.CreateSpecialist(r.Context(), draft)
	if err != nil {
		s.createError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sp)
}

// === Auth ===

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !s.decode(w, r, &reg) {
		return
	}

	res, err := s.auth.Register(r.Context(), reg)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, res)
	case errors.Is(err, domain.ErrValidation):
		s.clientError(w, http.StatusBadRequest, auth.MsgFieldsRequired)
	case errors.Is(err, domain.ErrUserExists):
		s.clientError(w, http.StatusBadRequest, auth.MsgUserExists)
	default:
		s.serverError(w, err)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !s.decode(w, r, &creds) {
		return
	}

	res, err := s.auth.Login(r.Context(), creds)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, res)
	case errors.Is(err, domain.ErrInvalidCredentials):
		s.clientError(w, http.StatusBadRequest, auth.MsgInvalidCredentials)
	default:
		s.serverError(w, err)
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.clientError(w, http.StatusNotFound, "Not found")
}

// === Helpers ===

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		s.logger.Debug("invalid request body", "path", r.URL.Path, "error", err)
		s.clientError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func (s *Server) createError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.clientError(w, http.StatusBadRequest, verr.Message)
		return
	}
	s.serverError(w, err)
}

func (s *Server) lookupError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		s.clientError(w, http.StatusNotFound, notFound)
		return
	}
	s.serverError(w, err)
}

func (s *Server) clientError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, messageResponse{Message: message})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}
