package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vitos/lp_wave/internal/domain"
	"go.uber.org/zap"
)

type sessionResponse struct {
	ID    string       `json:"id"`
	Frame domain.Frame `json:"frame"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInputsLocked), errors.Is(err, domain.ErrNoMode):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownMode), errors.Is(err, domain.ErrUnknownCommand):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sim := s.sessions.Create()
	s.writeJSON(w, http.StatusCreated, sessionResponse{ID: sim.ID(), Frame: sim.Frame()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sim, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: sim.ID(), Frame: sim.Frame()})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	sim, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var cmd domain.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid command body"})
		return
	}
	if err := sim.Apply(cmd); err != nil {
		s.logger.Debug("Command rejected",
			zap.String("session", sim.ID()),
			zap.String("op", string(cmd.Op)),
			zap.Error(err))
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: sim.ID(), Frame: sim.Frame()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Close(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	runs, err := s.sessions.RecentRuns(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list runs", zap.Error(err))
		http.Error(w, "Failed to list runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []*domain.RunRecord{}
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleDonation(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"address": s.opts.DonationAddress})
}
