package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/timesplit/internal/planner"
)

const errServer = "server error"

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlanRequest(r)
	if err != nil {
		s.log.Debug("unreadable plan request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": planner.ValidationErrorMessage})
		return
	}

	plan, err := s.planner.Build(req)
	var verr *planner.ValidationError
	switch {
	case errors.As(err, &verr):
		s.log.Debug("plan rejected", "detail", verr.Detail())
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
		return
	case err != nil:
		s.log.Error("plan error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": errServer})
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, planner.Rules())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
