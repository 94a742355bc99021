package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/mauv0809/bvtracker/internal/report"
	"github.com/mauv0809/bvtracker/internal/tracker"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Tracker.Summary())
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Tracker.Matches())
	}
}

func (s *Server) PreviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s.Tracker.Preview(in))
	}
}

func (s *Server) AddMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}
		record, err := s.Tracker.Add(in)
		var verr *tracker.ValidationError
		switch {
		case errors.As(err, &verr):
			problems := make([]string, len(verr.Problems))
			for i, p := range verr.Problems {
				problems[i] = p.Error()
			}
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid match", Problems: problems})
		case err != nil:
			log.Error("Failed to add match", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save match"})
		default:
			writeJSON(w, http.StatusCreated, record)
		}
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		removed, err := s.Tracker.DeleteByID(id)
		s.writeDeleteResult(w, removed, err)
	}
}

func (s *Server) DeleteAtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "position must be an integer"})
			return
		}
		removed, err := s.Tracker.DeleteAt(index)
		s.writeDeleteResult(w, removed, err)
	}
}

func (s *Server) writeDeleteResult(w http.ResponseWriter, removed ledger.MatchRecord, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ledger.ErrIndexOutOfRange):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case err != nil:
		log.Error("Failed to delete match", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to delete match"})
	default:
		writeJSON(w, http.StatusOK, removed)
	}
}

func (s *Server) ResetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to reset the ledger")
		if err := s.Tracker.Reset(); err != nil {
			log.Error("Failed to reset ledger", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to reset"})
			return
		}
		writeJSON(w, http.StatusOK, s.Tracker.Summary())
	}
}

func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := report.Workbook(s.Tracker.Matches(), s.Tracker.Target(), tracker.FormatScore)
		if err != nil {
			log.Error("Failed to build workbook", "error", err)
			http.Error(w, "Failed to build workbook", http.StatusInternalServerError)
			return
		}
		filename := fmt.Sprintf("bvtracker-%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(data)
	}
}

func (s *Server) ChartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := report.AverageChart(s.Tracker.Matches(), s.Tracker.Target())
		if err != nil {
			log.Error("Failed to render chart", "error", err)
			http.Error(w, "Failed to render chart", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}
}

func decodeInput(w http.ResponseWriter, r *http.Request) (tracker.MatchInput, bool) {
	var in tracker.MatchInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Warn("Failed to decode match input", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return tracker.MatchInput{}, false
	}
	return in, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
