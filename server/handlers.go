package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/repository"
	"github.com/pdtriglav/alpcontent/pkg/service"
)

// statusHandler returns server status with in-flight runs and the last daily run
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"in_flight": s.content.InFlight(),
	}
	if last, ok := s.content.LastDailyRun(r.Context()); ok {
		status["last_daily_run"] = last
	}
	renderJSON(w, r, http.StatusOK, status)
}

// todayEventHandler returns today's historical event, a failure renders as a missing event
func (s *Server) todayEventHandler(w http.ResponseWriter, r *http.Request) {
	ev, err := s.content.GetOrCreateTodaysEvent(r.Context())
	if err != nil {
		log.Printf("[WARN] no historical event for today: %v", err)
		renderJSON(w, r, http.StatusOK, map[string]any{"event": nil})
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"event": ev, "date": ev.FullDate()})
}

// regenerateHandler replaces the content of an event
func (s *Server) regenerateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		renderError(w, r, fmt.Errorf("invalid event ID"), http.StatusBadRequest)
		return
	}

	res, err := s.content.RegenerateEvent(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, fmt.Errorf("event %d not found", id), http.StatusNotFound)
	case err != nil:
		log.Printf("[ERROR] failed to regenerate event %d: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, res)
	}
}

// todayNewsHandler returns today's selected articles, empty list if there are none
func (s *Server) todayNewsHandler(w http.ResponseWriter, r *http.Request) {
	articles := s.content.GetCachedNewsForToday(r.Context())
	if articles == nil {
		articles = []domain.Article{}
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"date": domain.DateKey(time.Now()), "articles": articles})
}

// triggerHandler starts a background task, a kind already in flight is not started again
func (s *Server) triggerHandler(w http.ResponseWriter, r *http.Request) {
	task, started, err := s.content.Trigger(r.PathValue("kind"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if !started {
		if task == nil {
			renderError(w, r, service.ErrAlreadyRunning, http.StatusConflict)
			return
		}
		renderJSON(w, r, http.StatusConflict, task)
		return
	}
	renderJSON(w, r, http.StatusAccepted, task)
}

// taskHandler returns task status
func (s *Server) taskHandler(w http.ResponseWriter, r *http.Request) {
	task, err := s.content.Task(r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, task)
}

// cancelTaskHandler requests cancellation of a running task
func (s *Server) cancelTaskHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.content.CancelTask(id); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	task, err := s.content.Task(id)
	if err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, task)
}

// selfTestHandler checks providers, database and generation
func (s *Server) selfTestHandler(w http.ResponseWriter, r *http.Request) {
	res := s.content.TestServices(r.Context())
	code := http.StatusOK
	if !res["database"] {
		code = http.StatusServiceUnavailable
	}
	renderJSON(w, r, code, res)
}

// statsHandler returns content counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.content.DashboardStats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}
