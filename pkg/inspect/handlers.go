package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reakt-dev/reakt/internal/errors"
	"github.com/reakt-dev/reakt/pkg/host"
	"github.com/reakt-dev/reakt/pkg/host/memdom"
	"github.com/reakt-dev/reakt/pkg/reakt"
)

// maxEventBody bounds the JSON body of an event dispatch.
const maxEventBody = 64 << 10

// DispatchResult is the response of POST /nodes/{id}/events/{event}.
type DispatchResult struct {
	Node      uint64 `json:"node"`
	Event     string `json:"event"`
	Listeners int    `json:"listeners"`
	Passes    int    `json:"passes"`
	Error     string `json:"error,omitempty"`
}

type eventBody struct {
	Value any `json:"value"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	opts := memdom.HTMLOptions{
		Pretty:  r.URL.Query().Has("pretty"),
		NodeIDs: true,
	}
	var html string
	err := s.Do(func(*reakt.Runtime, *memdom.Node) error {
		html = s.currentHTML(opts)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleTreeJSON(w http.ResponseWriter, r *http.Request) {
	var snap *memdom.Snapshot
	err := s.Do(func(_ *reakt.Runtime, container *memdom.Node) error {
		snap = container.Snapshot()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, errors.New("E044").WithDetailf("invalid node id %q", chi.URLParam(r, "id")))
		return
	}
	event := chi.URLParam(r, "event")

	var body eventBody
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxEventBody)).Decode(&body); err != nil && err != io.EOF {
			http.Error(w, "invalid event body", http.StatusBadRequest)
			return
		}
	}

	var result DispatchResult
	err = s.Do(func(rt *reakt.Runtime, container *memdom.Node) error {
		node := container.FindByID(id)
		if node == nil {
			return errors.New("E044").WithDetailf("node %d is not in the mounted tree", id)
		}

		s.lastErr = nil
		n := node.Dispatch(host.Event{Type: event, Value: body.Value})
		result = DispatchResult{
			Node:      id,
			Event:     event,
			Listeners: n,
			Passes:    rt.Stats().Passes,
		}
		if s.lastErr != nil {
			result.Error = s.lastErr.Error()
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.logger.Debug("event dispatched", "node", id, "event", event, "listeners", result.Listeners)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var stats reakt.Stats
	err := s.Do(func(rt *reakt.Runtime, _ *memdom.Node) error {
		stats = rt.Stats()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	var first *Message
	_ = s.Do(func(rt *reakt.Runtime, _ *memdom.Node) error {
		first = &Message{
			Type: MessageTree,
			Pass: rt.Stats().Passes,
			HTML: s.currentHTML(memdom.HTMLOptions{}),
		}
		return nil
	})
	s.hub.serve(w, r, first)
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as a JSON error object with a status derived from
// its code.
func writeError(w http.ResponseWriter, err error) {
	re := errors.FromError(err, "")
	status := http.StatusInternalServerError
	switch re.Code {
	case "E044":
		status = http.StatusNotFound
	case "E045":
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, re.FormatJSON())
}
