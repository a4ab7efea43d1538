package awsutil

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
)

// Request describes the AWS query API call a cycle expects
type Request struct {
	Action string
	Region string
	Params map[string]string
}

// Response is the canned reply for a cycle
type Response struct {
	Code int
	Body string
}

// Cycle is one expected request and its response
type Cycle struct {
	Request  Request
	Response Response
}

// Handler replays cycles in order and fails the test on anything unexpected
type Handler struct {
	t *testing.T

	cycles []Cycle
	lock   sync.Mutex
}

// NewHandler returns a handler that serves cycles in order
func NewHandler(t *testing.T, cycles []Cycle) *Handler {
	return &Handler{t: t, cycles: cycles}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if err := r.ParseForm(); err != nil {
		h.fail(w, "could not parse request: %s", err)
		return
	}

	if len(h.cycles) == 0 {
		h.fail(w, "unexpected request: %s", r.Form.Encode())
		return
	}

	cycle := h.cycles[0]
	h.cycles = h.cycles[1:]

	if err := cycle.Request.match(r); err != nil {
		h.fail(w, "%s", err)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(cycle.Response.Code)
	w.Write([]byte(cycle.Response.Body))
}

// Remaining returns the number of cycles not yet served
func (h *Handler) Remaining() int {
	h.lock.Lock()
	defer h.lock.Unlock()

	return len(h.cycles)
}

func (h *Handler) fail(w http.ResponseWriter, format string, args ...interface{}) {
	h.t.Errorf(format, args...)
	http.Error(w, fmt.Sprintf(format, args...), http.StatusNotImplemented)
}

func (req Request) match(r *http.Request) error {
	if a := r.Form.Get("Action"); a != req.Action {
		return fmt.Errorf("expected action %s, got %s", req.Action, a)
	}

	if req.Region != "" {
		scope := fmt.Sprintf("/%s/", req.Region)

		if !strings.Contains(r.Header.Get("Authorization"), scope) {
			return fmt.Errorf("expected %s in region %s", req.Action, req.Region)
		}
	}

	for k, v := range req.Params {
		if got := r.Form.Get(k); got != v {
			return fmt.Errorf("expected %s=%q for %s, got %q", k, v, req.Action, got)
		}
	}

	return nil
}
