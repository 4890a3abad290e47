package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"bastion-hq/bastion/pkg/policy"
	"bastion-hq/bastion/pkg/telemetry/metrics"
)

// validateRequest is the body of POST /v1/validate. Password is a
// pointer so a missing field is distinguishable from an empty candidate;
// the empty string is a legitimate input (a length rule rejects it with
// TOO_SHORT rather than the transport rejecting it outright).
type validateRequest struct {
	Password *string `json:"password"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// maxRequestBody bounds the validate request body. Candidates longer
// than this are rejected before any rule runs.
const maxRequestBody = 64 * 1024

// validateHandler runs every active rule against the submitted
// candidate and returns the per-rule report. The candidate itself is
// never logged or recorded.
type validateHandler struct {
	rules     RuleProvider
	collector *metrics.Collector
}

func newValidateHandler(rules RuleProvider, collector *metrics.Collector) *validateHandler {
	return &validateHandler{rules: rules, collector: collector}
}

func (h *validateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req validateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == nil {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	password := *req.Password

	report := policy.Evaluate(h.rules.Rules(), password)

	if h.collector != nil {
		h.collector.RecordValidation(utf8.RuneCountInString(password), report.RuleResults())
	}

	slog.DebugContext(r.Context(), "validation complete",
		"report_id", report.ID,
		"valid", report.Valid,
		"rules", len(report.Results),
		"request_id", GetRequestID(r.Context()),
	)

	writeJSON(w, http.StatusOK, report)
}

// healthHandler reports liveness.
type healthHandler struct{}

func newHealthHandler() *healthHandler {
	return &healthHandler{}
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
