package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/matzehuels/circuitsvg/pkg/errors"
)

// httpError is an error with an explicit HTTP status and no domain code.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func statusError(status int, format string, args ...any) error {
	return &httpError{status: status, msg: fmt.Sprintf(format, args...)}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusOf maps an error code to an HTTP status.
func statusOf(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidView,
		errors.ErrCodeInvalidGrid, errors.ErrCodeInvalidDimensions, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNoBoardOrPanel:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeViewportTargetNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// classify returns the status, code and client-facing message of err.
// Internal errors never leak their cause.
func classify(err error) (int, string, string) {
	var he *httpError
	if stderrors.As(err, &he) {
		return he.status, http.StatusText(he.status), he.msg
	}
	code := errors.GetCode(err)
	status := statusOf(code)
	if status == http.StatusInternalServerError {
		return status, string(errors.ErrCodeInternal), http.StatusText(status)
	}
	return status, string(code), errors.UserMessage(err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := classify(err)
	if status >= 500 {
		s.logger.Error("request failed", "request_id", RequestID(r.Context()), "error", err)
	} else {
		s.logger.Warn("request rejected", "request_id", RequestID(r.Context()), "status", status, "error", err)
	}

	var body errorBody
	body.Error.Code = code
	body.Error.Message = msg
	body.RequestID = RequestID(r.Context())
	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("json marshal error", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
