package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/circuitsvg/pkg/cache"
	"github.com/matzehuels/circuitsvg/pkg/errors"
	"github.com/matzehuels/circuitsvg/pkg/observability"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

const board = `[
  {"type": "pcb_board", "pcb_board_id": "b1", "center": {"x": 0, "y": 0}, "width": 10, "height": 10},
  {"type": "pcb_smtpad", "pcb_smtpad_id": "p1", "shape": "rect", "x": 1, "y": 1, "width": 1, "height": 0.5, "layer": "top"}
]`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(New(pipeline.NewRunner(fc, nil, nil), nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("request id %q is not a UUID", resp.Header.Get(RequestIDHeader))
	}
}

func TestRenderSVG(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/v1/render/pcb?width=400&height=300", board)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %+v", resp.StatusCode, decodeError(t, resp))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := resp.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("X-Cache = %q, want miss", got)
	}
	var sb strings.Builder
	if _, err := sb.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `width="400"`) {
		t.Errorf("svg ignores width: %.120s", sb.String())
	}

	again := post(t, srv.URL+"/v1/render/pcb?width=400&height=300", board)
	if got := again.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"bad view", "/v1/render/3d", board, http.StatusBadRequest, "INVALID_VIEW"},
		{"bad format", "/v1/render/pcb?format=gif", board, http.StatusBadRequest, "INVALID_FORMAT"},
		{"two formats", "/v1/render/pcb?format=svg,json", board, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad width", "/v1/render/pcb?width=wide", board, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad bool", "/v1/render/pcb?ratsnest=maybe", board, http.StatusBadRequest, "INVALID_INPUT"},
		{"not an array", "/v1/render/pcb", `{}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad grid", "/v1/render/pcb?grid=5&major_grid=12", board, http.StatusBadRequest, "INVALID_GRID"},
		{"missing board", "/v1/render/pcb?board=nope", board, http.StatusNotFound, "VIEWPORT_TARGET_NOT_FOUND"},
		{"no route", "/v1/nothing", board, http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decodeError(t, resp)
			if body.Error.Code != tt.code {
				t.Errorf("code = %q, want %q (%s)", body.Error.Code, tt.code, body.Error.Message)
			}
			if body.RequestID != resp.Header.Get(RequestIDHeader) {
				t.Errorf("body request id %q != header %q", body.RequestID, resp.Header.Get(RequestIDHeader))
			}
		})
	}
}

func TestBounds(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv.URL+"/v1/bounds", board)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var rep pipeline.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatal(err)
	}
	if rep.Frame == nil || rep.Frame.Viewport.Source != "board" {
		t.Fatalf("report = %+v", rep)
	}
	if b := rep.Frame.Viewport.Bounds; b.MinX != -5 || b.MaxX != 5 {
		t.Errorf("viewport bounds = %v", b)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	srv := newTestServer(t)
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}

	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got == "" || strings.Contains(got, "not-a-uuid") {
		t.Errorf("invalid client id was echoed: %q", got)
	}
}

type requestRecorder struct {
	mu     sync.Mutex
	routes []string
}

func (r *requestRecorder) OnRequest(_ context.Context, method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, method+" "+route+" "+http.StatusText(status))
}

func TestServerHooks(t *testing.T) {
	rec := &requestRecorder{}
	observability.SetServerHooks(rec)
	defer observability.Reset()

	srv := newTestServer(t)
	post(t, srv.URL+"/v1/render/schematic", `[]`)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := "POST /v1/render/{view} OK"
	if len(rec.routes) != 1 || rec.routes[0] != want {
		t.Errorf("routes = %v, want [%s]", rec.routes, want)
	}
}

func TestStatusOf(t *testing.T) {
	for code, want := range map[string]int{
		"INVALID_VIEW":      http.StatusBadRequest,
		"NO_BOARD_OR_PANEL": http.StatusUnprocessableEntity,
		"NOT_FOUND":         http.StatusNotFound,
		"UNSUPPORTED":       http.StatusNotImplemented,
		"":                  http.StatusInternalServerError,
	} {
		if got := statusOf(errors.Code(code)); got != want {
			t.Errorf("statusOf(%q) = %d, want %d", code, got, want)
		}
	}
}
