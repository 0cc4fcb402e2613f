package server

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/circuitsvg/pkg/errors"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
	"github.com/matzehuels/circuitsvg/pkg/viewport"
)

func (s *Server) render(w http.ResponseWriter, r *http.Request) error {
	opts, err := renderOptions(chi.URLParam(r, "view"), r.URL.Query())
	if err != nil {
		return err
	}
	return s.execute(w, r, opts)
}

func (s *Server) bounds(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	view := q.Get("view")
	if view == "" {
		view = pipeline.ViewPCB
	}
	q.Set("format", pipeline.FormatJSON)
	opts, err := renderOptions(view, q)
	if err != nil {
		return err
	}
	return s.execute(w, r, opts)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, opts pipeline.Options) error {
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidFormat, "exactly one format per request (got %d)", len(opts.Formats))
	}

	input, err := cio.ReadAll(http.MaxBytesReader(w, r.Body, cio.MaxInputSize))
	if err != nil {
		var mbe *http.MaxBytesError
		if stderrors.As(err, &mbe) {
			return statusError(http.StatusRequestEntityTooLarge, "body exceeds %d bytes", mbe.Limit)
		}
		return err
	}

	res, err := s.runner.Execute(r.Context(), input, opts)
	if err != nil {
		return err
	}

	format := opts.Formats[0]
	cacheState := "miss"
	if res.CacheInfo.RenderHit {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Cache", cacheState)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(res.Artifacts[format])
	return err
}

// renderOptions builds pipeline options from a view and query parameters.
// The options are validated later, once the request logger is attached.
func renderOptions(view string, v url.Values) (pipeline.Options, error) {
	q := query{v: v}
	opts := pipeline.Options{
		View:    view,
		Formats: pipeline.ParseFormats(v.Get("format")),
		Width:   q.float("width"),
		Height:  q.float("height"),
	}

	opts.PCB.Layer = v.Get("layer")
	opts.PCB.ShowRatsNest = q.bool("ratsnest")
	opts.PCB.ShowPorts = q.bool("ports")
	opts.PCB.ShowSolderMask = q.bool("soldermask")
	if v.Has("padding") {
		pad := q.bool("padding")
		opts.PCB.DrawPaddingOutsideBoard = &pad
	}
	if board, panel := v.Get("board"), v.Get("panel"); board != "" || panel != "" {
		for _, id := range []string{board, panel} {
			if id == "" {
				continue
			}
			if err := errors.ValidateElementID(id); err != nil {
				return opts, err
			}
		}
		opts.PCB.Target = &viewport.Target{PCBBoardID: board, PCBPanelID: panel}
	}

	opts.PCB.Grid.CellSize = q.float("grid")
	opts.PCB.Grid.MajorCellSize = q.float("major_grid")
	opts.Schematic.Grid = opts.PCB.Grid
	opts.Schematic.HidePinNumbers = q.bool("hide_pins")

	opts.Nets.Detailed = q.bool("detailed")
	opts.Nets.IncludeSingletons = q.bool("singletons")

	return opts, q.err
}

// query parses typed parameters, keeping the first error.
type query struct {
	v   url.Values
	err error
}

func (q *query) float(name string) float64 {
	s := q.v.Get(name)
	if s == "" || q.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.err = errors.New(errors.ErrCodeInvalidInput, "%s must be a number (got %q)", name, s)
	}
	return f
}

func (q *query) bool(name string) bool {
	if q.err != nil {
		return false
	}
	s := q.v.Get(name)
	if s == "" {
		return q.v.Has(name) // bare ?name
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		q.err = errors.New(errors.ErrCodeInvalidInput, "%s must be true or false (got %q)", name, s)
	}
	return b
}
