package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderSpinner shows progress through a batch of circuit files. Workers
// report each finished file with Advance; the spinner line names the latest
// file and its element count. A nil *renderSpinner ignores every call, so
// quiet runs need no special casing.
type renderSpinner struct {
	w     io.Writer
	total int

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	stopped chan struct{}
	once    sync.Once

	mu       sync.Mutex
	done     int
	last     string
	elements int
	skipped  int
	width    int
}

// newRenderSpinner creates a spinner for total files that stops when ctx is
// cancelled.
func newRenderSpinner(ctx context.Context, w io.Writer, total int) *renderSpinner {
	ctx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		w:       w,
		total:   total,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *renderSpinner) Start() {
	if s == nil {
		return
	}
	s.started = true
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Advance records that input finished rendering.
func (s *renderSpinner) Advance(input string, stats pipeline.Stats) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done++
	s.last = filepath.Base(input)
	s.elements = stats.ElementCount
	s.skipped = stats.SkippedCount
}

// status is the text after the spinner frame.
func (s *renderSpinner) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := fmt.Sprintf("Rendering %d/%d files", s.done, s.total)
	if s.last == "" {
		return msg + "..."
	}
	msg += fmt.Sprintf(" · %s (%d elements", s.last, s.elements)
	if s.skipped > 0 {
		msg += fmt.Sprintf(", %d skipped", s.skipped)
	}
	return msg + ")"
}

func (s *renderSpinner) draw(frame string) {
	status := s.status()
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(status))
	s.width = max(s.width, len(status)+2)
}

func (s *renderSpinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
	}
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *renderSpinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.cancel()
		if s.started {
			<-s.stopped
		}
	})
}
