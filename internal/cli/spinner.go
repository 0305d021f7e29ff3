package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a one-line status on w while a slow render runs. It
// stops on stop or when ctx is cancelled, whichever comes first.
type spinner struct {
	w       io.Writer
	message string
	tick    time.Duration

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
	stopped chan struct{}
}

func newSpinner(parent context.Context, w io.Writer, message string) *spinner {
	ctx, cancel := context.WithCancel(parent)
	return &spinner{
		parent:  parent,
		w:       w,
		message: message,
		tick:    80 * time.Millisecond,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

func (s *spinner) start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()
}

// stop ends the animation and waits for the line to be cleared. It is safe
// to call more than once.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
	})
}

// interrupted reports whether the parent context ended the animation.
func (s *spinner) interrupted() bool {
	return s.parent.Err() != nil
}

func (s *spinner) clear() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
