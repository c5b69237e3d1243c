package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Spinner is a terminal spinner for long-running batch work.
type Spinner struct {
	message string
	done    chan struct{}
	exited  chan struct{}
	once    sync.Once
	active  bool
	mu      sync.Mutex
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start begins the spinner animation in a goroutine. Nothing is drawn in
// JSON mode or when stderr is not a terminal.
// Only the first call starts the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	if JSONMode || !IsTerminal(Stderr()) {
		s.mu.Unlock()
		return
	}
	s.exited = make(chan struct{})
	s.mu.Unlock()

	go s.run()
}

func (s *Spinner) run() {
	defer close(s.exited)

	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	if NoColor() {
		frames = []string{"|", "/", "-", "\\"}
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	w := Stderr()
	for i := 0; ; i++ {
		select {
		case <-s.done:
			fmt.Fprintf(w, "\r\033[K")
			return
		case <-ticker.C:
			fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], s.message)
		}
	}
}

// Stop stops the spinner and waits for the line to be cleared.
// It is safe to call Stop multiple times.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.active = false
		exited := s.exited
		s.mu.Unlock()
		close(s.done)
		if exited != nil {
			<-exited
		}
	})
}

// WithSpinner runs fn with a spinner, reporting success or failure when it returns.
func WithSpinner(message string, fn func() error) error {
	sp := NewSpinner(message)
	sp.Start()
	err := fn()
	sp.Stop()
	if err != nil {
		Fail(message + " failed")
	} else {
		Success(message)
	}
	return err
}
