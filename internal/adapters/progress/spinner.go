package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
)

// SpinnerSink shows a spinner on stderr while a node call is in flight
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner writing to w
func NewSpinnerSink(w io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.HideCursor = false
	_ = s.Color("cyan", "bold")

	return &SpinnerSink{spinner: s}
}

// Start shows the spinner with message as suffix
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Stop hides the spinner
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// ProvideProgressSink picks the spinner for interactive runs and a no-op sink otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Debug {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
