package render

import (
	"fmt"
	"io"

	"github.com/libra-community/libra-cli/internal/usecase"
)

// OutputBanner separates progress output from the view result
const OutputBanner = "\n=======OUTPUT======="

// ViewRenderer renders the result of a view call
type ViewRenderer struct {
	out io.Writer
}

// NewViewRenderer creates a new view renderer
func NewViewRenderer(out io.Writer) *ViewRenderer {
	return &ViewRenderer{out: out}
}

// Render prints the banner followed by the formatted values
func (r *ViewRenderer) Render(result *usecase.ViewFunctionResult) error {
	fmt.Fprintln(r.out, OutputBanner)
	_, err := fmt.Fprintln(r.out, result.Output)
	return err
}

var _ Renderer[*usecase.ViewFunctionResult] = (*ViewRenderer)(nil)
