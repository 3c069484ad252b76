package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/libra-community/libra-cli/internal/domain"
)

// ViewFunctionParams contains parameters for a view call.
// TypeArgs and Args are nil when not given on the command line.
type ViewFunctionParams struct {
	FunctionID string
	TypeArgs   *string
	Args       *string
}

// ViewFunctionResult contains the values returned by the node and their display form
type ViewFunctionResult struct {
	Function domain.FunctionID
	Values   []json.RawMessage
	Output   string
}

// ViewFunction is a use case for calling a read-only function once
type ViewFunction struct {
	client   ViewClient
	progress ProgressSink
}

// NewViewFunction creates a new ViewFunction use case
func NewViewFunction(client ViewClient, progress ProgressSink) *ViewFunction {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ViewFunction{
		client:   client,
		progress: progress,
	}
}

// Run executes the view function use case
func (uc *ViewFunction) Run(ctx context.Context, params ViewFunctionParams) (*ViewFunctionResult, error) {
	fn, err := domain.ParseFunctionID(params.FunctionID)
	if err != nil {
		return nil, err
	}

	req := domain.ViewRequest{
		Function:      fn.String(),
		TypeArguments: []string{},
		Arguments:     []any{},
	}
	if params.TypeArgs != nil {
		tags, err := domain.ParseTypeArgs(*params.TypeArgs)
		if err != nil {
			return nil, err
		}
		if tags != nil {
			req.TypeArguments = tags
		}
	}
	if params.Args != nil {
		req.Arguments = domain.ParseViewArgs(*params.Args)
	}

	uc.progress.Start(fmt.Sprintf("Calling %s...", fn))
	values, err := uc.client.View(ctx, req)
	uc.progress.Stop()
	if err != nil {
		return nil, err
	}

	return &ViewFunctionResult{
		Function: fn,
		Values:   values,
		Output:   FormatViewValues(values),
	}, nil
}

// FormatViewValues renders values as compact JSON joined by ", " inside brackets
func FormatViewValues(values []json.RawMessage) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, compactJSON(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func compactJSON(v json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}
