package usecase

import (
	"context"
	"time"

	"github.com/libra-community/libra-cli/internal/domain"
)

// CheckNodeResult contains the outcome of probing the node
type CheckNodeResult struct {
	Alive   bool
	Info    *domain.LedgerInfo
	Latency time.Duration
	Err     error
}

// CheckNode is a use case for probing whether the resolved node answers
type CheckNode struct {
	checker NodeChecker
	now     func() time.Time
}

// NewCheckNode creates a new CheckNode use case
func NewCheckNode(checker NodeChecker) *CheckNode {
	return &CheckNode{
		checker: checker,
		now:     time.Now,
	}
}

// Run probes the node. An unreachable node is reported in the result, not as an error.
func (uc *CheckNode) Run(ctx context.Context) (*CheckNodeResult, error) {
	start := uc.now()
	info, err := uc.checker.LedgerInfo(ctx)
	latency := uc.now().Sub(start)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &CheckNodeResult{Latency: latency, Err: err}, nil
	}

	return &CheckNodeResult{
		Alive:   true,
		Info:    info,
		Latency: latency,
	}, nil
}
