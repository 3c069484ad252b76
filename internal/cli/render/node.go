package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/libra-community/libra-cli/internal/usecase"
)

// NodeRenderer renders node-related output
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

// RenderCheck renders the outcome of probing nodeURL
func (r *NodeRenderer) RenderCheck(nodeURL string, result *usecase.CheckNodeResult) error {
	if !result.Alive {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("node %s is not responding: %v", nodeURL, result.Err)))
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is alive (%s)", nodeURL, result.Latency.Round(time.Millisecond))))
	info := result.Info
	label := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(r.out, "%s %d\n", label("Chain ID:      "), info.ChainID)
	fmt.Fprintf(r.out, "%s %s\n", label("Epoch:         "), info.Epoch)
	fmt.Fprintf(r.out, "%s %s\n", label("Ledger version:"), info.LedgerVersion)
	if info.BlockHeight != "" {
		fmt.Fprintf(r.out, "%s %s\n", label("Block height:  "), info.BlockHeight)
	}
	if info.NodeRole != "" {
		fmt.Fprintf(r.out, "%s %s\n", label("Node role:     "), titleCase(info.NodeRole))
	}
	return nil
}
