package config

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	// NodeURLEnv overrides every other node URL source
	NodeURLEnv = "NODE_URL"
	// DefaultNodeURL is used when neither NODE_URL nor 0L.toml are usable
	DefaultNodeURL = "http://0.0.0.0:8080/"
	// DefaultNodeConfigPath is the settings file consulted for upstream nodes
	DefaultNodeConfigPath = "~/.0L/0L.toml"
)

// NodeConfig holds the node URL resolved at construction
type NodeConfig struct {
	NodeURL string
}

// NodeOption customizes node URL resolution
type NodeOption func(*nodeResolver)

// WithPicker replaces the random source used to choose among upstream nodes.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) NodeOption {
	return func(r *nodeResolver) {
		r.pick = pick
	}
}

// WithLogger sets the logger that records why resolution fell back
func WithLogger(log *slog.Logger) NodeOption {
	return func(r *nodeResolver) {
		r.log = log
	}
}

type nodeResolver struct {
	pick func(int) int
	log  *slog.Logger
}

// NewNodeConfig resolves the node URL. NODE_URL wins when set and non-empty; otherwise
// one of profile.upstream_nodes from the TOML file at tomlPath is picked at random.
// Resolution never fails: an unreadable or malformed file yields DefaultNodeURL.
func NewNodeConfig(v *viper.Viper, tomlPath string, opts ...NodeOption) *NodeConfig {
	r := &nodeResolver{
		pick: rand.IntN,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	_ = v.BindEnv("node_url", NodeURLEnv)
	if url := v.GetString("node_url"); url != "" {
		return &NodeConfig{NodeURL: url}
	}

	settings, err := readNodeSettings(tomlPath)
	if err != nil {
		r.log.Debug("using default node url", "path", tomlPath, "error", err)
		return &NodeConfig{NodeURL: DefaultNodeURL}
	}

	return &NodeConfig{NodeURL: r.upstreamNode(settings)}
}

// upstreamNode picks one of the configured nodes.
// A missing profile or node list yields "", which is not a usable URL.
// TODO: check the chosen node is alive before returning it
func (r *nodeResolver) upstreamNode(settings *config.NodeSettings) string {
	if settings.Profile == nil || settings.Profile.UpstreamNodes == nil {
		r.log.Warn("no upstream_nodes in node settings, node url is empty")
		return ""
	}
	return lo.SampleBy(settings.Profile.UpstreamNodes, r.pick)
}

func readNodeSettings(path string) (*config.NodeSettings, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded) //nolint:gosec // user supplied settings path
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, &domain.EncodingError{Path: expanded}
	}

	var settings config.NodeSettings
	if _, err := toml.Decode(string(data), &settings); err != nil {
		return nil, &domain.ParseError{Path: expanded, Err: err}
	}

	return &settings, nil
}
