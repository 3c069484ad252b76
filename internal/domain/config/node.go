package config

// NodeSettings is the subset of 0L.toml used to pick an upstream node
type NodeSettings struct {
	Profile *NodeProfile `toml:"profile"`
}

// NodeProfile holds the candidate upstream node URLs
type NodeProfile struct {
	UpstreamNodes []string `toml:"upstream_nodes"`
}
