package cache

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Effects bool   `json:"effects,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered graph, given the hash of
	// the grid it was built from.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
	// ReportKey returns the key of a JSON report for a grid.
	ReportKey(gridHash string) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return Key("artifact", gridHash, opts)
}

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(gridHash string) string {
	return "report:" + gridHash
}
