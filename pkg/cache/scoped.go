package cache

// ScopedKeyer wraps a Keyer with a prefix so several tools can share one
// backend, such as a Redis instance, without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "antennas:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gridHash, opts)
}

// ReportKey generates a prefixed report key.
func (k *ScopedKeyer) ReportKey(gridHash string) string {
	return k.prefix + k.inner.ReportKey(gridHash)
}
