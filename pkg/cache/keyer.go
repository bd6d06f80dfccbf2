package cache

// LayoutKeyOpts identifies a generated layout.
type LayoutKeyOpts struct {
	Kind        int    `json:"kind"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Seed        uint64 `json:"seed"`
	MaxAttempts int    `json:"max_attempts,omitempty"`
}

// ArtifactKeyOpts identifies a rendered artifact of a layout.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	CellSize  float64 `json:"cell_size,omitempty"`
	Scale     int     `json:"scale,omitempty"`
	Centers   bool    `json:"centers,omitempty"`
	GridLines bool    `json:"grid_lines,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form "<type>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns the key for a generated layout.
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey returns the key for one rendered format of the layout whose
// canonical JSON hashes to layoutHash.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
