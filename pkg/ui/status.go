package ui

// Status regions. Each screen renders the region that belongs to it; writes
// to a region that was never registered are silently dropped.
const (
	RegionDirectory = "directory"
	RegionSheets    = "sheets"
	RegionGrid      = "grid"
)

// StatusBar holds short human-readable progress/error lines keyed by region.
// No history, no severity levels.
type StatusBar struct {
	regions map[string]string
}

// NewStatusBar registers the given region names.
func NewStatusBar(regions ...string) *StatusBar {
	m := make(map[string]string, len(regions))
	for _, r := range regions {
		m[r] = ""
	}
	return &StatusBar{regions: m}
}

// Report writes message into the named region. Unknown regions are a no-op,
// not an error.
func (s *StatusBar) Report(region, message string) {
	if _, ok := s.regions[region]; !ok {
		return
	}
	s.regions[region] = message
}

// Get returns the current text of a region ("" for unknown regions).
func (s *StatusBar) Get(region string) string {
	return s.regions[region]
}
