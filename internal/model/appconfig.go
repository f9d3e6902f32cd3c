package model

// AppConfig holds application-wide preferences and default solver settings.
type AppConfig struct {
	// Default solver settings applied when no flag overrides them
	DefaultWorkers     int  `json:"default_workers"`
	DistinctSolutions  bool `json:"distinct_solutions"`
	MaxStoredSolutions int  `json:"max_stored_solutions"`

	// Application preferences
	ColorOutput   bool     `json:"color_output"`
	RecentPuzzles []string `json:"recent_puzzles"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults:
// sequential search, literal leaf reporting, colored output.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultWorkers:     1,
		DistinctSolutions:  false,
		MaxStoredSolutions: 100,
		ColorOutput:        true,
		RecentPuzzles:      []string{},
	}
}

// AddRecentPuzzle prepends a puzzle path to the recent list, dropping
// duplicates and keeping at most ten entries.
func (c *AppConfig) AddRecentPuzzle(path string) {
	recent := []string{path}
	for _, p := range c.RecentPuzzles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentPuzzles = recent
}
