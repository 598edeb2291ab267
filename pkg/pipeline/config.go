package pipeline

// Config controls where and how the run writes its output.
type Config struct {
	OutDir string // directory receiving the chart images
	Head   int    // rows shown in the preview
	Width  uint   // commentary wrap column; 0 keeps the reporter default
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{OutDir: "charts", Head: 5}
}
