package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSON enables JSON output instead of text
	JSON bool

	// ShowBoard prints the position as a diagram before other results
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
