package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// PinPaths are the files or directories holding pin files.
	PinPaths []string

	// ModulePath is the import prefix of the module being scanned; its own
	// packages never count as external dependencies. Only the scan
	// operation uses it.
	ModulePath string

	LogFormat        string
	LogLevel         string
	RequireIntegrity bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PinPaths) == 0 {
		return nil, errors.New("at least one pin file path is required")
	}
	return &cfg, nil
}
