// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSourceDir is the directory listed when nothing else is configured.
// It keeps the leading "./" so entry paths read "./outputs/<name>" and the
// link targets come out as "outputs/<name>".
const DefaultSourceDir = "./outputs"

// ListerConfig holds settings for the output lister.
type ListerConfig struct {
	// SourceDir is the directory whose direct children are listed
	// (default "./outputs").
	SourceDir string `json:"source_dir" yaml:"source_dir"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ListerConfig) WithDefaults() ListerConfig {
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	return c
}
