package config

import "path/filepath"

// ReportConfig controls the optional HTML chart report.
type ReportConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

func (c *ReportConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "fleet_report.html"
	}
}

// Resolve returns the report path; relative paths live in outputDir.
func (c ReportConfig) Resolve(outputDir string) string {
	if filepath.IsAbs(c.Path) {
		return c.Path
	}
	return filepath.Join(outputDir, c.Path)
}
