package config

// Output formats accepted by output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Settings is the content of hashenc.yaml.
type Settings struct {
	Output OutputSettings `mapstructure:"output" yaml:"output" json:"output"`
	Audit  AuditSettings  `mapstructure:"audit" yaml:"audit" json:"audit"`
	Batch  BatchSettings  `mapstructure:"batch" yaml:"batch" json:"batch"`
}

// OutputSettings controls how results are printed.
type OutputSettings struct {
	Format   string `mapstructure:"format" yaml:"format" json:"format"`       // text | json
	Sentinel string `mapstructure:"sentinel" yaml:"sentinel" json:"sentinel"` // printed for a failed input
}

// AuditSettings controls the per-invocation audit log.
type AuditSettings struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Path    string `mapstructure:"path" yaml:"path" json:"path"`
}

// BatchSettings controls manifest processing.
type BatchSettings struct {
	FailFast bool `mapstructure:"failFast" yaml:"failFast" json:"failFast"`
}

// JSON reports whether results should be emitted in the JSON envelope.
func (s *Settings) JSON() bool {
	return s.Output.Format == FormatJSON
}
