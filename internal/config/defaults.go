package config

import "github.com/spf13/viper"

const (
	DefaultOutputFormat = FormatText
	DefaultSentinel     = "false"
	DefaultAuditPath    = "~/.hashenc/audit.log"
	DefaultConfigName   = "hashenc"
	EnvPrefix           = "HASHENC"
)

// Viper keys.
const (
	KeyOutputFormat   = "output.format"
	KeyOutputSentinel = "output.sentinel"
	KeyAuditEnabled   = "audit.enabled"
	KeyAuditPath      = "audit.path"
	KeyBatchFailFast  = "batch.failFast"
)

// SetDefaults registers default values on v. It is called before any
// config file or environment variable is read.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputFormat, DefaultOutputFormat)
	v.SetDefault(KeyOutputSentinel, DefaultSentinel)
	v.SetDefault(KeyAuditEnabled, true)
	v.SetDefault(KeyAuditPath, DefaultAuditPath)
	v.SetDefault(KeyBatchFailFast, false)
}

// Defaults returns the settings used when no config file is present.
func Defaults() *Settings {
	return &Settings{
		Output: OutputSettings{Format: DefaultOutputFormat, Sentinel: DefaultSentinel},
		Audit:  AuditSettings{Enabled: true, Path: DefaultAuditPath},
	}
}
