// Package doctor implements environment checks for hashenc.
//
// It verifies that settings load, that the embedded manifest schema
// compiles, that the audit log is writable and that the encoder reproduces
// its reference values.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kjourdan1/hashenc/internal/codec"
	"github.com/kjourdan1/hashenc/internal/config"
)

// Status represents the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// CheckResult is the outcome of running a single check.
type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Env is what the checks inspect.
type Env struct {
	Settings   *config.Settings
	ConfigFile string // empty when running on defaults
	Schema     []byte
}

// Check defines a single check.
type Check struct {
	Name     string
	Category string // "config", "runtime"
	Critical bool   // if true, failure => non-zero exit
	Run      func(env Env) CheckResult
}

// Summary holds the aggregated results of all checks.
type Summary struct {
	Results    []CheckResult `json:"results"`
	TotalPass  int           `json:"totalPass"`
	TotalFail  int           `json:"totalFail"`
	TotalWarn  int           `json:"totalWarn"`
	TotalSkip  int           `json:"totalSkip"`
	HasFailure bool          `json:"hasFailure"`
}

// selfTest pairs inputs with the result the encoder must produce.
var selfTest = []struct {
	input string
	value uint64
	ok    bool
}{
	{"128#0#0#1", 2147483649, true},
	{"100#101#1#5", 1684340997, true},
	{"a#101#1#5", 0, false},
	{"135#101#1#5", 0, false},
	{"1#2#3", 0, false},
	{"0#0#0#0", 0, false},
}

// RunAll executes all checks and returns a summary.
func RunAll(env Env) Summary {
	checks := AllChecks()
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run(env))
	}
	return buildSummary(results, checks)
}

func buildSummary(results []CheckResult, checks []Check) Summary {
	s := Summary{Results: results}
	for i, r := range results {
		switch r.Status {
		case StatusPass:
			s.TotalPass++
		case StatusFail:
			s.TotalFail++
			if checks[i].Critical {
				s.HasFailure = true
			}
		case StatusWarn:
			s.TotalWarn++
		case StatusSkip:
			s.TotalSkip++
		}
	}
	return s
}

// AllChecks returns the ordered list of checks.
func AllChecks() []Check {
	return []Check{
		checkSettings(),
		checkSchema(),
		checkEncoder(),
		checkAuditLog(),
	}
}

func checkSettings() Check {
	return Check{
		Name:     "settings",
		Category: "config",
		Critical: true,
		Run: func(env Env) CheckResult {
			r := CheckResult{Name: "settings"}
			switch {
			case env.Settings == nil:
				r.Status = StatusFail
				r.Message = "settings not loaded"
				r.Fix = "Run: hashenc config init --force"
			case env.ConfigFile == "":
				r.Status = StatusPass
				r.Message = "no hashenc.yaml found, using defaults"
			default:
				r.Status = StatusPass
				r.Message = "loaded " + env.ConfigFile
			}
			return r
		},
	}
}

func checkSchema() Check {
	return Check{
		Name:     "schema",
		Category: "config",
		Critical: true,
		Run: func(env Env) CheckResult {
			r := CheckResult{Name: "schema"}
			if len(env.Schema) == 0 {
				r.Status = StatusFail
				r.Message = "batch manifest schema is not embedded"
				r.Fix = "Rebuild hashenc; the schemas package must be linked in"
				return r
			}
			if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(env.Schema)); err != nil {
				r.Status = StatusFail
				r.Message = fmt.Sprintf("batch manifest schema does not compile: %v", err)
				return r
			}
			r.Status = StatusPass
			r.Message = "batch manifest schema compiles"
			return r
		},
	}
}

func checkEncoder() Check {
	return Check{
		Name:     "encoder",
		Category: "runtime",
		Critical: true,
		Run: func(env Env) CheckResult {
			r := CheckResult{Name: "encoder"}
			for _, tc := range selfTest {
				v, ok := codec.Encode(tc.input)
				if ok != tc.ok || v != tc.value {
					r.Status = StatusFail
					r.Message = fmt.Sprintf("encoder self-test failed for %q: got (%d, %t), want (%d, %t)", tc.input, v, ok, tc.value, tc.ok)
					return r
				}
			}
			r.Status = StatusPass
			r.Message = fmt.Sprintf("encoder self-test passed (%d vectors)", len(selfTest))
			return r
		},
	}
}

func checkAuditLog() Check {
	return Check{
		Name:     "audit-log",
		Category: "runtime",
		Critical: false,
		Run: func(env Env) CheckResult {
			r := CheckResult{Name: "audit-log"}
			if env.Settings == nil || !env.Settings.Audit.Enabled {
				r.Status = StatusSkip
				r.Message = "audit log disabled"
				return r
			}
			path := env.Settings.Audit.Path
			if err := probeAppend(path); err != nil {
				r.Status = StatusWarn
				r.Message = fmt.Sprintf("audit log %s is not writable: %v", path, err)
				r.Fix = "Set audit.path to a writable location or audit.enabled: false"
				return r
			}
			r.Status = StatusPass
			r.Message = "audit log writable at " + path
			return r
		},
	}
}

// probeAppend opens path for appending without writing to it.
func probeAppend(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
