package output

import (
	"encoding/json"
	"fmt"
)

// JSONResult is the standard envelope for JSON output from any hashenc command.
type JSONResult struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // command-specific payload
	Error  string      `json:"error,omitempty"` // error message, if any
}

// JSON writes a structured JSON result to stdout.
func JSON(data interface{}) {
	writeJSON(JSONResult{Status: "ok", Data: data})
}

// JSONError writes an error result as JSON to stdout.
func JSONError(err error) {
	writeJSON(JSONResult{Status: "error", Error: err.Error()})
}

// JSONWithError writes a payload together with an error status, for
// commands that produce partial results before failing.
func JSONWithError(data interface{}, err error) {
	writeJSON(JSONResult{Status: "error", Data: data, Error: err.Error()})
}

func writeJSON(result JSONResult) {
	enc := json.NewEncoder(Stdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(Stderr(), "error encoding JSON output: %v\n", err)
	}
}
