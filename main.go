// hashenc validates '#'-delimited four-field inputs and encodes them as a
// single base-256 integer.
package main

import (
	"os"
	"time"

	"github.com/kjourdan1/hashenc/cmd"
	"github.com/kjourdan1/hashenc/internal/audit"
	"github.com/kjourdan1/hashenc/internal/exitcode"
	"github.com/kjourdan1/hashenc/internal/output"
	_ "github.com/kjourdan1/hashenc/schemas"
)

func main() {
	start := time.Now()
	err := cmd.Execute()
	code := exitcode.Of(err)

	result := audit.ResultSuccess
	if err != nil {
		result = audit.ResultFailure
	}
	if s := cmd.Settings(); s != nil && s.Audit.Enabled {
		event := audit.BuildEvent(os.Args, result, code, time.Since(start))
		if werr := audit.Write(s.Audit.Path, event); werr != nil {
			output.Debug("audit log not written", "path", s.Audit.Path, "error", werr)
		}
	}

	if err != nil {
		os.Exit(code)
	}
}
