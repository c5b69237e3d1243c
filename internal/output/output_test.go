package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjourdan1/hashenc/internal/codec"
)

// capture redirects output for the duration of a test.
func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	SetWriters(out, errOut)
	t.Cleanup(func() {
		SetWriters(nil, nil)
		Init(false, false)
	})
	return out, errOut
}

func TestInit(t *testing.T) {
	Init(false, false)
	assert.False(t, Verbose)
	assert.False(t, JSONMode)

	Init(true, true)
	assert.True(t, Verbose)
	assert.True(t, JSONMode)

	Init(false, false)
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColor())

	t.Setenv("NO_COLOR", "")
	assert.True(t, NoColor()) // any value, even empty, means no color
}

func TestJSON(t *testing.T) {
	out, _ := capture(t)

	JSON(map[string]int{"value": 42})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "ok", decoded["status"])
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "error")
}

func TestJSONError(t *testing.T) {
	out, _ := capture(t)

	JSONWithError([]int{1}, errors.New("2 input(s) failed"))

	var decoded JSONResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "error", decoded.Status)
	assert.Equal(t, "2 input(s) failed", decoded.Error)
	assert.NotNil(t, decoded.Data)
}

func TestLogger_JSONModeSuppressesText(t *testing.T) {
	_, errOut := capture(t)
	Init(false, true)

	Info("hidden")
	Warn("hidden")
	Success("hidden")
	assert.Empty(t, errOut.String())
}

func TestLogger_DebugNeedsVerbose(t *testing.T) {
	_, errOut := capture(t)

	Init(false, false)
	Debug("quiet")
	assert.NotContains(t, errOut.String(), "quiet")

	Init(true, false)
	Debug("loud")
	assert.Contains(t, errOut.String(), "loud")
}

func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewError("something broke")
		assert.Equal(t, "something broke", err.Error())
		assert.Nil(t, err.Unwrap())
		assert.Empty(t, err.Fix)
	})

	t.Run("error with fix", func(t *testing.T) {
		err := NewErrorWithFix("no inputs given", "Pass inputs as arguments or use --stdin")
		assert.Equal(t, "no inputs given", err.Error())
		assert.Equal(t, "Pass inputs as arguments or use --stdin", err.Fix)
	})

	t.Run("wrapped error with fix", func(t *testing.T) {
		cause := errors.New("no such file or directory")
		err := WrapErrorWithFix(cause, "reading manifest", "Check the path")
		assert.Equal(t, "reading manifest: no such file or directory", err.Error())
		assert.Equal(t, "Check the path", err.Fix)
		assert.ErrorIs(t, err, cause)
	})
}

func TestPrintError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	_, errOut := capture(t)
	Init(false, false)

	PrintError(WrapErrorWithFix(errors.New("boom"), "loading manifest", "Check the file"))
	assert.Contains(t, errOut.String(), "loading manifest: boom")
	assert.Contains(t, errOut.String(), "Fix: Check the file")
}

func TestPrintError_JSONMode(t *testing.T) {
	out, _ := capture(t)
	Init(false, true)

	PrintError(errors.New("boom"))
	assert.Contains(t, out.String(), `"status": "error"`)
	assert.Contains(t, out.String(), `"error": "boom"`)
}

func TestRenderResults(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	results := []codec.Result{
		codec.Evaluate("128#0#0#1"),
		codec.Evaluate("135#101#1#5"),
	}
	got := RenderResults(results, "false", true)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "128#0#0#1    2147483649", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "135#101#1#5  false  [out_of_range] "))

	got = RenderResults(results[1:], "false", false)
	assert.Equal(t, "135#101#1#5  false", got)
}

func TestRenderResult_Named(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := codec.Evaluate("1#0#0#0")
	r.Name = "first"
	assert.Equal(t, "first (1#0#0#0)  16777216", RenderResult(r, "false", 0, false))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "1684340997", Plain(codec.Evaluate("100#101#1#5"), "false"))
	assert.Equal(t, "false", Plain(codec.Evaluate("a#101#1#5"), "false"))
}

func TestSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "Summary: 3 valid, 1 invalid", Summary(3, 1, 0))
	assert.Equal(t, "Summary: 1 valid, 1 invalid, 2 skipped", Summary(1, 1, 2))
}

func TestTitle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "Batch: nightly", Title("Batch: nightly"))
}

func TestSpinner(t *testing.T) {
	capture(t)

	t.Run("stop is idempotent", func(t *testing.T) {
		sp := NewSpinner("test")
		sp.Start()
		sp.Stop()
		sp.Stop()
	})

	t.Run("start is idempotent", func(t *testing.T) {
		sp := NewSpinner("test")
		sp.Start()
		sp.Start()
		sp.Stop()
	})

	t.Run("json mode suppresses spinner", func(t *testing.T) {
		Init(false, true)
		defer Init(false, false)

		sp := NewSpinner("test")
		sp.Start()
		sp.Stop()
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(new(bytes.Buffer)))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestWithSpinner(t *testing.T) {
	capture(t)

	t.Run("success", func(t *testing.T) {
		Init(false, true)
		defer Init(false, false)

		err := WithSpinner("testing", func() error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		Init(false, true)
		defer Init(false, false)

		expectedErr := errors.New("boom")
		err := WithSpinner("testing", func() error {
			return expectedErr
		})
		assert.Equal(t, expectedErr, err)
	})
}
