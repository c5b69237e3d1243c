package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvent(t *testing.T) {
	event := BuildEvent([]string{"hashenc", "-v", "--config", "h.yaml", "encode", "1#2#3#4"}, ResultSuccess, 0, 1500*time.Millisecond)

	assert.Equal(t, "encode", event.Operation)
	assert.Equal(t, ResultSuccess, event.Result)
	assert.Equal(t, int64(1500), event.DurationMs)
	assert.Equal(t, "h.yaml", event.MetadataValue("config"))
	assert.NotEmpty(t, event.CorrelationID)
	_, err := time.Parse(time.RFC3339, event.Timestamp)
	assert.NoError(t, err)
}

func TestBuildEvent_NoSubcommand(t *testing.T) {
	event := BuildEvent([]string{"hashenc", "--help"}, ResultSuccess, 0, 0)
	assert.Equal(t, "root", event.Operation)
	assert.Nil(t, event.Metadata)
	assert.Empty(t, event.MetadataValue("config"))
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.log")

	require.NoError(t, Write(path, BuildEvent([]string{"hashenc", "demo"}, ResultSuccess, 0, time.Millisecond)))
	require.NoError(t, Write(path, BuildEvent([]string{"hashenc", "batch", "x.yaml"}, ResultFailure, 2, time.Millisecond)))

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "demo", events[0].Operation)
	assert.Equal(t, "batch", events[1].Operation)
	assert.Equal(t, 2, events[1].ExitCode)
}

func TestRead_Missing(t *testing.T) {
	events, err := Read(filepath.Join(t.TempDir(), "nope.log"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRead_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	content := `{"operation":"encode","result":"success"}
not json

{"operation":"demo","result":"failure"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	events, err := Read(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "demo", events[1].Operation)
}

func TestFilter(t *testing.T) {
	events := []Event{
		{Operation: "a", Result: ResultSuccess},
		{Operation: "b", Result: ResultFailure},
		{Operation: "c", Result: ResultSuccess},
		{Operation: "d", Result: ResultSuccess},
	}

	assert.Len(t, Filter(events, "", 0), 4)

	got := Filter(events, ResultSuccess, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Operation)
	assert.Equal(t, "d", got[1].Operation)

	got = Filter(events, ResultFailure, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Operation)
}
