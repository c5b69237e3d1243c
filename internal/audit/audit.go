// Package audit records one JSON line per hashenc invocation and reads
// them back for the history command.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Result values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Event struct {
	Timestamp     string            `json:"timestamp"`
	Operation     string            `json:"operation"`
	Args          []string          `json:"args"`
	Result        string            `json:"result"`
	ExitCode      int               `json:"exitCode"`
	DurationMs    int64             `json:"durationMs"`
	CorrelationID string            `json:"correlationId"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func BuildEvent(args []string, result string, exitCode int, duration time.Duration) Event {
	op, configPath := inferFromArgs(args)
	var meta map[string]string
	if configPath != "" {
		meta = map[string]string{"config": configPath}
	}
	now := time.Now().UTC()
	return Event{
		Timestamp:     now.Format(time.RFC3339),
		Operation:     op,
		Args:          args,
		Result:        result,
		ExitCode:      exitCode,
		DurationMs:    duration.Milliseconds(),
		CorrelationID: fmt.Sprintf("%d", now.UnixNano()),
		Metadata:      meta,
	}
}

// Write appends event to the JSONL log at path, creating it if needed.
func Write(path string, event Event) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

// Read returns all events in the log at path. A missing log is empty and
// malformed lines are skipped.
func Read(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var out []Event
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(line), &event); err == nil {
			out = append(out, event)
		}
	}
	return out, scanner.Err()
}

// Filter keeps events whose result matches (all when result is empty) and
// returns at most the last limit of them (all when limit <= 0).
func Filter(events []Event, result string, limit int) []Event {
	filtered := make([]Event, 0, len(events))
	for _, event := range events {
		if result != "" && event.Result != result {
			continue
		}
		filtered = append(filtered, event)
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[len(filtered)-limit:]
	}
	return filtered
}

func (e Event) MetadataValue(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}

func inferFromArgs(args []string) (operation, configPath string) {
	operation = "root"
	for i := 1; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			if args[i] == "--config" {
				i++
			}
			continue
		}
		operation = args[i]
		break
	}
	for i := 0; i+1 < len(args); i++ {
		if args[i] == "--config" {
			configPath = args[i+1]
		}
	}
	return
}
