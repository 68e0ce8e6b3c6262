package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestInit_TagsServiceName(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Info().Msg("boot")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if line["service"] != "connectpro-api" {
		t.Fatalf("expected service tag, got %+v", line)
	}
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "verbose", Output: &buf})
	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line emitted at default level: %s", buf.String())
	}
}
