package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"chatty", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")
	logger, closer, err := New(Options{Level: "debug", File: path, Prefix: "todo"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("todo toggled", "id", "1")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "todo toggled") || !strings.Contains(string(b), "id=1") {
		t.Errorf("log file = %q", b)
	}
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger.Info("nowhere")
}
