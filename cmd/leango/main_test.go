package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanware/leango/internal/bootstrap"
	"github.com/leanware/leango/internal/config"
)

func TestWriteEnvReport(t *testing.T) {
	t.Setenv("LEANGO_CLI_TEST_PRESENT", "value")
	t.Setenv("LEANGO_CLI_TEST_ABSENT", "")
	if err := os.Unsetenv("LEANGO_CLI_TEST_ABSENT"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	var buf bytes.Buffer
	writeEnvReport(&buf, []string{"LEANGO_CLI_TEST_PRESENT", "LEANGO_CLI_TEST_ABSENT"})

	out := buf.String()
	if !strings.Contains(out, "LEANGO_CLI_TEST_PRESENT: present") {
		t.Fatalf("expected present report, got %q", out)
	}
	if !strings.Contains(out, "LEANGO_CLI_TEST_ABSENT: not set") {
		t.Fatalf("expected not set report, got %q", out)
	}
	if strings.Contains(out, "value") {
		t.Fatalf("secret values must never be printed, got %q", out)
	}
}

func TestWriteConfig(t *testing.T) {
	t.Setenv("LEANGO_LOGGER_NAME", "")
	t.Setenv("LEANGO_LOG_LEVEL", "")

	root := t.TempDir()
	content := "logger_name: CLITest\nsettings:\n  greeting: hello\n"
	if err := os.WriteFile(filepath.Join(root, config.DefaultFilename), []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	runtime, err := bootstrap.Init(bootstrap.Options{Root: root})
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	var buf bytes.Buffer
	writeConfig(&buf, runtime)

	out := buf.String()
	if !strings.Contains(out, "logger name:   CLITest") {
		t.Fatalf("expected logger name in output, got %q", out)
	}
	if !strings.Contains(out, "greeting: hello") {
		t.Fatalf("expected settings in output, got %q", out)
	}
}
