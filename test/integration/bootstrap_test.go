package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanware/leango/internal/bootstrap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestBootstrapFlow(t *testing.T) {
	clearEnv(t, "INTEGRATION_SECRET_TOKEN", "INTEGRATION_PASSWORD")
	t.Setenv("INTEGRATION_PRESET", "keep")

	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"),
		"INTEGRATION_SECRET_TOKEN=abc123\n"+
			"# note\n"+
			"\n"+
			"INTEGRATION_PASSWORD=hunter2\n"+
			"INTEGRATION_PRESET=overwritten\n")
	writeFile(t, filepath.Join(root, "leango.yaml"),
		"logger_name: IntegrationApp\n"+
			"log_level: debug\n"+
			"settings:\n"+
			"  greeting: hello\n")

	runtime, err := bootstrap.Init(bootstrap.Options{Root: root})
	if err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	// Secrets injection: well-formed pairs land in the environment, the
	// comment line produces nothing, existing variables win.
	if got := os.Getenv("INTEGRATION_SECRET_TOKEN"); got != "abc123" {
		t.Fatalf("expected secret token in environment, got %q", got)
	}
	if got := os.Getenv("INTEGRATION_PASSWORD"); got != "hunter2" {
		t.Fatalf("expected password in environment, got %q", got)
	}
	if got := os.Getenv("INTEGRATION_PRESET"); got != "keep" {
		t.Fatalf("expected preset variable to win over the secrets file, got %q", got)
	}

	// Configuration store populated from the definition file.
	if runtime.Config.LoggerName != "IntegrationApp" {
		t.Fatalf("expected logger name from config file, got %s", runtime.Config.LoggerName)
	}
	if greeting, ok := runtime.Config.Setting("greeting"); !ok || greeting != "hello" {
		t.Fatalf("expected greeting setting, got %v (present=%t)", greeting, ok)
	}

	// Repeated bootstrap returns the same Runtime.
	again, err := bootstrap.Init(bootstrap.Options{Root: root})
	if err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if again != runtime {
		t.Fatalf("expected bootstrap to be idempotent")
	}

	// Two handles write through the same shared logger and end up in the
	// same log file.
	first := runtime.Logger("first")
	second := runtime.Logger("second")
	first.Info("entry from the first handle")
	second.Info("entry from the second handle")
	_ = runtime.Logger("").Sync()

	logFile := filepath.Join(root, "logs", "IntegrationApp.log")
	info, err := os.Stat(logFile)
	if err != nil {
		t.Fatalf("expected shared log file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected shared log file to contain both entries")
	}
}
