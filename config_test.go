/*
 * Copyright © 2025 Cloudward Inc., All rights reserved.
 */

package reliant

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadClientConfig(t *testing.T) {
	t.Run("FullOverride", func(t *testing.T) {
		path := writeConfig(t, "maxAttempts: 8\nbaseIntervalMs: 50\nexponential: false\n")
		cfg, err := LoadClientConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rc := cfg.RetryConfig()
		if rc.MaxAttempts != 8 {
			t.Errorf("expected 8 attempts, got %d", rc.MaxAttempts)
		}
		if rc.BaseInterval != 50*time.Millisecond {
			t.Errorf("expected 50ms, got %s", rc.BaseInterval)
		}
		if rc.Exponential {
			t.Error("expected linear backoff")
		}
	})

	t.Run("EmptyFileKeepsDefaults", func(t *testing.T) {
		path := writeConfig(t, "")
		cfg, err := LoadClientConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rc := cfg.RetryConfig()
		if rc.MaxAttempts != 5 || rc.BaseInterval != 200*time.Millisecond || !rc.Exponential {
			t.Errorf("expected defaults, got %+v", rc)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadClientConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfig(t, "maxAttempts: [oops\n")
		if _, err := LoadClientConfig(path); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("NilConfigKeepsDefaults", func(t *testing.T) {
		var cfg *ClientConfig
		rc := cfg.RetryConfig()
		if rc.MaxAttempts != 5 {
			t.Errorf("expected defaults, got %+v", rc)
		}
	})
}
