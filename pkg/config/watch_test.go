package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// resetGlobal points the global config at dir so Watch picks it up, and
// clears it again when the test finishes.
func resetGlobal(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("CAIRN_CONFIG_PATH", dir)
	if err := Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	t.Cleanup(func() {
		configMu.Lock()
		globalConfig = nil
		configMu.Unlock()
	})
}

func TestWatchReturnsWhileWatching(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(file, []byte("port: \"9090\""), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	resetGlobal(t, dir)

	// Watch must hand control back to the caller; the server entrypoint
	// calls it right before ListenAndServe.
	returned := make(chan error, 1)
	go func() { returned <- Watch(nil) }()
	select {
	case err := <-returned:
		if err != nil {
			t.Fatalf("Watch() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return; a caller would never start serving")
	}
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(file, []byte("port: \"9090\""), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	resetGlobal(t, dir)

	reloaded := make(chan *Config, 1)
	if err := Watch(func(c *Config) { reloaded <- c }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(file, []byte("port: \"9191\""), 0o644); err != nil {
		t.Fatalf("rewrite config file: %v", err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Port != "9191" {
			t.Errorf("reloaded port = %q, want 9191", cfg.Port)
		}
		if Get().Port != "9191" {
			t.Errorf("Get() port = %q, want 9191", Get().Port)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("config file change was not picked up")
	}
}
