package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elafonizi/yara/errors"
)

func TestRegistrySetGetStackSize(t *testing.T) {
	r := NewRegistry()
	if err := r.Set(StackSize, Uint32(128)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := r.Get(StackSize)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got, ok := v.(Uint32); !ok || got != 128 {
		t.Errorf("expected Uint32(128), got %T(%v)", v, v)
	}

	u, err := r.GetUint32(StackSize)
	if err != nil {
		t.Fatalf("GetUint32 failed: %v", err)
	}
	if u != 128 {
		t.Errorf("expected 128, got %d", u)
	}
}

func TestRegistrySetNilValue(t *testing.T) {
	r := NewRegistry()
	err := r.Set(StackSize, nil)
	if err == nil {
		t.Fatal("expected error for nil value")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRegistrySetWrongKind(t *testing.T) {
	r := NewRegistry()
	err := r.Set(StackSize, Uint64(128))
	if err == nil {
		t.Fatal("expected error for wrong value kind")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRegistryUnwiredSetting(t *testing.T) {
	r := NewRegistry()
	unwired := Setting(99)

	if err := r.Set(unwired, Uint32(1)); err == nil {
		t.Error("expected Set error for unwired setting")
	} else if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}

	if _, err := r.Get(unwired); err == nil {
		t.Error("expected Get error for unwired setting")
	} else if !errors.HasCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRegistryGetUnsetReadsZero(t *testing.T) {
	r := NewRegistry()
	u, err := r.GetUint32(StackSize)
	if err != nil {
		t.Fatalf("GetUint32 failed: %v", err)
	}
	if u != 0 {
		t.Errorf("expected 0 for unset setting, got %d", u)
	}
}

func TestSettingString(t *testing.T) {
	if StackSize.String() != "stack_size" {
		t.Errorf("expected 'stack_size', got %q", StackSize.String())
	}
	if !strings.Contains(Setting(42).String(), "42") {
		t.Errorf("expected numeric fallback, got %q", Setting(42).String())
	}
}

func TestOptionsApplyDefaults(t *testing.T) {
	var o Options
	o.ApplyDefaults()
	if o.StackSize != DefaultStackSize {
		t.Errorf("expected default stack size %d, got %d", DefaultStackSize, o.StackSize)
	}
	if o.Logging.Level != "info" {
		t.Errorf("expected default logging level, got %q", o.Logging.Level)
	}
}

func TestOptionsValidate(t *testing.T) {
	o := Options{StackSize: 1024}
	o.Logging.ApplyDefaults()
	if err := o.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := Options{StackSize: 0}
	bad.Logging.ApplyDefaults()
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero stack size")
	}
}

func TestOptionsApply(t *testing.T) {
	o := Options{StackSize: 4096}
	r := NewRegistry()
	if err := o.Apply(r); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	u, err := r.GetUint32(StackSize)
	if err != nil {
		t.Fatalf("GetUint32 failed: %v", err)
	}
	if u != 4096 {
		t.Errorf("expected 4096, got %d", u)
	}
}

// mockFS reports only the configured paths as existing.
type mockFS struct {
	files  map[string]bool
	envErr error
	loaded []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return m.envErr
}

func TestLoadNoFilesUsesDefaults(t *testing.T) {
	fs := &mockFS{files: map[string]bool{}}
	var o Options
	if err := Load(&o, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if o.StackSize != DefaultStackSize {
		t.Errorf("expected default stack size, got %d", o.StackSize)
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scan.yml")
	yamlContent := "stack_size: 2048\nlogging:\n  level: debug\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var o Options
	if err := Load(&o, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if o.StackSize != 2048 {
		t.Errorf("expected 2048, got %d", o.StackSize)
	}
	if o.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %q", o.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scan.yml")
	if err := os.WriteFile(configPath, []byte("stack_size: 2048\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("SCAN_STACK_SIZE", "8192")
	var o Options
	if err := Load(&o, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if o.StackSize != 8192 {
		t.Errorf("expected env override 8192, got %d", o.StackSize)
	}
}

func TestLoadEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"custom.env": true}}
	var o Options
	if err := Load(&o, WithFileSystem(fs), WithEnvFile("custom.env")); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "custom.env" {
		t.Errorf("expected custom.env to be loaded, got %v", fs.loaded)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scan.yml")
	if err := os.WriteFile(configPath, []byte("stack_size: [not a number\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var o Options
	if err := Load(&o, WithConfigFile(configPath)); err == nil {
		t.Error("expected error for malformed config file")
	}
}
