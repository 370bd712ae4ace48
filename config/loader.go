package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables the loader reads,
// e.g. SCAN_STACK_SIZE and SCAN_LOGGING_LEVEL.
const envPrefix = "SCAN"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates opts from an optional YAML config file, an optional
// .env file, and SCAN_-prefixed environment variables, then applies
// defaults and validates. File values come first, environment
// overrides win.
func Load(opts *Options, loaderOpts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range loaderOpts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	v := viper.New()

	// 1. YAML config file (base configuration)
	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findConfigFile(lc.FileSystem)
	}
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	// 2. .env file, loaded before env binding so its variables are seen
	envFile := lc.EnvFile
	if envFile == "" && lc.FileSystem.Exists(".env") {
		envFile = ".env"
	}
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}

	// 3. Environment overrides
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKnownKeys(v)

	// 4. Unmarshal, default, validate
	if err := v.Unmarshal(opts); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	opts.ApplyDefaults()
	return opts.Validate()
}

// findConfigFile searches standard locations for the config file.
func findConfigFile(fs FileSystem) string {
	searchPaths := []string{
		"./scan.yml",
		"./config/scan.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindKnownKeys registers the keys AutomaticEnv should resolve.
// Viper only consults the environment for keys it knows about, so each
// Options field needs an explicit binding.
func bindKnownKeys(v *viper.Viper) {
	keys := []string{
		"stack_size",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
		"logging.caller",
	}
	for _, k := range keys {
		// BindEnv with a single argument derives the variable name from
		// the prefix and replacer.
		_ = v.BindEnv(k)
	}
}
