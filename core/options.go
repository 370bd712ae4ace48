package core

import (
	"github.com/elafonizi/yara/config"
	"github.com/elafonizi/yara/cryptolock"
	"github.com/elafonizi/yara/logger"
)

// Option configures a Library during creation.
type Option func(*Library)

// WithAllocator sets the heap bookkeeping collaborator.
func WithAllocator(a Allocator) Option {
	return func(l *Library) {
		l.allocator = a
	}
}

// WithRegexEngine sets the pattern-automaton collaborator.
func WithRegexEngine(e RegexEngine) Option {
	return func(l *Library) {
		l.regex = e
	}
}

// WithModuleRegistry sets the module-registration collaborator.
func WithModuleRegistry(m ModuleRegistry) Option {
	return func(l *Library) {
		l.modules = m
	}
}

// WithCryptoProvider links a crypto library that needs the lock bridge.
// Without this option the bridge is a no-op.
func WithCryptoProvider(p cryptolock.Provider) Option {
	return func(l *Library) {
		l.cryptoProvider = p
	}
}

// WithLogger sets a custom logger for lifecycle events.
func WithLogger(log *logger.Logger) Option {
	return func(l *Library) {
		l.log = log
	}
}

// WithConfig seeds the library from loaded host options instead of the
// built-in defaults. The stack size is written into the configuration
// registry on the 0→1 initialization transition.
func WithConfig(opts config.Options) Option {
	return func(l *Library) {
		if opts.StackSize != 0 {
			l.defaultStackSize = opts.StackSize
		}
	}
}
