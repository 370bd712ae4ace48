package core

import (
	"github.com/elafonizi/yara/config"
	"github.com/elafonizi/yara/cryptolock"
	"github.com/elafonizi/yara/errors"
	"github.com/elafonizi/yara/logger"
	"github.com/elafonizi/yara/threadctx"
)

// Library is the process-wide singleton owning the scanning library's
// shared state. Its resources exist iff the reference count is greater
// than zero.
type Library struct {
	refCount int

	lowercase [256]byte
	altercase [256]byte

	threads *threadctx.Registry
	configs *config.Registry
	bridge  cryptolock.Bridge

	allocator      Allocator
	regex          RegexEngine
	modules        ModuleRegistry
	cryptoProvider cryptolock.Provider

	defaultStackSize uint32
	log              *logger.Logger
}

// New creates an uninitialized Library. Collaborators default to the
// tracking allocator and no-op engine/registry stand-ins; wire real
// ones through options.
func New(opts ...Option) *Library {
	l := &Library{
		allocator:        NewTrackingAllocator(),
		regex:            nopRegexEngine{},
		modules:          nopModuleRegistry{},
		configs:          config.NewRegistry(),
		defaultStackSize: config.DefaultStackSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.WithComponent("lifecycle")
	}
	return l
}

// Initialize increments the reference count and, on the transition from
// zero, performs the one-time setup: case tables, allocator, thread
// context slots, crypto lock bridge, regex engine, module registry, and
// the default stack-size configuration value.
//
// Callers must serialize Initialize/Finalize calls with respect to each
// other. Any failure is fatal and leaves the library in an undefined
// state: the count has already been incremented and completed sub-steps
// are not rolled back. Callers should abort use of the library rather
// than retry.
func (l *Library) Initialize() error {
	l.refCount++
	if l.refCount > 1 {
		l.log.Debug("Already initialized", logger.Fields(logger.FieldRefCount, l.refCount))
		return nil
	}

	l.log.Info("Initializing library")

	buildCaseTables(&l.lowercase, &l.altercase)

	if err := l.allocator.Init(); err != nil {
		return errors.SubsystemFailure("allocator", "init", err)
	}

	l.threads = threadctx.NewRegistry()

	l.bridge = cryptolock.New(l.cryptoProvider)
	if err := l.bridge.Install(); err != nil {
		return errors.ResourceExhausted("crypto mutex array", err)
	}

	if err := l.regex.Init(); err != nil {
		return errors.SubsystemFailure("regex engine", "init", err)
	}

	if err := l.modules.Init(); err != nil {
		return errors.SubsystemFailure("module registry", "init", err)
	}

	if err := l.configs.Set(config.StackSize, config.Uint32(l.defaultStackSize)); err != nil {
		return err
	}

	l.log.Info("Library initialized", logger.Fields(logger.FieldRefCount, l.refCount))
	return nil
}

// Finalize runs the calling goroutine's thread-exit hook and decrements
// the reference count. While other users remain it returns immediately;
// on the transition to zero it tears down shared state in reverse order
// of acquisition: crypto lock bridge, thread context slots, regex
// engine, module registry, allocator.
//
// The same serialization contract as Initialize applies. Calling
// Finalize more times than Initialize is out of contract. A teardown
// failure is fatal and short-circuits the remaining steps; there is no
// defined recovery path.
func (l *Library) Finalize() error {
	l.FinalizeThread()

	l.refCount--
	if l.refCount > 0 {
		l.log.Debug("Still in use", logger.Fields(logger.FieldRefCount, l.refCount))
		return nil
	}

	l.log.Info("Finalizing library")

	if err := l.bridge.Uninstall(); err != nil {
		return errors.SubsystemFailure("crypto lock bridge", "teardown", err)
	}
	l.bridge = nil

	l.threads.Reset()
	l.threads = nil

	if err := l.regex.Teardown(); err != nil {
		return errors.SubsystemFailure("regex engine", "teardown", err)
	}

	if err := l.modules.Teardown(); err != nil {
		return errors.SubsystemFailure("module registry", "teardown", err)
	}

	if err := l.allocator.Teardown(); err != nil {
		return errors.SubsystemFailure("allocator", "teardown", err)
	}

	l.log.Info("Library finalized")
	return nil
}

// FinalizeThread releases the calling goroutine's per-thread resources:
// the regex engine's recovery state and the recovery slot itself. Every
// worker goroutine must call it before exiting; Finalize covers only
// the goroutine that calls Finalize. Idempotent — a goroutine with no
// per-thread state is a no-op.
func (l *Library) FinalizeThread() {
	l.regex.ThreadTeardown()
	if l.threads != nil {
		l.threads.ClearRecovery()
	}
}

// RefCount returns the current reference count.
func (l *Library) RefCount() int {
	return l.refCount
}

// --- Thread context ---

// SetThreadIndex associates a caller-assigned worker slot index with
// the calling goroutine. Uniqueness across running goroutines is the
// caller's responsibility.
func (l *Library) SetThreadIndex(i int) {
	l.threads.SetIndex(i)
}

// ThreadIndex returns the calling goroutine's slot index, or -1 if it
// never set one.
func (l *Library) ThreadIndex() int {
	if l.threads == nil {
		return threadctx.UnsetIndex
	}
	return l.threads.Index()
}

// SetRecoveryState stashes an opaque per-goroutine recovery handle for
// the matching engine.
func (l *Library) SetRecoveryState(v any) {
	l.threads.SetRecovery(v)
}

// RecoveryState returns the calling goroutine's recovery handle, or nil.
func (l *Library) RecoveryState() any {
	if l.threads == nil {
		return nil
	}
	return l.threads.Recovery()
}

// --- Configuration ---

// SetConfiguration writes a configuration value. The registry is meant
// to be written before worker goroutines start reading it.
func (l *Library) SetConfiguration(name config.Setting, v config.Value) error {
	return l.configs.Set(name, v)
}

// GetConfiguration reads a configuration value.
func (l *Library) GetConfiguration(name config.Setting) (config.Value, error) {
	return l.configs.Get(name)
}

// StackSize reads the configured evaluation stack depth.
func (l *Library) StackSize() (uint32, error) {
	return l.configs.GetUint32(config.StackSize)
}

// --- Default library ---

var defaultLibrary = New()

// Default returns the package-level Library shared by hosts that do not
// manage their own instance.
func Default() *Library {
	return defaultLibrary
}

// SetDefault replaces the package-level Library. Call it before any
// Initialize, never between Initialize and Finalize.
func SetDefault(l *Library) {
	defaultLibrary = l
}

// Package-level convenience functions delegate to the default Library.

func Initialize() error      { return defaultLibrary.Initialize() }
func Finalize() error        { return defaultLibrary.Finalize() }
func FinalizeThread()        { defaultLibrary.FinalizeThread() }
func RefCount() int          { return defaultLibrary.RefCount() }
func SetThreadIndex(i int)   { defaultLibrary.SetThreadIndex(i) }
func ThreadIndex() int       { return defaultLibrary.ThreadIndex() }
func SetRecoveryState(v any) { defaultLibrary.SetRecoveryState(v) }
func RecoveryState() any     { return defaultLibrary.RecoveryState() }
func Lowercase() *[256]byte  { return defaultLibrary.Lowercase() }
func Altercase() *[256]byte  { return defaultLibrary.Altercase() }

func SetConfiguration(name config.Setting, v config.Value) error {
	return defaultLibrary.SetConfiguration(name, v)
}

func GetConfiguration(name config.Setting) (config.Value, error) {
	return defaultLibrary.GetConfiguration(name)
}
