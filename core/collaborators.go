package core

import (
	"fmt"
	"sync/atomic"
)

// Allocator is the process-wide heap bookkeeping collaborator. It must
// be initialized before any allocation-dependent startup step runs.
type Allocator interface {
	Init() error
	Teardown() error
}

// RegexEngine is the external pattern-automaton collaborator.
// ThreadTeardown releases the calling goroutine's recovery resources
// and must be invoked once per worker goroutine before it exits.
type RegexEngine interface {
	Init() error
	Teardown() error
	ThreadTeardown()
}

// ModuleRegistry is the external module-registration collaborator.
type ModuleRegistry interface {
	Init() error
	Teardown() error
}

// nopRegexEngine stands in when no engine is wired.
type nopRegexEngine struct{}

func (nopRegexEngine) Init() error     { return nil }
func (nopRegexEngine) Teardown() error { return nil }
func (nopRegexEngine) ThreadTeardown() {}

// nopModuleRegistry stands in when no module registry is wired.
type nopModuleRegistry struct{}

func (nopModuleRegistry) Init() error     { return nil }
func (nopModuleRegistry) Teardown() error { return nil }

// TrackingAllocator is the default Allocator. It keeps a live-block
// count so leaks surface at teardown instead of silently outliving the
// library.
type TrackingAllocator struct {
	initialized atomic.Bool
	live        atomic.Int64
}

// NewTrackingAllocator creates an allocator with no live blocks.
func NewTrackingAllocator() *TrackingAllocator {
	return &TrackingAllocator{}
}

// Init marks the allocator ready.
func (a *TrackingAllocator) Init() error {
	a.initialized.Store(true)
	a.live.Store(0)
	return nil
}

// Teardown fails when live blocks remain; the library's shared state
// must not outlive the last Finalize.
func (a *TrackingAllocator) Teardown() error {
	if !a.initialized.Load() {
		return fmt.Errorf("allocator: teardown before init")
	}
	if n := a.live.Load(); n != 0 {
		return fmt.Errorf("allocator: %d live blocks at teardown", n)
	}
	a.initialized.Store(false)
	return nil
}

// Acquire records one live block on behalf of the scanning engine.
func (a *TrackingAllocator) Acquire() {
	a.live.Add(1)
}

// Release records that a block was returned.
func (a *TrackingAllocator) Release() {
	a.live.Add(-1)
}

// Live returns the current live-block count.
func (a *TrackingAllocator) Live() int64 {
	return a.live.Load()
}
