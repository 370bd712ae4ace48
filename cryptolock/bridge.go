package cryptolock

import (
	"sync"

	"github.com/elafonizi/yara/errors"
	"github.com/elafonizi/yara/threadctx"
)

// Mode is the bitmask a crypto library passes to the locking callback.
// When the Lock bit is set the slot must be acquired, otherwise released.
type Mode int

const (
	Lock   Mode = 1 << 0
	Unlock Mode = 0
)

// Provider is the contract a linked crypto library exposes for
// installing thread-safety callbacks.
type Provider interface {
	// NumLocks reports how many lock slots the library requires.
	NumLocks() int

	// SetIDCallback installs the function the library calls to identify
	// the current thread.
	SetIDCallback(fn func() uint64)

	// SetLockingCallback installs the function the library calls to
	// acquire or release lock slot n depending on mode.
	SetLockingCallback(fn func(mode Mode, n int))

	// ClearCallbacks removes both callbacks. After it returns the
	// library must not call into the bridge again.
	ClearCallbacks()
}

// Bridge wires a Provider to a mutex array. Install it only while the
// library is active: the callbacks handed to the provider reference the
// bridge's mutexes and must stay valid until Uninstall.
type Bridge interface {
	// Install allocates the mutex array and registers the callbacks.
	Install() error

	// Uninstall clears the callbacks and releases the mutex array.
	Uninstall() error
}

// New returns a bridge for the given provider, or a no-op bridge when
// provider is nil (no crypto library linked).
func New(provider Provider) Bridge {
	if provider == nil {
		return nopBridge{}
	}
	return &mutexBridge{provider: provider}
}

// mutexBridge is the real bridge backing a linked crypto library.
type mutexBridge struct {
	provider Provider
	locks    []sync.Mutex
}

func (b *mutexBridge) Install() error {
	n := b.provider.NumLocks()
	if n < 0 {
		return errors.InvalidArgument("provider", "reported a negative lock count")
	}
	b.locks = make([]sync.Mutex, n)

	b.provider.SetIDCallback(threadctx.GoroutineID)
	b.provider.SetLockingCallback(b.locking)
	return nil
}

func (b *mutexBridge) Uninstall() error {
	b.provider.ClearCallbacks()
	b.locks = nil
	return nil
}

// locking acquires or releases slot n. Slots are independent; no
// ordering is imposed between them, and a slot is never held across a
// call back into user code.
func (b *mutexBridge) locking(mode Mode, n int) {
	if n < 0 || n >= len(b.locks) {
		return
	}
	if mode&Lock != 0 {
		b.locks[n].Lock()
	} else {
		b.locks[n].Unlock()
	}
}

// nopBridge is used when no crypto library is linked.
type nopBridge struct{}

func (nopBridge) Install() error   { return nil }
func (nopBridge) Uninstall() error { return nil }
