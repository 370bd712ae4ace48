package config

import (
	"fmt"

	"github.com/elafonizi/yara/errors"
)

// DefaultStackSize is the evaluation stack depth written into a fresh
// registry during library initialization.
const DefaultStackSize uint32 = 16384

// Setting enumerates the library's configuration names. The enumeration
// is closed: adding a setting means adding a constant here AND wiring
// it in Registry.Set and Registry.Get, so that drift between the
// enumeration and the handlers surfaces as a hard error.
type Setting int

const (
	// StackSize controls the maximum evaluation stack depth used by the
	// scanning engine. Stored as a Uint32.
	StackSize Setting = iota

	settingMax
)

// String returns the setting's name for error reporting and logging.
func (s Setting) String() string {
	switch s {
	case StackSize:
		return "stack_size"
	default:
		return fmt.Sprintf("setting(%d)", int(s))
	}
}

// Value is the closed set of kinds a setting may store. Exactly one
// variant is wired per setting.
type Value interface {
	isValue()
}

// Size holds a size-like integer value.
type Size uint

// Uint32 holds a 32-bit integer value.
type Uint32 uint32

// Uint64 holds a 64-bit integer value.
type Uint64 uint64

// String holds a string value. The registry stores the reference the
// caller passed in, not a copy; ownership stays with the caller.
type String string

func (Size) isValue()   {}
func (Uint32) isValue() {}
func (Uint64) isValue() {}
func (String) isValue() {}

// Registry is the fixed-size table of typed settings. Write it before
// worker goroutines start reading; concurrent Set/Get after startup is
// unsupported.
type Registry struct {
	slots [settingMax]Value
}

// NewRegistry creates a registry with all settings unset.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set stores v under name. The name must be wired and v must be the
// kind wired for it; anything else is a programming error.
func (r *Registry) Set(name Setting, v Value) error {
	if v == nil {
		return errors.NilValue("value")
	}

	switch name {
	case StackSize:
		u, ok := v.(Uint32)
		if !ok {
			return errors.InvalidArgument("value", fmt.Sprintf("%s requires a Uint32, got %T", name, v))
		}
		r.slots[name] = u

	default:
		return errors.UnwiredSetting(name.String())
	}

	return nil
}

// Get returns the value stored under name. The same validation as Set
// applies: unwired names are a programming error.
func (r *Registry) Get(name Setting) (Value, error) {
	switch name {
	case StackSize:
		return r.slots[name], nil

	default:
		return nil, errors.UnwiredSetting(name.String())
	}
}

// GetUint32 reads a Uint32-wired setting as a plain uint32. A setting
// that was never written reads as zero.
func (r *Registry) GetUint32(name Setting) (uint32, error) {
	v, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	u, ok := v.(Uint32)
	if !ok {
		if v == nil {
			return 0, nil
		}
		return 0, errors.InvalidArgument("name", fmt.Sprintf("%s does not hold a Uint32", name))
	}
	return uint32(u), nil
}
