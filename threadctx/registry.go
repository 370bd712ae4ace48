package threadctx

// UnsetIndex is returned by Index for goroutines that never stored a
// slot index.
const UnsetIndex = -1

// Registry holds the library's two independent goroutine-local slots:
// the worker slot index and the opaque recovery handle.
type Registry struct {
	index    Slot[int]
	recovery Slot[any]
}

// NewRegistry creates an empty thread-context registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetIndex associates a caller-assigned slot index with the calling
// goroutine. The index addresses per-worker scratch data owned by the
// scanning engine; uniqueness across concurrently running goroutines is
// the caller's responsibility, no check is performed here.
func (r *Registry) SetIndex(i int) {
	r.index.Set(i)
}

// Index returns the slot index previously associated with the calling
// goroutine, or UnsetIndex if none was set.
func (r *Registry) Index() int {
	i, ok := r.index.Get()
	if !ok {
		return UnsetIndex
	}
	return i
}

// ClearIndex removes the calling goroutine's slot index.
func (r *Registry) ClearIndex() {
	r.index.Clear()
}

// SetRecovery associates an opaque recovery handle with the calling
// goroutine. The matching engine stores its unwind context here.
func (r *Registry) SetRecovery(v any) {
	r.recovery.Set(v)
}

// Recovery returns the calling goroutine's recovery handle, or nil if
// none was set.
func (r *Registry) Recovery() any {
	v, ok := r.recovery.Get()
	if !ok {
		return nil
	}
	return v
}

// ClearRecovery removes the calling goroutine's recovery handle. It is
// idempotent: clearing with nothing stored is a no-op.
func (r *Registry) ClearRecovery() {
	r.recovery.Clear()
}

// Reset drops every goroutine's index and recovery handle. Called by
// the lifecycle teardown once the last reference is released.
func (r *Registry) Reset() {
	r.index.Reset()
	r.recovery.Reset()
}
