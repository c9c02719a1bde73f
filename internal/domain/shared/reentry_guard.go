package shared

// ReentryGuard is a non-reentrant scoped execution lock.
//
// It protects against logical recursion on a single control thread: a
// callback that ends up calling back into the guarded operation. It is not
// a mutex and gives no protection against parallel callers.
//
// Usage:
//
//	release, ok := g.TryEnter()
//	if !ok {
//	    return
//	}
//	defer release()
type ReentryGuard struct {
	active bool
}

// TryEnter marks the guard active and returns a release func.
// If the guard is already active it returns ok=false and a no-op release.
func (g *ReentryGuard) TryEnter() (release func(), ok bool) {
	if g.active {
		return func() {}, false
	}
	g.active = true

	released := false
	return func() {
		if released {
			return
		}
		released = true
		g.active = false
	}, true
}

// Active reports whether a guarded scope is currently executing
func (g *ReentryGuard) Active() bool {
	return g.active
}
