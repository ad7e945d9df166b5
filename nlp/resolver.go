package nlp

import "sync"

// Resolver maps language codes to cached [Engine] instances. It is a pure
// memoization layer: the key space is the small fixed set of supported
// languages, so entries are never evicted. Unsupported codes and engine
// construction failures both resolve to the default (English) engine rather
// than propagating an error.
//
// A Resolver is safe for concurrent use and read-mostly after warm-up, so a
// single instance can be shared across documents processed in parallel.
type Resolver struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		engines: make(map[string]*Engine, len(profiles)),
	}
}

// Engine returns the engine for a language code, constructing and caching it
// on first use. The default engine is returned for anything that cannot be
// resolved.
func (r *Resolver) Engine(code string) *Engine {
	normalized := Normalize(code)

	r.mu.RLock()
	engine, ok := r.engines[normalized]
	r.mu.RUnlock()
	if ok {
		return engine
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock
	if engine, ok := r.engines[normalized]; ok {
		return engine
	}

	engine, err := NewEngine(normalized)
	if err != nil {
		// Unsupported codes are not cached, keeping the map bounded to the
		// supported-language set.
		return r.defaultLocked()
	}
	r.engines[normalized] = engine
	return engine
}

// Default returns the engine for the default language.
func (r *Resolver) Default() *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultLocked()
}

// defaultLocked returns the default engine, constructing it if needed.
// Callers must hold the write lock.
func (r *Resolver) defaultLocked() *Engine {
	if engine, ok := r.engines[DefaultLanguage]; ok {
		return engine
	}
	engine, err := NewEngine(DefaultLanguage)
	if err != nil {
		// The default profile is registered at compile time; construction
		// cannot fail for it.
		panic(err)
	}
	r.engines[DefaultLanguage] = engine
	return engine
}

// defaultResolver backs the package-level predicate functions, mirroring the
// process-wide engine cache of the resolver design.
var defaultResolver = NewResolver()

// EngineFor returns an engine from the process-wide resolver.
func EngineFor(code string) *Engine {
	return defaultResolver.Engine(code)
}
