package effects

import (
	"fmt"
	"sort"
)

// Registry maps effect names to constructors. Constructors receive the
// initial canvas size and a random source; effects that need neither ignore
// them.
type Registry struct {
	effects map[string]func(width, height int, src Source) Renderer
}

// NewRegistry returns a registry with every built-in effect registered.
func NewRegistry() *Registry {
	r := &Registry{
		effects: make(map[string]func(width, height int, src Source) Renderer),
	}

	r.effects["vwave"] = func(w, h int, src Source) Renderer { return Func(VerticalWave) }
	r.effects["hwave"] = func(w, h int, src Source) Renderer { return Func(HorizontalWave) }
	r.effects["pulse"] = func(w, h int, src Source) Renderer { return Func(Pulse) }
	r.effects["spiral"] = func(w, h int, src Source) Renderer { return Func(Spiral) }
	r.effects["checker"] = func(w, h int, src Source) Renderer { return Func(Checkerboard) }
	r.effects["plasma"] = func(w, h int, src Source) Renderer { return NewPlasma(w, h) }
	r.effects["blobs"] = func(w, h int, src Source) Renderer { return NewBlobs(w, h, src) }
	r.effects["fire"] = func(w, h int, src Source) Renderer { return NewFire(w, h, src) }

	return r
}

// Get constructs the named effect for the given canvas size.
func (r *Registry) Get(name string, width, height int, src Source) (Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	fn, ok := r.effects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	return fn(width, height, src), nil
}

// List returns every registered effect name, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.effects))
	for name := range r.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
