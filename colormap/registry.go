package colormap

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry is an immutable, ordered set of uniquely named colormaps. It is
// built once and passed to whatever needs to look colormaps up.
type Registry struct {
	order  []string
	byName map[string]Colormap
}

// NewRegistry builds a registry, keeping the given order.
func NewRegistry(cms ...Colormap) (*Registry, error) {
	r := &Registry{byName: make(map[string]Colormap, len(cms))}
	for _, cm := range cms {
		if cm.Len() == 0 {
			return nil, errors.Errorf("colormap %q has no colors", cm.Name)
		}
		if _, dup := r.byName[cm.Name]; dup {
			return nil, errors.Errorf("duplicate colormap %q", cm.Name)
		}
		r.byName[cm.Name] = cm
		r.order = append(r.order, cm.Name)
	}
	return r, nil
}

// Len returns the number of colormaps.
func (r *Registry) Len() int {
	return len(r.order)
}

// Get looks a colormap up by name.
func (r *Registry) Get(name string) (Colormap, bool) {
	cm, ok := r.byName[name]
	return cm, ok
}

// First returns the first registered colormap.
func (r *Registry) First() (Colormap, bool) {
	if len(r.order) == 0 {
		return Colormap{}, false
	}
	return r.byName[r.order[0]], true
}

// Names lists colormap names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// ByCategory returns the colormaps whose metadata category is cat.
func (r *Registry) ByCategory(cat string) []Colormap {
	var cms []Colormap
	for _, name := range r.order {
		if cm := r.byName[name]; cm.Metadata.Category == cat {
			cms = append(cms, cm)
		}
	}
	return cms
}

// Categories lists the distinct non-empty categories, sorted.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, cm := range r.byName {
		if c := cm.Metadata.Category; c != "" && !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)
	return cats
}
