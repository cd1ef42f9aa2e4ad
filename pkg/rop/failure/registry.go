package failure

import (
	"errors"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

const registryTitle = "Invalid category registry"

// RegistryEntry describes a named user category.
type RegistryEntry struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Template string `yaml:"template"`
}

type registryFile struct {
	Categories []RegistryEntry `yaml:"categories"`
}

// Registry holds named user categories next to the generic ones.
type Registry struct {
	entries []RegistryEntry
	byName  map[string]Category
}

// NewRegistry builds a registry from entries. Names must be unique, non-empty
// and must not shadow a generic category.
func NewRegistry(entries ...RegistryEntry) (*Registry, error) {
	r := &Registry{
		entries: make([]RegistryEntry, 0, len(entries)),
		byName:  make(map[string]Category, len(entries)+len(genericSpecs)),
	}
	for _, g := range Generics() {
		r.byName[g.(Generic).String()] = g
	}

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, Titledf(registryTitle, "entry {} has no name", i)
		}
		if _, exists := r.byName[entry.Name]; exists {
			return nil, Titledf(registryTitle, "category {} is defined more than once", entry.Name)
		}
		r.byName[entry.Name] = NewCategory(entry.Title, entry.Template)
		r.entries = append(r.entries, entry)
	}
	return r, nil
}

// LoadRegistry decodes a YAML document of the form
//
//	categories:
//	  - name: not-found
//	    title: Resource not found
//	    template: "{} was not found"
//
// An empty document yields a registry holding only the generic categories.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var file registryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, NewBuilder().Title(registryTitle).Cause(err).Build()
	}
	return NewRegistry(file.Categories...)
}

// Lookup returns the category registered under name.
// Generic categories are registered under their String form.
func (r *Registry) Lookup(name string) (Category, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byName[name]
	return c, ok
}

// Entries returns the user entries in declaration order.
func (r *Registry) Entries() []RegistryEntry {
	if r == nil {
		return nil
	}
	entries := make([]RegistryEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
