/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Definition describes a model the connector persists. The model name
// doubles verbatim as the kind name; registration is optional and an
// unregistered model name still resolves to a kind of the same name.
type Definition struct {
	// Name is the model name and therefore the kind name.
	Name string
	// Properties lists declared property names, for tooling.
	Properties []string
	// UpdatedAtOnUpdate overrides the connector-level updated-at policy
	// for this model when set.
	UpdatedAtOnUpdate *bool
}

var (
	definitions = make(map[string]*Definition)
	mu          sync.RWMutex
)

// Register adds a model definition. Registering the same name twice is
// an error to prevent accidental overrides.
func Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("model registry: definition needs a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := definitions[def.Name]; exists {
		return fmt.Errorf("model registry: model %q already registered", def.Name)
	}
	definitions[def.Name] = &def
	return nil
}

// Lookup retrieves the definition for a model name, if any.
func Lookup(name string) (*Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	def, ok := definitions[name]
	return def, ok
}

// Names returns the registered model names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops all definitions. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	definitions = make(map[string]*Definition)
}
