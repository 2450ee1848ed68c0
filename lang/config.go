package lang

import "iter"

// Resolved is a fully evaluated constant value. Kind is TypeNumber or
// TypeDict; expressions never survive evaluation.
type Resolved struct {
	Kind   Type
	Number float64
	Dict   *Config
}

// Config is the evaluated form of a source document: an ordered mapping of
// constant names to resolved values. It doubles as the evaluated form of a
// nested dictionary.
//
// Order is declaration order. Assigning an existing name replaces its value
// in place, keeping the name's original position in the ordering.
type Config struct {
	names  []string
	values map[string]Resolved
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{values: make(map[string]Resolved)}
}

// Set binds name to value. A new name is appended to the ordering; an
// existing name keeps its position and only its value changes.
func (c *Config) Set(name string, value Resolved) {
	if _, exists := c.values[name]; !exists {
		c.names = append(c.names, name)
	}

	c.values[name] = value
}

// Get returns the value bound to name.
func (c *Config) Get(name string) (Resolved, bool) {
	value, ok := c.values[name]

	return value, ok
}

// Len returns the number of bound names.
func (c *Config) Len() int { return len(c.names) }

// Names returns the bound names in declaration order. The returned slice is
// shared; callers must not modify it.
func (c *Config) Names() []string { return c.names }

// All iterates over bindings in declaration order.
func (c *Config) All() iter.Seq2[string, Resolved] {
	return func(yield func(string, Resolved) bool) {
		for _, name := range c.names {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}
