// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     plugin
// Description: Catalog of compiled-in plugins
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package plugin

import (
	"fmt"
	"sort"
)

// Catalog holds the plugins built into the binary
type Catalog struct {
	plugins map[string]Plugin
}

// NewCatalog creates a catalog from plugins
func NewCatalog(plugins ...Plugin) (*Catalog, error) {
	c := &Catalog{plugins: make(map[string]Plugin, len(plugins))}
	for _, p := range plugins {
		if err := c.Register(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a plugin
func (c *Catalog) Register(p Plugin) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := c.plugins[p.Name]; exists {
		return fmt.Errorf("%w: %s", ErrPluginExists, p.Name)
	}
	c.plugins[p.Name] = p
	return nil
}

// Lookup finds a plugin by name
func (c *Catalog) Lookup(name string) (Plugin, bool) {
	p, ok := c.plugins[name]
	return p, ok
}

// List returns all plugins sorted by name
func (c *Catalog) List() []Plugin {
	out := make([]Plugin, 0, len(c.plugins))
	for _, p := range c.plugins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of plugins
func (c *Catalog) Len() int {
	return len(c.plugins)
}
