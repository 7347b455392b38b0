// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     plugin
// Description: Plugin definitions and the optional YAML manifest
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package plugin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/msto63/mcalc/internal/command"
)

// ManifestFiles are the manifest names looked up in a plugin directory,
// in order.
var ManifestFiles = []string{"plugin.yaml", "plugin.yml"}

// Plugin is a compiled-in bundle of commands
type Plugin struct {
	Name        string
	Description string

	// Commands creates fresh command instances
	Commands func() []command.Command
}

// Validate checks the plugin definition
func (p Plugin) Validate() error {
	if p.Name == "" {
		return ErrMissingName
	}
	if p.Commands == nil {
		return ErrMissingCommands
	}
	return nil
}

// Manifest is the optional plugin.yaml in a plugin directory
type Manifest struct {
	// Name selects the catalog entry; defaults to the directory name
	Name string `yaml:"name,omitempty"`

	// Enabled defaults to true when omitted
	Enabled *bool `yaml:"enabled,omitempty"`

	// Description replaces the description of every command of the plugin
	Description string `yaml:"description,omitempty"`

	// Internal tracking (not from YAML)
	SourceFile string `yaml:"-"`
}

// IsEnabled reports whether the plugin should be activated
func (m *Manifest) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// Defaults fills the name from the directory
func (m *Manifest) Defaults(dirName string) {
	if m.Name == "" {
		m.Name = dirName
	}
}

// LoadManifest reads the manifest of the plugin directory dir. A directory
// without a manifest yields the defaults.
func LoadManifest(dir string) (*Manifest, error) {
	m := &Manifest{}

	for _, name := range ManifestFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		m.SourceFile = path
		break
	}

	m.Defaults(filepath.Base(dir))
	return m, nil
}
