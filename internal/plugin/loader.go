// ============================================================================
// mcalc - Interactive Decimal Calculator
// ============================================================================
//
// Package:     plugin
// Description: Activates catalog plugins found in the plugin directory and
//              registers their commands
// Author:      Mike Stoffels
// Created:     2025-12-09
// License:     MIT
// ============================================================================

package plugin

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	mcerrors "github.com/msto63/mcalc/foundation/core/errors"
	"github.com/msto63/mcalc/foundation/utils/stringx"
	"github.com/msto63/mcalc/internal/command"
	"github.com/msto63/mcalc/pkg/core/logging"
)

// Failure is a plugin that could not be imported
type Failure struct {
	Plugin string
	Err    error
}

// Report summarizes one Load run
type Report struct {
	Dir      string
	Found    bool
	Loaded   []string
	Skipped  []string
	Failed   []Failure
	Commands []string
}

// Loader activates plugins from a directory
type Loader struct {
	catalog  *Catalog
	registry *command.Registry
	out      io.Writer
	logger   *logging.Logger
	disabled []string
}

// NewLoader creates a loader registering into registry. Progress messages
// go to out.
func NewLoader(catalog *Catalog, registry *command.Registry, out io.Writer, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NewDiscardLogger("plugin")
	}
	return &Loader{
		catalog:  catalog,
		registry: registry,
		out:      out,
		logger:   logger,
	}
}

// Disable skips the named plugins regardless of their manifest. Names
// match case-insensitively.
func (l *Loader) Disable(names ...string) {
	l.disabled = append(l.disabled, names...)
}

func (l *Loader) isDisabled(name string) bool {
	for _, d := range l.disabled {
		if stringx.EqualFoldTrim(d, name) {
			return true
		}
	}
	return false
}

// Load scans the immediate sub-directories of dir in lexical order. Each
// one names a plugin. A missing directory is reported and yields an empty
// report. Individual plugin failures are printed and collected; only an
// unreadable directory is returned as an error.
func (l *Loader) Load(dir string) (*Report, error) {
	report := &Report{Dir: dir}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(l.out, "Plugins directory '%s' not found.\n", dir)
		l.logger.Warn("plugins directory not found", "dir", dir)
		return report, nil
	}
	if err != nil {
		return report, mcerrors.NewErrorBuilder(mcerrors.ModulePlugin).
			Operation("load").
			Messagef("failed to read plugins directory %s", dir).
			Cause(err).
			Detail("dir", dir).
			Build()
	}
	report.Found = true

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		l.loadPlugin(filepath.Join(dir, entry.Name()), entry.Name(), report)
	}

	l.logger.Info("plugins loaded",
		"dir", dir,
		"loaded", len(report.Loaded),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return report, nil
}

func (l *Loader) loadPlugin(path, dirName string, report *Report) {
	manifest, err := LoadManifest(path)
	if err != nil {
		l.fail(report, dirName, err)
		return
	}

	name := manifest.Name
	if !manifest.IsEnabled() || l.isDisabled(name) {
		l.logger.Info("plugin disabled", "plugin", name)
		report.Skipped = append(report.Skipped, name)
		return
	}

	p, ok := l.catalog.Lookup(name)
	if !ok {
		l.fail(report, name, ErrUnknownPlugin)
		return
	}

	cmds := p.Commands()
	for i, cmd := range cmds {
		if cmd == nil {
			continue
		}
		cmds[i] = command.WithDescription(cmd, manifest.Description)
		if l.registry.Has(cmd.Name()) {
			l.logger.Warn("command replaced by plugin", "command", cmd.Name(), "plugin", name)
		}
	}

	// a plugin contributes all of its commands or none
	if err := l.registry.RegisterAll(cmds...); err != nil {
		l.fail(report, name, err)
		return
	}
	for _, cmd := range cmds {
		fmt.Fprintf(l.out, "Command '%s' from plugin '%s' registered.\n", cmd.Name(), name)
		report.Commands = append(report.Commands, cmd.Name())
	}
	report.Loaded = append(report.Loaded, name)
}

func (l *Loader) fail(report *Report, name string, cause error) {
	err := mcerrors.PluginImport(name, cause)
	fmt.Fprintf(l.out, "Error importing plugin %s: %v\n", name, cause)
	l.logger.LogError(err)
	report.Failed = append(report.Failed, Failure{Plugin: name, Err: err})
}
