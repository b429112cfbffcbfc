// Package manifest builds the activation manifest the host runtime uses
// to construct enabled extension modules.
package manifest

import (
	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/logging"
)

// Override is a caller-supplied per-extension adjustment.
type Override struct {
	// Enabled forces exclusion when false, regardless of availability.
	Enabled *bool `json:"enabled,omitempty"`

	// Priority replaces the computed priority when set.
	Priority *int `json:"priority,omitempty"`

	// Options is an opaque bag merged into construction arguments.
	Options map[string]any `json:"options,omitempty"`
}

// OverrideSummary is the subset of an override forwarded to the host:
// only explicitly set enablement and priority.
type OverrideSummary struct {
	Enabled  *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Priority *int  `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Entry is one deferred-construction record in the manifest.
type Entry struct {
	// Construct invokes the module's construction function with the
	// merged options, secret lookup, and logger captured at build time.
	Construct func() (any, error) `json:"-" yaml:"-"`

	Priority int  `json:"priority" yaml:"priority"`
	Enabled  bool `json:"enabled" yaml:"enabled"`

	// Identifier is the stable entry key, "registry:" + catalog name.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Options is the merged options bag, exposed so the host can
	// re-evaluate secret requirements against it.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Manifest is the build output: an ordered entry list plus the summary
// of caller overrides the host interprets on its own.
type Manifest struct {
	Entries   []Entry                    `json:"entries" yaml:"entries"`
	Overrides map[string]OverrideSummary `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Config selects and adjusts the extensions included in a build. The
// zero value selects everything with no secrets and default priorities.
type Config struct {
	Channels     catalog.Selector
	Tools        catalog.Selector
	Voice        catalog.Selector
	Productivity catalog.Selector

	// Secrets is forwarded to every constructed module.
	Secrets map[string]string

	// BasePriority is the additive baseline for computed priorities.
	BasePriority int

	// Overrides adjusts enablement, priority, or options per extension
	// name. Unknown names are silently ignored.
	Overrides map[string]Override

	// Logger is forwarded to constructed modules and used for build
	// diagnostics. Nil means no logging.
	Logger logging.Logger
}
