package manifest

import (
	"context"

	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/logging"
	"github.com/plugboard-dev/plugboard/probe"
	"github.com/plugboard-dev/plugboard/secrets"
)

// IdentifierPrefix prefixes every manifest entry identifier.
const IdentifierPrefix = "registry:"

// Build assembles the activation manifest. Catalogs are processed in a
// fixed sequence (tools, voice, productivity, channels); within each
// pass, surviving descriptors keep catalog declaration order. Absent or
// malformed modules are skipped silently; Build never fails, and an
// empty environment yields an empty manifest.
func Build(ctx context.Context, resolver *probe.Resolver, cfg Config) *Manifest {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	m := &Manifest{}
	for _, pass := range []struct {
		label   string
		entries []catalog.Entry
	}{
		{"tools", catalog.FilterTools(cfg.Tools)},
		{"voice", catalog.FilterVoice(cfg.Voice)},
		{"productivity", catalog.FilterProductivity(cfg.Productivity)},
		{"channels", catalog.FilterChannels(cfg.Channels)},
	} {
		buildPass(ctx, resolver, cfg, log, pass.label, pass.entries, m)
	}

	m.Overrides = summarizeOverrides(cfg.Overrides)
	return m
}

func buildPass(ctx context.Context, resolver *probe.Resolver, cfg Config, log logging.Logger, label string, selected []catalog.Entry, m *Manifest) {
	// Explicitly disabled descriptors are dropped before any probe runs.
	candidates := selected[:0:0]
	for _, e := range selected {
		if ov, ok := cfg.Overrides[e.Name]; ok && ov.Enabled != nil && !*ov.Enabled {
			log.Debugf("%s: %s disabled by override", label, e.Name)
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return
	}

	names := make([]string, len(candidates))
	for i, e := range candidates {
		names[i] = e.PackageName
	}
	results := resolver.ProbeAll(ctx, names)

	getSecret := secretLookup(cfg.Secrets)

	for _, e := range candidates {
		res := results[e.PackageName]
		if !res.Present {
			log.Debugf("%s: %s not installed (%s)", label, e.Name, e.PackageName)
			continue
		}

		ov := cfg.Overrides[e.Name]

		priority := cfg.BasePriority + e.DefaultPriority
		if ov.Priority != nil {
			priority = *ov.Priority
		}

		opts := mergeOptions(ov, cfg.Secrets, priority)

		handle := res.Handle
		entryOpts := opts
		m.Entries = append(m.Entries, Entry{
			Construct: func() (any, error) {
				return handle.Construct(probe.ConstructArgs{
					Options:   entryOpts,
					GetSecret: getSecret,
					Logger:    log,
				})
			},
			Priority:   priority,
			Enabled:    true,
			Identifier: IdentifierPrefix + e.Name,
			Options:    opts,
		})
	}
}

// mergeOptions builds the merged options bag: the override's options,
// the caller's secrets map, and a priority field. When the caller set a
// priority inside the override options it wins there, even though the
// top-level entry priority stays at the override priority. Some modules
// hard-code the priority they expect to see in their options, so the
// two values may legitimately differ.
func mergeOptions(ov Override, secretMap map[string]string, priority int) map[string]any {
	opts := make(map[string]any, len(ov.Options)+2)
	for k, v := range ov.Options {
		opts[k] = v
	}

	injected := make(map[string]string, len(secretMap))
	for k, v := range secretMap {
		injected[k] = v
	}
	opts["secrets"] = injected

	if _, ok := ov.Options["priority"]; !ok {
		opts["priority"] = priority
	}
	return opts
}

func secretLookup(m map[string]string) func(string) string {
	src := secrets.MapSource(m)
	return func(key string) string {
		v, _ := src.Lookup(key)
		return v
	}
}

// summarizeOverrides keeps only overrides whose enablement or priority
// the caller explicitly set. They are forwarded verbatim for the host's
// own manifest processing. Returns nil when nothing was set.
func summarizeOverrides(overrides map[string]Override) map[string]OverrideSummary {
	var out map[string]OverrideSummary
	for name, ov := range overrides {
		if ov.Enabled == nil && ov.Priority == nil {
			continue
		}
		if out == nil {
			out = make(map[string]OverrideSummary)
		}
		out[name] = OverrideSummary{Enabled: ov.Enabled, Priority: ov.Priority}
	}
	return out
}
