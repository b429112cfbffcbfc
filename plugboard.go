// Package plugboard is a declarative catalog-and-selection layer for an
// agent runtime. It enumerates the known optional integration modules
// (channels, tools, voice and productivity extensions, model providers),
// probes which ones are installed, and builds an activation manifest of
// deferred constructors for the host to run.
package plugboard

import (
	"context"

	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/manifest"
	"github.com/plugboard-dev/plugboard/probe"
)

// ExtensionStatus pairs a catalog entry with its live availability. The
// Available flag reflects a probe performed at call time, never a cached
// result.
type ExtensionStatus struct {
	catalog.Entry
	Available bool `json:"available"`
}

// CreateCuratedManifest builds the activation manifest for the given
// selection. See manifest.Build for the pass ordering and skip rules.
func CreateCuratedManifest(ctx context.Context, resolver *probe.Resolver, cfg manifest.Config) *manifest.Manifest {
	return manifest.Build(ctx, resolver, cfg)
}

// AvailableExtensions lists every known extension across the three
// catalogs (tools/voice/productivity, channels, providers) with live
// availability.
func AvailableExtensions(ctx context.Context, resolver *probe.Resolver) []ExtensionStatus {
	entries := catalog.Extensions()
	entries = append(entries, catalog.Channels()...)
	for _, p := range catalog.Providers() {
		entries = append(entries, p.Entry)
	}
	return statuses(ctx, resolver, entries)
}

// AvailableChannels lists the channel catalog with live availability.
func AvailableChannels(ctx context.Context, resolver *probe.Resolver) []ExtensionStatus {
	return statuses(ctx, resolver, catalog.Channels())
}

// ProviderEntry looks up one provider descriptor by its provider key.
func ProviderEntry(providerID string) (catalog.ProviderEntry, bool) {
	return catalog.FindProvider(providerID)
}

// Providers returns the provider descriptors matched by the selector, in
// declaration order.
func Providers(sel catalog.Selector) []catalog.ProviderEntry {
	return catalog.FilterProviders(sel)
}

func statuses(ctx context.Context, resolver *probe.Resolver, entries []catalog.Entry) []ExtensionStatus {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.PackageName
	}
	results := resolver.ProbeAll(ctx, names)

	out := make([]ExtensionStatus, len(entries))
	for i, e := range entries {
		out[i] = ExtensionStatus{Entry: e, Available: results[e.PackageName].Present}
	}
	return out
}
