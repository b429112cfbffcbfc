package plugboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/manifest"
	"github.com/plugboard-dev/plugboard/probe"
)

func installModule(t *testing.T, root, packageName string) {
	t.Helper()
	dir := filepath.Join(root, packageName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	src := `module.exports.createExtension = function (ctx) { return { ok: true }; };`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte(src), 0o644))
}

func TestAvailableExtensions_CoversAllCatalogs(t *testing.T) {
	root := t.TempDir()
	installModule(t, root, "plugboard-telegram")
	resolver := probe.NewResolver(root)

	statuses := AvailableExtensions(context.Background(), resolver)

	want := len(catalog.Extensions()) + len(catalog.Channels()) + len(catalog.Providers())
	require.Len(t, statuses, want, "one record per catalog entry across all three catalogs")

	byName := map[string]ExtensionStatus{}
	for _, s := range statuses {
		byName[s.Name] = s
	}
	assert.True(t, byName["telegram"].Available)
	assert.False(t, byName["discord"].Available)
	assert.False(t, byName["openai"].Available)
}

func TestAvailableExtensions_NeverStale(t *testing.T) {
	root := t.TempDir()
	resolver := probe.NewResolver(root)
	ctx := context.Background()

	before := AvailableExtensions(ctx, resolver)
	for _, s := range before {
		assert.False(t, s.Available)
	}

	installModule(t, root, "plugboard-web-search")
	after := AvailableExtensions(ctx, resolver)
	for _, s := range after {
		if s.Name == "web-search" {
			assert.True(t, s.Available, "availability must reflect a probe at call time")
		}
	}
}

func TestAvailableChannels(t *testing.T) {
	root := t.TempDir()
	installModule(t, root, "plugboard-signal")
	resolver := probe.NewResolver(root)

	statuses := AvailableChannels(context.Background(), resolver)
	require.Len(t, statuses, len(catalog.Channels()))
	for _, s := range statuses {
		assert.Equal(t, catalog.CategoryChannel, s.Category)
		assert.Equal(t, s.Name == "signal", s.Available)
	}
}

func TestProviderEntry(t *testing.T) {
	p, ok := ProviderEntry("openai")
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", p.DefaultModel)

	_, ok = ProviderEntry("unknown-id")
	assert.False(t, ok)
}

func TestCreateCuratedManifest_EndToEnd(t *testing.T) {
	root := t.TempDir()
	installModule(t, root, "plugboard-telegram")
	resolver := probe.NewResolver(root)

	cfg := manifest.Config{
		Channels:     catalog.SelectKeys("telegram"),
		Tools:        catalog.SelectNone(),
		Voice:        catalog.SelectNone(),
		Productivity: catalog.SelectNone(),
		Secrets:      map[string]string{"telegram.botToken": "x"},
	}

	m := CreateCuratedManifest(context.Background(), resolver, cfg)
	require.Len(t, m.Entries, 1)
	assert.Equal(t, "registry:telegram", m.Entries[0].Identifier)

	v, err := m.Entries[0].Construct()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, v)
}
