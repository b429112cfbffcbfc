package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule writes a JS module under <root>/<pkg>/index.js.
func writeModule(t *testing.T, root, pkg, src string) {
	t.Helper()
	dir := filepath.Join(root, pkg)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.js"), []byte(src), 0o644))
}

const goodModule = `
module.exports.createExtension = function (ctx) {
  ctx.logger.info("constructing", "test-ext");
  return {
    name: "test-ext",
    token: ctx.getSecret("telegram.botToken"),
    priority: ctx.options.priority,
  };
};
`

func TestProbe_PresentCommonJS(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-test", goodModule)

	res := NewResolver(root).Probe(context.Background(), "plugboard-test")
	require.True(t, res.Present)
	require.NotNil(t, res.Handle)
}

func TestProbe_PresentGlobalFunction(t *testing.T) {
	root := t.TempDir()
	// Plain script style: a top-level function instead of module.exports.
	src := `function createExtension(ctx) { return { name: "global" }; }`
	require.NoError(t, os.WriteFile(filepath.Join(root, "plugboard-flat.js"), []byte(src), 0o644))

	res := NewResolver(root).Probe(context.Background(), "plugboard-flat")
	require.True(t, res.Present)
}

func TestProbe_AbsentMissingModule(t *testing.T) {
	res := NewResolver(t.TempDir()).Probe(context.Background(), "plugboard-nope")
	assert.False(t, res.Present)
	assert.Nil(t, res.Handle)
}

func TestProbe_AbsentMalformedJS(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-broken", `this is not javascript {{{`)

	res := NewResolver(root).Probe(context.Background(), "plugboard-broken")
	assert.False(t, res.Present, "parse failures degrade to absent")
}

func TestProbe_AbsentThrowingModule(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-throws", `throw new Error("boom");`)

	res := NewResolver(root).Probe(context.Background(), "plugboard-throws")
	assert.False(t, res.Present, "load-time exceptions degrade to absent")
}

func TestProbe_AbsentMissingExport(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-silent", `module.exports.somethingElse = 42;`)

	res := NewResolver(root).Probe(context.Background(), "plugboard-silent")
	assert.False(t, res.Present, "modules without createExtension are treated as absent")
}

func TestProbe_AbsentNonCallableExport(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-const", `module.exports.createExtension = "not a function";`)

	res := NewResolver(root).Probe(context.Background(), "plugboard-const")
	assert.False(t, res.Present)
}

func TestProbe_WASMWithoutEntryPointIsAbsent(t *testing.T) {
	root := t.TempDir()
	// A syntactically valid but empty WASM module: compiles, but exports
	// no WASI entry point.
	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	require.NoError(t, os.WriteFile(filepath.Join(root, "plugboard-wasm.wasm"), empty, 0o644))

	res := NewResolver(root).Probe(context.Background(), "plugboard-wasm")
	assert.False(t, res.Present)
}

func TestProbe_SearchRootOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeModule(t, first, "plugboard-dup", `module.exports.createExtension = function () { return "first"; };`)
	writeModule(t, second, "plugboard-dup", `module.exports.createExtension = function () { return "second"; };`)

	res := NewResolver(first, second).Probe(context.Background(), "plugboard-dup")
	require.True(t, res.Present)

	v, err := res.Handle.Construct(ConstructArgs{})
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestConstruct_PassesOptionsSecretsLogger(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-test", goodModule)

	res := NewResolver(root).Probe(context.Background(), "plugboard-test")
	require.True(t, res.Present)

	v, err := res.Handle.Construct(ConstructArgs{
		Options: map[string]any{"priority": 42},
		GetSecret: func(key string) string {
			if key == "telegram.botToken" {
				return "tok-123"
			}
			return ""
		},
	})
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok, "construction result should export as a map, got %T", v)
	assert.Equal(t, "test-ext", obj["name"])
	assert.Equal(t, "tok-123", obj["token"])
	assert.EqualValues(t, 42, obj["priority"])
}

func TestConstruct_PropagatesModuleError(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-angry", `
module.exports.createExtension = function () { throw new Error("no thanks"); };
`)

	res := NewResolver(root).Probe(context.Background(), "plugboard-angry")
	require.True(t, res.Present)

	_, err := res.Handle.Construct(ConstructArgs{})
	assert.Error(t, err)
}

func TestProbeAll_Concurrent(t *testing.T) {
	root := t.TempDir()
	writeModule(t, root, "plugboard-a", `module.exports.createExtension = function () { return "a"; };`)
	writeModule(t, root, "plugboard-c", `module.exports.createExtension = function () { return "c"; };`)

	names := []string{"plugboard-a", "plugboard-b", "plugboard-c"}
	results := NewResolver(root).ProbeAll(context.Background(), names)

	require.Len(t, results, 3)
	assert.True(t, results["plugboard-a"].Present)
	assert.False(t, results["plugboard-b"].Present)
	assert.True(t, results["plugboard-c"].Present)
}

func TestProbe_NoStaleAvailability(t *testing.T) {
	root := t.TempDir()
	r := NewResolver(root)

	assert.False(t, r.Probe(context.Background(), "plugboard-late").Present)

	writeModule(t, root, "plugboard-late", `module.exports.createExtension = function () { return 1; };`)
	assert.True(t, r.Probe(context.Background(), "plugboard-late").Present,
		"each probe must reflect the current environment, not a cached result")
}
