package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalCommandModule is a hand-assembled WASI command module: one
// function with an empty body, exported as _start.
var minimalCommandModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
	0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type section: () -> ()
	0x03, 0x02, 0x01, 0x00, // function section: func 0 uses type 0
	0x07, 0x0a, 0x01, 0x06, '_', 's', 't', 'a', 'r', 't', 0x00, 0x00, // export "_start"
	0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b, // code section: empty body
}

func writeWASM(t *testing.T, root, pkg string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, pkg+".wasm"), minimalCommandModule, 0o644))
}

func TestProbe_PresentWASM(t *testing.T) {
	root := t.TempDir()
	writeWASM(t, root, "plugboard-native")

	res := NewResolver(root).Probe(context.Background(), "plugboard-native")
	require.True(t, res.Present)
	require.NotNil(t, res.Handle)
}

func TestConstructWASM_Lifecycle(t *testing.T) {
	root := t.TempDir()
	writeWASM(t, root, "plugboard-native")

	res := NewResolver(root).Probe(context.Background(), "plugboard-native")
	require.True(t, res.Present)

	v, err := res.Handle.Construct(ConstructArgs{
		Options: map[string]any{
			"secrets":  map[string]string{"telegram.botToken": "tok"},
			"priority": 10,
			"nested":   map[string]any{"deep": true},
			"labels":   map[string]string{"env": "test"},
		},
	})
	require.NoError(t, err)

	inst, ok := v.(*WASMInstance)
	require.True(t, ok, "construction result should be a *WASMInstance, got %T", v)
	require.NoError(t, inst.Close())
}

func TestConstructWASM_FreshRuntimePerConstruction(t *testing.T) {
	// The handle holds no live runtime: each construction compiles and
	// instantiates its own, so closing one instance cannot poison the
	// next, and an unconstructed handle strands nothing.
	root := t.TempDir()
	writeWASM(t, root, "plugboard-native")

	res := NewResolver(root).Probe(context.Background(), "plugboard-native")
	require.True(t, res.Present)

	first, err := res.Handle.Construct(ConstructArgs{})
	require.NoError(t, err)
	require.NoError(t, first.(*WASMInstance).Close())

	second, err := res.Handle.Construct(ConstructArgs{})
	require.NoError(t, err)
	require.NoError(t, second.(*WASMInstance).Close())
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"telegram.botToken", "TELEGRAM_BOTTOKEN"},
		{"brave.apiKey", "BRAVE_APIKEY"},
		{"web-search", "WEB_SEARCH"},
		{"plain", "PLAIN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envKey(tt.key), tt.key)
	}
}
