package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/plugboard-dev/plugboard/logging"
)

// wasmEntryPoint is the WASI command export that serves as a WASM
// module's construction entry point. Instantiation runs it.
const wasmEntryPoint = "_start"

// wasmHandle records a verified WASM module by path. The probe keeps no
// runtime alive: verification closes its runtime before returning, and
// Construct compiles fresh, so a handle that is never constructed holds
// nothing that needs releasing.
type wasmHandle struct {
	ctx  context.Context
	path string
}

// loadWASM checks that a WASM module file compiles and exposes the WASI
// command entry point. The verification runtime is closed here.
func loadWASM(ctx context.Context, path string) (Handle, error) {
	r, _, err := compileWASM(ctx, path)
	if err != nil {
		return nil, err
	}
	r.Close(ctx)
	return &wasmHandle{ctx: ctx, path: path}, nil
}

// compileWASM builds a runtime with WASI instantiated, compiles the
// module, and verifies the entry point. On error the runtime is already
// closed; on success the caller owns it.
func compileWASM(ctx context.Context, path string) (wazero.Runtime, wazero.CompiledModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	r := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		r.Close(ctx)
		return nil, nil, fmt.Errorf("compile: %w", err)
	}

	if _, ok := compiled.ExportedFunctions()[wasmEntryPoint]; !ok {
		r.Close(ctx)
		return nil, nil, fmt.Errorf("module does not export %s", wasmEntryPoint)
	}
	return r, compiled, nil
}

// WASMInstance is returned from a WASM module construction. Closing it
// releases the instance and its runtime.
type WASMInstance struct {
	ctx     context.Context
	runtime wazero.Runtime
	module  api.Module
}

// Close releases the instance.
func (i *WASMInstance) Close() error {
	if i.module != nil {
		i.module.Close(i.ctx)
	}
	return i.runtime.Close(i.ctx)
}

func (h *wasmHandle) Construct(args ConstructArgs) (any, error) {
	log := args.Logger
	if log == nil {
		log = logging.Nop()
	}

	runtime, compiled, err := compileWASM(h.ctx, h.path)
	if err != nil {
		return nil, err
	}

	cfg := wazero.NewModuleConfig().
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		WithArgs(h.path)

	for k, v := range args.Options {
		switch val := v.(type) {
		case map[string]string:
			// The injected secrets map: each key becomes its own variable.
			if k == "secrets" {
				for sk, sv := range val {
					cfg = cfg.WithEnv(envKey(sk), sv)
				}
				continue
			}
			log.Debugf("wasm %s: skipping structured option %q", h.path, k)
		case map[string]any, []any:
			// Structured options have no env representation.
			log.Debugf("wasm %s: skipping structured option %q", h.path, k)
		default:
			cfg = cfg.WithEnv("OPT_"+envKey(k), fmt.Sprint(val))
		}
	}

	// For WASI command modules, instantiation is the execution: it blocks
	// until the module completes or the context is cancelled.
	mod, err := runtime.InstantiateModule(h.ctx, compiled, cfg)
	if err != nil {
		runtime.Close(h.ctx)
		return nil, err
	}
	return &WASMInstance{ctx: h.ctx, runtime: runtime, module: mod}, nil
}

// envKey converts a catalog secret or option key ("telegram.botToken")
// to an environment variable name ("TELEGRAM_BOTTOKEN").
func envKey(key string) string {
	key = strings.NewReplacer(".", "_", "-", "_").Replace(key)
	return strings.ToUpper(key)
}
