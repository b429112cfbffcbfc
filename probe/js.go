package probe

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/plugboard-dev/plugboard/logging"
)

// constructExport is the construction entry point every JS module must
// provide, either on module.exports or as a top-level function.
const constructExport = "createExtension"

// jsHandle wraps a loaded goja module and its construction function.
// A goja runtime is not goroutine-safe; a handle must be constructed
// from one goroutine at a time.
type jsHandle struct {
	vm *goja.Runtime
	fn goja.Callable
}

// loadJS evaluates a JS module file and extracts its construction
// function. Any parse or runtime failure, or a missing export, means the
// module is unusable.
func loadJS(path string) (Handle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	prog, err := goja.Compile(path, string(src), false)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	vm := goja.New()
	exports := vm.NewObject()
	module := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	vm.Set("module", module)
	vm.Set("exports", exports)

	if _, err := vm.RunProgram(prog); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	fnVal := exportedValue(vm, module)
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return nil, fmt.Errorf("module does not export a callable %s", constructExport)
	}
	return &jsHandle{vm: vm, fn: fn}, nil
}

// exportedValue resolves the construction export from module.exports
// (the script may have reassigned it) or, failing that, the global scope.
func exportedValue(vm *goja.Runtime, module *goja.Object) goja.Value {
	if exp := module.Get("exports"); exp != nil && !goja.IsUndefined(exp) && !goja.IsNull(exp) {
		if obj := exp.ToObject(vm); obj != nil {
			if v := obj.Get(constructExport); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
				return v
			}
		}
	}
	return vm.GlobalObject().Get(constructExport)
}

func (h *jsHandle) Construct(args ConstructArgs) (any, error) {
	if args.Logger == nil {
		args.Logger = logging.Nop()
	}
	vm := h.vm

	arg := vm.NewObject()
	arg.Set("options", args.Options)
	arg.Set("getSecret", func(call goja.FunctionCall) goja.Value {
		key := call.Argument(0).String()
		if args.GetSecret == nil {
			return vm.ToValue("")
		}
		return vm.ToValue(args.GetSecret(key))
	})
	arg.Set("logger", loggerBridge(vm, args))

	v, err := h.fn(goja.Undefined(), arg)
	if err != nil {
		return nil, err
	}
	return v.Export(), nil
}

// loggerBridge exposes the injected logger to JS as an object with
// debug/info/warn/error methods.
func loggerBridge(vm *goja.Runtime, args ConstructArgs) *goja.Object {
	sink := func(emit func(string, ...any)) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				parts[i] = a.String()
			}
			emit("%s", strings.Join(parts, " "))
			return goja.Undefined()
		}
	}

	obj := vm.NewObject()
	obj.Set("debug", sink(args.Logger.Debugf))
	obj.Set("info", sink(args.Logger.Infof))
	obj.Set("warn", sink(args.Logger.Warnf))
	obj.Set("error", sink(args.Logger.Errorf))
	return obj
}
