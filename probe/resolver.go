// Package probe resolves whether optional extension modules are installed.
// A probe is a single existence check: try to load the module, and treat
// any failure as "not installed". Nothing here is cached or retried; each
// call performs its own probe.
package probe

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/plugboard-dev/plugboard/logging"
)

// Handle is the loaded surface of a present module. Its single entry
// point is the construction function every plugboard module must export.
type Handle interface {
	// Construct invokes the module's construction entry point.
	Construct(args ConstructArgs) (any, error)
}

// ConstructArgs carries the merged construction inputs into a module.
type ConstructArgs struct {
	Options   map[string]any
	GetSecret func(key string) string
	Logger    logging.Logger
}

// Result is the two-state outcome of a probe: Present with a usable
// handle, or Absent. A module that loads but lacks the construction
// export is Absent.
type Result struct {
	Present bool
	Handle  Handle
}

func absent() Result {
	return Result{}
}

func present(h Handle) Result {
	return Result{Present: true, Handle: h}
}

// Resolver probes for modules under an ordered list of search roots.
type Resolver struct {
	roots []string
	log   logging.Logger
}

// NewResolver creates a resolver over the given plugin directories.
func NewResolver(roots ...string) *Resolver {
	return &Resolver{roots: roots, log: logging.Nop()}
}

// WithLogger sets the logger used for probe diagnostics.
func (r *Resolver) WithLogger(l logging.Logger) *Resolver {
	if l != nil {
		r.log = l
	}
	return r
}

// Probe attempts to load the named module from the search roots. Load
// failures of any kind degrade to Absent, never an error.
func (r *Resolver) Probe(ctx context.Context, packageName string) Result {
	if packageName == "" {
		return absent()
	}
	for _, root := range r.roots {
		for _, candidate := range []string{
			filepath.Join(root, packageName, "index.js"),
			filepath.Join(root, packageName+".js"),
		} {
			if !fileExists(candidate) {
				continue
			}
			h, err := loadJS(candidate)
			if err != nil {
				r.log.Debugf("probe %s: %s unusable: %v", packageName, candidate, err)
				continue
			}
			return present(h)
		}

		candidate := filepath.Join(root, packageName+".wasm")
		if fileExists(candidate) {
			h, err := loadWASM(ctx, candidate)
			if err != nil {
				r.log.Debugf("probe %s: %s unusable: %v", packageName, candidate, err)
				continue
			}
			return present(h)
		}
	}
	return absent()
}

// ProbeAll probes every named module concurrently and joins before
// returning. Results are keyed by package name.
func (r *Resolver) ProbeAll(ctx context.Context, packageNames []string) map[string]Result {
	results := make([]Result, len(packageNames))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range packageNames {
		i, name := i, name
		g.Go(func() error {
			results[i] = r.Probe(ctx, name)
			return nil
		})
	}
	g.Wait()

	out := make(map[string]Result, len(packageNames))
	for i, name := range packageNames {
		out[name] = results[i]
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
