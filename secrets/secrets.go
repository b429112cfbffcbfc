// Package secrets provides lookup sources for the secret values forwarded
// to constructed extension modules. The manifest builder only ever reads
// from the caller's map; hosts can chain further sources themselves.
package secrets

import (
	"os"
	"strings"
)

// Source resolves a secret by its catalog key (e.g. "telegram.botToken").
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource serves secrets from an in-memory map.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvSource serves secrets from environment variables. The catalog key is
// upper-cased with dots and hyphens replaced by underscores, so
// "telegram.botToken" reads TELEGRAM_BOTTOKEN, optionally prefixed.
type EnvSource struct {
	Prefix string
}

func (e EnvSource) Lookup(key string) (string, bool) {
	name := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if e.Prefix != "" {
		name = e.Prefix + "_" + name
	}
	return os.LookupEnv(name)
}

// Chain tries each source in order and returns the first hit.
type Chain []Source

func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
