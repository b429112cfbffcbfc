package catalog

type selectorMode int

const (
	modeAll selectorMode = iota
	modeNone
	modeKeys
)

// Selector narrows a catalog to a requested subset. The zero value selects
// the full catalog.
type Selector struct {
	mode selectorMode
	keys map[string]bool
}

// SelectAll returns a selector matching every catalog key.
func SelectAll() Selector {
	return Selector{mode: modeAll}
}

// SelectNone returns a selector matching no catalog key.
func SelectNone() Selector {
	return Selector{mode: modeNone}
}

// SelectKeys returns a selector matching exactly the given keys. Keys that
// do not exist in a catalog simply match nothing.
func SelectKeys(keys ...string) Selector {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return Selector{mode: modeKeys, keys: set}
}

// Match reports whether the selector includes the given catalog key.
func (s Selector) Match(key string) bool {
	switch s.mode {
	case modeNone:
		return false
	case modeKeys:
		return s.keys[key]
	default:
		return true
	}
}

// IsNone reports whether the selector excludes everything.
func (s Selector) IsNone() bool {
	return s.mode == modeNone
}

// filterEntries keeps entries matching the selector, in declaration order.
// An extra category restriction may be applied; pass nil for none.
func filterEntries(entries []Entry, sel Selector, cats map[Category]bool) []Entry {
	var out []Entry
	for _, e := range entries {
		if cats != nil && !cats[e.Category] {
			continue
		}
		if sel.Match(e.Name) {
			out = append(out, e)
		}
	}
	return out
}

// FilterChannels returns the channel entries matched by the selector.
func FilterChannels(sel Selector) []Entry {
	return filterEntries(channelTable, sel, nil)
}

// FilterTools returns the tool and integration entries matched by the
// selector.
func FilterTools(sel Selector) []Entry {
	return filterEntries(extensionTable, sel, map[Category]bool{
		CategoryTool:        true,
		CategoryIntegration: true,
	})
}

// FilterVoice returns the voice entries matched by the selector.
func FilterVoice(sel Selector) []Entry {
	return filterEntries(extensionTable, sel, map[Category]bool{CategoryVoice: true})
}

// FilterProductivity returns the productivity entries matched by the
// selector.
func FilterProductivity(sel Selector) []Entry {
	return filterEntries(extensionTable, sel, map[Category]bool{CategoryProductivity: true})
}

// FilterProviders returns the provider entries matched by the selector,
// keyed on ProviderID.
func FilterProviders(sel Selector) []ProviderEntry {
	var out []ProviderEntry
	for _, p := range providerTable {
		if sel.Match(p.ProviderID) {
			out = append(out, p)
		}
	}
	return out
}

// FindChannel looks up a channel entry by its catalog key.
func FindChannel(name string) (Entry, bool) {
	for _, e := range channelTable {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// FindExtension looks up a tool, voice, or productivity entry by its
// catalog key.
func FindExtension(name string) (Entry, bool) {
	for _, e := range extensionTable {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// FindProvider looks up a provider entry by its provider key.
func FindProvider(providerID string) (ProviderEntry, bool) {
	for _, p := range providerTable {
		if p.ProviderID == providerID {
			return p, true
		}
	}
	return ProviderEntry{}, false
}
