// Package catalog holds the static tables of optional integration modules
// known to plugboard, together with filtering and lookup helpers.
package catalog

// Entry describes one optional integration module the runtime may activate.
type Entry struct {
	// PackageName is the module identifier used for existence probing and
	// dynamic loading (e.g. "plugboard-telegram").
	PackageName string `json:"package_name"`

	// Name is the short catalog key used for filtering and override lookup.
	// Unique within its catalog.
	Name string `json:"name"`

	Category    Category `json:"category"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`

	// RequiredSecrets lists the secret keys the module declares it needs.
	// Advisory only; secret gating happens in the host runtime.
	RequiredSecrets []string `json:"required_secrets,omitempty"`

	// DefaultPriority is the baseline precedence value added to the
	// caller's base priority when no override is present.
	DefaultPriority int `json:"default_priority"`

	// Auth describes how the module authenticates, if it does at all.
	Auth *Auth `json:"auth,omitempty"`
}

// ProviderEntry describes a model-provider adapter module.
type ProviderEntry struct {
	Entry

	// ProviderID is the stable provider key, distinct from Name.
	ProviderID   string `json:"provider_id"`
	DefaultModel string `json:"default_model"`
	SmallModel   string `json:"small_model,omitempty"`
	APIBaseURL   string `json:"api_base_url,omitempty"`
}

// Category classifies an extension entry.
type Category string

const (
	CategoryChannel      Category = "channel"
	CategoryTool         Category = "tool"
	CategoryIntegration  Category = "integration"
	CategoryVoice        Category = "voice"
	CategoryProductivity Category = "productivity"
	CategoryProvider     Category = "provider"
)

// ValidCategories contains all valid category values.
var ValidCategories = map[Category]bool{
	CategoryChannel:      true,
	CategoryTool:         true,
	CategoryIntegration:  true,
	CategoryVoice:        true,
	CategoryProductivity: true,
	CategoryProvider:     true,
}
