package catalog

// providerTable is the static model-provider catalog in declaration order.
var providerTable = []ProviderEntry{
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-openai",
			Name:            "openai",
			Category:        CategoryProvider,
			DisplayName:     "OpenAI",
			Description:     "OpenAI chat completion and responses API adapter.",
			RequiredSecrets: []string{"openai.apiKey"},
			DefaultPriority: 10,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "openai.apiKey"},
		},
		ProviderID:   "openai",
		DefaultModel: "gpt-4o",
		SmallModel:   "gpt-4o-mini",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-anthropic",
			Name:            "anthropic",
			Category:        CategoryProvider,
			DisplayName:     "Anthropic",
			Description:     "Anthropic messages API adapter.",
			RequiredSecrets: []string{"anthropic.apiKey"},
			DefaultPriority: 20,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "anthropic.apiKey"},
		},
		ProviderID:   "anthropic",
		DefaultModel: "claude-sonnet-4-20250514",
		SmallModel:   "claude-3-5-haiku-20241022",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-google",
			Name:            "google",
			Category:        CategoryProvider,
			DisplayName:     "Google Gemini",
			Description:     "Google Gemini generative language API adapter.",
			RequiredSecrets: []string{"google.apiKey"},
			DefaultPriority: 30,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "google.apiKey"},
		},
		ProviderID:   "google",
		DefaultModel: "gemini-2.0-flash",
		SmallModel:   "gemini-2.0-flash-lite",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-groq",
			Name:            "groq",
			Category:        CategoryProvider,
			DisplayName:     "Groq",
			Description:     "Groq hosted open-weight model adapter.",
			RequiredSecrets: []string{"groq.apiKey"},
			DefaultPriority: 40,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "groq.apiKey"},
		},
		ProviderID:   "groq",
		DefaultModel: "llama-3.3-70b-versatile",
		SmallModel:   "llama-3.1-8b-instant",
		APIBaseURL:   "https://api.groq.com/openai/v1",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-mistral",
			Name:            "mistral",
			Category:        CategoryProvider,
			DisplayName:     "Mistral",
			Description:     "Mistral AI platform adapter.",
			RequiredSecrets: []string{"mistral.apiKey"},
			DefaultPriority: 50,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "mistral.apiKey"},
		},
		ProviderID:   "mistral",
		DefaultModel: "mistral-large-latest",
		SmallModel:   "mistral-small-latest",
		APIBaseURL:   "https://api.mistral.ai/v1",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-openrouter",
			Name:            "openrouter",
			Category:        CategoryProvider,
			DisplayName:     "OpenRouter",
			Description:     "OpenRouter aggregation gateway adapter.",
			RequiredSecrets: []string{"openrouter.apiKey"},
			DefaultPriority: 60,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "openrouter.apiKey"},
		},
		ProviderID:   "openrouter",
		DefaultModel: "openrouter/auto",
		APIBaseURL:   "https://openrouter.ai/api/v1",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-xai",
			Name:            "xai",
			Category:        CategoryProvider,
			DisplayName:     "xAI Grok",
			Description:     "xAI Grok chat completion adapter.",
			RequiredSecrets: []string{"xai.apiKey"},
			DefaultPriority: 70,
			Auth:            &Auth{Type: AuthAPIKey, SecretKey: "xai.apiKey"},
		},
		ProviderID:   "xai",
		DefaultModel: "grok-3",
		SmallModel:   "grok-3-mini",
		APIBaseURL:   "https://api.x.ai/v1",
	},
	{
		Entry: Entry{
			PackageName:     "plugboard-provider-ollama",
			Name:            "ollama",
			Category:        CategoryProvider,
			DisplayName:     "Ollama",
			Description:     "Local model serving through an Ollama daemon, no secrets required.",
			DefaultPriority: 80,
		},
		ProviderID:   "ollama",
		DefaultModel: "llama3.1",
		SmallModel:   "llama3.2:1b",
		APIBaseURL:   "http://localhost:11434/v1",
	},
}

// Providers returns the provider catalog in declaration order.
func Providers() []ProviderEntry {
	out := make([]ProviderEntry, len(providerTable))
	copy(out, providerTable)
	return out
}
