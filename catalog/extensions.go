package catalog

// extensionTable is the static tool, integration, voice, and productivity
// catalog in declaration order.
var extensionTable = []Entry{
	{
		PackageName:     "plugboard-web-search",
		Name:            "web-search",
		Category:        CategoryTool,
		DisplayName:     "Web Search",
		Description:     "Web search tool backed by the Brave Search API.",
		RequiredSecrets: []string{"brave.apiKey"},
		DefaultPriority: 10,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "brave.apiKey"},
	},
	{
		PackageName:     "plugboard-browser",
		Name:            "browser",
		Category:        CategoryTool,
		DisplayName:     "Browser",
		Description:     "Headless browser tool for page fetching and screenshots.",
		DefaultPriority: 20,
	},
	{
		PackageName:     "plugboard-http-request",
		Name:            "http-request",
		Category:        CategoryTool,
		DisplayName:     "HTTP Request",
		Description:     "Raw HTTP request tool for arbitrary API calls.",
		DefaultPriority: 30,
	},
	{
		PackageName:     "plugboard-github",
		Name:            "github",
		Category:        CategoryIntegration,
		DisplayName:     "GitHub",
		Description:     "GitHub integration for issues, pull requests, and repos.",
		RequiredSecrets: []string{"github.token"},
		DefaultPriority: 40,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "github.token"},
	},
	{
		PackageName:     "plugboard-memory",
		Name:            "memory",
		Category:        CategoryIntegration,
		DisplayName:     "Memory",
		Description:     "Long-term memory store shared across sessions.",
		DefaultPriority: 50,
	},
	{
		PackageName:     "plugboard-elevenlabs",
		Name:            "elevenlabs",
		Category:        CategoryVoice,
		DisplayName:     "ElevenLabs",
		Description:     "Text-to-speech voice provider using ElevenLabs.",
		RequiredSecrets: []string{"elevenlabs.apiKey"},
		DefaultPriority: 10,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "elevenlabs.apiKey"},
	},
	{
		PackageName:     "plugboard-whisper",
		Name:            "whisper",
		Category:        CategoryVoice,
		DisplayName:     "Whisper",
		Description:     "Speech-to-text transcription via the OpenAI Whisper API.",
		RequiredSecrets: []string{"openai.apiKey"},
		DefaultPriority: 20,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "openai.apiKey"},
	},
	{
		PackageName:     "plugboard-calendar",
		Name:            "calendar",
		Category:        CategoryProductivity,
		DisplayName:     "Google Calendar",
		Description:     "Calendar lookups and event creation in Google Calendar.",
		DefaultPriority: 10,
		Auth: &Auth{
			Type: AuthOAuth2,
			OAuth: &OAuthSpec{
				AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
				Scopes:   []string{"https://www.googleapis.com/auth/calendar"},
			},
		},
	},
	{
		PackageName:     "plugboard-email",
		Name:            "email",
		Category:        CategoryProductivity,
		DisplayName:     "Email",
		Description:     "Send and summarize mail over SMTP and IMAP.",
		RequiredSecrets: []string{"email.password"},
		DefaultPriority: 20,
	},
	{
		PackageName:     "plugboard-notion",
		Name:            "notion",
		Category:        CategoryProductivity,
		DisplayName:     "Notion",
		Description:     "Read and write Notion pages and databases.",
		RequiredSecrets: []string{"notion.apiKey"},
		DefaultPriority: 30,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "notion.apiKey"},
	},
	{
		PackageName:     "plugboard-todoist",
		Name:            "todoist",
		Category:        CategoryProductivity,
		DisplayName:     "Todoist",
		Description:     "Task capture and daily agenda sync with Todoist.",
		RequiredSecrets: []string{"todoist.apiKey"},
		DefaultPriority: 40,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "todoist.apiKey"},
	},
}

// Extensions returns the combined tool, integration, voice, and
// productivity catalog in declaration order.
func Extensions() []Entry {
	out := make([]Entry, len(extensionTable))
	copy(out, extensionTable)
	return out
}
