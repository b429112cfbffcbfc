package catalog

// channelTable is the static channel catalog in declaration order.
// Entries are immutable templates; availability is resolved per call.
var channelTable = []Entry{
	{
		PackageName:     "plugboard-telegram",
		Name:            "telegram",
		Category:        CategoryChannel,
		DisplayName:     "Telegram",
		Description:     "Telegram bot channel using long polling.",
		RequiredSecrets: []string{"telegram.botToken"},
		DefaultPriority: 10,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "telegram.botToken"},
	},
	{
		PackageName:     "plugboard-discord",
		Name:            "discord",
		Category:        CategoryChannel,
		DisplayName:     "Discord",
		Description:     "Discord bot channel over the gateway websocket.",
		RequiredSecrets: []string{"discord.botToken"},
		DefaultPriority: 20,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "discord.botToken"},
	},
	{
		PackageName:     "plugboard-slack",
		Name:            "slack",
		Category:        CategoryChannel,
		DisplayName:     "Slack",
		Description:     "Slack channel in socket mode.",
		RequiredSecrets: []string{"slack.botToken", "slack.appToken"},
		DefaultPriority: 30,
		Auth: &Auth{
			Type: AuthOAuth2,
			OAuth: &OAuthSpec{
				AuthURL:  "https://slack.com/oauth/v2/authorize",
				TokenURL: "https://slack.com/api/oauth.v2.access",
				Scopes:   []string{"chat:write", "channels:history", "im:history"},
			},
		},
	},
	{
		PackageName:     "plugboard-whatsapp",
		Name:            "whatsapp",
		Category:        CategoryChannel,
		DisplayName:     "WhatsApp",
		Description:     "WhatsApp channel paired via QR link, no secrets required.",
		DefaultPriority: 40,
	},
	{
		PackageName:     "plugboard-signal",
		Name:            "signal",
		Category:        CategoryChannel,
		DisplayName:     "Signal",
		Description:     "Signal messenger channel backed by a linked device.",
		DefaultPriority: 50,
	},
	{
		PackageName:     "plugboard-matrix",
		Name:            "matrix",
		Category:        CategoryChannel,
		DisplayName:     "Matrix",
		Description:     "Matrix channel for bridged and federated rooms.",
		RequiredSecrets: []string{"matrix.accessToken"},
		DefaultPriority: 60,
		Auth:            &Auth{Type: AuthAPIKey, SecretKey: "matrix.accessToken"},
	},
}

// Channels returns the channel catalog in declaration order.
func Channels() []Entry {
	out := make([]Entry, len(channelTable))
	copy(out, channelTable)
	return out
}
