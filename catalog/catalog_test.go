package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProvider(t *testing.T) {
	p, ok := FindProvider("openai")
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", p.DefaultModel)
	assert.Equal(t, "gpt-4o-mini", p.SmallModel)
	assert.Equal(t, CategoryProvider, p.Category)

	_, ok = FindProvider("unknown-id")
	assert.False(t, ok)
}

func TestFindChannel(t *testing.T) {
	c, ok := FindChannel("telegram")
	require.True(t, ok)
	assert.Equal(t, "plugboard-telegram", c.PackageName)
	assert.Equal(t, []string{"telegram.botToken"}, c.RequiredSecrets)

	_, ok = FindChannel("openai")
	assert.False(t, ok, "provider keys must not resolve as channels")
}

func TestFindExtension(t *testing.T) {
	e, ok := FindExtension("web-search")
	require.True(t, ok)
	assert.Equal(t, CategoryTool, e.Category)

	_, ok = FindExtension("telegram")
	assert.False(t, ok)
}

func TestTablesAreCopies(t *testing.T) {
	// Mutating a returned slice must not corrupt the catalog templates.
	chs := Channels()
	chs[0].Name = "mutated"
	fresh, ok := FindChannel("telegram")
	require.True(t, ok)
	assert.Equal(t, "telegram", fresh.Name)
}

func TestOAuthConfig(t *testing.T) {
	slack, ok := FindChannel("slack")
	require.True(t, ok)

	cfg, ok := OAuthConfig(slack)
	require.True(t, ok)
	assert.Equal(t, "https://slack.com/oauth/v2/authorize", cfg.Endpoint.AuthURL)
	assert.NotEmpty(t, cfg.Scopes)
	assert.Empty(t, cfg.ClientID, "client credentials are the host's job")

	telegram, _ := FindChannel("telegram")
	_, ok = OAuthConfig(telegram)
	assert.False(t, ok, "api_key entries have no oauth config")
}
