package catalog

import "golang.org/x/oauth2"

// AuthType defines the authentication method an extension declares.
type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthAPIKey AuthType = "api_key"
	AuthOAuth2 AuthType = "oauth2"
)

// ValidAuthTypes contains all valid auth type values.
var ValidAuthTypes = map[AuthType]bool{
	AuthNone:   true,
	AuthAPIKey: true,
	AuthOAuth2: true,
}

// Auth describes how an extension authenticates. Advisory metadata only;
// the host runtime performs the actual credential handling.
type Auth struct {
	Type AuthType `json:"type"`

	// SecretKey names the secret holding the API key for api_key auth.
	SecretKey string `json:"secret_key,omitempty"`

	OAuth *OAuthSpec `json:"oauth,omitempty"`
}

// OAuthSpec declares the OAuth 2.0 endpoints and scopes an extension uses.
type OAuthSpec struct {
	AuthURL  string   `json:"auth_url"`
	TokenURL string   `json:"token_url"`
	Scopes   []string `json:"scopes"`
}

// OAuthConfig builds an oauth2.Config from an entry's advisory auth
// metadata. The client ID and secret are left empty for the host to fill
// in. Returns false when the entry declares no OAuth metadata.
func OAuthConfig(e Entry) (*oauth2.Config, bool) {
	if e.Auth == nil || e.Auth.Type != AuthOAuth2 || e.Auth.OAuth == nil {
		return nil, false
	}
	spec := e.Auth.OAuth
	return &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			AuthURL:  spec.AuthURL,
			TokenURL: spec.TokenURL,
		},
		Scopes: append([]string(nil), spec.Scopes...),
	}, true
}
