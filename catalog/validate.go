package catalog

import (
	"fmt"
	"regexp"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of validating the catalog tables.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors,omitempty"`
	Warnings []ValidationError `json:"warnings,omitempty"`
}

// Regular expressions for validation
var (
	namePattern      = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	packagePattern   = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	secretKeyPattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*(\.[a-z][a-zA-Z0-9]*)+$`)
)

// Validate checks the built-in catalog tables for internal consistency.
// It exists to catch editing mistakes in the static tables, not to
// validate caller input.
func Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	seen := make(map[string]bool)
	for i, e := range channelTable {
		validateEntry(fmt.Sprintf("channels[%d]", i), e, seen, result)
		if e.Category != CategoryChannel {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("channels[%d].category", i),
				Message: fmt.Sprintf("must be %q, got %q", CategoryChannel, e.Category),
			})
		}
	}

	seen = make(map[string]bool)
	for i, e := range extensionTable {
		validateEntry(fmt.Sprintf("extensions[%d]", i), e, seen, result)
		switch e.Category {
		case CategoryTool, CategoryIntegration, CategoryVoice, CategoryProductivity:
		default:
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d].category", i),
				Message: fmt.Sprintf("invalid category for extension catalog: %q", e.Category),
			})
		}
	}

	seen = make(map[string]bool)
	seenIDs := make(map[string]bool)
	for i, p := range providerTable {
		prefix := fmt.Sprintf("providers[%d]", i)
		validateEntry(prefix, p.Entry, seen, result)
		if p.ProviderID == "" {
			result.Errors = append(result.Errors, ValidationError{prefix + ".provider_id", "required"})
		} else if seenIDs[p.ProviderID] {
			result.Errors = append(result.Errors, ValidationError{prefix + ".provider_id", fmt.Sprintf("duplicate provider id: %s", p.ProviderID)})
		}
		seenIDs[p.ProviderID] = true
		if p.DefaultModel == "" {
			result.Errors = append(result.Errors, ValidationError{prefix + ".default_model", "required"})
		}
		if p.SmallModel == "" {
			result.Warnings = append(result.Warnings, ValidationError{prefix + ".small_model", "recommended: declare a small model for cheap tasks"})
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func validateEntry(prefix string, e Entry, seen map[string]bool, result *ValidationResult) {
	if e.Name == "" {
		result.Errors = append(result.Errors, ValidationError{prefix + ".name", "required"})
	} else {
		if !namePattern.MatchString(e.Name) {
			result.Errors = append(result.Errors, ValidationError{prefix + ".name", "must be lowercase letters, numbers, and hyphens, starting with a letter"})
		}
		if seen[e.Name] {
			result.Errors = append(result.Errors, ValidationError{prefix + ".name", fmt.Sprintf("duplicate catalog key: %s", e.Name)})
		}
		seen[e.Name] = true
	}

	if e.PackageName == "" {
		result.Errors = append(result.Errors, ValidationError{prefix + ".package_name", "required"})
	} else if !packagePattern.MatchString(e.PackageName) {
		result.Errors = append(result.Errors, ValidationError{prefix + ".package_name", "must be lowercase letters, numbers, and hyphens"})
	}

	if !ValidCategories[e.Category] {
		result.Errors = append(result.Errors, ValidationError{prefix + ".category", fmt.Sprintf("invalid category: %s", e.Category)})
	}

	if e.DisplayName == "" {
		result.Warnings = append(result.Warnings, ValidationError{prefix + ".display_name", "recommended: add a display name"})
	}
	if e.Description == "" {
		result.Warnings = append(result.Warnings, ValidationError{prefix + ".description", "recommended: add a description"})
	}

	for j, key := range e.RequiredSecrets {
		if !secretKeyPattern.MatchString(key) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("%s.required_secrets[%d]", prefix, j),
				Message: fmt.Sprintf("secret key %q must be dotted camelCase (e.g. telegram.botToken)", key),
			})
		}
	}

	if e.Auth != nil {
		if !ValidAuthTypes[e.Auth.Type] {
			result.Errors = append(result.Errors, ValidationError{prefix + ".auth.type", fmt.Sprintf("invalid auth type: %s", e.Auth.Type)})
		}
		if e.Auth.Type == AuthAPIKey && e.Auth.SecretKey == "" {
			result.Errors = append(result.Errors, ValidationError{prefix + ".auth.secret_key", "required for api_key auth"})
		}
		if e.Auth.Type == AuthOAuth2 {
			if e.Auth.OAuth == nil {
				result.Errors = append(result.Errors, ValidationError{prefix + ".auth.oauth", "required for oauth2 auth"})
			} else {
				if e.Auth.OAuth.AuthURL == "" {
					result.Errors = append(result.Errors, ValidationError{prefix + ".auth.oauth.auth_url", "required"})
				}
				if e.Auth.OAuth.TokenURL == "" {
					result.Errors = append(result.Errors, ValidationError{prefix + ".auth.oauth.token_url", "required"})
				}
				if len(e.Auth.OAuth.Scopes) == 0 {
					result.Errors = append(result.Errors, ValidationError{prefix + ".auth.oauth.scopes", "at least one scope is required"})
				}
			}
		}
	}
}
