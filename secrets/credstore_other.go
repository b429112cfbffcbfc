//go:build !windows

package secrets

import "errors"

// CredentialStore is only backed by the Windows Credential Manager. On
// other platforms every lookup misses and writes fail.
type CredentialStore struct {
	prefix string
}

// NewCredentialStore creates a credential-manager source.
func NewCredentialStore(prefix string) *CredentialStore {
	return &CredentialStore{prefix: prefix}
}

func (c *CredentialStore) Lookup(string) (string, bool) {
	return "", false
}

// Store is unsupported on this platform.
func (c *CredentialStore) Store(string, string) error {
	return errors.New("credential store is not supported on this platform")
}

// Delete is unsupported on this platform.
func (c *CredentialStore) Delete(string) error {
	return errors.New("credential store is not supported on this platform")
}
