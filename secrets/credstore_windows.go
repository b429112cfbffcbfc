//go:build windows

package secrets

import (
	"fmt"

	"github.com/danieljoos/wincred"
)

// CredentialStore reads secrets from the Windows Credential Manager.
// Entries are stored under "<prefix>:<key>".
type CredentialStore struct {
	prefix string
}

// NewCredentialStore creates a credential-manager source.
func NewCredentialStore(prefix string) *CredentialStore {
	return &CredentialStore{prefix: prefix}
}

func (c *CredentialStore) Lookup(key string) (string, bool) {
	cred, err := wincred.GetGenericCredential(fmt.Sprintf("%s:%s", c.prefix, key))
	if err != nil {
		return "", false
	}
	return string(cred.CredentialBlob), true
}

// Store writes a secret to the Windows Credential Manager.
func (c *CredentialStore) Store(key, value string) error {
	cred := wincred.NewGenericCredential(fmt.Sprintf("%s:%s", c.prefix, key))
	cred.CredentialBlob = []byte(value)
	cred.Persist = wincred.PersistLocalMachine
	return cred.Write()
}

// Delete removes a secret from the Windows Credential Manager.
func (c *CredentialStore) Delete(key string) error {
	cred, err := wincred.GetGenericCredential(fmt.Sprintf("%s:%s", c.prefix, key))
	if err != nil {
		return err
	}
	return cred.Delete()
}
