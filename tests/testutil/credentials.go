package testutil

import "fmt"

// MemoryCredentials is an in-memory session.CredentialStore. Tests use it
// so logging in never touches the system keyring.
type MemoryCredentials struct {
	Values map[string]string
}

// NewMemoryCredentials creates an empty in-memory credential store.
func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{Values: map[string]string{}}
}

func (m *MemoryCredentials) Get(key string) (string, error) {
	v, ok := m.Values[key]
	if !ok {
		return "", fmt.Errorf("credential %q not found", key)
	}
	return v, nil
}

func (m *MemoryCredentials) Set(key, value string) error {
	m.Values[key] = value
	return nil
}

// FailingCredentials is a session.CredentialStore whose every call fails,
// for exercising the best-effort paths.
type FailingCredentials struct{}

func (FailingCredentials) Get(string) (string, error) {
	return "", fmt.Errorf("credential store unavailable")
}

func (FailingCredentials) Set(string, string) error {
	return fmt.Errorf("credential store unavailable")
}
