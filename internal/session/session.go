// Package session tracks who is "logged in" for the lifetime of the
// process. There is no authentication backend: a validated login form is
// the whole ceremony. The only durable piece is the last-used student ID,
// remembered in the system keyring so the login form can pre-fill it.
package session

import (
	"fmt"

	"github.com/99designs/keyring"
	"go.uber.org/zap"
)

const (
	serviceName  = "ticksolve"
	studentIDKey = "last-student-id"
)

// CredentialStore persists small named secrets across runs. The default
// implementation is the system keyring; tests substitute an in-memory one.
type CredentialStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Session is the current login state. Zero value means logged out.
type Session struct {
	StudentID string

	creds  CredentialStore
	logger *zap.Logger
}

// New creates a logged-out session backed by the system keyring. A nil
// logger is replaced by a no-op logger.
func New(logger *zap.Logger) *Session {
	return NewWithStore(keyringStore{}, logger)
}

// NewWithStore creates a logged-out session over the given credential
// store.
func NewWithStore(creds CredentialStore, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{creds: creds, logger: logger}
}

// Active reports whether a login has happened this process.
func (s *Session) Active() bool {
	return s.StudentID != ""
}

// Begin records a successful login and best-effort remembers the student
// ID for the next start. Credential store failures are logged and ignored;
// login never fails once the form validates.
func (s *Session) Begin(studentID string) {
	s.StudentID = studentID
	if err := s.creds.Set(studentIDKey, studentID); err != nil {
		s.logger.Warn("could not remember student id", zap.Error(err))
	}
}

// End clears the in-process login state. The remembered ID stays so the
// next login is pre-filled.
func (s *Session) End() {
	s.StudentID = ""
}

// RememberedStudentID returns the student ID from the previous login, or
// "" when none is stored or the store is unavailable.
func (s *Session) RememberedStudentID() string {
	id, err := s.creds.Get(studentIDKey)
	if err != nil {
		return ""
	}
	return id
}

// keyringStore is the CredentialStore over the system keyring.
type keyringStore struct{}

func (keyringStore) Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

func (keyringStore) Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  key,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/ticksolve/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("ticksolve-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}
