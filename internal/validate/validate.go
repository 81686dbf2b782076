// Package validate holds the pure form-validation rules for the ticket
// form and the login screen. Validation never mutates anything; callers
// decide what to do with the field errors.
package validate

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ticksolve/ticksolve/internal/model"
)

// Result is the outcome of validating a form submission. FieldErrors maps
// a field name to the message shown inline next to that field.
type Result struct {
	Valid       bool
	FieldErrors map[string]string
}

// Error returns the message for a single field, or "" if the field passed.
func (r Result) Error(field string) string {
	return r.FieldErrors[field]
}

// Title checks a ticket title on its own, for inline form feedback.
func Title(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Title is required")
	}
	return nil
}

// Description checks a ticket description on its own, for inline form
// feedback.
func Description(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("Description is required")
	}
	if utf8.RuneCountInString(s) < 10 {
		return errors.New("Description must be at least 10 characters")
	}
	return nil
}

// Draft checks a ticket draft before it is handed to the repository.
// Priority and category are never rejected; defaults are applied by the
// caller when they are absent.
func Draft(d model.Draft) Result {
	errs := make(map[string]string)

	if err := Title(d.Title); err != nil {
		errs["title"] = err.Error()
	}
	if err := Description(d.Description); err != nil {
		errs["description"] = err.Error()
	}

	return Result{Valid: len(errs) == 0, FieldErrors: errs}
}

// Login checks the login form. There is no authentication backend; a valid
// form is all it takes to enter the app.
func Login(studentID, password string) Result {
	errs := make(map[string]string)

	id := strings.TrimSpace(studentID)
	if id == "" {
		errs["student_id"] = "Student ID is required"
	} else if !digitsOnly(id) {
		errs["student_id"] = "Student ID must contain only numbers"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return Result{Valid: len(errs) == 0, FieldErrors: errs}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
