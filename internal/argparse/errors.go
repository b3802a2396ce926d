// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingName is returned when a command is registered without a name.
	ErrMissingName = errors.New("you must name your command")
	// ErrInvalidType is returned when a registration field is not usable text
	// or the default value is not a text, number or boolean literal.
	ErrInvalidType = errors.New("invalid type")
	// ErrDuplicateName is returned when the name is already registered.
	ErrDuplicateName = errors.New("name already exists")
	// ErrDuplicateShortcut is returned when the shortcut is already registered.
	ErrDuplicateShortcut = errors.New("shortcut already exists")
	// ErrNoCommands is returned when scanning against an empty registry.
	ErrNoCommands = errors.New("there are no commands, register at least one command before parsing")
)

// RegistrationError describes a rejected Register call.
type RegistrationError struct {
	Name  string // Command name as given
	Field string // Offending field: "name", "shortcut", "description" or "default"
	Value string // Offending value, if printable
	Err   error  // One of the Err* sentinels
}

func (e *RegistrationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("register %q: %s %q: %v", e.Name, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("register %q: %s: %v", e.Name, e.Field, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

func newRegistrationError(name, field, value string, err error) error {
	return &RegistrationError{
		Name:  name,
		Field: field,
		Value: value,
		Err:   err,
	}
}

// IsRegistrationError reports whether err came from a rejected registration.
func IsRegistrationError(err error) bool {
	var re *RegistrationError
	return errors.As(err, &re)
}
