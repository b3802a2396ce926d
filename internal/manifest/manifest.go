// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package manifest reads the name, description and version shown by help
// and version output.
//
// Supports both TOML and JSON manifests. A package.json next to the binary
// works as-is; unknown keys are ignored.
//
// Manifest lookup order for Locate(dir):
//   - <dir>/cmdargs.toml
//   - <dir>/package.json
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// TOMLName is the preferred manifest file name.
	TOMLName = "cmdargs.toml"
	// JSONName is the fallback manifest file name.
	JSONName = "package.json"
)

// ErrUnreadable is matched by every error returned from a Source.
var ErrUnreadable = errors.New("metadata unreadable")

// Metadata is the subset of the manifest the reporter needs.
type Metadata struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description"`
	Version     string `toml:"version" json:"version"`
}

// Source provides Metadata. Load may block on I/O.
type Source interface {
	Load() (Metadata, error)
}

// UnreadableError reports a manifest that is missing, unreadable or
// cannot be decoded.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot read metadata from %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrUnreadable) true for any UnreadableError.
func (e *UnreadableError) Is(target error) bool {
	return target == ErrUnreadable
}

// File is a Source backed by a manifest on disk.
// Files ending in ".json" are decoded as JSON; anything else as TOML.
type File struct {
	Path string
}

// Load reads and decodes the manifest. It is read on every call.
func (f File) Load() (Metadata, error) {
	var md Metadata
	if f.Path == "" {
		return md, &UnreadableError{Path: "<unset>", Err: os.ErrNotExist}
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return md, &UnreadableError{Path: f.Path, Err: err}
	}

	if strings.EqualFold(filepath.Ext(f.Path), ".json") {
		if err := json.Unmarshal(data, &md); err != nil {
			return Metadata{}, &UnreadableError{Path: f.Path, Err: fmt.Errorf("failed to decode JSON: %w", err)}
		}
		return md, nil
	}

	if _, err := toml.Decode(string(data), &md); err != nil {
		return Metadata{}, &UnreadableError{Path: f.Path, Err: fmt.Errorf("failed to decode TOML: %w", err)}
	}
	return md, nil
}

// Static is a Source that always returns the same metadata.
type Static Metadata

// Load returns the static metadata.
func (s Static) Load() (Metadata, error) {
	return Metadata(s), nil
}

// Locate returns the first manifest found in dir.
func Locate(dir string) (File, error) {
	for _, name := range []string{TOMLName, JSONName} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return File{Path: path}, nil
		}
	}
	return File{}, &UnreadableError{
		Path: dir,
		Err:  fmt.Errorf("no %s or %s found: %w", TOMLName, JSONName, os.ErrNotExist),
	}
}

// DefaultPath returns the manifest found next to the running executable.
func DefaultPath() (File, error) {
	exe, err := os.Executable()
	if err != nil {
		return File{}, &UnreadableError{Path: "<executable>", Err: err}
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Locate(filepath.Dir(exe))
}

// Installed is a Source that locates the manifest next to the running
// executable on every Load.
type Installed struct{}

// Load locates and reads the manifest.
func (Installed) Load() (Metadata, error) {
	f, err := DefaultPath()
	if err != nil {
		return Metadata{}, err
	}
	return f.Load()
}
