// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package version provides version metadata for the application.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// These variables are typically injected at build time using -ldflags
var (
	// Version holds the current version of eventkit.
	Version = "dev"
	// Commit holds the current version commit of eventkit.
	Commit = "none"
	// BuildDate holds the build date of eventkit.
	BuildDate = "unknown"
)

// Struct returns version information in a structured format.
type Struct struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	BuildDate  string `json:"buildDate"`
	Prerelease bool   `json:"prerelease"`
}

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("eventkit %s (commit: %s, date: %s)", Version, Commit, BuildDate)
}

// Get returns version information as a Struct.
func Get() Struct {
	return Struct{
		Version:    Version,
		Commit:     Commit,
		BuildDate:  BuildDate,
		Prerelease: IsPrerelease(),
	}
}

// Semver parses Version. Development builds ("dev") are not valid semantic
// versions and return an error.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", Version, err)
	}
	return v, nil
}

// IsPrerelease reports whether Version carries a prerelease tag. Versions
// that do not parse count as prereleases.
func IsPrerelease() bool {
	v, err := Semver()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}
