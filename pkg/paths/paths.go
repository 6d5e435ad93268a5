// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileName is the file looked up in ConfigDir when no explicit
// configuration file is given.
const ConfigFileName = "config.yaml"

// ConfigDir returns the config directory for eventkit.
// Order: XDG_CONFIG_HOME/eventkit, platform-specific fallback.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "eventkit")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("AppData"); appData != "" {
			return filepath.Join(appData, "Eventkit")
		}
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "eventkit")
}

// DefaultConfigFile returns the path of the per-user configuration file.
// The file may not exist.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
