// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/vulntor/eventkit/pkg/paths"
)

// Global Koanf instance, initialized once at startup.
var (
	k    *koanf.Koanf
	once sync.Once
)

var validate = validator.New()

// InitGlobalConfig initializes the global Koanf instance.
// This should be called early in the application lifecycle, before Load.
func InitGlobalConfig() {
	once.Do(func() {
		k = koanf.New(".")
	})
}

// Manager handles loading and accessing application configuration.
type Manager struct {
	koanfInstance *koanf.Koanf
	currentConfig Config
	mu            sync.RWMutex
}

// NewManager creates a new Manager backed by the global Koanf instance.
func NewManager() *Manager {
	InitGlobalConfig()
	return &Manager{
		koanfInstance: k,
	}
}

// DefaultConfig returns a new Config struct populated with hardcoded default values.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "error",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
		Query: QueryConfig{
			Ascending: true,
			Limit:     -1,
		},
	}
}

// Load loads configuration from defaults, the config file at
// customConfigFilePath, EVENTKIT_ environment variables and flags.
// An empty customConfigFilePath falls back to paths.DefaultConfigFile, which
// may be absent; an explicit path must exist.
func (m *Manager) Load(flags *pflag.FlagSet, customConfigFilePath string) error {
	explicit := customConfigFilePath != ""
	if !explicit {
		customConfigFilePath = paths.DefaultConfigFile()
	}
	debug := false
	if flags != nil {
		if f := flags.Lookup("debug"); f != nil && f.Value.String() == "true" {
			debug = true
		}
	}
	return m.LoadWithSources(DefaultSources(customConfigFilePath, explicit, flags, debug))
}

// LoadWithSources loads the given sources in ascending priority order,
// unmarshals the merged result and validates it.
func (m *Manager) LoadWithSources(sources []ConfigSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := slices.Clone(sources)
	slices.SortStableFunc(ordered, func(a, b ConfigSource) int {
		return a.Priority() - b.Priority()
	})

	for _, src := range ordered {
		if err := src.Load(m.koanfInstance); err != nil {
			return fmt.Errorf("config source %s: %w", src.Name(), err)
		}
	}

	var newCfg Config
	if err := m.koanfInstance.UnmarshalWithConf("", &newCfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}
	if err := newCfg.Validate(); err != nil {
		return err
	}
	m.currentConfig = newCfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentConfig
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DefaultConfigAsMap converts the DefaultConfig struct to a flat map for
// Koanf's confmap.Provider.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"log.level":  def.Log.Level,
		"log.format": def.Log.Format,

		"output.format": def.Output.Format,
		"output.color":  def.Output.Color,
		"output.quiet":  def.Output.Quiet,

		"query.ascending": def.Query.Ascending,
		"query.unique":    def.Query.Unique,
		"query.skip":      def.Query.Skip,
		"query.limit":     def.Query.Limit,
	}
}

// BindFlags defines the global flags shared by every command.
// The --config flag is defined on the root command itself.
func BindFlags(flags *pflag.FlagSet) {
	var flagvar bool
	flags.BoolVar(&flagvar, "debug", false, "Enable debug logging")
}
