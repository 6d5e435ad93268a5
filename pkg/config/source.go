// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by EnvSource.
const EnvPrefix = "EVENTKIT_"

// Priorities of the built-in sources. Higher values override lower ones.
const (
	PriorityDefaults = 10
	PriorityFile     = 20
	PriorityEnv      = 30
	PriorityFlags    = 40
)

// ConfigSource loads one layer of configuration into koanf. Manager loads
// sources in ascending Priority order.
type ConfigSource interface {
	Name() string
	Priority() int
	Load(k *koanf.Koanf) error
}

// DefaultSource loads DefaultConfigAsMap.
type DefaultSource struct{}

func (s *DefaultSource) Name() string  { return "defaults" }
func (s *DefaultSource) Priority() int { return PriorityDefaults }

func (s *DefaultSource) Load(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(DefaultConfigAsMap(), "."), nil)
}

// FileSource loads a YAML file. A missing file is skipped unless Required
// is set, which is the case for a path given on the command line.
type FileSource struct {
	Path     string
	Required bool
}

func (s *FileSource) Name() string  { return "file:" + s.Path }
func (s *FileSource) Priority() int { return PriorityFile }

func (s *FileSource) Load(k *koanf.Koanf) error {
	if s.Path == "" {
		return nil
	}
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !s.Required {
			return nil
		}
		return err
	}
	return k.Load(file.Provider(s.Path), yaml.Parser())
}

// EnvSource maps PREFIX_SECTION_KEY variables to section.key, e.g.
// EVENTKIT_QUERY_LIMIT to query.limit.
type EnvSource struct {
	Prefix string // defaults to EnvPrefix
}

func (s *EnvSource) Name() string  { return "env" }
func (s *EnvSource) Priority() int { return PriorityEnv }

func (s *EnvSource) Load(k *koanf.Koanf) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	return k.Load(env.Provider(prefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")
	}), nil)
}

// FlagSource stores flags listed in FlagKeys under their config key and any
// other flag under its own name. A flag left at its default never overrides
// a key that a lower priority source already set.
type FlagSource struct {
	Flags *pflag.FlagSet
	Debug bool // forces log.level=debug
}

func (s *FlagSource) Name() string  { return "flags" }
func (s *FlagSource) Priority() int { return PriorityFlags }

func (s *FlagSource) Load(k *koanf.Koanf) error {
	if s.Flags != nil {
		provider := posflag.ProviderWithFlag(s.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key := f.Name
			if mapped, ok := FlagKeys[f.Name]; ok {
				key = mapped
			}
			return key, posflag.FlagVal(s.Flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return err
		}
	}
	if s.Debug {
		return k.Set("log.level", "debug")
	}
	return nil
}

// DefaultSources returns defaults, the config file, environment and flags.
// The file is required when configPath was given explicitly.
func DefaultSources(configPath string, explicit bool, flags *pflag.FlagSet, debug bool) []ConfigSource {
	return []ConfigSource{
		&DefaultSource{},
		&FileSource{Path: configPath, Required: explicit},
		&EnvSource{Prefix: EnvPrefix},
		&FlagSource{Flags: flags, Debug: debug},
	}
}
