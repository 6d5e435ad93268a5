// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

// Config is the root configuration structure for the eventkit CLI.
type Config struct {
	Log    LogConfig    `description:"Logging configuration" koanf:"log"`
	Output OutputConfig `description:"Output configuration" koanf:"output"`
	Query  QueryConfig  `description:"Default query pipeline settings" koanf:"query"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level  string `description:"Log level: trace | debug | info | warn | error | disabled" koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `description:"Log format: json | text" koanf:"format" validate:"oneof=json text"`
}

// OutputConfig controls how query results are rendered.
type OutputConfig struct {
	Format string `description:"Result format: table | json" koanf:"format" validate:"oneof=table json"`
	Color  bool   `description:"Colorize table output" koanf:"color"`
	Quiet  bool   `description:"Suppress the summary box" koanf:"quiet"`
}

// QueryConfig holds defaults for the query pipeline.
type QueryConfig struct {
	Ascending bool `description:"Sort ascending" koanf:"ascending"`
	Unique    bool `description:"Drop duplicate items" koanf:"unique"`
	Skip      int  `description:"Number of leading items to drop" koanf:"skip" validate:"min=0"`
	// Limit of -1 disables the cap.
	Limit int `description:"Maximum number of items, -1 for no limit" koanf:"limit" validate:"min=-1"`
}
