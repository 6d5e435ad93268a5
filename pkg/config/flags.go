// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import "github.com/spf13/pflag"

// FlagKeys maps short command-line flag names to config keys.
var FlagKeys = map[string]string{
	"output": "output.format",
	"quiet":  "output.quiet",
	"unique": "query.unique",
	"skip":   "query.skip",
	"limit":  "query.limit",
}

// BindQueryFlags binds the query pipeline flags to the provided FlagSet.
// Values left at their default fall back to the config file and environment.
func BindQueryFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()

	flags.StringP("output", "o", defaults.Output.Format, "Output format (table, json)")
	flags.Bool("no-color", !defaults.Output.Color, "Disable colored output")
	flags.BoolP("quiet", "q", defaults.Output.Quiet, "Suppress the summary box")
	flags.Bool("unique", defaults.Query.Unique, "Drop duplicate items")
	flags.Int("skip", defaults.Query.Skip, "Number of leading items to drop")
	flags.Int("limit", defaults.Query.Limit, "Maximum number of items (-1 for no limit)")
}
