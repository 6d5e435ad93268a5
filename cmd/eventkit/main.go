// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Command eventkit runs collection pipelines over YAML and JSON datasets.
package main

import (
	"fmt"
	"os"

	"github.com/vulntor/eventkit/cmd/eventkit/commands"
)

func main() {
	if err := commands.NewCommand().Execute(); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
