// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cast"

	"github.com/vulntor/eventkit/pkg/stringutil"
)

// OutputMode defines the output format for CLI commands
type OutputMode string

const (
	// ModeJSON outputs data as JSON
	ModeJSON OutputMode = "json"
	// ModeTable outputs data as ASCII table
	ModeTable OutputMode = "table"
)

// ValueColumn is the header used for items that are not mappings.
const ValueColumn = "value"

// MaxCellWidth bounds table cells; longer values are cut with an ellipsis.
const MaxCellWidth = 60

// Formatter provides consistent output formatting across CLI commands
type Formatter interface {
	// PrintJSON outputs data as JSON to stdout
	PrintJSON(data any) error

	// PrintTable outputs data as ASCII table to stdout
	PrintTable(headers []string, rows [][]string) error

	// PrintItems renders dataset items as a table (one column per field)
	// or as a JSON array.
	PrintItems(items []any) error

	// PrintSummary outputs a summary message (unless quiet mode)
	PrintSummary(message string) error

	// PrintQuerySummary outputs a boxed query summary (unless quiet mode)
	PrintQuerySummary(summary QuerySummary) error

	// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
	PrintError(err error) error
}

type formatter struct {
	stdout io.Writer
	stderr io.Writer
	mode   OutputMode
	quiet  bool
	color  bool
}

// New creates a new Formatter
func New(stdout, stderr io.Writer, mode OutputMode, quiet, color bool) Formatter {
	return &formatter{
		stdout: stdout,
		stderr: stderr,
		mode:   mode,
		quiet:  quiet,
		color:  color,
	}
}

// PrintJSON outputs data as JSON to stdout
func (f *formatter) PrintJSON(data any) error {
	enc := json.NewEncoder(f.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// PrintTable outputs data as ASCII table to stdout
func (f *formatter) PrintTable(headers []string, rows [][]string) error {
	if f.mode == ModeJSON {
		items := make([]map[string]string, 0, len(rows))
		for _, row := range rows {
			item := make(map[string]string)
			for i, header := range headers {
				if i < len(row) {
					item[header] = row[i]
				}
			}
			items = append(items, item)
		}
		return f.PrintJSON(items)
	}

	w := tabwriter.NewWriter(f.stdout, 0, 0, 2, ' ', 0)

	headerLine := make([]string, len(headers))
	for i, h := range headers {
		headerLine[i] = strings.ToUpper(h)
		if f.color {
			headerLine[i] = color.New(color.Bold).Sprint(headerLine[i])
		}
	}
	if _, err := fmt.Fprintln(w, strings.Join(headerLine, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return w.Flush()
}

// PrintItems renders items. JSON mode keeps the original values; table mode
// uses the sorted union of mapping keys as columns.
func (f *formatter) PrintItems(items []any) error {
	if f.mode == ModeJSON {
		if items == nil {
			items = []any{}
		}
		return f.PrintJSON(items)
	}

	headers := Columns(items)
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(headers))
		m, isMap := item.(map[string]any)
		for i, h := range headers {
			switch {
			case isMap:
				if v, ok := m[h]; ok {
					row[i] = stringutil.Ellipsis(Cell(v), MaxCellWidth)
				}
			case h == ValueColumn:
				row[i] = stringutil.Ellipsis(Cell(item), MaxCellWidth)
			}
		}
		rows = append(rows, row)
	}
	return f.PrintTable(headers, rows)
}

// Columns returns the table headers for items: the sorted union of mapping
// keys, plus ValueColumn when any item is a scalar.
func Columns(items []any) []string {
	seen := make(map[string]struct{})
	var headers []string
	scalar := false
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			scalar = true
			continue
		}
		for k := range m {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				headers = append(headers, k)
			}
		}
	}
	slices.Sort(headers)
	if scalar {
		if _, dup := seen[ValueColumn]; !dup {
			headers = append(headers, ValueColumn)
		}
	}
	return headers
}

// Cell renders a value for a table cell. Nested values are shown as compact
// JSON.
func Cell(v any) string {
	if v == nil {
		return "-"
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// PrintSummary outputs a summary message to stdout (unless quiet mode)
func (f *formatter) PrintSummary(message string) error {
	if f.quiet {
		return nil
	}

	if f.mode == ModeJSON {
		// JSON mode keeps stdout machine-readable
		_, err := fmt.Fprintln(f.stderr, message)
		return err
	}

	if f.color {
		_, err := color.New(color.FgGreen).Fprintln(f.stdout, message)
		return err
	}

	_, err := fmt.Fprintln(f.stdout, message)
	return err
}

// PrintError outputs an error to stderr (or JSON to stdout in JSON mode)
func (f *formatter) PrintError(err error) error {
	if err == nil {
		return nil
	}

	if f.mode == ModeJSON {
		return f.PrintJSON(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
	}

	var writeErr error
	if f.color {
		_, writeErr = color.New(color.FgRed).Fprintf(f.stderr, "Error: %v\n", err)
	} else {
		_, writeErr = fmt.Fprintf(f.stderr, "Error: %v\n", err)
	}

	return writeErr
}

// ValidateMode checks if the output mode is valid
func ValidateMode(mode string) error {
	switch OutputMode(mode) {
	case ModeJSON, ModeTable:
		return nil
	default:
		return fmt.Errorf("invalid output mode: %s (must be 'json' or 'table')", mode)
	}
}

// ParseMode converts a string to OutputMode
func ParseMode(mode string) OutputMode {
	switch strings.ToLower(mode) {
	case "json":
		return ModeJSON
	default:
		return ModeTable
	}
}
