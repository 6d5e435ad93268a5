// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{
			name:     "object",
			data:     map[string]any{"name": "web", "port": 80},
			expected: "{\n  \"name\": \"web\",\n  \"port\": 80\n}\n",
		},
		{
			name:     "array",
			data:     []any{1, "two"},
			expected: "[\n  1,\n  \"two\"\n]\n",
		},
		{
			name:     "nil",
			data:     nil,
			expected: "null\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			f := New(&stdout, &stderr, ModeJSON, false, false)

			require.NoError(t, f.PrintJSON(tt.data))
			require.Equal(t, tt.expected, stdout.String())
			require.Empty(t, stderr.String())
		})
	}
}

func TestPrintTable(t *testing.T) {
	headers := []string{"Name", "Port"}
	rows := [][]string{{"web", "80"}, {"ssh", "22"}}

	t.Run("table mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, false, false)

		require.NoError(t, f.PrintTable(headers, rows))
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, "NAME  PORT", strings.TrimSpace(lines[0]))
		require.Equal(t, "web   80", strings.TrimSpace(lines[1]))
	})

	t.Run("json mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintTable(headers, rows))
		var items []map[string]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
		require.Equal(t, []map[string]string{
			{"Name": "web", "Port": "80"},
			{"Name": "ssh", "Port": "22"},
		}, items)
	})

	t.Run("empty json table is an empty array", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintTable(headers, nil))
		require.Equal(t, "[]\n", stdout.String())
	})
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name     string
		items    []any
		expected []string
	}{
		{"none", nil, nil},
		{"scalars", []any{1, 2}, []string{ValueColumn}},
		{"maps", []any{
			map[string]any{"port": 80, "name": "web"},
			map[string]any{"tier": "front"},
		}, []string{"name", "port", "tier"}},
		{"mixed", []any{map[string]any{"name": "web"}, 3}, []string{"name", ValueColumn}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Columns(tt.items))
		})
	}
}

func TestCell(t *testing.T) {
	require.Equal(t, "-", Cell(nil))
	require.Equal(t, "80", Cell(80))
	require.Equal(t, "2.5", Cell(2.5))
	require.Equal(t, "true", Cell(true))
	require.Equal(t, "web", Cell("web"))
	require.Equal(t, `{"tier":"front"}`, Cell(map[string]any{"tier": "front"}))
	require.Equal(t, `[1,2]`, Cell([]any{1, 2}))
}

func TestPrintItems_TruncatesLongCells(t *testing.T) {
	var stdout bytes.Buffer
	f := New(&stdout, io.Discard, ModeTable, false, false)

	long := strings.Repeat("x", MaxCellWidth+10)
	require.NoError(t, f.PrintItems([]any{long}))
	require.Contains(t, stdout.String(), strings.Repeat("x", MaxCellWidth-3)+"...")
	require.NotContains(t, stdout.String(), long)
}

func TestPrintItems(t *testing.T) {
	items := []any{
		map[string]any{"name": "web", "port": 80},
		map[string]any{"name": "ssh"},
	}

	t.Run("table", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, false, false)

		require.NoError(t, f.PrintItems(items))
		out := stdout.String()
		require.Contains(t, out, "NAME")
		require.Contains(t, out, "PORT")
		require.Contains(t, out, "web")
		require.Regexp(t, `ssh\s+\n`, out, "missing fields render empty")
	})

	t.Run("json keeps values", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintItems(items))
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		require.Equal(t, float64(80), decoded[0]["port"])
	})

	t.Run("json empty", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintItems(nil))
		require.Equal(t, "[]\n", stdout.String())
	})
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name         string
		mode         OutputMode
		quiet        bool
		expectStdout bool
		expectStderr bool
	}{
		{"table mode - normal", ModeTable, false, true, false},
		{"table mode - quiet", ModeTable, true, false, false},
		{"json mode - normal", ModeJSON, false, false, true},
		{"json mode - quiet", ModeJSON, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			f := New(&stdout, &stderr, tt.mode, tt.quiet, false)

			require.NoError(t, f.PrintSummary("done"))
			require.Equal(t, tt.expectStdout, strings.Contains(stdout.String(), "done"))
			require.Equal(t, tt.expectStderr, strings.Contains(stderr.String(), "done"))
		})
	}
}

func TestPrintQuerySummary(t *testing.T) {
	summary := QuerySummary{Source: "data.yaml", Total: 8, Returned: 2, Stages: []string{"sort", "limit 2"}}

	t.Run("plain", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, false, false)

		require.NoError(t, f.PrintQuerySummary(summary))
		require.Contains(t, stdout.String(), "data.yaml")
		require.Contains(t, stdout.String(), "2 of 8 items")
		require.Contains(t, stdout.String(), "sort → limit 2")
	})

	t.Run("boxed", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, false, true)

		require.NoError(t, f.PrintQuerySummary(summary))
		require.Contains(t, stdout.String(), "Query summary")
		require.Contains(t, stdout.String(), "data.yaml")
	})

	t.Run("json goes to stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintQuerySummary(summary))
		require.Empty(t, stdout.String())
		require.Contains(t, stderr.String(), "2 of 8 items")
	})

	t.Run("quiet", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, true, true)

		require.NoError(t, f.PrintQuerySummary(summary))
		require.Empty(t, stdout.String())
	})

	require.Contains(t, QuerySummary{Source: "x"}.String(), "Pipeline: none")
}

func TestPrintError(t *testing.T) {
	boom := errors.New("operation failed")

	t.Run("table mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeTable, false, false)

		require.NoError(t, f.PrintError(boom))
		require.Empty(t, stdout.String())
		require.Equal(t, "Error: operation failed\n", stderr.String())
	})

	t.Run("json mode", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintError(boom))
		var result map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		require.Equal(t, false, result["success"])
		require.Equal(t, "operation failed", result["error"])
	})

	t.Run("nil error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		f := New(&stdout, &stderr, ModeJSON, false, false)

		require.NoError(t, f.PrintError(nil))
		require.Empty(t, stdout.String())
		require.Empty(t, stderr.String())
	})
}

func TestValidateAndParseMode(t *testing.T) {
	require.NoError(t, ValidateMode("json"))
	require.NoError(t, ValidateMode("table"))
	require.Error(t, ValidateMode("xml"))

	require.Equal(t, ModeJSON, ParseMode("JSON"))
	require.Equal(t, ModeTable, ParseMode("table"))
	require.Equal(t, ModeTable, ParseMode("bogus"))
}
