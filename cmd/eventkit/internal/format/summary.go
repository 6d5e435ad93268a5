// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// QuerySummary describes one pipeline run over a dataset.
type QuerySummary struct {
	Source   string   `json:"source"`
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Stages   []string `json:"stages"`
}

var (
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")). // Cyan
			Padding(0, 1)
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Gray
)

// String renders the summary as plain text lines.
func (s QuerySummary) String() string {
	return strings.Join(s.lines(func(v string) string { return v }), "\n")
}

func (s QuerySummary) lines(label func(string) string) []string {
	stages := "none"
	if len(s.Stages) > 0 {
		stages = strings.Join(s.Stages, " → ")
	}
	return []string{
		fmt.Sprintf("%s %s", label("Source:  "), s.Source),
		fmt.Sprintf("%s %d of %d items", label("Matched: "), s.Returned, s.Total),
		fmt.Sprintf("%s %s", label("Pipeline:"), stages),
	}
}

// PrintQuerySummary prints the summary in a rounded box. Without color it
// prints plain lines; in JSON mode they go to stderr.
func (f *formatter) PrintQuerySummary(summary QuerySummary) error {
	if f.quiet {
		return nil
	}

	if f.mode == ModeJSON {
		_, err := fmt.Fprintln(f.stderr, summary.String())
		return err
	}

	if !f.color {
		_, err := fmt.Fprintln(f.stdout, summary.String())
		return err
	}

	body := []string{summaryTitleStyle.Render("Query summary")}
	body = append(body, summary.lines(func(v string) string { return summaryLabelStyle.Render(v) })...)
	_, err := fmt.Fprintln(f.stdout, summaryBoxStyle.Render(strings.Join(body, "\n")))
	return err
}
