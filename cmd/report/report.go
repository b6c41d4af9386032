// Package report is a subcommand of the root command. It identifies the
// processor and renders the result.
package report

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpuident/internal/app"
	"cpuident/internal/report"
)

const cmdName = "table"

var examples = []string{
	fmt.Sprintf("  Identify the local processor:       $ %s %s", app.Name, cmdName),
	fmt.Sprintf("  Identify a recorded processor:      $ %s %s --replay dump.yaml", app.Name, cmdName),
	fmt.Sprintf("  Write a spreadsheet:                $ %s %s --format xlsx --output cpu.xlsx", app.Name, cmdName),
	fmt.Sprintf("  Export for the textfile collector:  $ %s %s --format prom --output cpu.prom", app.Name, cmdName),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Aliases:       []string{"report"},
	Short:         "Identify the processor (default command)",
	Long:          fmt.Sprintf("Identifies the processor and renders the result in one of: %s.", strings.Join(report.FormatOptions, ", ")),
	Example:       strings.Join(examples, "\n"),
	RunE:          Run,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

// Run builds the profile and writes it in the configured format.
func Run(cmd *cobra.Command, args []string) error {
	appContext := cmd.Context().Value(app.Context{}).(app.Context)
	cfg := appContext.Config
	src, err := app.Load(cmd.Context(), cfg.Replay)
	if err != nil {
		return err
	}
	width := 0
	if f, ok := cmd.OutOrStdout().(*os.File); ok && cfg.Output == "" {
		width = report.TerminalWidth(f)
	}
	out, err := report.Create(cfg.Format, src.Profile, width)
	if err != nil {
		return err
	}
	slog.Debug("created report", slog.String("format", cfg.Format), slog.Int("bytes", len(out)))
	return app.Write(cmd.OutOrStdout(), cfg.Output, cfg.Format, out)
}
