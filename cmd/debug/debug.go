// Package debug is a subcommand of the root command. It shows the raw leaves
// and the classification row behind a profile.
package debug

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpuident/internal/app"
	"cpuident/internal/report"
)

const cmdName = "debug"

const flagRows = "rows"

var flagRowsValue bool

var examples = []string{
	fmt.Sprintf("  Show leaves of the local processor:  $ %s %s", app.Name, cmdName),
	fmt.Sprintf("  Show leaves of a recorded dump:      $ %s %s --replay dump.yaml --format json", app.Name, cmdName),
	fmt.Sprintf("  Also list every classification row:  $ %s %s --%s", app.Name, cmdName, flagRows),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Show every recorded leaf and the matched table row",
	Long:          "Renders the profile followed by the classification table and row and every leaf as hex words. Supports the text, json and xlsx formats.",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

func init() {
	Cmd.Flags().BoolVar(&flagRowsValue, flagRows, false, "also list every row of the x86 classification tables")
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Context().Value(app.Context{}).(app.Context)
	cfg := appContext.Config
	src, err := app.Load(cmd.Context(), cfg.Replay)
	if err != nil {
		return err
	}
	tables := report.Tables(src.Profile)
	tables = append(tables, report.ClassificationTable(src.Profile), report.LeavesTable(src.Snapshot()))
	if flagRowsValue {
		tables = append(tables, report.RowsTable())
	}
	width := 0
	if f, ok := cmd.OutOrStdout().(*os.File); ok && cfg.Output == "" {
		width = report.TerminalWidth(f)
	}
	out, err := report.CreateTables(cfg.Format, tables, width)
	if err != nil {
		return err
	}
	return app.Write(cmd.OutOrStdout(), cfg.Output, cfg.Format, out)
}
