// Package dump is a subcommand of the root command. It records the processor
// leaves in the replay format.
package dump

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cpuident/internal/app"
)

const cmdName = "dump"

var examples = []string{
	fmt.Sprintf("  Record the local processor:  $ %s %s --output dump.yaml", app.Name, cmdName),
	fmt.Sprintf("  Replay the recording:        $ %s --replay dump.yaml", app.Name),
}

var Cmd = &cobra.Command{
	Use:           cmdName,
	Short:         "Record the processor leaves for later replay",
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	GroupID:       "primary",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Context().Value(app.Context{}).(app.Context)
	cfg := appContext.Config
	src, err := app.Load(cmd.Context(), cfg.Replay)
	if err != nil {
		return err
	}
	snapshot := src.Snapshot()
	out, err := snapshot.Marshal()
	if err != nil {
		return err
	}
	slog.Debug("recorded leaves", slog.Int("count", len(snapshot.Leaves)), slog.String("arch", snapshot.Arch))
	return app.Write(cmd.OutOrStdout(), cfg.Output, "yaml", out)
}
