// Package check is a subcommand of the root command. It evaluates a boolean
// expression over feature names and reports the result in its exit status.
package check

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpuident/internal/app"
	"cpuident/internal/feature"
)

const cmdName = "check"

var examples = []string{
	fmt.Sprintf("  Require AVX2:                 $ %s %s avx2", app.Name, cmdName),
	fmt.Sprintf("  Require AVX-512 or SSE4.2:    $ %s %s 'avx512f || (sse42 && popcnt)'", app.Name, cmdName),
	fmt.Sprintf("  Check a recorded processor:   $ %s %s --replay dump.yaml '!amd3dnow'", app.Name, cmdName),
}

var Cmd = &cobra.Command{
	Use:   cmdName + " EXPR",
	Short: "Evaluate a feature expression, exit 0 when true and 1 when false",
	Long: fmt.Sprintf(`Evaluates a boolean expression over feature names. Names that are not
tracked evaluate false. Prints true or false, exits 0 when true, 1 when false
and 2 when the expression is invalid.

Tracked features: %s`, strings.Join(featureNames(), " ")),
	Example:       strings.Join(examples, "\n"),
	RunE:          runCmd,
	GroupID:       "primary",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
}

func featureNames() []string {
	names := make([]string, 0, len(feature.Definitions))
	for _, d := range feature.Definitions {
		names = append(names, d.Name)
	}
	return names
}

func runCmd(cmd *cobra.Command, args []string) error {
	appContext := cmd.Context().Value(app.Context{}).(app.Context)
	src, err := app.Load(cmd.Context(), appContext.Config.Replay)
	if err != nil {
		return err
	}
	ok, err := src.Profile.Features.Eval(args[0])
	if err != nil {
		return app.ExitError{Code: 2, Err: err}
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return app.ExitError{Code: 1}
	}
	return nil
}
