// Package cmd provides the command line interface for the application.
package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cpuident/cmd/check"
	"cpuident/cmd/debug"
	"cpuident/cmd/dump"
	"cpuident/cmd/report"
	"cpuident/internal/app"
	"cpuident/internal/config"
	ireport "cpuident/internal/report"
)

var gLogFile *os.File
var gVersion = "9.9.9" // overwritten by ldflags in Makefile

// LongAppName is the name of the application
const LongAppName = "cpuident"

var examples = []string{
	fmt.Sprintf("  Identify the local processor:          $ %s", app.Name),
	fmt.Sprintf("  Identify as json:                      $ %s --format json", app.Name),
	fmt.Sprintf("  Record and replay a processor:         $ %s dump --output dump.yaml && %s --replay dump.yaml", app.Name, app.Name),
	fmt.Sprintf("  Gate a script on a feature:            $ %s check 'avx2 && bmi2'", app.Name),
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:                app.Name,
	Short:              app.Name,
	Long:               fmt.Sprintf(`%s identifies x86 processors from their CPUID leaves: vendor, family/model/stepping, microarchitecture, codename, process node and feature flags. ARM and POWER hosts are identified from their ID registers.`, LongAppName),
	Example:            strings.Join(examples, "\n"),
	Args:               cobra.NoArgs,
	RunE:               report.Run,
	PersistentPreRunE:  initializeApplication, // will only be run if command has a 'Run' function
	PersistentPostRunE: terminateApplication,  // ...
	Version:            gVersion,
	SilenceErrors:      true,
	SilenceUsage:       true,
}

var (
	// logging
	flagDebug     bool
	flagSyslog    bool
	flagLogStdOut bool
	flagLogFile   string
	// input and output
	flagConfig string
	flagReplay string
	flagFormat string
	flagOutput string
)

func init() {
	rootCmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command] [flags]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}
`)
	rootCmd.SetHelpCommand(&cobra.Command{}) // block the help command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.AddGroup([]*cobra.Group{{ID: "primary", Title: "Commands:"}}...)
	rootCmd.AddCommand(report.Cmd)
	rootCmd.AddCommand(debug.Cmd)
	rootCmd.AddCommand(dump.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddGroup([]*cobra.Group{{ID: "other", Title: "Other Commands:"}}...)
	rootCmd.AddCommand(versionCmd)
	// Global (persistent) flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, app.FlagConfigName, "", "config file (default is cpuident.yaml in ., $HOME/.config/cpuident or /etc/cpuident)")
	rootCmd.PersistentFlags().StringVar(&flagReplay, app.FlagReplayName, "", "use a recorded dump instead of the local processor")
	rootCmd.PersistentFlags().StringVar(&flagFormat, app.FlagFormatName, ireport.FormatText, fmt.Sprintf("output format, one of: %s", strings.Join(ireport.FormatOptions, ", ")))
	rootCmd.PersistentFlags().StringVar(&flagOutput, app.FlagOutputName, "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, app.FlagDebugName, false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagSyslog, app.FlagSyslogName, false, "write logs to syslog")
	rootCmd.PersistentFlags().BoolVar(&flagLogStdOut, app.FlagLogStdOutName, false, "write logs to stdout as json")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, app.FlagLogFileName, "", "append logs to this file")
}

var versionCmd = &cobra.Command{
	GroupID: "other",
	Use:     "version",
	Short:   "Print the application version",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", app.Name, gVersion)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// It returns the process exit status.
func Execute() int {
	cobra.EnableCommandSorting = false
	cobra.EnableCaseInsensitive = true
	// catch signals to allow for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		terminateErr := terminateApplication(rootCmd, os.Args)
		if terminateErr != nil {
			slog.Error("Error terminating application", slog.String("error", terminateErr.Error()))
		}
		return exitCode(err, os.Stderr)
	}
	return 0
}

// exitCode reports err and returns the process exit status for it
func exitCode(err error, stderr io.Writer) int {
	var exitErr app.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			slog.Error("command failed", slog.String("error", exitErr.Err.Error()))
			fmt.Fprintf(stderr, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	slog.Error("command failed", slog.String("error", err.Error()))
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func initializeApplication(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	cfg, err := config.Load(flagConfig, home, cmd.Flags())
	if err != nil {
		return err
	}
	// configure logging
	var logOpts slog.HandlerOptions
	switch {
	case cfg.Debug:
		logOpts.Level = slog.LevelDebug
		logOpts.AddSource = true
	case cfg.Syslog || cfg.LogStdout || cfg.LogFile != "":
		logOpts.Level = slog.LevelInfo
	default:
		// keep normal runs quiet on the terminal
		logOpts.Level = slog.LevelWarn
	}
	switch {
	case cfg.Syslog:
		handler, err := NewSyslogHandler(&logOpts)
		if err != nil {
			return errors.Wrap(err, "failed to create syslog handler")
		}
		slog.SetDefault(slog.New(handler))
	case cfg.LogStdout:
		slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), &logOpts)))
	case cfg.LogFile != "":
		gLogFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644) // #nosec G302 G304
		if err != nil {
			return errors.Wrap(err, "failed to open log file")
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(gLogFile, &logOpts)))
	default:
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &logOpts)))
	}
	slog.Info("Starting up", slog.String("app", app.Name), slog.String("version", gVersion), slog.Int("PID", os.Getpid()), slog.String("arguments", strings.Join(os.Args, " ")))
	if cfg.File != "" {
		slog.Debug("read config file", slog.String("file", cfg.File))
	}
	var logFilePath string
	if gLogFile != nil {
		logFilePath = gLogFile.Name()
	}
	// set app context
	cmd.SetContext(
		context.WithValue(
			cmd.Context(),
			app.Context{},
			app.Context{
				Config:      *cfg,
				LogFilePath: logFilePath,
				Version:     gVersion,
			},
		),
	)
	return nil
}

// terminateApplication closes the log file
func terminateApplication(cmd *cobra.Command, args []string) error {
	slog.Info("Shutting down", slog.String("app", app.Name), slog.String("version", gVersion), slog.Int("PID", os.Getpid()))
	if gLogFile != nil {
		err := gLogFile.Close()
		logFile := gLogFile.Name()
		gLogFile = nil
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		if err != nil {
			slog.Error("error closing log file", slog.String("logFile", logFile), slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}
