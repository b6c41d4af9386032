// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads cpuident settings from defaults, an optional config
// file, CPUIDENT_ environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cpuident/internal/report"
)

const (
	envPrefix  = "CPUIDENT"
	configName = "cpuident"
)

// keys
const (
	KeyFormat    = "format"
	KeyOutput    = "output"
	KeyReplay    = "replay"
	KeyDebug     = "debug"
	KeyLogStdout = "log_stdout"
	KeyLogFile   = "log_file"
	KeySyslog    = "syslog"
)

// Config holds the resolved settings.
type Config struct {
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	Replay    string `mapstructure:"replay"`
	Debug     bool   `mapstructure:"debug"`
	LogStdout bool   `mapstructure:"log_stdout"`
	LogFile   string `mapstructure:"log_file"`
	Syslog    bool   `mapstructure:"syslog"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// SearchPaths are the directories searched for cpuident.yaml when no config
// file is given. home may be empty.
func SearchPaths(home string) []string {
	paths := []string{"."}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", configName))
	}
	return append(paths, filepath.Join("/etc", configName))
}

// Load resolves the configuration. A config file named by cfgFile must exist;
// otherwise a missing cpuident.yaml is not an error. Flags that were set on
// the command line override every other source. flags may be nil.
func Load(cfgFile string, home string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, path := range SearchPaths(home) {
			v.AddConfigPath(path)
		}
	}

	v.SetDefault(KeyFormat, report.FormatText)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyReplay, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogStdout, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySyslog, false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, errors.Wrap(bindErr, "failed to bind flags")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.File = v.ConfigFileUsed()
	if !report.ValidFormat(cfg.Format) {
		return nil, errors.Errorf("invalid format %q, expected one of %s", cfg.Format, strings.Join(report.FormatOptions, ", "))
	}
	if cfg.Syslog && cfg.LogStdout {
		return nil, errors.New("both syslog and stdout logging specified, pick one")
	}
	if cfg.Format == report.FormatXlsx && cfg.Output == "" {
		return nil, errors.New("the xlsx format requires an output file")
	}
	return &cfg, nil
}
