// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpuident/internal/report"
)

func writeHomeConfig(t *testing.T, content string) (home string, path string) {
	t.Helper()
	home = t.TempDir()
	dir := filepath.Join(home, ".config", configName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path = filepath.Join(dir, configName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return home, path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", report.FormatText, "")
	fs.String("output", "", "")
	fs.String("replay", "", "")
	fs.Bool("debug", false, "")
	fs.Bool("log-stdout", false, "")
	fs.String("log-file", "", "")
	fs.Bool("syslog", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestSearchPaths(t *testing.T) {
	assert.Equal(t, []string{".", "/home/u/.config/cpuident", "/etc/cpuident"}, SearchPaths("/home/u"))
	assert.Equal(t, []string{".", "/etc/cpuident"}, SearchPaths(""))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, cfg.Format)
	assert.Empty(t, cfg.Output)
	assert.Empty(t, cfg.Replay)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	home, path := writeHomeConfig(t, "format: json\nreplay: dump.yaml\ndebug: true\n")

	cfg, err := Load("", home, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, cfg.Format, "unset flag keeps the file value")
	assert.Equal(t, "dump.yaml", cfg.Replay)
	assert.True(t, cfg.Debug)
	assert.Equal(t, path, cfg.File)

	t.Setenv("CPUIDENT_FORMAT", report.FormatYAML)
	t.Setenv("CPUIDENT_LOG_STDOUT", "true")
	cfg, err = Load("", home, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, cfg.Format, "environment beats the file")
	assert.True(t, cfg.LogStdout)

	cfg, err = Load("", home, newFlags(t, "--format", report.FormatProm, "--log-file", "run.log"))
	require.NoError(t, err)
	assert.Equal(t, report.FormatProm, cfg.Format, "flag beats the environment")
	assert.Equal(t, "run.log", cfg.LogFile)
}

func TestLoadExplicitFile(t *testing.T) {
	_, path := writeHomeConfig(t, "format: cbor\noutput: out.cbor\n")
	cfg, err := Load(path, "", nil)
	require.NoError(t, err)
	assert.Equal(t, report.FormatCBOR, cfg.Format)
	assert.Equal(t, "out.cbor", cfg.Output)
	assert.Equal(t, path, cfg.File)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	home, _ := writeHomeConfig(t, "format: [json\n")
	_, err := Load("", home, nil)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown format", []string{"--format", "html"}, "invalid format"},
		{"xlsx needs output", []string{"--format", "xlsx"}, "requires an output file"},
		{"xlsx with output", []string{"--format", "xlsx", "--output", "cpu.xlsx"}, ""},
		{"two log sinks", []string{"--syslog", "--log-stdout"}, "pick one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("", t.TempDir(), newFlags(t, tt.args...))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
