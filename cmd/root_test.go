// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpuident/internal/app"
	"cpuident/internal/cpuid"
	"cpuident/internal/report"
)

var skylakeDump = filepath.Join("testdata", "skylake_sp.yaml")

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the command tree with args and returns what it wrote to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDefaultCommandRendersTable(t *testing.T) {
	out, err := execute(t, "--replay", skylakeDump)
	require.NoError(t, err)
	assert.Contains(t, out, "Processor\n=========\n")
	assert.Regexp(t, `(?m)^Codename:\s+Skylake-SP$`, out)
}

func TestTableJSON(t *testing.T) {
	out, err := execute(t, "table", "--replay", skylakeDump, "--format", "json")
	require.NoError(t, err)
	var r report.Record
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Intel", r.Vendor)
	assert.Equal(t, "Skylake-SP", r.MicroArch.Codename)
}

func TestTableToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.xlsx")
	out, err := execute(t, "--replay", skylakeDump, "--format", "xlsx", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestXlsxRequiresOutput(t *testing.T) {
	_, err := execute(t, "--replay", skylakeDump, "--format", "xlsx")
	assert.ErrorContains(t, err, "requires an output file")
}

func TestDebug(t *testing.T) {
	out, err := execute(t, "debug", "--replay", skylakeDump)
	require.NoError(t, err)
	assert.Contains(t, out, "Leaves\n======\n")
	assert.Regexp(t, `(?m)^Table:\s+Intel$`, out)
	assert.Regexp(t, `(?m)^00000001\s+00000000\s+00050654\s+`, out)

	assert.NotContains(t, out, "Classification Rows")

	_, err = execute(t, "debug", "--replay", skylakeDump, "--format", "yaml")
	assert.Error(t, err)

	out, err = execute(t, "debug", "--replay", skylakeDump, "--rows")
	require.NoError(t, err)
	assert.Contains(t, out, "Classification Rows\n===================\n")
	assert.Regexp(t, `(?m)^Intel\s+\d+\s+\(0, 6, 5, 5, 0\.\.=4\)\s+Skylake\s+Skylake-SP\s+14nm\s*$`, out)
}

func TestDump(t *testing.T) {
	out, err := execute(t, "dump", "--replay", skylakeDump)
	require.NoError(t, err)
	got, err := cpuid.ParseSnapshot([]byte(out))
	require.NoError(t, err)
	want, err := cpuid.LoadReplay(skylakeDump)
	require.NoError(t, err)
	assert.Equal(t, want.Snapshot().Leaves, got.Leaves)
	assert.True(t, got.HasCPUID)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		expr     string
		out      string
		wantCode int
	}{
		{"avx512f && sse42", "true\n", 0},
		{"sha", "false\n", 1},
		{"avx2 &&", "", 2},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			out, err := execute(t, "check", "--replay", skylakeDump, tt.expr)
			assert.Equal(t, tt.out, out)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			var exitErr app.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
		})
	}
}

func TestCheckNeedsExpression(t *testing.T) {
	_, err := execute(t, "check", "--replay", skylakeDump)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version "+gVersion)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuident.log")
	_, err := execute(t, "--replay", skylakeDump, "--debug", "--log-file", path)
	require.NoError(t, err)
	assert.Nil(t, gLogFile)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting up")
	assert.Contains(t, string(data), "using recorded processor")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuident.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o600))
	out, err := execute(t, "--config", path, "--replay", skylakeDump)
	require.NoError(t, err)
	assert.Contains(t, out, "codename: Skylake-SP")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		stderr string
	}{
		{"silent", app.ExitError{Code: 1}, 1, ""},
		{"with cause", app.ExitError{Code: 2, Err: errors.New("bad expression")}, 2, "Error: bad expression\n"},
		{"wrapped", errors.Wrap(app.ExitError{Code: 1}, "check"), 1, ""},
		{"plain", errors.New("boom"), 1, "Error: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.code, exitCode(tt.err, &stderr))
			assert.Equal(t, tt.stderr, stderr.String())
		})
	}
}
