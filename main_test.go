// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartProfiling(t *testing.T) {
	dir := t.TempDir()
	stop, err := startProfiling(dir)
	require.NoError(t, err)
	require.NoError(t, stop())
	for _, name := range []string{"cpu.prof", "mem.prof"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestStartProfilingMissingDirectory(t *testing.T) {
	_, err := startProfiling(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to create cpu profile")
}
