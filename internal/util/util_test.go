// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package util

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandUser(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)
	tests := []struct {
		in   string
		want string
	}{
		{"~", usr.HomeDir},
		{"~/dump.yaml", filepath.Join(usr.HomeDir, "dump.yaml")},
		{"/tmp/~x", "/tmp/~x"},
		{"~other/x", "~other/x"},
		{"relative", "relative"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandUser(tt.in))
		})
	}
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	exists, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = FileExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = FileExists(dir)
	assert.Error(t, err)

	exists, err = DirectoryExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = DirectoryExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = DirectoryExists(file)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(filepath.Join(dir, "out.txt"), []byte("hello"), 0o644)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	_, err = WriteFile(filepath.Join(dir, "missing", "out.txt"), []byte("x"), 0o644)
	assert.ErrorContains(t, err, "does not exist")
}
