// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpuident/internal/cpuid"
	"cpuident/internal/report"
	"cpuident/internal/uarch"
)

func writeSnapshot(t *testing.T, s cpuid.Snapshot) string {
	t.Helper()
	data, err := s.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadReplay(t *testing.T) {
	snapshot := cpuid.Snapshot{
		HasCPUID: true,
		Leaves: []cpuid.Leaf{
			{Leaf: 0x0, EAX: 0x1, EBX: 0x68747541, ECX: 0x444d4163, EDX: 0x69746e65},
			{Leaf: 0x1, EAX: 0x00810f10},
		},
	}
	src, err := Load(context.Background(), writeSnapshot(t, snapshot))
	require.NoError(t, err)
	assert.Equal(t, "amd64", src.Profile.Arch, "missing arch defaults to amd64")
	assert.Equal(t, uarch.Zen, src.Profile.MicroArch.MicroArch)
	assert.Equal(t, "RavenRidge", src.Profile.MicroArch.Codename)
	assert.Equal(t, snapshot.Leaves, src.Snapshot().Leaves)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")

	_, err = Load(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, "not a file")
}

func TestLoadHost(t *testing.T) {
	src, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, src.Profile.Arch)
	assert.NotNil(t, src.Probe)
	assert.Equal(t, src.Profile.Arch, src.Snapshot().Arch)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", report.FormatCBOR, []byte{0xa1}))
	assert.Equal(t, []byte{0xa1}, buf.Bytes())

	path := filepath.Join(t.TempDir(), "cpu.txt")
	require.NoError(t, Write(&buf, path, report.FormatText, []byte("text")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "text", string(got))

	err = Write(&buf, filepath.Join(t.TempDir(), "nope", "cpu.txt"), report.FormatText, nil)
	assert.Error(t, err)
}

func TestExitError(t *testing.T) {
	assert.EqualError(t, ExitError{Code: 1}, "exit status 1")
	cause := errors.New("bad expression")
	err := ExitError{Code: 2, Err: cause}
	assert.EqualError(t, err, "bad expression")
	assert.ErrorIs(t, err, cause)
}
