// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"cpuident/internal/cpuid"
	"cpuident/internal/profile"
	"cpuident/internal/report"
	"cpuident/internal/util"
)

// Source is the processor a command reports on: a recorded dump when a
// replay file is configured, otherwise the host.
type Source struct {
	Probe   cpuid.Probe
	Profile profile.Profile
	replay  *cpuid.Replay
}

// Load builds the profile from the replay file when one is given, otherwise
// from the host processor.
func Load(ctx context.Context, replayPath string) (Source, error) {
	if replayPath != "" {
		path, err := util.AbsPath(replayPath)
		if err != nil {
			return Source{}, err
		}
		exists, err := util.FileExists(path)
		if err != nil {
			return Source{}, err
		}
		if !exists {
			return Source{}, errors.Errorf("replay file %s does not exist", path)
		}
		replay, err := cpuid.LoadReplay(path)
		if err != nil {
			return Source{}, err
		}
		arch := replay.Snapshot().Arch
		if arch == "" {
			arch = "amd64"
		}
		slog.Debug("using recorded processor", slog.String("file", path), slog.String("arch", arch))
		return Source{
			Probe:   replay,
			Profile: profile.New(replay, profile.WithArch(arch)),
			replay:  replay,
		}, nil
	}
	prof, err := profile.Detect(ctx)
	if err != nil {
		return Source{}, err
	}
	return Source{Probe: cpuid.Native(), Profile: prof}, nil
}

// Snapshot returns the leaves the profile was built from.
func (s Source) Snapshot() cpuid.Snapshot {
	if s.replay != nil {
		return s.replay.Snapshot()
	}
	return cpuid.Dump(s.Probe, runtime.GOARCH)
}

// Write sends out to path, or to w when path is empty. Binary formats are
// refused when w is a terminal.
func Write(w io.Writer, path string, format string, out []byte) error {
	if path == "" {
		if f, ok := w.(*os.File); ok && report.IsBinary(format) && report.TerminalWidth(f) > 0 {
			return errors.Errorf("refusing to write %s output to a terminal, use --%s", format, FlagOutputName)
		}
		_, err := w.Write(out)
		return errors.Wrap(err, "failed to write report")
	}
	absPath, err := util.WriteFile(path, out, 0o644) // #nosec G306
	if err != nil {
		return err
	}
	slog.Info("wrote report", slog.String("file", absPath), slog.String("format", format))
	return nil
}
