// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/pkg/errors"

	"cpuident/cmd"
)

// profileEnv names the directory that receives cpu.prof and mem.prof
const profileEnv = "CPUIDENT_PROFILE"

func main() {
	stop := func() error { return nil }
	if dir := os.Getenv(profileEnv); dir != "" {
		var err error
		if stop, err = startProfiling(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	code := cmd.Execute()
	if err := stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// startProfiling starts a CPU profile in dir. The returned function stops it
// and writes the heap profile next to it.
func startProfiling(dir string) (func() error, error) {
	cpuFile, err := os.Create(filepath.Join(dir, "cpu.prof")) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cpu profile")
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return nil, errors.Wrap(err, "failed to start cpu profile")
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := cpuFile.Close(); err != nil {
			return errors.Wrap(err, "failed to close cpu profile")
		}
		memFile, err := os.Create(filepath.Join(dir, "mem.prof")) // #nosec G304
		if err != nil {
			return errors.Wrap(err, "failed to create heap profile")
		}
		defer memFile.Close()
		return errors.Wrap(pprof.WriteHeapProfile(memFile), "failed to write heap profile")
	}, nil
}
