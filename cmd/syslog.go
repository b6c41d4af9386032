//go:build !windows && !plan9

package cmd

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"context"
	"fmt"
	"log/slog"
	"log/syslog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SyslogHandler is a slog.Handler that logs to syslog.
type SyslogHandler struct {
	writer     *syslog.Writer
	logLeveler slog.Leveler
	addSource  bool
	attrs      []slog.Attr
}

func NewSyslogHandler(logOpts *slog.HandlerOptions) (*SyslogHandler, error) {
	writer, err := syslog.New(syslog.LOG_INFO|syslog.LOG_USER, filepath.Base(os.Args[0]))
	if err != nil {
		return nil, err
	}
	return &SyslogHandler{writer: writer, logLeveler: logOpts.Level, addSource: logOpts.AddSource}, nil
}

// format renders r the way the text handler does, with the source file
// relative to the working directory.
func (h *SyslogHandler) format(r slog.Record) string {
	var sb strings.Builder
	sb.WriteString("level=" + r.Level.String())
	if r.PC != 0 && h.addSource {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		filePath := f.File
		if wd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(wd, f.File); err == nil && !strings.HasPrefix(rel, "..") {
				filePath = rel
			}
		}
		sb.WriteString(fmt.Sprintf(" source=%s:%d", filePath, f.Line))
	}
	sb.WriteString(fmt.Sprintf(" msg=%q", r.Message))
	for _, attr := range h.attrs {
		sb.WriteString(fmt.Sprintf(" %s=%q", attr.Key, attr.Value.String()))
	}
	r.Attrs(func(attr slog.Attr) bool {
		sb.WriteString(fmt.Sprintf(" %s=%q", attr.Key, attr.Value.String()))
		return true
	})
	return sb.String()
}

func (h *SyslogHandler) Handle(ctx context.Context, r slog.Record) error {
	msg := h.format(r)
	switch {
	case r.Level < slog.LevelInfo:
		return h.writer.Debug(msg)
	case r.Level < slog.LevelWarn:
		return h.writer.Info(msg)
	case r.Level < slog.LevelError:
		return h.writer.Warning(msg)
	default:
		return h.writer.Err(msg)
	}
}

func (h *SyslogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *SyslogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *SyslogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.logLeveler.Level()
}
