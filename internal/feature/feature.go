// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package feature reports named capability flags read from CPUID bits.
package feature

import (
	"github.com/casbin/govaluate"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"cpuident/internal/cpuid"
	"cpuident/internal/vendor"
)

// Flag is one named feature and whether the processor reports it.
type Flag struct {
	Name    string `json:"name" yaml:"name" cbor:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled" cbor:"enabled"`
}

// Set holds the result of Detect. It is not modified after construction.
type Set struct {
	flags   []Flag
	tracked mapset.Set[string]
	enabled mapset.Set[string]
}

// Detect evaluates every definition against the probe. A feature whose leaf
// is beyond the maximum reported for its range is absent and the leaf is
// not queried.
func Detect(p cpuid.Probe, v vendor.Vendor) Set {
	return detect(p, v, Definitions)
}

func detect(p cpuid.Probe, v vendor.Vendor, defs []Definition) Set {
	s := Set{
		flags:   make([]Flag, 0, len(defs)),
		tracked: mapset.NewThreadUnsafeSet[string](),
		enabled: mapset.NewThreadUnsafeSet[string](),
	}
	type leafKey struct{ leaf, subleaf uint32 }
	cache := make(map[leafKey]cpuid.Registers)
	for _, d := range defs {
		on := false
		if cpuid.Available(p, d.Leaf) {
			k := leafKey{d.Leaf, d.Subleaf}
			regs, ok := cache[k]
			if !ok {
				regs = p.Query(d.Leaf, d.Subleaf)
				cache[k] = regs
			}
			on = regs.Get(d.Register)&(1<<d.Bit) != 0
			if on && d.Applies != nil {
				on = d.Applies(v)
			}
		}
		s.flags = append(s.flags, Flag{Name: d.Name, Enabled: on})
		s.tracked.Add(d.Name)
		if on {
			s.enabled.Add(d.Name)
		}
	}
	return s
}

// Has reports whether name is present. Unknown names are absent.
func (s Set) Has(name string) bool {
	return s.enabled != nil && s.enabled.Contains(name)
}

// Names returns the present features in definition order.
func (s Set) Names() []string {
	var names []string
	for _, f := range s.flags {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	return names
}

// All returns every tracked feature in definition order.
func (s Set) All() []Flag {
	out := make([]Flag, len(s.flags))
	copy(out, s.flags)
	return out
}

// Map returns a name to presence copy.
func (s Set) Map() map[string]bool {
	out := make(map[string]bool, len(s.flags))
	for _, f := range s.flags {
		out[f.Name] = f.Enabled
	}
	return out
}

// Enabled returns a copy of the present features as a set.
func (s Set) Enabled() mapset.Set[string] {
	if s.enabled == nil {
		return mapset.NewThreadUnsafeSet[string]()
	}
	return s.enabled.Clone()
}

// Len is the number of tracked features.
func (s Set) Len() int {
	return len(s.flags)
}

// Eval evaluates a boolean expression over feature names, for example
// "avx2 && (sse42 || sse41)". Names that are not tracked evaluate false.
func (s Set) Eval(expression string) (bool, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return false, errors.Wrapf(err, "failed to parse feature expression %q", expression)
	}
	params := make(map[string]any)
	for _, name := range expr.Vars() {
		params[name] = s.Has(name)
	}
	result, err := expr.Evaluate(params)
	if err != nil {
		return false, errors.Wrapf(err, "failed to evaluate feature expression %q", expression)
	}
	b, ok := result.(bool)
	if !ok {
		return false, errors.Errorf("feature expression %q is not boolean, got %v", expression, result)
	}
	return b, nil
}
