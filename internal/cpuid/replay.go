// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package cpuid

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// limits applied when recording a processor
const (
	maxDumpLeaves    = 64
	maxDumpSubleaves = 16
)

// Leaf is one recorded query and its result.
type Leaf struct {
	Leaf    uint32 `yaml:"leaf"`
	Subleaf uint32 `yaml:"subleaf"`
	EAX     uint32 `yaml:"eax"`
	EBX     uint32 `yaml:"ebx"`
	ECX     uint32 `yaml:"ecx"`
	EDX     uint32 `yaml:"edx"`
}

func (l Leaf) Registers() Registers {
	return Registers{EAX: l.EAX, EBX: l.EBX, ECX: l.ECX, EDX: l.EDX}
}

// Snapshot is the recorded state of one processor.
type Snapshot struct {
	Arch         string `yaml:"arch"`
	HasCPUID     bool   `yaml:"has_cpuid"`
	LegacyVendor bool   `yaml:"legacy_vendor"`
	I386         bool   `yaml:"is_386,omitempty"`
	Leaves       []Leaf `yaml:"leaves"`
}

type leafKey struct {
	leaf, subleaf uint32
}

// Replay is a probe that answers from a Snapshot. Leaves that were not
// recorded answer zero.
//
// A snapshot of a legacy vendor part taken with the instruction disabled
// reports no support until EnableLegacyVendorSupport is called, after which
// its recorded leaves become visible.
type Replay struct {
	snapshot Snapshot
	regs     map[leafKey]Registers
	enabled  bool
}

// NewReplay builds a probe from s. When a leaf/subleaf pair is recorded more
// than once the last record wins.
func NewReplay(s Snapshot) *Replay {
	r := &Replay{
		snapshot: s,
		regs:     make(map[leafKey]Registers, len(s.Leaves)),
	}
	for _, l := range s.Leaves {
		r.regs[leafKey{l.Leaf, l.Subleaf}] = l.Registers()
	}
	return r
}

// ParseSnapshot decodes a YAML dump.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(err, "failed to parse cpuid dump")
	}
	return s, nil
}

// LoadReplay reads a YAML dump from path and returns a probe for it.
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cpuid dump %s", path)
	}
	s, err := ParseSnapshot(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	slog.Debug("loaded cpuid dump", slog.String("path", path), slog.Int("leaves", len(s.Leaves)))
	return NewReplay(s), nil
}

// Snapshot returns the recording the probe answers from.
func (r *Replay) Snapshot() Snapshot {
	return r.snapshot
}

func (r *Replay) HasSupport() bool {
	if r.snapshot.HasCPUID {
		return true
	}
	return r.enabled && r.snapshot.LegacyVendor && len(r.regs) > 0
}

func (r *Replay) DetectLegacyVendor() bool {
	return r.snapshot.LegacyVendor
}

func (r *Replay) EnableLegacyVendorSupport() {
	r.enabled = true
}

func (r *Replay) Is386() bool {
	return r.snapshot.I386
}

func (r *Replay) Query(leaf, subleaf uint32) Registers {
	if !r.HasSupport() {
		return Registers{}
	}
	return r.regs[leafKey{leaf, subleaf}]
}

// Marshal encodes the snapshot as YAML.
func (s Snapshot) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cpuid dump")
	}
	return out, nil
}

// Dump records every leaf p reports, up to 64 leaves in each of the basic and
// extended ranges. Leaves with subleaves are walked until they report no
// further entries; all-zero subleaves are left out since a replay answers zero
// for them anyway. The two diagnostic leaves are recorded when they answer.
func Dump(p Probe, arch string) Snapshot {
	s := Snapshot{
		Arch:         arch,
		HasCPUID:     p.HasSupport(),
		LegacyVendor: p.DetectLegacyVendor(),
	}
	if !p.HasSupport() {
		s.I386 = Is386(p)
		return s
	}
	record := func(leaf, subleaf uint32, regs Registers) {
		s.Leaves = append(s.Leaves, Leaf{
			Leaf: leaf, Subleaf: subleaf,
			EAX: regs.EAX, EBX: regs.EBX, ECX: regs.ECX, EDX: regs.EDX,
		})
	}
	walk := func(first, last uint32) {
		if last-first >= maxDumpLeaves {
			last = first + maxDumpLeaves - 1
		}
		for leaf := first; leaf <= last; leaf++ {
			regs := p.Query(leaf, 0)
			record(leaf, 0, regs)
			if lastSubleaf(leaf, regs) {
				continue
			}
			for sub := uint32(1); sub < subleafLimit(leaf, regs); sub++ {
				next := p.Query(leaf, sub)
				if lastSubleaf(leaf, next) {
					break
				}
				if next.IsZero() {
					continue
				}
				record(leaf, sub, next)
			}
		}
	}
	walk(LeafVendor, MaxBasicLeaf(p))
	if maxExt := MaxExtendedLeaf(p); maxExt != 0 {
		walk(ExtendedBase, maxExt)
	} else {
		record(ExtendedBase, 0, p.Query(ExtendedBase, 0))
	}
	for _, leaf := range []uint32{LeafRiseEasterEgg, LeafAMDEasterEgg} {
		if regs := p.Query(leaf, 0); !regs.IsZero() && !recorded(s.Leaves, leaf) {
			record(leaf, 0, regs)
		}
	}
	slog.Debug("recorded cpuid leaves", slog.Int("count", len(s.Leaves)))
	return s
}

func recorded(leaves []Leaf, leaf uint32) bool {
	for _, l := range leaves {
		if l.Leaf == leaf {
			return true
		}
	}
	return false
}

// subleafLimit returns how many subleaves of leaf to record at most, given
// the answer for subleaf 0.
func subleafLimit(leaf uint32, first Registers) uint32 {
	switch leaf {
	case LeafExtFeatures:
		return min(first.EAX+1, maxDumpSubleaves)
	case LeafCacheParams, LeafTopology, LeafXSave:
		return maxDumpSubleaves
	}
	return 1
}

// lastSubleaf reports whether regs terminates the subleaf list of leaf.
func lastSubleaf(leaf uint32, regs Registers) bool {
	switch leaf {
	case LeafCacheParams:
		// null cache type
		return regs.EAX&0x1F == 0
	case LeafTopology:
		// invalid level type
		return regs.ECX&0xFF00 == 0
	}
	return false
}
