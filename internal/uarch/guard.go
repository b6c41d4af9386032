// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package uarch

import (
	"fmt"
	"slices"
	"strings"

	"cpuident/internal/signature"
)

type guardKind uint8

const (
	guardAny guardKind = iota
	guardIs
	guardRange
	guardOneOf
)

// Guard accepts or rejects one signature field. The zero value accepts
// every value.
type Guard struct {
	kind   guardKind
	lo, hi uint32
	values []uint32
}

// Any accepts every value.
func Any() Guard {
	return Guard{}
}

// Is accepts exactly v.
func Is(v uint32) Guard {
	return Guard{kind: guardIs, lo: v, hi: v}
}

// Range accepts lo through hi inclusive.
func Range(lo, hi uint32) Guard {
	return Guard{kind: guardRange, lo: lo, hi: hi}
}

// OneOf accepts any of the listed values.
func OneOf(values ...uint32) Guard {
	return Guard{kind: guardOneOf, values: values}
}

// Accepts reports whether v passes the guard.
func (g Guard) Accepts(v uint32) bool {
	switch g.kind {
	case guardAny:
		return true
	case guardIs, guardRange:
		return v >= g.lo && v <= g.hi
	case guardOneOf:
		return slices.Contains(g.values, v)
	}
	return false
}

// IsAny reports whether the guard is the wildcard.
func (g Guard) IsAny() bool {
	return g.kind == guardAny
}

func (g Guard) String() string {
	switch g.kind {
	case guardIs:
		return fmt.Sprint(g.lo)
	case guardRange:
		return fmt.Sprintf("%d..=%d", g.lo, g.hi)
	case guardOneOf:
		parts := make([]string, len(g.values))
		for i, v := range g.values {
			parts[i] = fmt.Sprint(v)
		}
		return strings.Join(parts, "|")
	}
	return "_"
}

// Pattern guards the five raw signature fields.
type Pattern struct {
	ExtFamily Guard
	Family    Guard
	ExtModel  Guard
	Model     Guard
	Stepping  Guard
}

// sig builds a pattern in (extended family, family, extended model, model,
// stepping) order.
func sig(extFamily, family, extModel, model, stepping Guard) Pattern {
	return Pattern{
		ExtFamily: extFamily,
		Family:    family,
		ExtModel:  extModel,
		Model:     model,
		Stepping:  stepping,
	}
}

// catchAll matches every signature.
var catchAll = Pattern{}

// Matches reports whether every field of raw passes its guard.
func (p Pattern) Matches(raw signature.Raw) bool {
	return p.ExtFamily.Accepts(raw.ExtendedFamily) &&
		p.Family.Accepts(raw.Family) &&
		p.ExtModel.Accepts(raw.ExtendedModel) &&
		p.Model.Accepts(raw.Model) &&
		p.Stepping.Accepts(raw.Stepping)
}

// IsCatchAll reports whether the pattern matches every signature.
func (p Pattern) IsCatchAll() bool {
	return p.ExtFamily.IsAny() && p.Family.IsAny() && p.ExtModel.IsAny() && p.Model.IsAny() && p.Stepping.IsAny()
}

func (p Pattern) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %s)", p.ExtFamily, p.Family, p.ExtModel, p.Model, p.Stepping)
}

// Row pairs a pattern with the entry it classifies to.
type Row struct {
	Pattern Pattern
	Entry   Entry
}

// Table is an ordered list of rows. Rows are evaluated top to bottom and
// the first full match wins, so stepping-qualified rows must come before the
// broader rows for the same model.
type Table struct {
	Name string
	Rows []Row
}

// Match returns the entry of the first matching row and its index. When no
// row matches it returns the Unknown entry and -1.
func (t Table) Match(raw signature.Raw) (Entry, int) {
	for i, row := range t.Rows {
		if row.Pattern.Matches(raw) {
			return row.Entry, i
		}
	}
	return UnknownEntry, -1
}

// Classify returns the entry of the first matching row.
func (t Table) Classify(raw signature.Raw) Entry {
	e, _ := t.Match(raw)
	return e
}
