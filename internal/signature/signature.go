// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package signature decodes the processor signature word returned in EAX by
// the processor info leaf (CPUID leaf 1) into its family, model and stepping
// fields, and derives the display values used by vendor documentation.
package signature

import "fmt"

// bit layout of the processor signature word
const (
	steppingShift       = 0
	modelShift          = 4
	familyShift         = 8
	typeShift           = 12
	extendedModelShift  = 16
	extendedFamilyShift = 20

	nibbleMask = 0xF
	typeMask   = 0x3
	byteMask   = 0xFF

	// MaxFamily is the largest value of the 4-bit family field. Only this
	// family value is extended by the extended family field.
	MaxFamily = 0xF
)

// ProcessorType values found in bits 12-13
const (
	TypeOriginalOEM = 0
	TypeOverDrive   = 1
	TypeDual        = 2
)

// Raw holds the fields exactly as they are sliced from the signature word.
type Raw struct {
	ExtendedFamily uint32 `json:"extended_family" yaml:"extended_family"`
	Family         uint32 `json:"family" yaml:"family"`
	ExtendedModel  uint32 `json:"extended_model" yaml:"extended_model"`
	Model          uint32 `json:"model" yaml:"model"`
	Stepping       uint32 `json:"stepping" yaml:"stepping"`
	Type           uint32 `json:"type" yaml:"type"`
}

// Display holds the family and model values after the coalescing rule has
// been applied.
type Display struct {
	Family   uint32 `json:"family" yaml:"family"`
	Model    uint32 `json:"model" yaml:"model"`
	Stepping uint32 `json:"stepping" yaml:"stepping"`
}

// Decode extracts the signature fields from the processor info word.
func Decode(eax uint32) Raw {
	return Raw{
		Stepping:       (eax >> steppingShift) & nibbleMask,
		Model:          (eax >> modelShift) & nibbleMask,
		Family:         (eax >> familyShift) & nibbleMask,
		Type:           (eax >> typeShift) & typeMask,
		ExtendedModel:  (eax >> extendedModelShift) & nibbleMask,
		ExtendedFamily: (eax >> extendedFamilyShift) & byteMask,
	}
}

// Encode packs the fields back into their bit positions. Fields wider than
// their slot are truncated. Reserved bits are always zero.
func Encode(r Raw) uint32 {
	return (r.Stepping&nibbleMask)<<steppingShift |
		(r.Model&nibbleMask)<<modelShift |
		(r.Family&nibbleMask)<<familyShift |
		(r.Type&typeMask)<<typeShift |
		(r.ExtendedModel&nibbleMask)<<extendedModelShift |
		(r.ExtendedFamily&byteMask)<<extendedFamilyShift
}

// Display applies the coalescing rule: the extended family is added only when
// the family field is 0xF, and the extended model is prepended only when the
// family field is 6 or 0xF.
func (r Raw) Display() Display {
	d := Display{
		Family:   r.Family,
		Model:    r.Model,
		Stepping: r.Stepping,
	}
	if r.Family == MaxFamily {
		d.Family = r.Family + r.ExtendedFamily
	}
	if r.Family == 0x6 || r.Family == MaxFamily {
		d.Model = r.ExtendedModel<<4 + r.Model
	}
	return d
}

// IsZero reports whether every field is zero, which is what a processor
// without the identification instruction yields.
func (r Raw) IsZero() bool {
	return r == Raw{}
}

// IsOverDrive reports whether the processor type marks an OverDrive part.
func (r Raw) IsOverDrive() bool {
	return r.Type == TypeOverDrive
}

// String returns the raw fields in (extended family, family, extended model,
// model, stepping) order.
func (r Raw) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d, %d)", r.ExtendedFamily, r.Family, r.ExtendedModel, r.Model, r.Stepping)
}

func (d Display) String() string {
	return fmt.Sprintf("Family %Xh, Model %Xh, Stepping %Xh", d.Family, d.Model, d.Stepping)
}
