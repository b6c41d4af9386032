// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"cpuident/internal/profile"
	"cpuident/internal/uarch"
)

// SignatureRecord is the serialized form of the processor signature.
type SignatureRecord struct {
	Family         uint32 `json:"family" yaml:"family" cbor:"family"`
	Model          uint32 `json:"model" yaml:"model" cbor:"model"`
	Stepping       uint32 `json:"stepping" yaml:"stepping" cbor:"stepping"`
	ExtendedFamily uint32 `json:"extended_family" yaml:"extended_family" cbor:"extended_family"`
	ExtendedModel  uint32 `json:"extended_model" yaml:"extended_model" cbor:"extended_model"`
	Type           uint32 `json:"type" yaml:"type" cbor:"type"`
	Display        string `json:"display" yaml:"display" cbor:"display"`
}

// Record is the serialized form of a profile used by the json, yaml and cbor
// formats.
type Record struct {
	Arch         string           `json:"arch" yaml:"arch" cbor:"arch"`
	Vendor       string           `json:"vendor" yaml:"vendor" cbor:"vendor"`
	VendorString string           `json:"vendor_string,omitempty" yaml:"vendor_string,omitempty" cbor:"vendor_string,omitempty"`
	Brand        string           `json:"brand" yaml:"brand" cbor:"brand"`
	Model        string           `json:"model" yaml:"model" cbor:"model"`
	HasCPUID     bool             `json:"has_cpuid" yaml:"has_cpuid" cbor:"has_cpuid"`
	Signature    *SignatureRecord `json:"signature,omitempty" yaml:"signature,omitempty" cbor:"signature,omitempty"`
	MicroArch    uarch.Entry      `json:"microarchitecture" yaml:"microarchitecture" cbor:"microarchitecture"`
	Threads      int              `json:"threads" yaml:"threads" cbor:"threads"`
	BrandID      uint32           `json:"brand_id,omitempty" yaml:"brand_id,omitempty" cbor:"brand_id,omitempty"`
	EasterEgg    string           `json:"easter_egg,omitempty" yaml:"easter_egg,omitempty" cbor:"easter_egg,omitempty"`
	IDRegister   string           `json:"id_register,omitempty" yaml:"id_register,omitempty" cbor:"id_register,omitempty"`
	Features     []string         `json:"features" yaml:"features" cbor:"features"`
}

// NewRecord flattens p for serialization.
func NewRecord(p profile.Profile) Record {
	r := Record{
		Arch:         p.Arch,
		Vendor:       string(p.Vendor),
		VendorString: p.VendorString,
		Brand:        p.Brand.Name(),
		Model:        p.DisplayModel(),
		HasCPUID:     p.HasCPUID,
		MicroArch:    p.MicroArch,
		Threads:      p.Threads,
		BrandID:      p.BrandID,
		EasterEgg:    p.EasterEgg,
		IDRegister:   p.IDRegister.String(),
		Features:     p.Features.Names(),
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	if profile.IsX86(p.Arch) {
		r.Signature = &SignatureRecord{
			Family:         p.Display.Family,
			Model:          p.Display.Model,
			Stepping:       p.Display.Stepping,
			ExtendedFamily: p.Signature.ExtendedFamily,
			ExtendedModel:  p.Signature.ExtendedModel,
			Type:           p.Signature.Type,
			Display:        p.Display.String(),
		}
	}
	return r
}

func createJSONRecord(r Record) (out []byte, err error) {
	out, err = json.MarshalIndent(r, "", " ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal json report")
	}
	return append(out, '\n'), nil
}

func createYAMLRecord(r Record) (out []byte, err error) {
	out, err = yaml.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal yaml report")
	}
	return out, nil
}

func createCBORRecord(r Record) (out []byte, err error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cbor encoder")
	}
	out, err = em.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cbor report")
	}
	return out, nil
}

// createJSONReport writes each table as a list of records keyed by field name
func createJSONReport(tables []Table) (out []byte, err error) {
	type outRecord map[string]string
	type outTable []outRecord
	type outReport map[string]outTable
	oReport := make(outReport)
	for _, t := range tables {
		var oTable outTable
		if len(t.Fields) == 0 {
			oReport[t.Name] = oTable
			continue
		}
		numRecords := len(t.Fields[0].Values)
		for recordIdx := range numRecords {
			oRecord := make(outRecord)
			for _, f := range t.Fields {
				oRecord[f.Name] = f.Values[recordIdx]
			}
			oTable = append(oTable, oRecord)
		}
		oReport[t.Name] = oTable
	}
	out, err = json.MarshalIndent(oReport, "", " ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal json report")
	}
	return append(out, '\n'), nil
}
