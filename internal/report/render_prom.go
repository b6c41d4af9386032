// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"cpuident/internal/profile"
)

const promMetricPrefix = "cpuident_"

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// createPromReport writes p in the prometheus text exposition format, for
// use with the node exporter textfile collector.
func createPromReport(p profile.Profile) (out []byte, err error) {
	registry := prometheus.NewRegistry()

	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: promMetricPrefix + "processor_info",
			Help: "Processor identification, always 1",
		},
		[]string{"arch", "vendor", "brand", "model", "microarchitecture", "codename", "technology"},
	)
	info.WithLabelValues(
		p.Arch,
		string(p.Vendor),
		p.Brand.Name(),
		p.DisplayModel(),
		string(p.MicroArch.MicroArch),
		p.MicroArch.Codename,
		p.MicroArch.Technology,
	).Set(1)

	signature := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: promMetricPrefix + "processor_signature",
			Help: "Displayed family, model and stepping",
		},
		[]string{"field"},
	)
	signature.WithLabelValues("family").Set(float64(p.Display.Family))
	signature.WithLabelValues("model").Set(float64(p.Display.Model))
	signature.WithLabelValues("stepping").Set(float64(p.Display.Stepping))

	threads := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: promMetricPrefix + "processor_threads",
		Help: "Logical processors per package reported by the processor",
	})
	threads.Set(float64(p.Threads))

	hasCPUID := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: promMetricPrefix + "processor_has_cpuid",
		Help: "Whether the processor executes the identification instruction",
	})
	hasCPUID.Set(boolGauge(p.HasCPUID))

	features := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: promMetricPrefix + "processor_feature",
			Help: "Tracked capability flags, 1 when present",
		},
		[]string{"name"},
	)
	for _, f := range p.Features.All() {
		features.WithLabelValues(f.Name).Set(boolGauge(f.Enabled))
	}

	for _, c := range []prometheus.Collector{info, signature, threads, hasCPUID, features} {
		if err = registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metric")
		}
	}
	var families []*dto.MetricFamily
	families, err = registry.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather metrics")
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, errors.Wrapf(err, "failed to encode metric %s", mf.GetName())
		}
	}
	return buf.Bytes(), nil
}
