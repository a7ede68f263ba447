// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Result label values.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// PrometheusRecorder counts client validations by result and reason.
//
// Thread Safety: Safe for concurrent use.
type PrometheusRecorder struct {
	validations *prometheus.CounterVec
}

// NewPrometheusRecorder registers the validation counter with reg. A nil reg
// uses [prometheus.DefaultRegisterer].
//
// Registering twice with the same registerer panics, as with any promauto
// collector.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusRecorder{
		validations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "x509_peer_trust",
			Name:      "client_validations_total",
			Help:      "Total number of client certificate validations",
		}, []string{"result", "reason"}),
	}
}

// RecordValidation records one validation verdict.
func (m *PrometheusRecorder) RecordValidation(accepted bool, reason string) {
	result := ResultRejected
	if accepted {
		result = ResultAccepted
	}
	m.validations.WithLabelValues(result, reason).Inc()
}

// WriteText writes every metric family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
