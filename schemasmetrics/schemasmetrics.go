// Copyright 2019-2026 The Guppybot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schemasmetrics exports Prometheus metrics for envelope decodes.
package schemasmetrics

import (
	"github.com/guppybot/schemas"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the decode metrics. It implements schemas.Observer, so the
// same Collector can be shared by every schema in a process.
type Collector struct {
	// Decodes counts top-level decodes by target schema and outcome code.
	Decodes *prometheus.CounterVec
	// MigrationSteps records how many migrations successful decodes needed.
	MigrationSteps *prometheus.HistogramVec
}

var _ schemas.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. Pass
// prometheus.DefaultRegisterer to use the global registry.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		Decodes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "schemas",
				Name:      "decodes_total",
				Help:      "Total number of envelope decodes by schema and outcome",
			},
			[]string{"schema", "code"},
		),
		MigrationSteps: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "schemas",
				Name:      "migration_steps",
				Help:      "Number of migrations applied per successful decode",
				Buckets:   []float64{0, 1, 2, 4, 8, 16},
			},
			[]string{"schema"},
		),
	}
}

// ObserveDecode implements schemas.Observer.
func (c *Collector) ObserveDecode(event schemas.DecodeEvent) {
	code := schemas.CodeOf(event.Err)
	c.Decodes.WithLabelValues(event.Schema, code.String()).Inc()
	if code == schemas.CodeOK {
		c.MigrationSteps.WithLabelValues(event.Schema).Observe(float64(event.Steps))
	}
}
