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

package schemasmetrics

import (
	"testing"

	"github.com/guppybot/schemas"
	"github.com/guppybot/schemas/internal/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type cpuV0 struct {
	Count uint32 `cbor:"1,keyasint"`
}

type cpuV1 struct {
	Count uint64 `cbor:"1,keyasint"`
	Arch  string `cbor:"2,keyasint"`
}

func TestCollector(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	collector := New(reg)
	v0 := schemas.Root[cpuV0](0, schemas.WithName("CPUV0"))
	v1 := schemas.Extend(v0, 1, func(prev cpuV0) (cpuV1, bool) {
		return cpuV1{Count: uint64(prev.Count), Arch: "x86_64"}, true
	}, schemas.WithName("CPUV1"), schemas.WithObserver(collector))

	old, err := schemas.Marshal(v0, cpuV0{Count: 8})
	assert.Nil(t, err)
	current, err := schemas.Marshal(v1, cpuV1{Count: 8, Arch: "ppc64le"})
	assert.Nil(t, err)
	for i := 0; i < 3; i++ {
		_, err = schemas.Unmarshal(v1, old)
		assert.Nil(t, err)
	}
	_, err = schemas.Unmarshal(v1, current)
	assert.Nil(t, err)
	_, err = schemas.Unmarshal(v1, []byte{0})
	assert.NotNil(t, err)

	assert.Equal(t, testutil.ToFloat64(collector.Decodes.WithLabelValues("CPUV1", "ok")), 4.0)
	assert.Equal(t, testutil.ToFloat64(collector.Decodes.WithLabelValues("CPUV1", "header_read")), 1.0)
	assert.Equal(t, testutil.CollectAndCount(collector.Decodes), 2)
	assert.Equal(t, testutil.CollectAndCount(collector.MigrationSteps), 1)

	families, err := reg.Gather()
	assert.Nil(t, err)
	for _, family := range families {
		if family.GetName() != "schemas_migration_steps" {
			continue
		}
		assert.Len(t, family.GetMetric(), 1)
		h := family.GetMetric()[0].GetHistogram()
		assert.Equal(t, h.GetSampleCount(), uint64(4))
		assert.Equal(t, h.GetSampleSum(), 3.0)
	}
}

func TestCollectorRegistersOnce(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
