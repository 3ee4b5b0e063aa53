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

// Package schemas encodes messages in revisioned binary envelopes and decodes
// envelopes from older senders by migrating them forward through a lineage
// of schemas.
//
// An envelope is a fixed-width header declaring the schema the payload was
// encoded with, followed by the payload. Single-axis envelopes carry a
// revision; two-axis envelopes carry a version and a revision. The payload
// runs to the end of the buffer.
//
// A lineage is declared once, at init:
//
//	type ConfigV0 struct{ Workers uint32 }
//	type ConfigV1 struct {
//		Workers uint32
//		GPUs    []string
//	}
//
//	var (
//		configV0     = schemas.Root[ConfigV0](0)
//		ConfigSchema = schemas.Extend(configV0, 1, func(v0 ConfigV0) (ConfigV1, bool) {
//			return ConfigV1{Workers: v0.Workers}, true
//		})
//	)
//
// Receivers built against ConfigSchema decode both revisions:
//
//	cfg, err := schemas.Unmarshal(ConfigSchema, data)
//
// Envelopes from a newer sender fail with CodeFutureSchema rather than
// silently dropping fields.
//
// Schemas are immutable and encoding and decoding are pure functions, so
// everything in this package is safe for concurrent use.
package schemas
