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

package schemas

import "fmt"

// An Option configures a Schema or VersionedSchema.
type Option interface {
	apply(*config)
}

// WithCodec sets the codec used for the schema's payload. Schemas use
// CBORCodec by default.
//
// Each schema in a lineage has its own codec, so a lineage can change
// encodings between revisions.
func WithCodec(codec Codec) Option {
	return &codecOption{Codec: codec}
}

// WithName overrides the schema's name, which otherwise defaults to the name
// of its Go type. Names appear in errors and observer events.
func WithName(name string) Option {
	return &nameOption{Name: name}
}

// WithObserver registers an Observer for every top-level decode that targets
// the schema. Decodes of predecessors during migration aren't reported
// separately.
func WithObserver(observer Observer) Option {
	return &observerOption{Observer: observer}
}

type config struct {
	name     string
	codec    Codec
	observer Observer
}

func newConfig[T any](options []Option) config {
	var zero T
	cfg := config{
		name:  fmt.Sprintf("%T", zero),
		codec: CBORCodec{},
	}
	for _, opt := range options {
		opt.apply(&cfg)
	}
	return cfg
}

type codecOption struct {
	Codec Codec
}

func (o *codecOption) apply(cfg *config) {
	if o.Codec != nil {
		cfg.codec = o.Codec
	}
}

type nameOption struct {
	Name string
}

func (o *nameOption) apply(cfg *config) {
	if o.Name != "" {
		cfg.name = o.Name
	}
}

type observerOption struct {
	Observer Observer
}

func (o *observerOption) apply(cfg *config) {
	cfg.observer = o.Observer
}
