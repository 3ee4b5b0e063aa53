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

import (
	"errors"
	"fmt"
)

// A Descriptor is the read-only identity of a schema. Both *Schema and
// *VersionedSchema implement it.
type Descriptor interface {
	Name() string
	Version() uint32
	Revision() uint32
}

// A MigrateFunc converts a value of a predecessor schema into a value of its
// successor. Returning false declines the migration, which fails the decode
// with CodeMigrationFailed.
type MigrateFunc[P, T any] func(P) (T, bool)

// NoPrevious terminates every lineage. The oldest schema of a lineage names
// NoPrevious as its predecessor, and the NoPrevious schema is its own
// predecessor at revision zero. NoPrevious has no valid encoding: decoding
// into it always fails with CodeCodec, so it's never the result of a
// successful decode.
type NoPrevious struct{}

var errNoPrevious = errors.New("schemas.NoPrevious has no values")

// noPreviousCodec refuses to encode or decode anything.
type noPreviousCodec struct{}

func (noPreviousCodec) Name() string                { return "none" }
func (noPreviousCodec) Marshal(any) ([]byte, error) { return nil, errNoPrevious }
func (noPreviousCodec) Unmarshal([]byte, any) error { return errNoPrevious }

// A Schema describes one revision of a single-axis lineage: the Go type T,
// its revision, its predecessor and how to migrate from it, and the codec
// used for T's payload.
//
// Schemas are built once, typically as package-level variables, with Root and
// Extend. They're immutable and safe for concurrent use.
type Schema[T any] struct {
	config
	revision uint32
	previous lineageNode
	// fromPrevious decodes the predecessor at the wire revision and migrates
	// the result to T. It's nil only for the NoPrevious schema.
	fromPrevious func(wire uint32, payload []byte) (T, int, *Error)
}

// lineageNode is a type-erased link in a single-axis lineage.
type lineageNode interface {
	Descriptor
	isNoPrevious() bool
	previousNode() lineageNode
}

var noPreviousSchema = newNoPreviousSchema()

func newNoPreviousSchema() *Schema[NoPrevious] {
	s := &Schema[NoPrevious]{
		config: config{name: "NoPrevious", codec: noPreviousCodec{}},
	}
	s.previous = s
	return s
}

// Root starts a lineage. The returned schema has no predecessor: envelopes
// older than the given revision can't be decoded as T.
func Root[T any](revision uint32, options ...Option) *Schema[T] {
	never := func(NoPrevious) (T, bool) {
		var zero T
		return zero, false
	}
	return Extend(noPreviousSchema, revision, never, options...)
}

// Extend adds a revision to a lineage. The new schema decodes envelopes at
// its own revision directly and older envelopes by decoding them as previous
// and applying migrate.
//
// Extend panics if previous or migrate is nil, or if revision isn't greater
// than the revision of previous. Lineages are declared at init, so these are
// programming errors.
func Extend[P, T any](previous *Schema[P], revision uint32, migrate MigrateFunc[P, T], options ...Option) *Schema[T] {
	if previous == nil {
		panic("schemas: Extend called with nil previous schema")
	}
	if migrate == nil {
		panic("schemas: Extend called with nil migration")
	}
	s := &Schema[T]{
		config:   newConfig[T](options),
		revision: revision,
		previous: previous,
	}
	if !previous.isNoPrevious() && revision <= previous.revision {
		panic(fmt.Sprintf(
			"schemas: %s revision %d doesn't follow %s revision %d",
			s.name, revision, previous.name, previous.revision,
		))
	}
	s.fromPrevious = func(wire uint32, payload []byte) (T, int, *Error) {
		var zero T
		prev, steps, err := previous.decodeAs(wire, payload)
		if err != nil {
			return zero, steps, err
		}
		value, ok := migrate(prev)
		if !ok {
			return zero, steps, errMigrationFailed(previous, s, Header{Revision: wire})
		}
		return value, steps + 1, nil
	}
	return s
}

// Name returns the schema's name, which defaults to the name of T.
func (s *Schema[T]) Name() string {
	return s.name
}

// Version is always zero for single-axis schemas.
func (s *Schema[T]) Version() uint32 {
	return 0
}

// Revision returns the revision written into envelopes encoded with s.
func (s *Schema[T]) Revision() uint32 {
	return s.revision
}

// Previous returns the predecessor schema. The oldest schema of a lineage
// returns the NoPrevious schema, which returns itself.
func (s *Schema[T]) Previous() Descriptor {
	return s.previous
}

// Codec returns the codec used for T's payload.
func (s *Schema[T]) Codec() Codec {
	return s.codec
}

// Lineage returns s and its predecessors, newest first. The NoPrevious
// schema isn't included.
func (s *Schema[T]) Lineage() []Descriptor {
	var lineage []Descriptor
	var node lineageNode = s
	for !node.isNoPrevious() {
		lineage = append(lineage, node)
		node = node.previousNode()
	}
	return lineage
}

func (s *Schema[T]) isNoPrevious() bool {
	return s.fromPrevious == nil
}

func (s *Schema[T]) previousNode() lineageNode {
	return s.previous
}

// decodeAs decodes payload, declared at the wire revision, as T. It returns
// the number of migrations applied along the way.
func (s *Schema[T]) decodeAs(wire uint32, payload []byte) (T, int, *Error) {
	switch {
	case wire == s.revision:
		value, err := unmarshalPayload[T](s.codec, payload)
		if err != nil {
			return value, 0, errUnmarshal(s, Header{Revision: wire}, s.codec, err)
		}
		return value, 0, nil
	case wire < s.revision:
		return s.fromPrevious(wire, payload)
	default:
		var zero T
		return zero, 0, errFutureRevision(s, Header{Revision: wire})
	}
}
