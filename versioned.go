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

// A VersionedSchema describes one (version, revision) generation of a
// two-axis lineage. Revisions evolve a schema within a version, and versions
// mark breaking changes. Each VersionedSchema has two independent
// predecessors: the previous revision of the same version, and a schema from
// an earlier version. Either may be absent.
//
// Like Schema, a VersionedSchema is built once at init and is immutable.
type VersionedSchema[T any] struct {
	config
	version          uint32
	revision         uint32
	revisionPrevious Descriptor
	versionPrevious  Descriptor
	fromRevision     func(wire Header, payload []byte) (T, int, *Error)
	fromVersion      func(wire Header, payload []byte) (T, int, *Error)
}

type axis uint8

const (
	axisNone axis = iota
	axisRevision
	axisVersion
)

func (a axis) String() string {
	switch a {
	case axisRevision:
		return "revision"
	case axisVersion:
		return "version"
	}
	return "none"
}

// A Predecessor links a VersionedSchema[T] to an older schema along one axis.
// Build them with FromRevision and FromVersion. The zero Predecessor means
// there's no predecessor along that axis.
type Predecessor[T any] struct {
	axis     axis
	previous Descriptor
	// decode decodes the predecessor at the wire identity and migrates the
	// result. ok is false if the migration declined.
	decode func(wire Header, payload []byte) (value T, ok bool, steps int, err *Error)
}

// FromRevision links to the previous revision of the same version.
func FromRevision[P, T any](previous *VersionedSchema[P], migrate MigrateFunc[P, T]) Predecessor[T] {
	return newPredecessor(axisRevision, previous, migrate)
}

// FromVersion links to a schema from an earlier version.
func FromVersion[P, T any](previous *VersionedSchema[P], migrate MigrateFunc[P, T]) Predecessor[T] {
	return newPredecessor(axisVersion, previous, migrate)
}

func newPredecessor[P, T any](a axis, previous *VersionedSchema[P], migrate MigrateFunc[P, T]) Predecessor[T] {
	if previous == nil {
		panic(fmt.Sprintf("schemas: nil %s predecessor", a))
	}
	if migrate == nil {
		panic(fmt.Sprintf("schemas: nil %s migration", a))
	}
	return Predecessor[T]{
		axis:     a,
		previous: previous,
		decode: func(wire Header, payload []byte) (T, bool, int, *Error) {
			var zero T
			prev, steps, err := previous.decodeAs(wire, payload)
			if err != nil {
				return zero, false, steps, err
			}
			value, ok := migrate(prev)
			return value, ok, steps, nil
		},
	}
}

var noPreviousVersioned = newNoPreviousVersioned()

func newNoPreviousVersioned() *VersionedSchema[NoPrevious] {
	s := &VersionedSchema[NoPrevious]{
		config: config{name: "NoPrevious", codec: noPreviousCodec{}},
	}
	s.revisionPrevious = s
	s.versionPrevious = s
	return s
}

func noPredecessor[T any]() Predecessor[T] {
	never := func(NoPrevious) (T, bool) {
		var zero T
		return zero, false
	}
	return newPredecessor(axisNone, noPreviousVersioned, never)
}

// NewVersioned creates the schema for T at the given version and revision.
// Pass the zero Predecessor for an axis with no predecessor.
//
// NewVersioned panics if a predecessor is on the wrong axis, if the revision
// predecessor doesn't share the version and have a lower revision, or if the
// version predecessor doesn't have a lower version.
func NewVersioned[T any](
	version, revision uint32,
	revisionPrevious, versionPrevious Predecessor[T],
	options ...Option,
) *VersionedSchema[T] {
	s := &VersionedSchema[T]{
		config:   newConfig[T](options),
		version:  version,
		revision: revision,
	}
	if revisionPrevious.axis == axisNone {
		revisionPrevious = noPredecessor[T]()
	} else {
		s.checkRevisionPrevious(revisionPrevious)
	}
	if versionPrevious.axis == axisNone {
		versionPrevious = noPredecessor[T]()
	} else {
		s.checkVersionPrevious(versionPrevious)
	}
	s.revisionPrevious = revisionPrevious.previous
	s.versionPrevious = versionPrevious.previous
	s.fromRevision = s.migrateFrom(revisionPrevious)
	s.fromVersion = s.migrateFrom(versionPrevious)
	return s
}

func (s *VersionedSchema[T]) checkRevisionPrevious(p Predecessor[T]) {
	if p.axis != axisRevision {
		panic(fmt.Sprintf("schemas: %s revision predecessor built with From%s", s.name, titleAxis(p.axis)))
	}
	if p.previous.Version() != s.version || p.previous.Revision() >= s.revision {
		panic(fmt.Sprintf(
			"schemas: %s (v%d.r%d) can't follow revision %s (v%d.r%d)",
			s.name, s.version, s.revision,
			p.previous.Name(), p.previous.Version(), p.previous.Revision(),
		))
	}
}

func (s *VersionedSchema[T]) checkVersionPrevious(p Predecessor[T]) {
	if p.axis != axisVersion {
		panic(fmt.Sprintf("schemas: %s version predecessor built with From%s", s.name, titleAxis(p.axis)))
	}
	if p.previous.Version() >= s.version {
		panic(fmt.Sprintf(
			"schemas: %s (v%d.r%d) can't follow version %s (v%d.r%d)",
			s.name, s.version, s.revision,
			p.previous.Name(), p.previous.Version(), p.previous.Revision(),
		))
	}
}

func titleAxis(a axis) string {
	if a == axisRevision {
		return "Revision"
	}
	return "Version"
}

func (s *VersionedSchema[T]) migrateFrom(p Predecessor[T]) func(Header, []byte) (T, int, *Error) {
	return func(wire Header, payload []byte) (T, int, *Error) {
		value, ok, steps, err := p.decode(wire, payload)
		if err != nil {
			return value, steps, err
		}
		if !ok {
			return value, steps, errMigrationFailed(p.previous, s, wire)
		}
		return value, steps + 1, nil
	}
}

// Name returns the schema's name, which defaults to the name of T.
func (s *VersionedSchema[T]) Name() string {
	return s.name
}

// Version returns the version written into envelopes encoded with s.
func (s *VersionedSchema[T]) Version() uint32 {
	return s.version
}

// Revision returns the revision written into envelopes encoded with s.
func (s *VersionedSchema[T]) Revision() uint32 {
	return s.revision
}

// RevisionPrevious returns the previous revision of the same version, or
// the NoPrevious schema.
func (s *VersionedSchema[T]) RevisionPrevious() Descriptor {
	return s.revisionPrevious
}

// VersionPrevious returns the predecessor from an earlier version, or the
// NoPrevious schema.
func (s *VersionedSchema[T]) VersionPrevious() Descriptor {
	return s.versionPrevious
}

// Codec returns the codec used for T's payload.
func (s *VersionedSchema[T]) Codec() Codec {
	return s.codec
}

// decodeAs decodes payload, declared at the wire identity, as T. The checks
// run in a fixed order: exact match, revision behind within the same version,
// version behind, and otherwise a future schema. Any version lag goes through
// the version predecessor, whatever the wire revision.
func (s *VersionedSchema[T]) decodeAs(wire Header, payload []byte) (T, int, *Error) {
	switch {
	case wire.Version == s.version && wire.Revision == s.revision:
		value, err := unmarshalPayload[T](s.codec, payload)
		if err != nil {
			return value, 0, errUnmarshal(s, wire, s.codec, err)
		}
		return value, 0, nil
	case wire.Version == s.version && wire.Revision < s.revision:
		return s.fromRevision(wire, payload)
	case wire.Version < s.version:
		return s.fromVersion(wire, payload)
	default:
		var zero T
		return zero, 0, errFutureVersion(s, wire)
	}
}
