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

import "google.golang.org/protobuf/proto"

// Unmarshal decodes an envelope produced by Marshal with s or with any
// predecessor of s. Envelopes from older revisions are decoded as the
// matching predecessor and migrated forward one revision at a time.
//
// Unmarshal fails with CodeHeaderRead if data is shorter than
// RevisionHeaderSize, with CodeFutureSchema if the envelope is newer than s,
// with CodeMigrationFailed if a migration declines, and with CodeCodec if the
// payload can't be decoded.
func Unmarshal[T any](s *Schema[T], data []byte) (T, error) {
	header, payload, err := readRevisionHeader(data)
	if err != nil {
		var zero T
		return zero, s.observe(s, Header{}, 0, err.at(s, Header{}))
	}
	value, steps, err := s.decodeAs(header.Revision, payload)
	return value, s.observe(s, header, steps, err)
}

// DecodeRevision decodes a payload whose revision is already known, for
// example because the caller read the header with PeekRevision or carries the
// revision out of band. payload must not include the header.
func DecodeRevision[T any](s *Schema[T], revision uint32, payload []byte) (T, error) {
	value, steps, err := s.decodeAs(revision, payload)
	return value, s.observe(s, Header{Revision: revision}, steps, err)
}

// UnmarshalVersioned decodes a two-axis envelope produced by MarshalVersioned
// with s or with any schema reachable from s through its predecessors.
func UnmarshalVersioned[T any](s *VersionedSchema[T], data []byte) (T, error) {
	header, payload, err := readVersionedHeader(data)
	if err != nil {
		var zero T
		return zero, s.observe(s, Header{}, 0, err.at(s, Header{}))
	}
	value, steps, err := s.decodeAs(header, payload)
	return value, s.observe(s, header, steps, err)
}

// DecodeVersioned decodes a payload whose (version, revision) identity is
// already known. payload must not include a header.
func DecodeVersioned[T any](s *VersionedSchema[T], version, revision uint32, payload []byte) (T, error) {
	wire := Header{Version: version, Revision: revision}
	value, steps, err := s.decodeAs(wire, payload)
	return value, s.observe(s, wire, steps, err)
}

// unmarshalPayload decodes data into a new T. Protobuf messages are pointers,
// so they're allocated first and decoded in place.
func unmarshalPayload[T any](codec Codec, data []byte) (T, error) {
	var value T
	if message, ok := any(value).(proto.Message); ok {
		value = message.ProtoReflect().New().Interface().(T) //nolint:forcetypeassert
		return value, codec.Unmarshal(data, value)
	}
	err := codec.Unmarshal(data, &value)
	return value, err
}
