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

// initialEnvelopeSize is the capacity reserved for small envelopes so that the
// header and a typical payload fit in one allocation.
const initialEnvelopeSize = 128

// Marshal encodes value as an envelope: the schema's revision as a 4-byte
// little-endian header, followed by the codec's encoding of value.
func Marshal[T any](s *Schema[T], value T) ([]byte, error) {
	header := appendRevisionHeader(make([]byte, 0, initialEnvelopeSize), s.revision)
	return marshalPayload(s, s.codec, header, value)
}

// MarshalVersioned encodes value as a two-axis envelope: the schema's version
// and revision as 4-byte little-endian fields, in that order, followed by the
// codec's encoding of value.
func MarshalVersioned[T any](s *VersionedSchema[T], value T) ([]byte, error) {
	identity := Header{Version: s.version, Revision: s.revision}
	header := appendVersionedHeader(make([]byte, 0, initialEnvelopeSize), identity)
	return marshalPayload(s, s.codec, header, value)
}

// marshalPayload appends the encoding of value to header.
func marshalPayload(d Descriptor, codec Codec, header []byte, value any) ([]byte, error) {
	if appender, ok := codec.(marshalAppender); ok {
		envelope, err := appender.MarshalAppend(header, value)
		if err != nil {
			return nil, errMarshal(d, codec, err)
		}
		return envelope, nil
	}
	raw, err := codec.Marshal(value)
	if err != nil {
		return nil, errMarshal(d, codec, err)
	}
	return append(header, raw...), nil
}
