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
	"encoding/binary"
	"fmt"
)

const (
	// RevisionHeaderSize is the width of a single-axis envelope header: the
	// schema revision as a little-endian uint32.
	RevisionHeaderSize = 4
	// VersionedHeaderSize is the width of a two-axis envelope header: the
	// schema version, then the schema revision, each as a little-endian
	// uint32.
	VersionedHeaderSize = 8
)

// A Header is the schema identity an envelope declares. Single-axis envelopes
// leave Version at zero.
type Header struct {
	Version  uint32
	Revision uint32
}

func (h Header) String() string {
	return fmt.Sprintf("v%d.r%d", h.Version, h.Revision)
}

// PeekRevision reads the revision from a single-axis envelope without decoding
// the payload. It's useful for routing envelopes by revision.
func PeekRevision(data []byte) (uint32, error) {
	header, _, err := readRevisionHeader(data)
	if err != nil {
		return 0, err
	}
	return header.Revision, nil
}

// PeekVersioned reads the (version, revision) identity from a two-axis
// envelope without decoding the payload.
func PeekVersioned(data []byte) (Header, error) {
	header, _, err := readVersionedHeader(data)
	if err != nil {
		return Header{}, err
	}
	return header, nil
}

func appendRevisionHeader(dst []byte, revision uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, revision)
}

func appendVersionedHeader(dst []byte, header Header) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, header.Version)
	return binary.LittleEndian.AppendUint32(dst, header.Revision)
}

// readRevisionHeader splits a single-axis envelope into its header and
// payload. The payload aliases data.
func readRevisionHeader(data []byte) (Header, []byte, *Error) {
	if len(data) < RevisionHeaderSize {
		return Header{}, nil, errHeaderRead(RevisionHeaderSize, len(data))
	}
	header := Header{Revision: binary.LittleEndian.Uint32(data[:4])}
	return header, data[RevisionHeaderSize:], nil
}

// readVersionedHeader splits a two-axis envelope into its header and payload.
// The payload aliases data.
func readVersionedHeader(data []byte) (Header, []byte, *Error) {
	if len(data) < VersionedHeaderSize {
		return Header{}, nil, errHeaderRead(VersionedHeaderSize, len(data))
	}
	header := Header{
		Version:  binary.LittleEndian.Uint32(data[0:4]),
		Revision: binary.LittleEndian.Uint32(data[4:8]),
	}
	return header, data[VersionedHeaderSize:], nil
}
