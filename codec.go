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
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	codecNameCBOR     = "cbor"
	codecNameProtobuf = "protobuf"
	codecNameJSON     = "json"
)

// A Codec can marshal payload values to and from bytes. Unmarshal receives a
// pointer to the value to populate. Codecs must be safe for concurrent use.
type Codec interface {
	Name() string
	Marshal(any) ([]byte, error)
	Unmarshal([]byte, any) error
}

// marshalAppender is an extension to Codec for appending to a byte slice.
// The encoder uses it to write the payload directly after the header.
type marshalAppender interface {
	Codec

	// MarshalAppend marshals the given message and appends it to the given
	// byte slice.
	//
	// MarshalAppend may write to the byte slice from its current length up to
	// its capacity, so the caller must not use that region of the slice.
	MarshalAppend([]byte, any) ([]byte, error)
}

var (
	// Core deterministic encoding: equal values always produce identical
	// envelopes. Nil pointers encode as CBOR null.
	cborEncMode = mustEncMode(cbor.CoreDetEncOptions())
	cborDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("schemas: invalid CBOR encoding options: %v", err))
	}
	return mode
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	mode, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("schemas: invalid CBOR decoding options: %v", err))
	}
	return mode
}

// CBORCodec marshals plain Go values with deterministic CBOR. Pointers model
// optional values and slices model sequences. Struct tags such as
// `cbor:"1,keyasint"` or `cbor:",toarray"` control the layout. It's the
// default codec for schemas that don't configure one.
type CBORCodec struct{}

var _ Codec = CBORCodec{}

func (CBORCodec) Name() string { return codecNameCBOR }

func (CBORCodec) Marshal(value any) ([]byte, error) {
	return cborEncMode.Marshal(value)
}

func (CBORCodec) Unmarshal(data []byte, value any) error {
	return cborDecMode.Unmarshal(data, value)
}

// ProtoBinaryCodec marshals protobuf messages using the binary wire format.
// Values must implement proto.Message.
type ProtoBinaryCodec struct{}

var _ marshalAppender = ProtoBinaryCodec{}

func (ProtoBinaryCodec) Name() string { return codecNameProtobuf }

func (ProtoBinaryCodec) Marshal(message any) ([]byte, error) {
	protoMessage, ok := message.(proto.Message)
	if !ok {
		return nil, errNotProtobuf(message)
	}
	return proto.Marshal(protoMessage)
}

func (ProtoBinaryCodec) MarshalAppend(dst []byte, message any) ([]byte, error) {
	protoMessage, ok := message.(proto.Message)
	if !ok {
		return nil, errNotProtobuf(message)
	}
	return proto.MarshalOptions{}.MarshalAppend(dst, protoMessage)
}

func (ProtoBinaryCodec) Unmarshal(data []byte, message any) error {
	protoMessage, ok := message.(proto.Message)
	if !ok {
		return errNotProtobuf(message)
	}
	return proto.Unmarshal(data, protoMessage)
}

// ProtoJSONCodec marshals protobuf messages using the canonical JSON mapping.
// Values must implement proto.Message.
type ProtoJSONCodec struct {
	MarshalOptions   protojson.MarshalOptions
	UnmarshalOptions protojson.UnmarshalOptions
}

var _ Codec = (*ProtoJSONCodec)(nil)

func (c *ProtoJSONCodec) Name() string { return codecNameJSON }

func (c *ProtoJSONCodec) Marshal(message any) ([]byte, error) {
	protoMessage, ok := message.(proto.Message)
	if !ok {
		return nil, errNotProtobuf(message)
	}
	return c.MarshalOptions.Marshal(protoMessage)
}

func (c *ProtoJSONCodec) Unmarshal(data []byte, message any) error {
	protoMessage, ok := message.(proto.Message)
	if !ok {
		return errNotProtobuf(message)
	}
	return c.UnmarshalOptions.Unmarshal(data, protoMessage)
}

func errNotProtobuf(m any) error {
	return fmt.Errorf("%T doesn't implement proto.Message", m)
}
