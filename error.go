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

// An Error captures why an envelope couldn't be encoded or decoded: a Code,
// the underlying Go error, and the schema identities involved. Codec failures
// keep the codec's own error in the chain, so errors.Is and errors.As see
// through an *Error to it.
//
// All errors returned by Marshal, Unmarshal and their variants can be cast to
// an *Error using the standard library's errors.As.
type Error struct {
	code   Code
	err    error
	schema string
	wire   Header
	target Header
}

// NewError annotates any Go error with a code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

func (e *Error) Error() string {
	text := e.err.Error()
	if text == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + text
}

// Unwrap implements errors.Wrapper, which allows errors.Is and errors.As
// access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's code.
func (e *Error) Code() Code {
	return e.code
}

// Schema returns the name of the schema that was being decoded when the error
// occurred, if known.
func (e *Error) Schema() string {
	return e.schema
}

// Wire returns the schema identity declared by the envelope header. It's the
// zero Header for errors raised before the header was read.
func (e *Error) Wire() Header {
	return e.wire
}

// Target returns the identity of the schema the decoder was asked to produce
// at the point of failure. For future-schema errors this is the newest schema
// the decoder understands.
func (e *Error) Target() Header {
	return e.target
}

// CodeOf returns the error's code if it is or wraps an *Error, CodeOK for nil
// errors, and CodeUnknown otherwise.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	if schemaErr, ok := asError(err); ok {
		return schemaErr.Code()
	}
	return CodeUnknown
}

// errorf calls fmt.Errorf with the supplied template and arguments, then wraps
// the resulting error.
func errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

// asError uses errors.As to unwrap any error and look for a schemas *Error.
func asError(err error) (*Error, bool) {
	var se *Error
	ok := errors.As(err, &se)
	return se, ok
}

func errHeaderRead(size, got int) *Error {
	return errorf(CodeHeaderRead, "read %d byte schema header: got %d bytes", size, got)
}

func errFutureRevision(d Descriptor, wire Header) *Error {
	err := errorf(
		CodeFutureSchema,
		"%s understands revisions up to %d, envelope has revision %d",
		d.Name(), d.Revision(), wire.Revision,
	)
	return err.at(d, wire)
}

func errFutureVersion(d Descriptor, wire Header) *Error {
	err := errorf(
		CodeFutureSchema,
		"%s is version %d revision %d, envelope has version %d revision %d",
		d.Name(), d.Version(), d.Revision(), wire.Version, wire.Revision,
	)
	return err.at(d, wire)
}

func errMigrationFailed(from, to Descriptor, wire Header) *Error {
	err := errorf(
		CodeMigrationFailed,
		"migrate %s (revision %d) to %s (revision %d)",
		from.Name(), from.Revision(), to.Name(), to.Revision(),
	)
	return err.at(to, wire)
}

func errUnmarshal(d Descriptor, wire Header, codec Codec, err error) *Error {
	wrapped := errorf(CodeCodec, "unmarshal %s with %s codec: %w", d.Name(), codec.Name(), err)
	return wrapped.at(d, wire)
}

func errMarshal(d Descriptor, codec Codec, err error) *Error {
	wrapped := errorf(CodeCodec, "marshal %s with %s codec: %w", d.Name(), codec.Name(), err)
	return wrapped.at(d, Header{})
}

func (e *Error) at(d Descriptor, wire Header) *Error {
	e.schema = d.Name()
	e.wire = wire
	e.target = Header{Version: d.Version(), Revision: d.Revision()}
	return e
}
