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

// A DecodeEvent describes one top-level decode.
type DecodeEvent struct {
	// Schema is the name of the target schema.
	Schema string
	// Target is the identity of the target schema.
	Target Header
	// Wire is the identity declared by the envelope. It's the zero Header
	// when the header couldn't be read.
	Wire Header
	// Steps is the number of migrations that completed. It's zero for direct
	// decodes.
	Steps int
	// Err is nil on success and an *Error otherwise.
	Err error
}

// An Observer is an observability tie-in for decodes. Observers are called
// synchronously, after the decode completes, and must be safe to call
// concurrently.
type Observer interface {
	ObserveDecode(DecodeEvent)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(DecodeEvent)

// ObserveDecode calls f(event).
func (f ObserverFunc) ObserveDecode(event DecodeEvent) {
	f(event)
}

// observe reports a finished decode and converts the internal *Error into an
// error without producing a typed nil.
func (c *config) observe(d Descriptor, wire Header, steps int, err *Error) error {
	var result error
	if err != nil {
		result = err
	}
	if c.observer == nil {
		return result
	}
	c.observer.ObserveDecode(DecodeEvent{
		Schema: c.name,
		Target: Header{Version: d.Version(), Revision: d.Revision()},
		Wire:   wire,
		Steps:  steps,
		Err:    result,
	})
	return result
}
