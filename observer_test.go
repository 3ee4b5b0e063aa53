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
	"sync"
	"testing"

	"github.com/guppybot/schemas/internal/assert"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []DecodeEvent
}

func (r *eventRecorder) ObserveDecode(event DecodeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) Events() []DecodeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DecodeEvent(nil), r.events...)
}

func TestObserver(t *testing.T) {
	t.Parallel()
	recorder := &eventRecorder{}
	observed := Extend(pingSchemaV1, 2, func(v1 pingV1) (pingV2, bool) {
		return pingV2{A: uint64(v1.A)}, v1.A != 0
	}, WithName("Observed"), WithObserver(recorder))

	v0, err := Marshal(pingSchemaV0, pingV0{A: 1})
	assert.Nil(t, err)
	_, err = Unmarshal(observed, v0)
	assert.Nil(t, err)

	current, err := Marshal(observed, pingV2{A: 2})
	assert.Nil(t, err)
	_, err = Unmarshal(observed, current)
	assert.Nil(t, err)

	declined, err := Marshal(pingSchemaV1, pingV1{A: 0})
	assert.Nil(t, err)
	_, err = Unmarshal(observed, declined)
	assert.NotNil(t, err)

	_, err = Unmarshal(observed, []byte{1})
	assert.NotNil(t, err)

	// Decoding a predecessor directly isn't reported to the successor's
	// observer.
	_, err = Unmarshal(pingSchemaV1, declined)
	assert.Nil(t, err)

	events := recorder.Events()
	assert.Len(t, events, 4)
	target := Header{Revision: 2}
	assert.Equal(t, events[0].Schema, "Observed")
	assert.Equal(t, events[0].Target, target)
	assert.Equal(t, events[0].Wire, Header{Revision: 0})
	assert.Equal(t, events[0].Steps, 2)
	assert.Nil(t, events[0].Err)

	assert.Equal(t, events[1].Wire, Header{Revision: 2})
	assert.Equal(t, events[1].Steps, 0)
	assert.Nil(t, events[1].Err)

	assert.Equal(t, events[2].Wire, Header{Revision: 1})
	assert.Equal(t, events[2].Steps, 0)
	assert.Equal(t, CodeOf(events[2].Err), CodeMigrationFailed)

	assert.Equal(t, events[3].Wire, Header{})
	assert.Equal(t, CodeOf(events[3].Err), CodeHeaderRead)
}

func TestObserverFunc(t *testing.T) {
	t.Parallel()
	var got DecodeEvent
	observer := ObserverFunc(func(event DecodeEvent) { got = event })
	observer.ObserveDecode(DecodeEvent{Schema: "x", Steps: 3})
	assert.Equal(t, got.Schema, "x")
	assert.Equal(t, got.Steps, 3)
}

func TestNilErrorIsUntyped(t *testing.T) {
	t.Parallel()
	data, err := Marshal(pingSchemaV0, pingV0{A: 1})
	assert.Nil(t, err)
	_, err = Unmarshal(pingSchemaV0, data)
	// Must use == rather than assert.Nil to catch typed nils.
	assert.True(t, err == nil)
	_, err = DecodeVersioned(setupSchemaV1R0, 1, 0, []byte{0xa0})
	assert.True(t, err == nil)
}
