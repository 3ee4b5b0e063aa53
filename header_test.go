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
	"testing"
	"testing/quick"

	"github.com/guppybot/schemas/internal/assert"
)

func TestHeader(t *testing.T) {
	t.Parallel()
	t.Run("revision", func(t *testing.T) {
		t.Parallel()
		roundTrip := func(revision uint32, payload []byte) bool {
			data := append(appendRevisionHeader(nil, revision), payload...)
			header, rest, err := readRevisionHeader(data)
			return err == nil &&
				header == Header{Revision: revision} &&
				len(rest) == len(payload)
		}
		if err := quick.Check(roundTrip, nil /* config */); err != nil {
			t.Error(err)
		}
	})
	t.Run("versioned", func(t *testing.T) {
		t.Parallel()
		roundTrip := func(version, revision uint32) bool {
			want := Header{Version: version, Revision: revision}
			got, rest, err := readVersionedHeader(appendVersionedHeader(nil, want))
			return err == nil && got == want && len(rest) == 0
		}
		if err := quick.Check(roundTrip, nil /* config */); err != nil {
			t.Error(err)
		}
	})
	t.Run("little_endian", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, appendRevisionHeader(nil, 0x01020304), []byte{4, 3, 2, 1})
		assert.Equal(
			t,
			appendVersionedHeader(nil, Header{Version: 1, Revision: 0x0100}),
			[]byte{1, 0, 0, 0, 0, 1, 0, 0},
		)
	})
	t.Run("string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Header{Version: 3, Revision: 14}.String(), "v3.r14")
	})
}
