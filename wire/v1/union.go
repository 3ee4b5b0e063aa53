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

package wirev1

import (
	"fmt"

	"github.com/guppybot/schemas"
)

// unionCodec encodes the untagged form of unions after their variants have
// been checked.
var unionCodec = schemas.CBORCodec{}

// Unit is the payload of variants that carry no data.
type Unit struct{}

// Outcome is the payload of replies that only report success or failure.
type Outcome struct {
	OK bool `cbor:"1,keyasint"`
}

type variant struct {
	name string
	set  bool
}

// oneVariant returns the name of the single variant that's set.
func oneVariant(union string, variants []variant) (string, error) {
	var name string
	count := 0
	for _, v := range variants {
		if v.set {
			name = v.name
			count++
		}
	}
	switch count {
	case 0:
		return "", fmt.Errorf("wirev1: empty %s union", union)
	case 1:
		return name, nil
	}
	return "", fmt.Errorf("wirev1: %s union has %d variants set", union, count)
}
