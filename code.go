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
	"strconv"
)

// A Code classifies why an encode or decode failed. There are no user-defined
// codes, so only the codes enumerated below are valid.
type Code uint32

const (
	CodeOK              Code = 0 // success
	CodeUnknown         Code = 1 // error not produced by this package
	CodeHeaderRead      Code = 2 // buffer too short to hold the schema header
	CodeFutureSchema    Code = 3 // wire schema is newer than the target schema
	CodeMigrationFailed Code = 4 // migration from a predecessor declined
	CodeCodec           Code = 5 // payload codec failed

	minCode Code = CodeOK
	maxCode Code = CodeCodec
)

var strToCode = map[string]Code{
	"ok":               CodeOK,
	"unknown":          CodeUnknown,
	"header_read":      CodeHeaderRead,
	"future_schema":    CodeFutureSchema,
	"migration_failed": CodeMigrationFailed,
	"codec":            CodeCodec,
}

func (c Code) String() string {
	// Kept in sync with strToCode by TestCode.
	switch c {
	case CodeOK:
		return "ok"
	case CodeUnknown:
		return "unknown"
	case CodeHeaderRead:
		return "header_read"
	case CodeFutureSchema:
		return "future_schema"
	case CodeMigrationFailed:
		return "migration_failed"
	case CodeCodec:
		return "codec"
	}
	return fmt.Sprintf("code_%d", uint32(c))
}

// MarshalText implements encoding.TextMarshaler. Codes are marshaled as their
// snake_case names.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %d", uint32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both the
// names produced by MarshalText and numeric representations.
func (c *Code) UnmarshalText(b []byte) error {
	if n, ok := strToCode[string(b)]; ok {
		*c = n
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %d", n)
	}
	*c = code
	return nil
}
