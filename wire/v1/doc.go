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

// Package wirev1 is the first generation of the bot/registry wire protocol:
// machine descriptors, machine configuration, and the messages bots and the
// registry exchange. Every message type declares its schema here, so peers
// encode and decode them with schemas.Marshal and schemas.Unmarshal.
//
// Tagged unions are structs with one pointer field per variant. Exactly one
// variant must be set; encoding or decoding a union with zero or several
// variants set fails.
package wirev1
