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
	"strings"
	"testing"

	"github.com/guppybot/schemas"
	"github.com/guppybot/schemas/internal/assert"
)

func TestBot2RegistryRoundTrip(t *testing.T) {
	t.Parallel()
	messages := []Bot2RegistryV0{
		{LegacyPing: &LegacyPingV0{APIKey: []byte("api"), MachineKey: []byte("machine")}},
		{LegacyNewCIRun: &LegacyNewCIRunV0{Run: &NewCIRunV0{
			Accept: &AcceptCIRunV0{
				APIKey:    []byte("api"),
				CIRunKey:  []byte("run"),
				TaskCount: ptr[uint64](3),
				TS:        ptr("2019-01-02T03:04:05Z"),
			},
		}}},
		{LegacyNewCIRun: &LegacyNewCIRunV0{}},
		{LegacyAppendCITaskData: &LegacyAppendCITaskDataV0{
			APIKey:   []byte("api"),
			CIRunKey: []byte("run"),
			TaskNr:   1,
			PartNr:   7,
			Key:      "stdout",
			Data:     []byte("hello\n"),
		}},
		{RegisterCIRepo: &RegisterCIRepoRequestV0{APIKey: []byte("api"), RepoURL: "https://example.com/repo"}},
		{RegisterMachine: &RegisterMachineV0{
			APIKey:        []byte("api"),
			MachineKey:    []byte("machine"),
			SystemSetup:   exampleSetup(),
			MachineConfig: MachineConfigV0{LocalMachine: LocalMachineV0{
				TaskWorkers: 1,
				GPUs:        []LocalDeviceV0{{PCISlot: ptr("0000:01:00.0")}},
			}},
		}},
		{UnregisterMachine: &Unit{}},
	}
	for _, msg := range messages {
		msg := msg
		t.Run(msg.Kind(), func(t *testing.T) {
			t.Parallel()
			data, err := schemas.Marshal(Bot2RegistrySchema, msg)
			assert.Nil(t, err)
			got, err := schemas.Unmarshal(Bot2RegistrySchema, data)
			assert.Nil(t, err)
			assert.Equal(t, got, msg)
			assert.Equal(t, got.Kind(), msg.Kind())
		})
	}
}

func TestRegistry2BotRoundTrip(t *testing.T) {
	t.Parallel()
	messages := []Registry2BotV0{
		{LegacyPong: &Unit{}},
		{LegacyNewCIRun: &LegacyNewCIRunReplyV0{
			APIKey:       []byte("api"),
			CIRunKey:     []byte("run"),
			RepoCloneURL: "https://example.com/repo.git",
			Originator:   &OriginatorV0{Username: "octocat"},
			CommitHash:   ptr("0123abcd"),
		}},
		{LegacyStartCITask: &LegacyStartCITaskReplyV0{Task: &StartCITaskV0{
			APIKey:    []byte("api"),
			CIRunKey:  []byte("run"),
			CITaskKey: []byte("task"),
			TaskNr:    2,
		}}},
		{Auth: &Outcome{OK: true}},
		{Unauth: &Outcome{}},
		{RegisterCIRepo: &RegisterCIRepoReplyV0{Repo: &RegisterCIRepoV0{
			RepoWebURL:         "https://example.com/repo",
			WebhookPayloadURL:  "https://registry.example.com/hook",
			WebhookSettingsURL: ptr("https://example.com/repo/settings/hooks"),
			WebhookSecret:      "secret",
		}}},
	}
	for _, msg := range messages {
		msg := msg
		t.Run(msg.Kind(), func(t *testing.T) {
			t.Parallel()
			data, err := schemas.Marshal(Registry2BotSchema, msg)
			assert.Nil(t, err)
			got, err := schemas.Unmarshal(Registry2BotSchema, data)
			assert.Nil(t, err)
			assert.Equal(t, got, msg)
		})
	}
}

func TestUnionVariants(t *testing.T) {
	t.Parallel()
	t.Run("kind", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Registry2BotV0{RegisterMachine: &Outcome{OK: true}}.Kind(), "RegisterMachine")
		assert.Equal(t, NewCIRunV0{Reject: &RejectCIRunV0{}}.Kind(), "Reject")
		assert.Equal(t, Bot2RegistryV0{}.Kind(), "")
	})
	t.Run("validate", func(t *testing.T) {
		t.Parallel()
		err := Bot2RegistryV0{}.Validate()
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "empty Bot2RegistryV0 union"))
		err = Registry2BotV0{Auth: &Outcome{}, Unauth: &Outcome{}}.Validate()
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "2 variants set"))
	})
	t.Run("marshal_empty", func(t *testing.T) {
		t.Parallel()
		_, err := schemas.Marshal(Bot2RegistrySchema, Bot2RegistryV0{})
		assert.Equal(t, schemas.CodeOf(err), schemas.CodeCodec)
	})
	t.Run("marshal_nested_empty", func(t *testing.T) {
		t.Parallel()
		msg := Bot2RegistryV0{LegacyNewCIRun: &LegacyNewCIRunV0{Run: &NewCIRunV0{}}}
		_, err := schemas.Marshal(Bot2RegistrySchema, msg)
		assert.Equal(t, schemas.CodeOf(err), schemas.CodeCodec)
		assert.True(t, strings.Contains(err.Error(), "empty NewCIRunV0 union"))
	})
	t.Run("unmarshal_empty", func(t *testing.T) {
		t.Parallel()
		// Revision 0 header, then an empty CBOR map.
		data := []byte{0, 0, 0, 0, 0xa0}
		_, err := schemas.Unmarshal(Registry2BotSchema, data)
		assert.Equal(t, schemas.CodeOf(err), schemas.CodeCodec)
	})
	t.Run("unmarshal_several", func(t *testing.T) {
		t.Parallel()
		type twoVariants struct {
			Auth   *Outcome `cbor:"5,keyasint"`
			Unauth *Outcome `cbor:"10,keyasint"`
		}
		payload, err := schemas.CBORCodec{}.Marshal(twoVariants{Auth: &Outcome{}, Unauth: &Outcome{}})
		assert.Nil(t, err)
		data := append([]byte{0, 0, 0, 0}, payload...)
		_, err = schemas.Unmarshal(Registry2BotSchema, data)
		assert.Equal(t, schemas.CodeOf(err), schemas.CodeCodec)
		assert.True(t, strings.Contains(err.Error(), "2 variants set"))
	})
}
