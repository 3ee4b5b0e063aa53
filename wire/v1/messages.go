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

import "github.com/guppybot/schemas"

var (
	// Bot2RegistrySchema is the schema of requests sent from a bot to the
	// registry.
	Bot2RegistrySchema = schemas.Root[Bot2RegistryV0](0, schemas.WithName("Bot2RegistryV0"))
	// Registry2BotSchema is the schema of replies sent from the registry to a
	// bot.
	Registry2BotSchema = schemas.Root[Registry2BotV0](0, schemas.WithName("Registry2BotV0"))
)

// Bot2RegistryV0 is a request from a bot to the registry. Exactly one variant
// is set. The Legacy variants are kept so their positions on the wire stay
// stable.
type Bot2RegistryV0 struct {
	LegacyPing             *LegacyPingV0             `cbor:"0,keyasint,omitempty"`
	LegacyNewCIRun         *LegacyNewCIRunV0         `cbor:"1,keyasint,omitempty"`
	LegacyStartCITask      *LegacyStartCITaskV0      `cbor:"2,keyasint,omitempty"`
	LegacyAppendCITaskData *LegacyAppendCITaskDataV0 `cbor:"3,keyasint,omitempty"`
	LegacyDoneCITask       *LegacyDoneCITaskV0       `cbor:"4,keyasint,omitempty"`
	Auth                   *AuthV0                   `cbor:"5,keyasint,omitempty"`
	RegisterCIGroupMachine *RegisterCIGroupMachineV0 `cbor:"6,keyasint,omitempty"`
	RegisterCIMachine      *RegisterCIMachineV0      `cbor:"7,keyasint,omitempty"`
	RegisterCIRepo         *RegisterCIRepoRequestV0  `cbor:"8,keyasint,omitempty"`
	RegisterMachine        *RegisterMachineV0        `cbor:"9,keyasint,omitempty"`
	Unauth                 *UnauthV0                 `cbor:"10,keyasint,omitempty"`
	UnregisterCIMachine    *Unit                     `cbor:"11,keyasint,omitempty"`
	UnregisterCIRepo       *Unit                     `cbor:"12,keyasint,omitempty"`
	UnregisterMachine      *Unit                     `cbor:"13,keyasint,omitempty"`
}

func (m Bot2RegistryV0) variants() []variant {
	return []variant{
		{"LegacyPing", m.LegacyPing != nil},
		{"LegacyNewCIRun", m.LegacyNewCIRun != nil},
		{"LegacyStartCITask", m.LegacyStartCITask != nil},
		{"LegacyAppendCITaskData", m.LegacyAppendCITaskData != nil},
		{"LegacyDoneCITask", m.LegacyDoneCITask != nil},
		{"Auth", m.Auth != nil},
		{"RegisterCIGroupMachine", m.RegisterCIGroupMachine != nil},
		{"RegisterCIMachine", m.RegisterCIMachine != nil},
		{"RegisterCIRepo", m.RegisterCIRepo != nil},
		{"RegisterMachine", m.RegisterMachine != nil},
		{"Unauth", m.Unauth != nil},
		{"UnregisterCIMachine", m.UnregisterCIMachine != nil},
		{"UnregisterCIRepo", m.UnregisterCIRepo != nil},
		{"UnregisterMachine", m.UnregisterMachine != nil},
	}
}

// Kind returns the name of the variant that's set, or an empty string if the
// union isn't valid.
func (m Bot2RegistryV0) Kind() string {
	name, _ := oneVariant("Bot2RegistryV0", m.variants())
	return name
}

// Validate checks that exactly one variant is set.
func (m Bot2RegistryV0) Validate() error {
	_, err := oneVariant("Bot2RegistryV0", m.variants())
	return err
}

func (m Bot2RegistryV0) MarshalCBOR() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type plain Bot2RegistryV0
	return unionCodec.Marshal(plain(m))
}

func (m *Bot2RegistryV0) UnmarshalCBOR(data []byte) error {
	type plain Bot2RegistryV0
	var p plain
	if err := unionCodec.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := Bot2RegistryV0(p).Validate(); err != nil {
		return err
	}
	*m = Bot2RegistryV0(p)
	return nil
}

type LegacyPingV0 struct {
	APIKey     []byte `cbor:"1,keyasint"`
	MachineKey []byte `cbor:"2,keyasint"`
}

// LegacyNewCIRunV0 reports the bot's answer to a CI run the registry offered.
// A nil Run means the bot had no answer.
type LegacyNewCIRunV0 struct {
	Run *NewCIRunV0 `cbor:"1,keyasint"`
}

type LegacyStartCITaskV0 struct {
	APIKey     []byte  `cbor:"1,keyasint"`
	MachineKey []byte  `cbor:"2,keyasint"`
	CIRunKey   []byte  `cbor:"3,keyasint"`
	TaskNr     uint64  `cbor:"4,keyasint"`
	TaskName   *string `cbor:"5,keyasint"`
	Taskspec   []byte  `cbor:"6,keyasint"`
	TS         *string `cbor:"7,keyasint"`
}

type LegacyAppendCITaskDataV0 struct {
	APIKey   []byte  `cbor:"1,keyasint"`
	CIRunKey []byte  `cbor:"2,keyasint"`
	TaskNr   uint64  `cbor:"3,keyasint"`
	PartNr   uint64  `cbor:"4,keyasint"`
	TS       *string `cbor:"5,keyasint"`
	Key      string  `cbor:"6,keyasint"`
	Data     []byte  `cbor:"7,keyasint"`
}

type LegacyDoneCITaskV0 struct {
	APIKey   []byte  `cbor:"1,keyasint"`
	CIRunKey []byte  `cbor:"2,keyasint"`
	TaskNr   uint64  `cbor:"3,keyasint"`
	Failed   bool    `cbor:"4,keyasint"`
	TS       *string `cbor:"5,keyasint"`
}

type AuthV0 struct {
	APIKey []byte `cbor:"1,keyasint"`
}

type RegisterCIGroupMachineV0 struct {
	APIKey     []byte `cbor:"1,keyasint"`
	MachineKey []byte `cbor:"2,keyasint"`
	GroupKey   []byte `cbor:"3,keyasint"`
}

type RegisterCIMachineV0 struct {
	APIKey     []byte `cbor:"1,keyasint"`
	MachineKey []byte `cbor:"2,keyasint"`
	RepoURL    string `cbor:"3,keyasint"`
}

// RegisterCIRepoRequestV0 asks the registry to watch a repository. A nil
// GroupKey registers the repository outside any group.
type RegisterCIRepoRequestV0 struct {
	APIKey   []byte `cbor:"1,keyasint"`
	GroupKey []byte `cbor:"2,keyasint"`
	RepoURL  string `cbor:"3,keyasint"`
}

// RegisterMachineV0 describes a bot's machine to the registry.
type RegisterMachineV0 struct {
	APIKey        []byte          `cbor:"1,keyasint"`
	MachineKey    []byte          `cbor:"2,keyasint"`
	SystemSetup   SystemSetupV0   `cbor:"3,keyasint"`
	MachineConfig MachineConfigV0 `cbor:"4,keyasint"`
}

type UnauthV0 struct {
	APIKey []byte `cbor:"1,keyasint"`
}

// NewCIRunV0 is a bot's answer to an offered CI run. Exactly one variant is
// set.
type NewCIRunV0 struct {
	Accept   *AcceptCIRunV0   `cbor:"0,keyasint,omitempty"`
	Redirect *RedirectCIRunV0 `cbor:"1,keyasint,omitempty"`
	Reject   *RejectCIRunV0   `cbor:"2,keyasint,omitempty"`
}

func (r NewCIRunV0) variants() []variant {
	return []variant{
		{"Accept", r.Accept != nil},
		{"Redirect", r.Redirect != nil},
		{"Reject", r.Reject != nil},
	}
}

// Kind returns the name of the variant that's set, or an empty string if the
// union isn't valid.
func (r NewCIRunV0) Kind() string {
	name, _ := oneVariant("NewCIRunV0", r.variants())
	return name
}

// Validate checks that exactly one variant is set.
func (r NewCIRunV0) Validate() error {
	_, err := oneVariant("NewCIRunV0", r.variants())
	return err
}

func (r NewCIRunV0) MarshalCBOR() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	type plain NewCIRunV0
	return unionCodec.Marshal(plain(r))
}

func (r *NewCIRunV0) UnmarshalCBOR(data []byte) error {
	type plain NewCIRunV0
	var p plain
	if err := unionCodec.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := NewCIRunV0(p).Validate(); err != nil {
		return err
	}
	*r = NewCIRunV0(p)
	return nil
}

// AcceptCIRunV0 accepts a CI run. A nil TaskCount means the bot doesn't know
// yet how many tasks the run has.
type AcceptCIRunV0 struct {
	APIKey      []byte  `cbor:"1,keyasint"`
	CIRunKey    []byte  `cbor:"2,keyasint"`
	TaskCount   *uint64 `cbor:"3,keyasint"`
	FailedEarly bool    `cbor:"4,keyasint"`
	TS          *string `cbor:"5,keyasint"`
}

// RedirectCIRunV0 hands a CI run to another machine.
type RedirectCIRunV0 struct {
	APIKey     []byte `cbor:"1,keyasint"`
	MachineKey []byte `cbor:"2,keyasint"`
}

type RejectCIRunV0 struct {
	APIKey []byte `cbor:"1,keyasint"`
}

// Registry2BotV0 is a reply from the registry to a bot. Exactly one variant is
// set. Variants whose payload is an Outcome only report whether the matching
// request succeeded.
type Registry2BotV0 struct {
	LegacyPong             *Unit                     `cbor:"0,keyasint,omitempty"`
	LegacyNewCIRun         *LegacyNewCIRunReplyV0    `cbor:"1,keyasint,omitempty"`
	LegacyStartCITask      *LegacyStartCITaskReplyV0 `cbor:"2,keyasint,omitempty"`
	LegacyAppendCITaskData *Outcome                  `cbor:"3,keyasint,omitempty"`
	LegacyDoneCITask       *Outcome                  `cbor:"4,keyasint,omitempty"`
	Auth                   *Outcome                  `cbor:"5,keyasint,omitempty"`
	RegisterCIGroupMachine *Outcome                  `cbor:"6,keyasint,omitempty"`
	RegisterCIMachine      *Outcome                  `cbor:"7,keyasint,omitempty"`
	RegisterCIRepo         *RegisterCIRepoReplyV0    `cbor:"8,keyasint,omitempty"`
	RegisterMachine        *Outcome                  `cbor:"9,keyasint,omitempty"`
	Unauth                 *Outcome                  `cbor:"10,keyasint,omitempty"`
	UnregisterCIMachine    *Outcome                  `cbor:"11,keyasint,omitempty"`
	UnregisterCIRepo       *Outcome                  `cbor:"12,keyasint,omitempty"`
	UnregisterMachine      *Outcome                  `cbor:"13,keyasint,omitempty"`
}

func (m Registry2BotV0) variants() []variant {
	return []variant{
		{"LegacyPong", m.LegacyPong != nil},
		{"LegacyNewCIRun", m.LegacyNewCIRun != nil},
		{"LegacyStartCITask", m.LegacyStartCITask != nil},
		{"LegacyAppendCITaskData", m.LegacyAppendCITaskData != nil},
		{"LegacyDoneCITask", m.LegacyDoneCITask != nil},
		{"Auth", m.Auth != nil},
		{"RegisterCIGroupMachine", m.RegisterCIGroupMachine != nil},
		{"RegisterCIMachine", m.RegisterCIMachine != nil},
		{"RegisterCIRepo", m.RegisterCIRepo != nil},
		{"RegisterMachine", m.RegisterMachine != nil},
		{"Unauth", m.Unauth != nil},
		{"UnregisterCIMachine", m.UnregisterCIMachine != nil},
		{"UnregisterCIRepo", m.UnregisterCIRepo != nil},
		{"UnregisterMachine", m.UnregisterMachine != nil},
	}
}

// Kind returns the name of the variant that's set, or an empty string if the
// union isn't valid.
func (m Registry2BotV0) Kind() string {
	name, _ := oneVariant("Registry2BotV0", m.variants())
	return name
}

// Validate checks that exactly one variant is set.
func (m Registry2BotV0) Validate() error {
	_, err := oneVariant("Registry2BotV0", m.variants())
	return err
}

func (m Registry2BotV0) MarshalCBOR() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type plain Registry2BotV0
	return unionCodec.Marshal(plain(m))
}

func (m *Registry2BotV0) UnmarshalCBOR(data []byte) error {
	type plain Registry2BotV0
	var p plain
	if err := unionCodec.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := Registry2BotV0(p).Validate(); err != nil {
		return err
	}
	*m = Registry2BotV0(p)
	return nil
}

// LegacyNewCIRunReplyV0 offers a CI run to a bot.
type LegacyNewCIRunReplyV0 struct {
	APIKey       []byte        `cbor:"1,keyasint"`
	CIRunKey     []byte        `cbor:"2,keyasint"`
	RepoCloneURL string        `cbor:"3,keyasint"`
	Originator   *OriginatorV0 `cbor:"4,keyasint"`
	RefFull      *string       `cbor:"5,keyasint"`
	CommitHash   *string       `cbor:"6,keyasint"`
	Runspec      []byte        `cbor:"7,keyasint"`
}

// OriginatorV0 is the user who triggered a CI run.
type OriginatorV0 struct {
	Username string  `cbor:"1,keyasint"`
	Email    *string `cbor:"2,keyasint"`
}

// LegacyStartCITaskReplyV0 carries the task the registry created, or nil if
// it refused to start one.
type LegacyStartCITaskReplyV0 struct {
	Task *StartCITaskV0 `cbor:"1,keyasint"`
}

type StartCITaskV0 struct {
	APIKey    []byte `cbor:"1,keyasint"`
	CIRunKey  []byte `cbor:"2,keyasint"`
	CITaskKey []byte `cbor:"3,keyasint"`
	TaskNr    uint64 `cbor:"4,keyasint"`
}

// RegisterCIRepoReplyV0 carries the webhook details of a registered
// repository, or nil if registration failed.
type RegisterCIRepoReplyV0 struct {
	Repo *RegisterCIRepoV0 `cbor:"1,keyasint"`
}

type RegisterCIRepoV0 struct {
	RepoWebURL         string  `cbor:"1,keyasint"`
	WebhookPayloadURL  string  `cbor:"2,keyasint"`
	WebhookSettingsURL *string `cbor:"3,keyasint"`
	WebhookSecret      string  `cbor:"4,keyasint"`
}
