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

// MachineConfigSchema is the schema of MachineConfigV0.
var MachineConfigSchema = schemas.Root[MachineConfigV0](0, schemas.WithName("MachineConfigV0"))

// LocalDeviceV0 identifies a device attached to the local machine.
type LocalDeviceV0 struct {
	PCISlot *string `cbor:"0,keyasint,omitempty"`
}

func (d LocalDeviceV0) variants() []variant {
	return []variant{{"PCISlot", d.PCISlot != nil}}
}

// Kind returns the name of the variant that's set, or an empty string if the
// union isn't valid.
func (d LocalDeviceV0) Kind() string {
	name, _ := oneVariant("LocalDeviceV0", d.variants())
	return name
}

// Validate checks that exactly one variant is set.
func (d LocalDeviceV0) Validate() error {
	_, err := oneVariant("LocalDeviceV0", d.variants())
	return err
}

func (d LocalDeviceV0) MarshalCBOR() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	type plain LocalDeviceV0
	return unionCodec.Marshal(plain(d))
}

func (d *LocalDeviceV0) UnmarshalCBOR(data []byte) error {
	type plain LocalDeviceV0
	var p plain
	if err := unionCodec.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := LocalDeviceV0(p).Validate(); err != nil {
		return err
	}
	*d = LocalDeviceV0(p)
	return nil
}

type LocalMachineV0 struct {
	TaskWorkers uint32          `cbor:"1,keyasint"`
	GPUs        []LocalDeviceV0 `cbor:"2,keyasint"`
}

// MachineConfigV0 is the operator-supplied configuration of a bot's machine.
type MachineConfigV0 struct {
	LocalMachine LocalMachineV0 `cbor:"1,keyasint"`
}
