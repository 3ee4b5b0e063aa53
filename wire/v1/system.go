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
	"strings"

	"github.com/guppybot/schemas"
)

// SystemSetupSchema is the schema of SystemSetupV0.
var SystemSetupSchema = schemas.Root[SystemSetupV0](0, schemas.WithName("SystemSetupV0"))

type CPUArchV0 uint8

const (
	CPUArchI386 CPUArchV0 = iota
	CPUArchI686
	CPUArchPpc64Le
	CPUArchX86_64
)

func (a CPUArchV0) DescString() string {
	switch a {
	case CPUArchI386:
		return "i386"
	case CPUArchI686:
		return "i686"
	case CPUArchPpc64Le:
		return "ppc64le"
	case CPUArchX86_64:
		return "x86_64"
	}
	return fmt.Sprintf("arch_%d", uint8(a))
}

type CPUInfoV0 struct {
	Arch    CPUArchV0 `cbor:"1,keyasint"`
	NumCPUs uint64    `cbor:"2,keyasint"`
}

type DistroIDV0 uint8

const (
	DistroAlpine DistroIDV0 = iota
	DistroCentos
	DistroDebian
	DistroFedora
	DistroRedHat
	DistroUbuntu
)

func (id DistroIDV0) DescString() string {
	switch id {
	case DistroAlpine:
		return "alpine"
	case DistroCentos:
		return "centos"
	case DistroDebian:
		return "debian"
	case DistroFedora:
		return "fedora"
	case DistroRedHat:
		return "redhat"
	case DistroUbuntu:
		return "ubuntu"
	}
	return fmt.Sprintf("distro_%d", uint8(id))
}

type DistroCodenameV0 uint8

const (
	CodenameAlpine3_8 DistroCodenameV0 = iota
	CodenameAlpine3_9
	CodenameCentos6
	CodenameCentos7
	CodenameDebianWheezy
	CodenameDebianJessie
	CodenameDebianStretch
	CodenameDebianBuster
	CodenameUbuntuTrusty
	CodenameUbuntuXenial
	CodenameUbuntuBionic
)

// ID returns the distribution the codename belongs to.
func (c DistroCodenameV0) ID() DistroIDV0 {
	switch c {
	case CodenameAlpine3_8, CodenameAlpine3_9:
		return DistroAlpine
	case CodenameCentos6, CodenameCentos7:
		return DistroCentos
	case CodenameDebianWheezy, CodenameDebianJessie, CodenameDebianStretch, CodenameDebianBuster:
		return DistroDebian
	}
	return DistroUbuntu
}

func (c DistroCodenameV0) DescString() string {
	switch c {
	case CodenameAlpine3_8:
		return "alpine_3_8"
	case CodenameAlpine3_9:
		return "alpine_3_9"
	case CodenameCentos6:
		return "centos_6"
	case CodenameCentos7:
		return "centos_7"
	case CodenameDebianWheezy:
		return "debian_wheezy"
	case CodenameDebianJessie:
		return "debian_jessie"
	case CodenameDebianStretch:
		return "debian_stretch"
	case CodenameDebianBuster:
		return "debian_buster"
	case CodenameUbuntuTrusty:
		return "ubuntu_trusty"
	case CodenameUbuntuXenial:
		return "ubuntu_xenial"
	case CodenameUbuntuBionic:
		return "ubuntu_bionic"
	}
	return fmt.Sprintf("codename_%d", uint8(c))
}

type DistroInfoV0 struct {
	ID       DistroIDV0        `cbor:"1,keyasint"`
	Codename *DistroCodenameV0 `cbor:"2,keyasint"`
}

type DriverVersionV0 struct {
	Major uint32 `cbor:"1,keyasint"`
	Minor uint32 `cbor:"2,keyasint"`
}

type CUDAVersionV0 struct {
	Major uint32 `cbor:"1,keyasint"`
	Minor uint32 `cbor:"2,keyasint"`
}

func (v CUDAVersionV0) DescString() string {
	return fmt.Sprintf("v%d_%d", v.Major, v.Minor)
}

type GPUInfoV0 struct {
	DriverVersion      *DriverVersionV0 `cbor:"1,keyasint"`
	DriverCUDAVersion  *CUDAVersionV0   `cbor:"2,keyasint"`
	ToolkitCUDAVersion *CUDAVersionV0   `cbor:"3,keyasint"`
}

type PCISlotV0 struct {
	Domain   *uint32 `cbor:"1,keyasint"`
	Bus      uint8   `cbor:"2,keyasint"`
	Device   uint8   `cbor:"3,keyasint"`
	Function uint8   `cbor:"4,keyasint"`
}

const (
	pciClassVGA     = 0x0300
	pciClass3D      = 0x0302
	pciVendorNvidia = 0x10de
)

// A PCIRecordV0 is one device from the PCI bus listing.
type PCIRecordV0 struct {
	Slot    PCISlotV0 `cbor:"1,keyasint"`
	Class   uint16    `cbor:"2,keyasint"`
	Vendor  uint16    `cbor:"3,keyasint"`
	Device  uint16    `cbor:"4,keyasint"`
	SVendor *uint16   `cbor:"5,keyasint"`
	SDevice *uint16   `cbor:"6,keyasint"`
	Rev     *uint8    `cbor:"7,keyasint"`
}

func (r PCIRecordV0) IsVGA() bool    { return r.Class == pciClassVGA }
func (r PCIRecordV0) Is3D() bool     { return r.Class == pciClass3D }
func (r PCIRecordV0) IsNvidia() bool { return r.Vendor == pciVendorNvidia }

// IsGPU reports whether the device is an Nvidia display or 3D controller.
func (r PCIRecordV0) IsGPU() bool {
	return (r.IsVGA() || r.Is3D()) && r.IsNvidia()
}

type GPUsV0 struct {
	PCIRecords []PCIRecordV0 `cbor:"1,keyasint"`
}

// SystemSetupV0 describes the hardware and OS of a bot's machine.
type SystemSetupV0 struct {
	CPUInfo    CPUInfoV0    `cbor:"1,keyasint"`
	DistroInfo DistroInfoV0 `cbor:"2,keyasint"`
	GPUInfo    GPUInfoV0    `cbor:"3,keyasint"`
	GPUs       GPUsV0       `cbor:"4,keyasint"`
}

// Prettyprinted renders the setup as an indented, human-readable report.
func (s SystemSetupV0) Prettyprinted() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "cpu:\n")
	fmt.Fprintf(&buf, "  arch: %s\n", s.CPUInfo.Arch.DescString())
	fmt.Fprintf(&buf, "  num cpus: %d\n", s.CPUInfo.NumCPUs)
	fmt.Fprintf(&buf, "distro: %s\n", s.DistroInfo.ID.DescString())
	if s.DistroInfo.Codename != nil {
		fmt.Fprintf(&buf, "  codename: %s\n", s.DistroInfo.Codename.DescString())
	}
	gpu := s.GPUInfo
	if gpu.DriverVersion != nil || gpu.DriverCUDAVersion != nil || gpu.ToolkitCUDAVersion != nil {
		fmt.Fprintf(&buf, "gpu info:\n")
		if v := gpu.DriverVersion; v != nil {
			fmt.Fprintf(&buf, "  nvidia driver: %d.%d\n", v.Major, v.Minor)
		}
		if v := gpu.DriverCUDAVersion; v != nil {
			fmt.Fprintf(&buf, "  cuda (driver): %s\n", v.DescString())
		}
		if v := gpu.ToolkitCUDAVersion; v != nil {
			fmt.Fprintf(&buf, "  cuda (toolkit): %s\n", v.DescString())
		}
	}
	if len(s.GPUs.PCIRecords) > 0 {
		fmt.Fprintf(&buf, "gpus:\n")
		for idx, record := range s.GPUs.PCIRecords {
			writePCIRecord(&buf, idx, record)
		}
	}
	return buf.String()
}

func writePCIRecord(buf *strings.Builder, idx int, record PCIRecordV0) {
	fmt.Fprintf(buf, "  gpu %d:\n", idx)
	fmt.Fprintf(buf, "    pci slot: ")
	if record.Slot.Domain != nil {
		fmt.Fprintf(buf, "%08x:", *record.Slot.Domain)
	}
	fmt.Fprintf(buf, "%02x:%02x.%02x\n", record.Slot.Bus, record.Slot.Device, record.Slot.Function)
	fmt.Fprintf(buf, "    flags:")
	if record.IsVGA() {
		fmt.Fprintf(buf, " vga")
	}
	if record.IsNvidia() {
		fmt.Fprintf(buf, " nvidia")
	}
	fmt.Fprintf(buf, "\n")
	fmt.Fprintf(buf, "    class: %04x\n", record.Class)
	fmt.Fprintf(buf, "    vendor: %04x device: %04x", record.Vendor, record.Device)
	if record.Rev != nil {
		fmt.Fprintf(buf, " rev: %02x", *record.Rev)
	}
	fmt.Fprintf(buf, "\n")
	if record.SVendor != nil || record.SDevice != nil {
		fmt.Fprintf(buf, "   ")
		if record.SVendor != nil {
			fmt.Fprintf(buf, " sub vendor: %04x", *record.SVendor)
		}
		if record.SDevice != nil {
			fmt.Fprintf(buf, " sub device: %04x", *record.SDevice)
		}
		fmt.Fprintf(buf, "\n")
	}
}
