// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package icon maps symbolic icon keys, as stored on services and in the
// site configuration, to renderable icon metadata. The key set is a fixed
// enumeration; unknown keys resolve to the fallback instead of being
// looked up dynamically.
package icon

// Known icon keys
const (
	KeyWrench     = "Wrench"
	KeySmartphone = "Smartphone"
	KeyBattery    = "Battery"
	KeyHardDrive  = "HardDrive"
	KeyShield     = "Shield"
	KeyDroplets   = "Droplets"
	KeyCpu        = "Cpu"
)

// Icon describes a renderable icon: its key and the accessible label the
// presentation layer uses for alt text.
type Icon struct {
	Key   string
	Label string
}

// registry is the full enumeration of icons the presentation layer can
// render.
var registry = map[string]Icon{
	KeyWrench:     {Key: KeyWrench, Label: "Wrench"},
	KeySmartphone: {Key: KeySmartphone, Label: "Smartphone"},
	KeyBattery:    {Key: KeyBattery, Label: "Battery"},
	KeyHardDrive:  {Key: KeyHardDrive, Label: "Hard drive"},
	KeyShield:     {Key: KeyShield, Label: "Shield"},
	KeyDroplets:   {Key: KeyDroplets, Label: "Water droplets"},
	KeyCpu:        {Key: KeyCpu, Label: "Processor"},
}

// Default is the fallback icon for unknown keys, matching the site logo.
var Default = registry[KeyWrench]

// Lookup resolves an icon key. The boolean is false for unknown keys.
func Lookup(key string) (Icon, bool) {
	ic, ok := registry[key]
	return ic, ok
}

// LookupOrDefault resolves an icon key, falling back to Default for
// unknown keys.
func LookupOrDefault(key string) Icon {
	if ic, ok := registry[key]; ok {
		return ic
	}
	return Default
}

// Keys returns all known icon keys.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}
