package overrides

const (

	// Settings section holding the switch.
	gateSection = "buckos"

	// Settings key holding the switch.
	gateKey = "patch_registry_enabled"

	// The only value that turns overrides off. Matched exactly.
	gateDisabled = "false"
)

// Source of string-valued settings.
type SettingsReader interface {
	Get(section, key string) (string, bool)
}

// Whether overrides apply for one build invocation.
//
// The switch is read once, when the gate is created, so every package
// resolved through the same gate sees the same answer.
type Gate struct {
	active bool
}

// Creates a gate from buckos.patch_registry_enabled.
//
// Overrides are active unless the value is exactly "false". A missing
// setting, an empty value, "FALSE" and "0" all leave them active.
func NewGate(s SettingsReader) Gate {
	v, _ := s.Get(gateSection, gateKey)
	return Gate{active: v != gateDisabled}
}

// Returns a gate with a fixed answer.
func StaticGate(active bool) Gate {
	return Gate{active: active}
}

// Reports whether overrides are active.
func (g Gate) Active() bool {
	return g.active
}
