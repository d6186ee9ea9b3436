package overrides

import (
	"maps"
	"slices"
)

// Private customizations for one package. Every field is optional; nil
// means the record says nothing about that field.
type Record struct {
	Patches            []string          `json:"patches,omitempty" yaml:"patches,omitempty"`
	Env                map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	ExtraConfigureArgs *string           `json:"extra_configure_args,omitempty" yaml:"extra_configure_args,omitempty"`
	PreConfigure       *string           `json:"pre_configure,omitempty" yaml:"pre_configure,omitempty"`
	SrcPrepare         *string           `json:"src_prepare,omitempty" yaml:"src_prepare,omitempty"`
}

// Reports whether the record has no fields set. Such a record merges as the
// identity.
func (r Record) IsZero() bool {
	return len(r.Patches) == 0 &&
		len(r.Env) == 0 &&
		r.ExtraConfigureArgs == nil &&
		r.PreConfigure == nil &&
		r.SrcPrepare == nil
}

// Returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{
		Patches:            slices.Clone(r.Patches),
		Env:                maps.Clone(r.Env),
		ExtraConfigureArgs: cloneString(r.ExtraConfigureArgs),
		PreConfigure:       cloneString(r.PreConfigure),
		SrcPrepare:         cloneString(r.SrcPrepare),
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
