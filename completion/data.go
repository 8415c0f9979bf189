package completion

import (
	orderedmap "github.com/wk8/go-ordered-map"
)

// Flag describes a named option for completion purposes
type Flag struct {
	Short       string // Short name without the leading '-', or empty
	Long        string // Long name without the leading "--", or empty
	Description string
	TakesValue  bool
}

// Positional describes a positional argument slot
type Positional struct {
	Name       string
	Required   bool
	Repeatable bool
}

// Data is used to store the completion data for all visible options and positional slots
type Data struct {
	flags       *orderedmap.OrderedMap
	Positionals []Positional
}

// NewData returns empty completion data
func NewData() *Data {
	return &Data{flags: orderedmap.New()}
}

// AddFlag records f under its preferred spelling ("--long", or "-s" without long name).
// A flag whose spelling is already present is ignored.
func (d *Data) AddFlag(f Flag) {
	key := f.Key()
	if _, found := d.flags.Get(key); found {
		return
	}
	d.flags.Set(key, f)
}

// Flags returns the recorded flags in insertion order
func (d *Data) Flags() []Flag {
	var out []Flag
	for pair := d.flags.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.(Flag))
	}

	return out
}

// Flag returns the flag recorded under key
func (d *Data) Flag(key string) (Flag, bool) {
	v, found := d.flags.Get(key)
	if !found {
		return Flag{}, false
	}

	return v.(Flag), true
}

// Key returns the preferred spelling of the flag
func (f Flag) Key() string {
	if f.Long != "" {
		return "--" + f.Long
	}

	return "-" + f.Short
}

// Spellings returns every spelling of the flag, long form first
func (f Flag) Spellings() []string {
	var out []string
	if f.Long != "" {
		out = append(out, "--"+f.Long)
	}
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}

	return out
}
