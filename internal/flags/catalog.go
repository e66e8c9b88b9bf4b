package flags

import (
	"sort"
)

// Flag is a named constant in a catalog.
type Flag struct {
	Name  string
	Value Flags
}

// Set maps flag names to their state for one entity type.
type Set map[string]bool

// Enabled returns the names that are true, sorted.
func (s Set) Enabled() []string {
	names := make([]string, 0, len(s))
	for name, on := range s {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets hold the same keys with the same values.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name, on := range s {
		v, ok := other[name]
		if !ok || v != on {
			return false
		}
	}
	return true
}

// Catalog is the fixed table of named flags for one entity type. The single-bit
// entries of a catalog never share a bit. A Catalog is never modified after
// construction and is safe for concurrent use.
type Catalog struct {
	name  string
	flags []Flag
	masks []Flag
	known Flags
}

// NewCatalog builds a catalog from single-bit flags and optional group masks.
// Masks can be looked up by name but take no part in Decode or Encode.
func NewCatalog(name string, flags []Flag, masks ...Flag) *Catalog {
	c := &Catalog{
		name:  name,
		flags: append([]Flag(nil), flags...),
		masks: append([]Flag(nil), masks...),
	}
	for _, f := range c.flags {
		c.known = c.known.Or(f.Value)
	}
	return c
}

// Name returns the entity type name.
func (c *Catalog) Name() string {
	return c.name
}

// Flags returns the single-bit entries in table order.
func (c *Catalog) Flags() []Flag {
	return append([]Flag(nil), c.flags...)
}

// Masks returns the group masks in table order.
func (c *Catalog) Masks() []Flag {
	return append([]Flag(nil), c.masks...)
}

// Names returns the single-bit flag names in table order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.flags))
	for i, f := range c.flags {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the value of a named flag or group mask.
func (c *Catalog) Lookup(name string) (Flags, bool) {
	for _, f := range c.flags {
		if f.Name == name {
			return f.Value, true
		}
	}
	for _, m := range c.masks {
		if m.Name == name {
			return m.Value, true
		}
	}
	return Unset, false
}

// Known returns the union of all single-bit flags in the catalog.
func (c *Catalog) Known() Flags {
	return c.known
}

// Unknown returns the bits of v that no single-bit flag in the catalog names.
func (c *Catalog) Unknown(v Flags) Flags {
	return v &^ c.known
}

// Decode reports the state of every named flag in v. The result always holds
// exactly the catalog's names; bits the catalog does not name are dropped.
func (c *Catalog) Decode(v Flags) Set {
	out := make(Set, len(c.flags))
	for _, f := range c.flags {
		out[f.Name] = v.IsSet(f.Value)
	}
	return out
}

// Encode ORs together the flags whose name maps to true. Names the catalog does
// not know are ignored.
func (c *Catalog) Encode(s Set) Flags {
	out := Unset
	for _, f := range c.flags {
		if s[f.Name] {
			out = out.Or(f.Value)
		}
	}
	return out
}
