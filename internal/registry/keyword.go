// Package registry holds the static table of canonical connection-string
// settings and the lookup indices derived from it. The table is authored
// once as Go data and never mutated after construction; every parser, mapper
// and generator decision is driven by it.
package registry

import "github.com/connstr/connstr-cli/internal/driver"

// ValueType classifies how a keyword's value is interpreted and coerced.
type ValueType int

const (
	TypeString ValueType = iota
	TypeBoolean
	TypeInteger
	TypeEnum
)

func (t ValueType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeEnum:
		return "enum"
	default:
		return "string"
	}
}

// Category groups keywords for display purposes only; it never affects
// translation.
type Category string

const (
	CatGeneral    Category = "General"
	CatNetwork    Category = "Network"
	CatSecurity   Category = "Security"
	CatPooling    Category = "Pooling"
	CatResilience Category = "Resilience"
	CatBehavior   Category = "Behavior"
	CatAdvanced   Category = "Advanced"
)

// Representation describes how one canonical keyword appears in one driver.
//
// An empty Name means the setting exists in the driver but cannot be written
// as a key=value pair there (JDBC's server lives in the URL, OLE DB's
// Provider is a syntax-level token); synonyms still resolve on the parse
// side, and the generator special-cases the render side.
type Representation struct {
	Name      string
	ShortName string
	Synonyms  []string
	Type      ValueType
	Default   string
	Required  bool

	Deprecated  bool
	Deprecation string

	// EnumValues lists accepted values in registry order. The first entry
	// is the target a boolean-true source value coerces to (e.g. SSPI for
	// OLE DB's Integrated Security).
	EnumValues []string

	Notes string
}

// Keyword is one logical connection-string setting across all drivers.
type Keyword struct {
	ID          string
	Display     string
	Category    Category
	Description string
	Reps        map[driver.ID]Representation

	// RustPath is the dotted tiberius-style struct-field path used by the
	// Rust renderer (e.g. "encryption_options.mode"). Empty when the Rust
	// representation is absent.
	RustPath string
}

// Rep returns the driver's representation of k.
func (k *Keyword) Rep(d driver.ID) (Representation, bool) {
	rep, ok := k.Reps[d]
	return rep, ok
}

// SupportedBy counts drivers in which k can be written out, i.e. those with
// a representation carrying a non-empty name.
func (k *Keyword) SupportedBy() []driver.ID {
	var out []driver.ID
	for _, d := range driver.All {
		if rep, ok := k.Reps[d]; ok && rep.Name != "" {
			out = append(out, d)
		}
	}
	return out
}

// reps keeps the data files compact.
type reps = map[driver.ID]Representation
