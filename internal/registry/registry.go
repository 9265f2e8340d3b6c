package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/connstr/connstr-cli/internal/driver"
)

// Registry is the immutable keyword table plus the lookup indices derived
// from it. Build it once with New (or share the process-wide instance from
// Default) and read it from any number of goroutines.
type Registry struct {
	keywords []Keyword
	byID     map[string]*Keyword

	// synonym indices: any normalized spelling -> canonical id. The
	// per-driver tier is consulted first when driver context is known; the
	// global tier is the fallback across all drivers.
	perDriver map[driver.ID]map[string]string
	global    map[string]string

	// defaults index: canonical id -> driver -> default value.
	defaults map[string]map[driver.ID]string

	// canonical definition order, for the "canonical" keyword ordering.
	order map[string]int
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// New builds a registry from the authored keyword table and derives the
// synonym and defaults indices. Rebuilding is idempotent: the indices are a
// pure function of the table.
func New() *Registry {
	r := &Registry{
		byID:      make(map[string]*Keyword),
		perDriver: make(map[driver.ID]map[string]string),
		global:    make(map[string]string),
		defaults:  make(map[string]map[driver.ID]string),
		order:     make(map[string]int),
	}
	for _, d := range driver.All {
		r.perDriver[d] = make(map[string]string)
	}

	r.keywords = allKeywords()
	for i := range r.keywords {
		kw := &r.keywords[i]
		r.byID[kw.ID] = kw
		r.order[kw.ID] = i

		for d, rep := range kw.Reps {
			if rep.Name != "" {
				r.index(d, rep.Name, kw.ID)
			}
			if rep.ShortName != "" {
				r.index(d, rep.ShortName, kw.ID)
			}
			for _, syn := range rep.Synonyms {
				r.index(d, syn, kw.ID)
			}
			if rep.Default != "" {
				if r.defaults[kw.ID] == nil {
					r.defaults[kw.ID] = make(map[driver.ID]string)
				}
				r.defaults[kw.ID][d] = rep.Default
			}
		}
		// The canonical id itself always resolves, in any driver context.
		if _, taken := r.global[kw.ID]; !taken {
			r.global[kw.ID] = kw.ID
		}
	}
	return r
}

func (r *Registry) index(d driver.ID, spelling, id string) {
	key := NormalizeName(spelling)
	if key == "" {
		return
	}
	if _, taken := r.perDriver[d][key]; !taken {
		r.perDriver[d][key] = id
	}
	if _, taken := r.global[key]; !taken {
		r.global[key] = id
	}
}

// NormalizeName folds a user-typed keyword spelling for index lookup:
// lowercase, all interior whitespace removed.
func NormalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolve maps a keyword spelling to its canonical id, consulting the
// driver-scoped index first and the global index second.
func (r *Registry) Resolve(d driver.ID, spelling string) (string, bool) {
	key := NormalizeName(spelling)
	if idx, ok := r.perDriver[d]; ok {
		if id, ok := idx[key]; ok {
			return id, true
		}
	}
	id, ok := r.global[key]
	return id, ok
}

// KeywordByID returns the keyword owning id.
func (r *Registry) KeywordByID(id string) (*Keyword, bool) {
	kw, ok := r.byID[id]
	return kw, ok
}

// Keywords returns all keywords in canonical definition order.
func (r *Registry) Keywords() []Keyword {
	return r.keywords
}

// CanonicalOrder returns the definition index of id, or len(registry) when
// the id is unknown so unknown keys sort last.
func (r *Registry) CanonicalOrder(id string) int {
	if i, ok := r.order[id]; ok {
		return i
	}
	return len(r.keywords)
}

// SupportedKeywords lists the ids of keywords writable in d, in canonical
// order.
func (r *Registry) SupportedKeywords(d driver.ID) []string {
	var ids []string
	for i := range r.keywords {
		if rep, ok := r.keywords[i].Reps[d]; ok && rep.Name != "" {
			ids = append(ids, r.keywords[i].ID)
		}
	}
	return ids
}

// IsSupported reports whether id is writable as a key=value pair in d.
func (r *Registry) IsSupported(id string, d driver.ID) bool {
	kw, ok := r.byID[id]
	if !ok {
		return false
	}
	rep, ok := kw.Reps[d]
	return ok && rep.Name != ""
}

// DefaultValue returns the default of id under d, when one is declared.
func (r *Registry) DefaultValue(id string, d driver.ID) (string, bool) {
	byDriver, ok := r.defaults[id]
	if !ok {
		return "", false
	}
	v, ok := byDriver[d]
	return v, ok
}

// unsetSentinels are spellings that mean "no explicit value" across driver
// documentation; they compare equal to each other and to a missing default.
var unsetSentinels = map[string]struct{}{
	"": {}, "undefined": {}, "notspecified": {}, "none": {},
}

// DoDefaultsDiffer reports whether the effective default of id under a and b
// genuinely diverges. Textual differences that spell the same behavior are
// not divergences: booleans compare through the shared vocabulary, the
// unset sentinels collapse into one class, and for boolean-typed keywords an
// absent default counts as false (opt-in settings behave identically whether
// unset or explicitly disabled).
func (r *Registry) DoDefaultsDiffer(id string, a, b driver.ID) bool {
	kw, ok := r.byID[id]
	if !ok {
		return false
	}
	da, okA := r.DefaultValue(id, a)
	db, okB := r.DefaultValue(id, b)

	repA, hasA := kw.Reps[a]
	repB, hasB := kw.Reps[b]
	boolLike := (hasA && repA.Type == TypeBoolean) || (hasB && repB.Type == TypeBoolean)

	if boolLike {
		// Unset and explicitly-disabled collapse into the false class.
		va := false
		if okA {
			if v, isBool := driver.ParseBool(da); isBool {
				va = v
			}
		}
		vb := false
		if okB {
			if v, isBool := driver.ParseBool(db); isBool {
				vb = v
			}
		}
		return va != vb
	}

	na := normalizeDefault(da)
	nb := normalizeDefault(db)
	_, unsetA := unsetSentinels[na]
	_, unsetB := unsetSentinels[nb]
	if !okA {
		unsetA = true
	}
	if !okB {
		unsetB = true
	}
	if unsetA && unsetB {
		return false
	}
	if unsetA != unsetB {
		return true
	}
	return na != nb
}

func normalizeDefault(v string) string {
	return NormalizeName(v)
}

// pythonBlockedIDs are canonical ids pyodbc cannot forward to the underlying
// ODBC driver: client-side pool management and SqlClient-only TCP knobs.
// Mapping into python classifies these BLOCKED_ALLOWLIST.
var pythonBlockedIDs = map[string]struct{}{
	"multisubnetfailover":            {},
	"transparentnetworkipresolution": {},
	"pooling":                        {},
	"minpoolsize":                    {},
	"maxpoolsize":                    {},
	"connectionlifetime":             {},
	"poolblockingperiod":             {},
	"enlist":                         {},
}

// IsPythonBlocked reports whether id is on the pyodbc restriction list.
func IsPythonBlocked(id string) bool {
	_, blocked := pythonBlockedIDs[id]
	return blocked
}

// ServerFamilyIDs are canonical ids that name the server endpoint; the JDBC
// renderer folds them into the URL authority instead of the property tail.
var ServerFamilyIDs = map[string]struct{}{
	"server": {}, "port": {}, "instancename": {},
}

// SortedSynonyms returns every accepted spelling of id under d, sorted, for
// display.
func (r *Registry) SortedSynonyms(id string, d driver.ID) []string {
	kw, ok := r.byID[id]
	if !ok {
		return nil
	}
	rep, ok := kw.Reps[d]
	if !ok {
		return nil
	}
	out := append([]string(nil), rep.Synonyms...)
	if rep.ShortName != "" {
		out = append(out, rep.ShortName)
	}
	sort.Strings(out)
	return out
}
