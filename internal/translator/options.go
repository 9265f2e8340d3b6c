package translator

import "github.com/connstr/connstr-cli/internal/driver"

// Formatting controls delimiter spacing in generated output.
type Formatting string

const (
	FormatCompact  Formatting = "compact"  // key=value;key=value;
	FormatReadable Formatting = "readable" // key=value; key=value;
)

// KeywordOrder controls how translated pairs are ordered in the output.
type KeywordOrder string

const (
	OrderSource       KeywordOrder = "source"       // input order (default)
	OrderCanonical    KeywordOrder = "canonical"    // registry definition order
	OrderAlphabetical KeywordOrder = "alphabetical" // by target keyword name
)

// Options tune a single translation. The zero value means: compact output,
// source ordering, unknown keywords flagged, long names, no defaults.
type Options struct {
	// IncludeDefaults appends target-driver defaults for keywords the user
	// never specified, widening the output.
	IncludeDefaults bool
	// PreserveUnknown passes unrecognized keys through verbatim instead of
	// flagging them untranslatable.
	PreserveUnknown bool
	// PreferShortNames picks the abbreviated spelling (UID, App, WSID)
	// where the target driver has one.
	PreferShortNames bool
	// SourceDriver, when set, overrides detection entirely; the parse
	// confidence is reported as "manual".
	SourceDriver driver.ID
	Formatting   Formatting
	KeywordOrder KeywordOrder
}

func (o Options) formatting() Formatting {
	if o.Formatting == FormatReadable {
		return FormatReadable
	}
	return FormatCompact
}

func (o Options) order() KeywordOrder {
	switch o.KeywordOrder {
	case OrderCanonical, OrderAlphabetical:
		return o.KeywordOrder
	default:
		return OrderSource
	}
}
