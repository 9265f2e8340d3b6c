package translator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/registry"
)

// Generate renders a mapping result in the target driver's surface syntax.
func (t *Translator) Generate(mr *MappingResult, opts Options) string {
	switch mr.Target {
	case driver.JDBC:
		return t.generateJDBC(mr, opts)
	case driver.Rust:
		return t.generateRust(mr)
	default:
		return t.generateFlat(mr, opts)
	}
}

// needsEscaping reports whether a flat value must be quoted or braced.
func needsEscaping(v string) bool {
	if v == "" {
		return false
	}
	if strings.ContainsAny(v, `;={}"'`) {
		return true
	}
	return v != strings.TrimSpace(v)
}

// escapeValue protects v using the target's delimiter convention, doubling
// embedded delimiters.
func escapeValue(v string, style driver.EscapeStyle) string {
	if !needsEscaping(v) {
		return v
	}
	if style == driver.EscapeBraces {
		return "{" + strings.ReplaceAll(v, "}", "}}") + "}"
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// braceAlways wraps a value in braces regardless of content. Driver and
// Provider names read as braced tokens even when nothing in them requires
// escaping.
func braceAlways(v string) string {
	if strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}") {
		v = v[1 : len(v)-1]
	}
	return "{" + strings.ReplaceAll(v, "}", "}}") + "}"
}

func (t *Translator) generateFlat(mr *MappingResult, opts Options) string {
	style := mr.Target.Escaping()
	sep := ""
	if opts.formatting() == FormatReadable {
		sep = " "
	}

	var b strings.Builder
	if mr.Target == driver.PHP {
		b.WriteString("sqlsrv:")
	}

	first := true
	write := func(key, value string) {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte(';')
	}

	switch mr.Target {
	case driver.ODBC:
		if !mr.hasCanonical("driver") {
			write("Driver", "{ODBC Driver 18 for SQL Server}")
		}
	case driver.Python:
		if !mr.hasCanonical("driver") {
			write("DRIVER", "{ODBC Driver 18 for SQL Server}")
		}
	case driver.OLEDB:
		if !mr.hasCanonical("provider") {
			write("Provider", "MSOLEDBSQL")
		}
	}

	for _, tk := range mr.Translated {
		value := tk.TargetValue
		switch tk.CanonicalID {
		case "driver":
			value = braceAlways(value)
		case "provider":
			// Provider ProgIDs are bare tokens, never quoted.
		default:
			value = escapeValue(value, style)
		}
		write(tk.TargetKeyword, value)
	}
	return b.String()
}

// hasCanonical reports whether a canonical id made it into the translated set.
func (mr *MappingResult) hasCanonical(id string) bool {
	for _, tk := range mr.Translated {
		if tk.CanonicalID == id {
			return true
		}
	}
	return false
}

// splitServerValue decomposes the mapped server value into host, port and
// instance, honoring host\instance, host,port and host:port sub-syntax. A
// leading tcp: protocol tag is dropped.
func splitServerValue(v string) (host string, port int, instance string) {
	host = strings.TrimSpace(v)
	port = 1433
	if strings.HasPrefix(strings.ToLower(host), "tcp:") {
		host = host[len("tcp:"):]
	}
	if idx := strings.IndexAny(host, ",:"); idx >= 0 {
		if p, err := strconv.Atoi(strings.TrimSpace(host[idx+1:])); err == nil {
			port = p
			host = strings.TrimSpace(host[:idx])
		}
	}
	if idx := strings.Index(host, `\`); idx >= 0 {
		instance = host[idx+1:]
		host = host[:idx]
	}
	return host, port, instance
}

func (t *Translator) generateJDBC(mr *MappingResult, opts Options) string {
	host, port, instance := "localhost", 1433, ""

	var props []TranslatedKeyword
	for _, tk := range mr.Translated {
		switch tk.CanonicalID {
		case "server":
			host, port, instance = splitServerValue(tk.TargetValue)
		case "port":
			if p, err := strconv.Atoi(strings.TrimSpace(tk.TargetValue)); err == nil {
				port = p
			}
		case "instancename":
			instance = tk.TargetValue
		default:
			props = append(props, tk)
		}
	}

	sep := ""
	if opts.formatting() == FormatReadable {
		sep = " "
	}

	var b strings.Builder
	fmt.Fprintf(&b, "jdbc:sqlserver://%s:%d;", host, port)
	if instance != "" {
		b.WriteString(sep)
		b.WriteString("instanceName=")
		b.WriteString(escapeValue(instance, driver.EscapeBraces))
		b.WriteByte(';')
	}
	for _, tk := range props {
		b.WriteString(sep)
		b.WriteString(tk.TargetKeyword)
		b.WriteByte('=')
		b.WriteString(escapeValue(tk.TargetValue, driver.EscapeBraces))
		b.WriteByte(';')
	}
	return b.String()
}

// rustField is one field assignment inside the generated Config literal.
type rustField struct {
	name  string
	value string
}

// generateRust renders a tiberius-style Config struct literal. Dotted paths
// group into nested sub-structs; every group closes with ..Default::default().
func (t *Translator) generateRust(mr *MappingResult) string {
	var top []rustField
	groups := make(map[string][]rustField)
	var groupOrder []string

	addField := func(path, value string) {
		if idx := strings.Index(path, "."); idx >= 0 {
			group := path[:idx]
			if _, seen := groups[group]; !seen {
				groupOrder = append(groupOrder, group)
			}
			groups[group] = append(groups[group], rustField{name: path[idx+1:], value: value})
			return
		}
		top = append(top, rustField{name: path, value: value})
	}

	for _, tk := range mr.Translated {
		kw, ok := t.reg.KeywordByID(tk.CanonicalID)
		if !ok || kw.RustPath == "" {
			continue
		}

		// The server value carries the same host[\instance][,port] sub-syntax
		// every flat dialect uses; tiberius wants the pieces separately.
		if tk.CanonicalID == "server" {
			host, port, instance := splitServerValue(tk.TargetValue)
			addField("server.host", fmt.Sprintf("%q.to_string()", host))
			if port != 1433 {
				addField("server.port", strconv.Itoa(port))
			}
			if instance != "" {
				addField("server.instance", fmt.Sprintf("%q.to_string()", instance))
			}
			continue
		}

		rep, _ := kw.Rep(driver.Rust)
		path := kw.RustPath
		fieldName := path
		if idx := strings.Index(path, "."); idx >= 0 {
			fieldName = path[idx+1:]
		}
		addField(path, rustLiteral(fieldName, tk.TargetValue, rep.Type))
	}

	var b strings.Builder
	b.WriteString("Config {\n")
	for _, group := range groupOrder {
		fmt.Fprintf(&b, "    %s: %s {\n", group, snakeToPascal(group))
		for _, f := range groups[group] {
			fmt.Fprintf(&b, "        %s: %s,\n", f.name, f.value)
		}
		b.WriteString("        ..Default::default()\n")
		b.WriteString("    },\n")
	}
	for _, f := range top {
		fmt.Fprintf(&b, "    %s: %s,\n", f.name, f.value)
	}
	b.WriteString("    ..Default::default()\n")
	b.WriteString("}")
	return b.String()
}

// rustLiteral types a scalar for the struct literal: bools and integers stay
// bare, mode fields render as enum variants, everything else is an owned
// string.
func rustLiteral(field, value string, vt registry.ValueType) string {
	if strings.Contains(field, "mode") {
		if variant, ok := encryptionVariant(value); ok {
			return "EncryptionLevel::" + variant
		}
	}
	switch vt {
	case registry.TypeBoolean:
		if b, ok := driver.ParseBool(value); ok {
			return strconv.FormatBool(b)
		}
	case registry.TypeInteger:
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return strings.TrimSpace(value)
		}
	}
	return fmt.Sprintf("%q.to_string()", value)
}

// encryptionVariant maps the cross-driver encryption vocabulary onto the
// tiberius EncryptionLevel enum.
func encryptionVariant(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return "On", true
	case "mandatory", "strict", "required":
		return "Required", true
	case "false", "no", "off", "0", "optional":
		return "Off", true
	case "notsupported", "not supported":
		return "NotSupported", true
	}
	return "", false
}

// snakeToPascal turns a snake_case group name into its struct type name.
func snakeToPascal(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}
