package server

import (
	"regexp"
	"strings"
)

// placeholderPattern matches a single {identifier} template variable.
// Only RFC 6570 Level 1 placeholders are supported: one identifier per
// brace pair, no operators, no list or associative expansion.
var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// uriTemplate is a compiled URI template. Literal segments match only
// themselves; each placeholder captures the shortest span of characters
// that still lets the rest of the template match.
type uriTemplate struct {
	raw      string
	varNames []string

	// pattern is nil when compilation failed. A nil pattern never
	// matches; it must not cause an error at match time.
	pattern *regexp.Regexp
}

// compileURITemplate parses raw into an alternating sequence of literal
// and variable segments and builds an anchored regexp from it. Brace
// groups that are not valid placeholders are treated as literal text.
func compileURITemplate(raw string) *uriTemplate {
	t := &uriTemplate{raw: raw}

	var b strings.Builder
	b.WriteString("^")
	rest := raw
	for {
		loc := placeholderPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(regexp.QuoteMeta(rest))
			break
		}
		t.varNames = append(t.varNames, rest[loc[2]:loc[3]])
		b.WriteString(regexp.QuoteMeta(rest[:loc[0]]))
		b.WriteString("(.+?)")
		rest = rest[loc[1]:]
	}
	b.WriteString("$")

	pattern, err := regexp.Compile(b.String())
	if err != nil {
		return t
	}
	t.pattern = pattern
	return t
}

// variables returns the placeholder names in template order.
func (t *uriTemplate) variables() []string {
	return t.varNames
}

// match extracts variable bindings from uri, or reports no match.
// Captured values are the raw matched substrings: no decoding, no type
// coercion.
func (t *uriTemplate) match(uri string) (map[string]string, bool) {
	if t.pattern == nil {
		return nil, false
	}

	m := t.pattern.FindStringSubmatch(uri)
	if m == nil {
		return nil, false
	}

	vars := make(map[string]string, len(t.varNames))
	for i, name := range t.varNames {
		vars[name] = m[i+1]
	}
	return vars, true
}
