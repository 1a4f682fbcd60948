package upgrade

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Framework identifies a supported web framework.
type Framework string

// Supported frameworks.
const (
	FrameworkNextJS  Framework = "nextjs"
	FrameworkAngular Framework = "angular"
)

// frameworkNames maps framework IDs to their canonical display names.
var frameworkNames = map[Framework]string{
	FrameworkNextJS:  "Next.js",
	FrameworkAngular: "Angular",
}

// Frameworks returns the supported frameworks in stable display order.
func Frameworks() []Framework {
	return []Framework{FrameworkNextJS, FrameworkAngular}
}

// ParseFramework normalizes a user-supplied framework identifier and matches
// it against the supported set. Matching is case-insensitive and ignores
// punctuation and whitespace, so "Next.JS", "next js" and "NEXTJS" all
// resolve to FrameworkNextJS. The second return value reports whether the
// identifier is supported.
func ParseFramework(s string) (Framework, bool) {
	normalized := normalizeFrameworkID(s)
	for _, f := range Frameworks() {
		if normalized == string(f) {
			return f, true
		}
	}
	return Framework(normalized), false
}

// normalizeFrameworkID lowercases the identifier and strips everything that
// is not a letter or digit.
func normalizeFrameworkID(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the framework ID as a string.
func (f Framework) String() string {
	return string(f)
}

// Name returns the display name of the framework. Frameworks without a
// canonical name fall back to a title-cased form of the ID.
func (f Framework) Name() string {
	if name, ok := frameworkNames[f]; ok {
		return name
	}
	return cases.Title(language.English).String(string(f))
}

// Supported reports whether the framework is in the supported set.
func (f Framework) Supported() bool {
	_, ok := frameworkNames[f]
	return ok
}
