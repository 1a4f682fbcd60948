package consolidate

import (
	"regexp"
	"strconv"
	"strings"
)

// Version reference patterns. The rewritten text is user-visible, so the
// patterns match exactly the forms that appear in curated step text: bare
// X.Y or X.Y.Z tokens (optionally prefixed with @^ in package specifiers)
// and the phrases "to X.Y(.Z)" and "version X.Y(.Z)".
var (
	versionToken      = regexp.MustCompile(`(@\^)?\d+\.\d+(\.\d+)?`)
	versionPhrase     = regexp.MustCompile(`version \d+\.\d+(\.\d+)?`)
	toVersionPhrase   = regexp.MustCompile(`to \d+\.\d+(\.\d+)?`)
	trailingToVersion = regexp.MustCompile(`\s*to \d+(\.\d+)*\s*$`)
)

// formatVersion renders a version bound the way it reads in instructions:
// whole versions without a decimal point (4 not 4.0), fractional versions
// as written (13.4).
func formatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stripVersions removes every version reference from s and trims the
// result, leaving the version-independent base wording of an instruction.
func stripVersions(s string) string {
	s = toVersionPhrase.ReplaceAllString(s, "")
	s = versionPhrase.ReplaceAllString(s, "")
	s = versionToken.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// rewriteVersions replaces every version reference in s with the target
// version, preserving the surrounding phrase wording.
func rewriteVersions(s, target string) string {
	s = toVersionPhrase.ReplaceAllString(s, "to "+target)
	s = versionPhrase.ReplaceAllString(s, "version "+target)
	s = versionToken.ReplaceAllString(s, target)
	return s
}
