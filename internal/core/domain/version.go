package domain

import "strings"

// Version strings are opaque dot-separated tokens ("114.0.5735.90"). They are
// never parsed into a structured semantic version; the only normalization the
// system applies is stripping a version-control tag prefix before the token
// is compared or embedded in a download URL.

// StripVersionPrefix removes a leading "v." or "v" tag prefix from a release
// tag. Tags without a prefix are returned unchanged.
func StripVersionPrefix(tag string) string {
	if strings.HasPrefix(tag, "v.") {
		return tag[len("v."):]
	}
	if strings.HasPrefix(tag, "v") {
		return tag[len("v"):]
	}
	return tag
}

// MajorVersion returns the first dot-separated component of a version string
// ("114.0.5735.90" -> "114"). The input is returned as-is when it contains no
// dot.
func MajorVersion(version string) string {
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}

// FirstField returns the first whitespace-delimited field of raw command
// output. Used for browsers whose --version output is the bare version token.
func FirstField(out string) (string, bool) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// SecondField returns the second whitespace-delimited field of raw command
// output. Driver binaries print their own name first, e.g.
// "operadriver 114.0.5735.90 (abcd1234)".
func SecondField(out string) (string, bool) {
	fields := strings.Fields(out)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}
