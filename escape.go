package trash

import "strings"

// escapePath produces the RFC 2396 escaping of s, with the single
// exception that '/' passes through unescaped — it is a legal path
// separator in the stored Path= value, and the freedesktop trash spec
// deliberately does not percent-encode it. Do not "fix" this; see the
// open question in spec.md §9.
//
// The unreserved set (passed through verbatim) is ASCII letters,
// digits, and - _ . ! ~ * ' ( ). Every other byte is written as %HH
// with uppercase hex digits. The input is treated as an opaque byte
// sequence: multi-byte UTF-8 sequences are escaped byte by byte, which
// is what makes unescape(escape(s)) == s hold for arbitrary byte
// strings, not just valid UTF-8 ones.
func escapePath(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedOrSlash(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex(c >> 4))
		b.WriteByte(upperHex(c & 0x0f))
	}
	return b.String()
}

func isUnreservedOrSlash(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '/':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func upperHex(nibble byte) byte {
	if nibble < 10 {
		return '0' + nibble
	}
	return 'A' + (nibble - 10)
}

// unescapePath reverses escapePath. It is used only by tests that
// assert the escaping round trip from spec.md §8; the core never
// needs to unescape a Path= value because it does not list, restore,
// or otherwise read its own .trashinfo files back.
func unescapePath(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", false
		}
		hi, ok1 := hexVal(s[i+1])
		lo, ok2 := hexVal(s[i+2])
		if !ok1 || !ok2 {
			return "", false
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), true
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
