// Package escaping provides the reversible encoding of arbitrary byte-string
// filesystem paths into tokens that are safe to store within a single line
// of a tab-separated snapshot file.
package escaping

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/desertwitch/filestat/internal/schema"
)

const hexDigits = "0123456789abcdef"

// Escape encodes a path into a line-safe token. Control characters and
// backslashes are always escaped, bytes >= 0x80 only if the path is not valid
// UTF-8. A path that needs no escaping is returned as is.
func Escape(path string) string {
	escapeHigh := !utf8.ValidString(path)

	count := 0
	for i := 0; i < len(path); i++ {
		if mustEscape(path[i], escapeHigh) {
			count++
		}
	}

	if count == 0 {
		return path
	}

	var sb strings.Builder
	sb.Grow(len(path) + count*3) //nolint:mnd

	for i := 0; i < len(path); i++ {
		c := path[i]

		switch {
		case c == '\\':
			sb.WriteString(`\\`)

		case mustEscape(c, escapeHigh):
			sb.WriteByte('\\')
			sb.WriteByte('x')
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])

		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// Unescape decodes a token produced by [Escape] back into the original path.
// Any invalid escape sequence results in a [schema.ErrMalformedData].
func Unescape(token string) (string, error) {
	if strings.IndexByte(token, '\\') < 0 {
		return token, nil
	}

	var sb strings.Builder
	sb.Grow(len(token))

	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '\\' {
			sb.WriteByte(c)

			continue
		}

		i++
		if i >= len(token) {
			return "", fmt.Errorf("(escaping) %w: unterminated escape character", schema.ErrMalformedData)
		}

		switch token[i] {
		case '\\':
			sb.WriteByte('\\')

		case 'x':
			if i+2 >= len(token) {
				return "", fmt.Errorf("(escaping) %w: truncated hexadecimal escape", schema.ErrMalformedData)
			}
			hi, okHi := fromHex(token[i+1])
			lo, okLo := fromHex(token[i+2])
			if !okHi || !okLo {
				return "", fmt.Errorf("(escaping) %w: invalid hexadecimal escape %q", schema.ErrMalformedData, token[i-1:i+3])
			}
			sb.WriteByte(hi<<4 | lo)
			i += 2

		default:
			return "", fmt.Errorf("(escaping) %w: unknown escape character %q", schema.ErrMalformedData, token[i-1:i+1])
		}
	}

	return sb.String(), nil
}

func mustEscape(c byte, escapeHigh bool) bool {
	return c < 0x20 || c == 0x7f || c == '\\' || (escapeHigh && c >= 0x80)
}

func fromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true //nolint:mnd
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true //nolint:mnd
	}

	return 0, false
}
