package physical

import (
	"encoding/hex"
	"strings"
)

// FormatMac renders a MAC address as six period separated lowercase hex octets.
func FormatMac(b [6]byte) string {
	var sb strings.Builder
	sb.Grow(17)
	for i, o := range b {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(hex.EncodeToString([]byte{o}))
	}
	return sb.String()
}

var macSeparators = strings.NewReplacer(".", "", ":", "", "-", "")

// ParseMac accepts any mix of '.', ':' and '-' separators around exactly
// twelve hex digits.
func ParseMac(s string) ([6]byte, error) {
	var out [6]byte
	digits := macSeparators.Replace(s)
	if len(digits) != 12 {
		return out, ErrMalformedAddress{Value: s}
	}
	if _, err := hex.Decode(out[:], []byte(digits)); err != nil {
		return out, ErrMalformedAddress{Value: s}
	}
	return out, nil
}
