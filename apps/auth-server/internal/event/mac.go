package event

import (
	"errors"
	"strings"
)

var (
	errInvalidMAC  = errors.New("not an EUI-48 address")
	errInvalidPort = errors.New("port identifier is not numeric")
)

// CanonicalMAC はMACアドレスを小文字コロン区切り形式に正規化する。
// 対応表記: aa:bb:cc:dd:ee:ff, AA-BB-CC-DD-EE-FF, aabb.ccdd.eeff, aabbccddeeff
func CanonicalMAC(s string) (string, error) {
	hex := make([]byte, 0, 12)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ':' || c == '-' || c == '.':
			continue
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			hex = append(hex, c)
		case c >= 'A' && c <= 'F':
			hex = append(hex, c+('a'-'A'))
		default:
			return "", errInvalidMAC
		}
	}
	if len(hex) != 12 || !validGrouping(s) {
		return "", errInvalidMAC
	}

	var b strings.Builder
	b.Grow(17)
	for i := 0; i < 12; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.Write(hex[i : i+2])
	}
	return b.String(), nil
}

// validGrouping は区切り文字の位置が既知の表記と一致するかを確認する。
func validGrouping(s string) bool {
	switch {
	case strings.ContainsAny(s, ":-"):
		sep := ":"
		if strings.Contains(s, "-") {
			sep = "-"
		}
		parts := strings.Split(s, sep)
		if len(parts) != 6 {
			return false
		}
		for _, p := range parts {
			if len(p) != 2 {
				return false
			}
		}
		return !strings.Contains(s, ".")
	case strings.Contains(s, "."):
		parts := strings.Split(s, ".")
		if len(parts) != 3 {
			return false
		}
		for _, p := range parts {
			if len(p) != 4 {
				return false
			}
		}
		return true
	default:
		return len(s) == 12
	}
}
