package rut

import "strings"

// Format renders raw as a display RUT: the body grouped in threes from the
// right with '.' and the trailing check character after '-'.
// Characters other than digits and 'k'/'K' are dropped and the result is
// not validated, so partial input formats as it is typed:
//
//	Format("123456785") == "12.345.678-5"
//	Format("12")        == "1-2"
//	Format("")          == ""
func Format(raw string) string {
	clean := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; (c >= '0' && c <= '9') || c == 'k' || c == 'K' {
			clean = append(clean, c)
		}
	}
	if len(clean) == 0 {
		return ""
	}

	body, check := clean[:len(clean)-1], clean[len(clean)-1]

	var b strings.Builder
	b.Grow(len(body) + len(body)/3 + 2)
	for i, c := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	b.WriteByte('-')
	b.WriteByte(check)
	return b.String()
}
