package rut

import "strings"

// IsRUTField reports whether an input field carries a RUT, judging by its
// placeholder, id and name attributes.
func IsRUTField(placeholder, id, name string) bool {
	if strings.Contains(placeholder, "RUT") {
		return true
	}
	return containsFold(id, "rut") || containsFold(name, "rut")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
