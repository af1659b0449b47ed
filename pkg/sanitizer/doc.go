// Package sanitizer normalizes free text submitted through the request forms.
//
// Transforms are plain func(string) string values combined with Apply or
// Compose. SingleLine and MultiLine are the pipelines used for form fields:
// both strip markup with a bluemonday strict policy and drop control
// characters; SingleLine folds all whitespace while MultiLine keeps
// paragraph breaks.
//
//	name := sanitizer.SingleLine("  <b>Juana</b>\n Pérez ") // "Juana Pérez"
package sanitizer
