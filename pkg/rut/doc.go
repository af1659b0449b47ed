// Package rut validates and formats Chilean RUT identifiers.
//
// A RUT is a body of decimal digits followed by a check character computed
// with the modulo 11 scheme: body digits are weighted 2,3,4,5,6,7 (repeating)
// from the least significant digit, the weighted sum s gives v = 11 - s%11,
// and the check character is '0' when v is 11, 'K' when v is 10 and the
// digit v otherwise.
//
// # Validation
//
// Validate and Parse accept the display form ("12.345.678-5") and the
// compact form ("123456785"); every '.' and '-' is ignored and the check
// character is compared case-insensitively. The outcome is one of:
//
//   - nil: the check character matches the body.
//   - ErrCheckDigitMismatch: well formed, wrong check character.
//   - ErrEmptyInput or ErrMalformedBody: not readable as a RUT.
//
//	if err := rut.Validate(input); err != nil {
//		if rut.IsMalformed(err) {
//			// ask for the RUT again
//		}
//	}
//
// # Formatting
//
// Format groups the body with '.' and separates the check character with
// '-'. It never validates, so it can format partial input.
//
// LiveFormatter binds Format to an editable field. Bindings reformat on
// every edit and move the cursor past separators the reformat inserts;
// pastes are reformatted after the paste completes, on the goroutine that
// calls Flush. Failures raised by the field are recovered and logged, never
// propagated.
//
//	lf := rut.NewLiveFormatter(rut.WithLogger(log))
//	b := lf.Bind(field)
//	b.Input() // on every change notification
//	b.Paste() // on paste
//	b.Flush() // once the pasted text is in the field
//
// IsRUTField decides which fields of a form should be bound.
package rut
