// Package i18n translates portal messages.
//
// Translations are trees keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data, FSAdapter for YAML or
// JSON files in any fs.FS (the embedded locales or a directory on disk).
// Keys use dot notation and templates take %{name} placeholders:
//
//	es:
//	  validation:
//	    max_length: "Debe tener como máximo %{max} caracteres"
//
//	msg := tr.T("es", "validation.max_length", "max", "500")
//
// Middleware picks the request language from ?lang=, the lang cookie or
// Accept-Language (matched with golang.org/x/text/language, so "es-CL"
// resolves to "es") and Tc reads it back from the context.
package i18n
