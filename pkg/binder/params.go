package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Query binds URL query parameters to fields tagged `query:"name"`.
// Supported field kinds are string, bool, signed integers and []string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindTagged(v, "query", ErrInvalidQuery, func(name string) []string {
			return values[name]
		})
	}
}

// Path binds router path parameters to fields tagged `path:"name"`, using
// extractor to read them, e.g. chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindTagged(v, "path", ErrInvalidPath, func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		})
	}
}

func bindTagged(v any, tag string, errKind error, lookup func(name string) []string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get(tag), ",")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		values := lookup(name)
		if len(values) == 0 {
			continue
		}
		if err := setField(rv.Field(i), values); err != nil {
			return fmt.Errorf("%w: %s: %w", errKind, name, err)
		}
	}
	return nil
}

func setField(field reflect.Value, values []string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(values[0])
	case reflect.Bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(values[0], 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		var out []string
		for _, v := range values {
			out = append(out, strings.Split(v, ",")...)
		}
		field.Set(reflect.ValueOf(out).Convert(field.Type()))
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}
