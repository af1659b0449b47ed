package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"es": {
			"validation": map[string]any{
				"required":   "Este campo es obligatorio",
				"max_length": "Debe tener como máximo %{max} caracteres",
			},
			"only_es": "solo español",
		},
		"en": {
			"validation": map[string]any{
				"required": "This field is required",
			},
		},
	}})
	require.NoError(t, err)
	return tr
}

func TestTranslator(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "Este campo es obligatorio", tr.T("es", "validation.required"))
	assert.Equal(t, "This field is required", tr.T("EN", "validation.required"))
	assert.Equal(t, "Debe tener como máximo 500 caracteres", tr.T("es", "validation.max_length", "max", "500"))
	assert.Equal(t, "Debe tener como máximo %{max} caracteres", tr.T("es", "validation.max_length"))

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "solo español", tr.T("en", "only_es"))
		assert.Equal(t, "Este campo es obligatorio", tr.T("fr", "validation.required"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("es", "missing.key"))
		assert.Equal(t, "validation", tr.T("es", "validation"))
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, []string{"es", "en"}, tr.Languages())
		assert.Equal(t, "es", tr.DefaultLanguage())
		assert.True(t, tr.Has("es", "only_es"))
		assert.False(t, tr.Has("en", "only_es"))
		assert.True(t, tr.Supports("EN"))
		assert.False(t, tr.Supports("fr"))
	})
}

func TestNewTranslatorErrors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"a": "b"},
	}})
	assert.ErrorIs(t, err, i18n.ErrDefaultLanguageMissing)
}

func TestMatch(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := map[string]string{
		"":                      "es",
		"es-CL,es;q=0.9":        "es",
		"en-US,en;q=0.9":        "en",
		"fr-FR,en;q=0.5":        "en",
		"de":                    "es",
		"not a header;;;":       "es",
		"en;q=0.2,es-419;q=0.8": "es",
	}
	for header, want := range tests {
		assert.Equal(t, want, tr.Match(header), header)
	}
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/es.yaml":  {Data: []byte("es:\n  greeting: \"Hola %{name}\"\n  nested:\n    a: uno\n")},
		"locales/es2.json": {Data: []byte(`{"es": {"nested": {"b": "dos"}}}`)},
		"locales/en.yml":   {Data: []byte("en:\n  greeting: \"Hi %{name}\"\n")},
		"locales/README":   {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(fsys, "locales"))
	require.NoError(t, err)

	assert.Equal(t, "Hola Ana", tr.T("es", "greeting", "name", "Ana"))
	assert.Equal(t, "Hi Ana", tr.T("en", "greeting", "name", "Ana"))
	assert.Equal(t, "uno", tr.T("es", "nested.a"))
	assert.Equal(t, "dos", tr.T("es", "nested.b"))

	t.Run("invalid yaml", func(t *testing.T) {
		bad := fstest.MapFS{"l/es.yaml": {Data: []byte("es: [unclosed")}}
		_, err := i18n.NewFSAdapter(bad, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("non-map language", func(t *testing.T) {
		bad := fstest.MapFS{"l/es.json": {Data: []byte(`{"es": "flat"}`)}}
		_, err := i18n.NewFSAdapter(bad, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	var got string
	h := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context(), "zz")
		_, _ = w.Write([]byte(tr.Tc(r.Context(), "validation.required")))
	}))

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"query wins", "/?lang=en", "es", "es", "en"},
		{"cookie next", "/", "en", "es", "en"},
		{"accept language", "/", "", "en-GB", "en"},
		{"unsupported query ignored", "/?lang=fr", "", "", "es"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.cookie != "" {
			req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: tt.cookie})
		}
		if tt.accept != "" {
			req.Header.Set("Accept-Language", tt.accept)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, got, tt.name)
	}

	assert.Equal(t, "zz", i18n.GetLocale(context.Background(), "zz"))
}
