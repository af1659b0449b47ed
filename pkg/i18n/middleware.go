package i18n

import (
	"context"
	"net/http"
	"strings"
)

const maxAcceptLanguageLength = 4096

// QueryParam and CookieName let a user override the browser language.
const (
	QueryParam = "lang"
	CookieName = "lang"
)

type localeContextKey struct{}

// SetLocale stores lang in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// GetLocale returns the language stored in ctx, or fallback.
func GetLocale(ctx context.Context, fallback string) string {
	if lang, _ := ctx.Value(localeContextKey{}).(string); lang != "" {
		return lang
	}
	return fallback
}

// Middleware resolves the request language from the lang query parameter,
// then the lang cookie, then Accept-Language, and stores it in the context.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), t.fromRequest(r))))
		})
	}
}

func (t *Translator) fromRequest(r *http.Request) string {
	if lang := strings.ToLower(r.URL.Query().Get(QueryParam)); t.Supports(lang) {
		return lang
	}
	if c, err := r.Cookie(CookieName); err == nil && t.Supports(c.Value) {
		return strings.ToLower(c.Value)
	}
	return t.Match(r.Header.Get("Accept-Language"))
}
