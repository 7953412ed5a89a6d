// Package i18n resolves the effective request language.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// CookieName persists an explicit language choice across requests.
const CookieName = "civica_lang"

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// ResolveTag picks the best supported language for a request. An explicit
// cookie wins over Accept-Language; setCookie reports whether the resolved
// choice should be persisted.
func ResolveTag(r *http.Request) (tag language.Tag, setCookie bool) {
	if r == nil {
		return language.English, false
	}
	if cookie, err := r.Cookie(CookieName); err == nil && cookie != nil {
		if parsed, err := language.Parse(strings.TrimSpace(cookie.Value)); err == nil {
			matched, _, _ := matcher.Match(parsed)
			return canonical(matched), false
		}
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return language.English, false
	}
	parsed, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(parsed) == 0 {
		return language.English, false
	}
	matched, _, _ := matcher.Match(parsed...)
	return canonical(matched), true
}

// SetLanguageCookie persists the resolved language choice.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLanguage resolves and persists the request language as a BCP 47
// string, the shape module resolvers expect.
func ResolveLanguage(w http.ResponseWriter, r *http.Request) string {
	tag, setCookie := ResolveTag(r)
	if setCookie {
		SetLanguageCookie(w, tag)
	}
	return tag.String()
}

// canonical snaps matcher output back to the exact supported tag, dropping
// any inferred region or script extensions.
func canonical(matched language.Tag) language.Tag {
	base, _ := matched.Base()
	for _, tag := range supported {
		supportedBase, _ := tag.Base()
		if base == supportedBase {
			return tag
		}
	}
	return language.English
}
