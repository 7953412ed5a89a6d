package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	tag, setCookie := ResolveTag(httptest.NewRequest(http.MethodGet, "/", nil))
	if tag != language.English || setCookie {
		t.Fatalf("tag = %v setCookie = %t, want en false", tag, setCookie)
	}
	if tag, _ := ResolveTag(nil); tag != language.English {
		t.Fatalf("nil request tag = %v, want en", tag)
	}
}

func TestResolveTagMatchesAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.5")

	tag, setCookie := ResolveTag(req)
	if tag != language.Spanish {
		t.Fatalf("tag = %v, want es", tag)
	}
	if !setCookie {
		t.Fatalf("expected Accept-Language match to request persistence")
	}
}

func TestResolveTagPrefersCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "fr"})

	tag, setCookie := ResolveTag(req)
	if tag != language.French || setCookie {
		t.Fatalf("tag = %v setCookie = %t, want fr false", tag, setCookie)
	}
}

func TestResolveTagUnsupportedFallsBack(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja")

	tag, _ := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want en fallback", tag)
	}
}

func TestResolveLanguagePersistsCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	rr := httptest.NewRecorder()

	lang := ResolveLanguage(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %+v, want one language cookie", cookies)
	}
}
