package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReadReturnsTrimmedToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "  token-123  "})

	token, ok := Read(req)
	if !ok || token != "token-123" {
		t.Fatalf("Read = %q %t, want token-123 true", token, ok)
	}
}

func TestReadMissingOrBlankCookie(t *testing.T) {
	t.Parallel()

	if _, ok := Read(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatalf("expected no session for missing cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "   "})
	if _, ok := Read(req); ok {
		t.Fatalf("expected no session for blank cookie")
	}

	if _, ok := Read(nil); ok {
		t.Fatalf("expected no session for nil request")
	}
}

func TestWriteSetsHTTPOnlyLaxCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), "token-123")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != "token-123" {
		t.Fatalf("cookie = %+v", cookie)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode || cookie.Path != "/" {
		t.Fatalf("cookie attributes = %+v", cookie)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].MaxAge != -1 || cookies[0].Value != "" {
		t.Fatalf("cookie = %+v, want expired", cookies[0])
	}
}
