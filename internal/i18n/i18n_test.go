package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocalePrefersXLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Locale", "en")
	c.Request.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")

	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("locale want %s got %s", LocaleEN, got)
	}
}

func TestResolveLocaleFallsBackToAcceptLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Accept-Language", "fr-FR, en-US;q=0.8")

	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("locale want %s got %s", LocaleEN, got)
	}
}

func TestTFallbacks(t *testing.T) {
	if got := T("ja-JP", "error.cart_empty"); got != messages[DefaultLocale]["error.cart_empty"] {
		t.Fatalf("unknown locale should fall back to default, got %s", got)
	}
	if got := T(LocaleEN, "error.missing_key"); got != "error.missing_key" {
		t.Fatalf("missing key should echo key, got %s", got)
	}
	if got := Sprintf(LocaleEN, "error.password_too_short", 8); got != "Password must be at least 8 characters" {
		t.Fatalf("unexpected sprintf result: %s", got)
	}
}
