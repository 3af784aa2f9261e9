package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims Claims, secret []byte) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func userClaims(roles ...string) Claims {
	return Claims{
		UserID: "u-1",
		DNI:    "12345678",
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec, c
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := doRequest(t, []echo.MiddlewareFunc{Auth(testSecret)}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	rec, _ := doRequest(t, []echo.MiddlewareFunc{Auth(testSecret)}, "Basic abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, userClaims(RoleCustomer), []byte("other-secret"))
	rec, _ := doRequest(t, []echo.MiddlewareFunc{Auth(testSecret)}, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_Expired(t *testing.T) {
	claims := userClaims(RoleCustomer)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	token := signToken(t, claims, testSecret)

	rec, _ := doRequest(t, []echo.MiddlewareFunc{Auth(testSecret)}, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_ValidToken_ClaimsAvailable(t *testing.T) {
	token := signToken(t, userClaims(RoleCustomer), testSecret)
	rec, c := doRequest(t, []echo.MiddlewareFunc{Auth(testSecret)}, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	claims, ok := ClaimsFrom(c)
	if !ok {
		t.Fatal("claims missing from context")
	}
	if claims.UserID != "u-1" || claims.DNI != "12345678" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		required []string
		want     int
	}{
		{"customer on customer route", []string{RoleCustomer}, []string{RoleCustomer, RoleAdviser}, http.StatusOK},
		{"adviser on admin route", []string{RoleAdviser}, []string{RoleAdmin, RoleAdviser}, http.StatusOK},
		{"customer on admin route", []string{RoleCustomer}, []string{RoleAdmin, RoleAdviser}, http.StatusForbidden},
		{"no roles", nil, []string{RoleAdviser}, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token := signToken(t, userClaims(tc.roles...), testSecret)
			mw := []echo.MiddlewareFunc{Auth(testSecret), RequireRoles(tc.required...)}
			rec, _ := doRequest(t, mw, "Bearer "+token)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequireRoles_WithoutAuth(t *testing.T) {
	rec, _ := doRequest(t, []echo.MiddlewareFunc{RequireRoles(RoleAdviser)}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 when no claims present", rec.Code)
	}
}
