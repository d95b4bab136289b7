package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtoserve/storefront/internal/logging"
)

type testEnv struct {
	T  *testing.T
	TS *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	server, err := New(filepath.Join(t.TempDir(), "test.db"), []byte("test-secret"), logging.New("error"))
	require.NoError(t, err)

	e := echo.New()
	server.Routes(e)

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)

	return &testEnv{T: t, TS: ts}
}

func (env *testEnv) doJSON(method, path string, body any, token string) (int, map[string]any) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, env.TS.URL+path, &buf)
	require.NoError(env.T, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.TS.Client().Do(req)
	require.NoError(env.T, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func (env *testEnv) registerAndLogin(email string) string {
	env.T.Helper()

	code, _ := env.doJSON(http.MethodPost, "/api/auth/register", map[string]string{
		"registrationType": "Farmer",
		"firstName":        "Alice",
		"lastName":         "Greenfield",
		"email":            email,
		"password":         "secret1",
		"confirmPassword":  "secret1",
	}, "")
	require.Equal(env.T, http.StatusCreated, code)

	code, body := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "secret1",
	}, "")
	require.Equal(env.T, http.StatusOK, code)

	token, _ := body["token"].(string)
	require.NotEmpty(env.T, token)
	return token
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin("farmer@example.com")

	code, body := env.doJSON(http.MethodPost, "/api/auth/register", map[string]string{
		"email":           "farmer@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, msgUserExists, body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin("farmer@example.com")

	code, body := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "farmer@example.com",
		"password": "wrongpass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, msgInvalidCredentials, body["message"])
}

func TestLoginReturnsUppercaseRole(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin("farmer@example.com")

	code, body := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "farmer@example.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "FARMER", body["role"])
}

func TestFarmerEndpointsRequireBearerToken(t *testing.T) {
	env := newTestEnv(t)

	code, _ := env.doJSON(http.MethodGet, "/api/farmer/categories/show/categories", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = env.doJSON(http.MethodGet, "/api/farmer/categories/show/categories", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestUpdateMissingCategoryIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin("farmer@example.com")

	code, body := env.doJSON(http.MethodPut, "/api/farmer/categories/update/category/Nope",
		map[string]string{"name": "Nope", "description": ""}, token)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "category not found", body["message"])
}

func TestRenamingCategoryRekeysIt(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin("farmer@example.com")

	code, _ := env.doJSON(http.MethodPost, "/api/farmer/categories/add/category",
		map[string]string{"name": "Fruit", "description": "sweet"}, token)
	require.Equal(t, http.StatusCreated, code)

	code, body := env.doJSON(http.MethodPut, "/api/farmer/categories/update/category/Fruit",
		map[string]string{"name": "Fruits", "description": "still sweet"}, token)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Fruits", body["name"])

	// The old key no longer addresses anything.
	code, _ = env.doJSON(http.MethodPut, "/api/farmer/categories/update/category/Fruit",
		map[string]string{"name": "Fruit", "description": ""}, token)
	assert.Equal(t, http.StatusNotFound, code)
}

// postProductForm sends the urlencoded equivalent of the multipart add; the
// multipart path itself is exercised end to end in the screens tests.
func (env *testEnv) postProductForm(token string, form url.Values) (int, map[string]any) {
	env.T.Helper()

	req, err := http.NewRequest(http.MethodPost, env.TS.URL+"/api/farmer/products/add/product",
		strings.NewReader(form.Encode()))
	require.NoError(env.T, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := env.TS.Client().Do(req)
	require.NoError(env.T, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestAddProductRequiresExistingCategory(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin("farmer@example.com")

	code, body := env.postProductForm(token, url.Values{
		"categoryName": {"Ghost"},
		"name":         {"Tomato"},
		"price":        {"2.5"},
		"stock":        {"10"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "category does not exist", body["message"])
}

func TestAddProductRejectsBadNumbers(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin("farmer@example.com")

	code, body := env.postProductForm(token, url.Values{
		"categoryName": {"Fruit"},
		"name":         {"Tomato"},
		"price":        {"0"},
		"stock":        {"10"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "price must be a number greater than 0", body["message"])

	code, body = env.postProductForm(token, url.Values{
		"categoryName": {"Fruit"},
		"name":         {"Tomato"},
		"price":        {"2.5"},
		"stock":        {"-1"},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "stock must be a non-negative number", body["message"])
}
