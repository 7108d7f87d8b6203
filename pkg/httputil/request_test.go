package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	body := `{"email": "dev@example.com", "name": "Dev"}`
	r := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))

	var dest struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	err := ParseJSON(r, &dest)

	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", dest.Email)
	assert.Equal(t, "Dev", dest.Name)
}

func TestParseJSON_Invalid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("{not json"))

	var dest map[string]string
	err := ParseJSON(r, &dest)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseJSONOrError(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"email":"a@b.c"}`))
		w := httptest.NewRecorder()

		var dest map[string]string
		ok := ParseJSONOrError(w, r, &dest)

		assert.True(t, ok)
	})

	t.Run("invalid writes 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("nope"))
		w := httptest.NewRecorder()

		var dest map[string]string
		ok := ParseJSONOrError(w, r, &dest)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParsePathString(t *testing.T) {
	router := mux.NewRouter()
	var got string
	var gotErr error
	router.HandleFunc("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = ParsePathString(r, "id")
	})

	r := httptest.NewRequest(http.MethodGet, "/users/abc-123", nil)
	router.ServeHTTP(httptest.NewRecorder(), r)

	require.NoError(t, gotErr)
	assert.Equal(t, "abc-123", got)
}

func TestParsePathString_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users", nil)

	_, err := ParsePathString(r, "id")

	assert.Error(t, err)
}

func TestRequireNonEmpty(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.True(t, RequireNonEmpty(w, "value", "email"))
	})

	t.Run("empty writes 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		assert.False(t, RequireNonEmpty(w, "", "email"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email is required")
	})
}
