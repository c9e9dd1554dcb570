package routes_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryHandle(t *testing.T) {
	tests := []struct {
		name           string
		indexError     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success case",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"piperubio","items":[{"name":"description"}]}`,
		},
		{
			name:           "Storage error",
			indexError:     errors.New("disk error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to load registry"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()
			handler.MockSource.IndexError = tc.indexError

			req := httptest.NewRequest(http.MethodGet, "/api/registry", nil)
			w := httptest.NewRecorder()

			handler.RegistryHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.Equal(t, 1, handler.MockSource.CallCount, "Index should be called exactly once")
		})
	}
}

func TestRegistryHandleServesDocumentVerbatim(t *testing.T) {
	handler := setupMockServerHandler()
	handler.MockSource.IndexDoc = []byte(`{"b":1,  "a":2}`)

	w := httptest.NewRecorder()
	handler.RegistryHandle(w, httptest.NewRequest(http.MethodGet, "/api/registry", nil))

	assert.Equal(t, `{"b":1,  "a":2}`, w.Body.String())
}

func TestComponentHandle(t *testing.T) {
	tests := []struct {
		name           string
		component      string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Known component",
			component:      "description",
			expectedStatus: http.StatusOK,
			expectedBody:   descriptionDoc,
		},
		{
			name:           "Unknown component",
			component:      "nonexistent",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Component not found"}`,
		},
		{
			name:           "Path traversal",
			component:      "../secrets",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Component not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()

			req := withName(httptest.NewRequest(http.MethodGet, "/api/registry/x", nil), tc.component)
			w := httptest.NewRecorder()

			handler.ComponentHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestComponentHandleSkipsSourceForInvalidNames(t *testing.T) {
	handler := setupMockServerHandler()

	w := httptest.NewRecorder()
	handler.ComponentHandle(w, withName(httptest.NewRequest(http.MethodGet, "/api/registry/x", nil), "a/b"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, handler.MockSource.CallCount)
}

func TestCodeHandle(t *testing.T) {
	tests := []struct {
		name           string
		component      string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Known component",
			component:      "description",
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"name": "description",
				"files": [{"path": "registry/ui/description.tsx", "content": "export function Description() {}\nexport const DescriptionItem = () => null\n"}],
				"registryDependencies": []
			}`,
		},
		{
			name:           "Unknown component",
			component:      "nonexistent",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Component source code not found"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupMockServerHandler()

			req := withName(httptest.NewRequest(http.MethodGet, "/api/registry/x/code", nil), tc.component)
			w := httptest.NewRecorder()

			handler.CodeHandle(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			assert.Equal(t, tc.component, handler.MockSource.LastName)
		})
	}
}
