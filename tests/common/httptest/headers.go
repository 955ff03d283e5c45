//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// AssertCreatedAt checks that a 201 response points its Location header at collection/id.
func AssertCreatedAt(t *testing.T, w *httptest.ResponseRecorder, collection string, id uuid.UUID) {
	t.Helper()
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, collection+"/"+id.String(), w.Header().Get("Location"), "Location header mismatch")
}
