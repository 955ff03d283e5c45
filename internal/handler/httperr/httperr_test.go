//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"testing"

	"rentalhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid date range", errs.ErrInvalidDateRange, http.StatusBadRequest},
		{"missing fields", errs.ErrMissingFields, http.StatusBadRequest},
		{"listing not found", errs.ErrListingNotFound, http.StatusNotFound},
		{"date conflict", errs.ErrDateConflict, http.StatusConflict},
		{"not authorized", errs.ErrNotAuthorized, http.StatusForbidden},
		{"reservation not found", errs.ErrReservationNotFound, http.StatusNotFound},
		{"storage", errs.ErrStorage, http.StatusServiceUnavailable},
		{"user not found", errs.ErrUserNotFound, http.StatusNotFound},
		{"domain validation", errs.ErrDomainValidation, http.StatusBadRequest},
		{"marked wrapped error", errs.Wrap(errs.Mark(errors.New("23P01"), errs.ErrDateConflict), "insert"), http.StatusConflict},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := StatusOf(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
