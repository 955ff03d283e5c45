package commands

import (
	"rentalhub/internal/infra"
	"rentalhub/internal/pkg/errs"
)

var passthrough = []error{
	errs.ErrInvalidDateRange,
	errs.ErrMissingFields,
	errs.ErrListingNotFound,
	errs.ErrDateConflict,
	errs.ErrNotAuthorized,
	errs.ErrReservationNotFound,
	errs.ErrUserNotFound,
	errs.ErrDomainValidation,
	errs.ErrStorage,
}

// classify maps a failure from inside a transaction to one of the error kinds callers understand.
// notFound is attached when the store reports a missing row.
func classify(err error, notFound error) error {
	if err == nil {
		return nil
	}
	for _, kind := range passthrough {
		if errs.Is(err, kind) {
			return err
		}
	}
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrDateConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		// Listings are checked before writes, so a dangling reference is the principal's profile.
		return errs.Mark(err, errs.ErrUserNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return errs.Mark(err, errs.ErrStorage)
	}
}
