package queries

import (
	"rentalhub/internal/infra"
	"rentalhub/internal/pkg/errs"
)

func classify(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrStorage)
}
