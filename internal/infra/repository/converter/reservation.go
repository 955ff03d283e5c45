package converter

import (
	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:         res.ID(),
		UserID:     res.UserID(),
		ListingID:  res.ListingID(),
		StartDate:  pgconv.DateToPgtype(res.StartDate()),
		EndDate:    pgconv.DateToPgtype(res.EndDate()),
		TotalPrice: res.TotalPrice().Amount(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

// DateRangeFromRow rebuilds a stored range. Rows satisfy the start <= end check constraint.
func DateRangeFromRow(start, end pgtype.Date) daterange.DateRange {
	return daterange.DateRange{
		Start: pgconv.DateFromPgtype(start),
		End:   pgconv.DateFromPgtype(end),
	}
}
