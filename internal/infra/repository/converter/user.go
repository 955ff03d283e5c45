package converter

import (
	"rentalhub/internal/domain/user"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) *user.User {
	return user.ReconstructUser(
		row.ID,
		row.Name,
		pgconv.StringPtrFromPgtype(row.Email),
		pgconv.StringPtrFromPgtype(row.Image),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
