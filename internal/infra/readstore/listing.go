package readstore

import (
	"context"
	"fmt"
	"strings"

	"rentalhub/internal/domain/listing"
	"rentalhub/internal/infra"
	sqlc "rentalhub/internal/infra/sqlc/generated"
	"rentalhub/internal/pkg/pgconv"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ListingReadQueries interface {
	GetListingDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetListingDetailRow, error)
	ListFavoriteListings(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingDetailView, error) {
	row, err := r.queries.GetListingDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return &queries.ListingDetailView{
		ListingView: queries.ListingView{
			ID:            row.ID,
			UserID:        row.UserID,
			Title:         row.Title,
			Description:   row.Description,
			ImageSrc:      row.ImageSrc,
			Category:      row.Category,
			RoomCount:     int(row.RoomCount),
			BathroomCount: int(row.BathroomCount),
			GuestCount:    int(row.GuestCount),
			LocationValue: row.LocationValue,
			Price:         row.Price,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		},
		Owner: queries.UserSummary{
			ID:    row.UserID,
			Name:  row.OwnerName,
			Image: pgconv.StringPtrFromPgtype(row.OwnerImage),
		},
	}, nil
}

func (r *ListingReadStore) Search(ctx context.Context, filters listing.SearchFilters, page queries.Page) ([]*queries.ListingView, error) {
	query, args := BuildListingSearch(filters, page)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search listings", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[sqlc.Listings])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan listings", err)
	}

	result := make([]*queries.ListingView, len(items))
	for i, row := range items {
		result[i] = toListingView(row)
	}
	return result, nil
}

func (r *ListingReadStore) FavoritesOf(ctx context.Context, userID uuid.UUID) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListFavoriteListings(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorite listings", err)
	}

	result := make([]*queries.ListingView, len(rows))
	for i, row := range rows {
		result[i] = toListingView(row)
	}
	return result, nil
}

const listingColumns = `l.id, l.user_id, l.title, l.description, l.image_src, l.category,
    l.room_count, l.bathroom_count, l.guest_count, l.location_value, l.price, l.created_at`

// BuildListingSearch translates the filters into a parametrized query. It must agree with
// listing.SearchFilters.Predicate: inclusive day overlap against every reservation of the
// listing, and the (created_at DESC, id ASC) order used for keyset paging.
func BuildListingSearch(f listing.SearchFilters, page queries.Page) (string, []any) {
	b := &whereBuilder{}

	if f.UserID != nil {
		b.add("l.user_id = %s", *f.UserID)
	}
	if f.Category != nil {
		b.add("l.category = %s", *f.Category)
	}
	if f.RoomCount != nil {
		b.add("l.room_count >= %s", int64(*f.RoomCount))
	}
	if f.GuestCount != nil {
		b.add("l.guest_count >= %s", int64(*f.GuestCount))
	}
	if f.BathroomCount != nil {
		b.add("l.bathroom_count >= %s", int64(*f.BathroomCount))
	}
	if f.LocationValue != nil {
		b.add("l.location_value = %s", *f.LocationValue)
	}
	if f.MinPrice != nil {
		b.add("l.price >= %s", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		b.add("l.price <= %s", *f.MaxPrice)
	}
	if window, ok := f.Window(); ok {
		end := b.bind(pgconv.DateToPgtype(window.End))
		start := b.bind(pgconv.DateToPgtype(window.Start))
		b.conds = append(b.conds, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM reservations r WHERE r.listing_id = l.id AND r.start_date <= %s AND r.end_date >= %s)",
			end, start,
		))
	}
	if page.HasCursor() {
		t := b.bind(pgconv.TimeToPgtype(page.AfterCreatedAt))
		id := b.bind(page.AfterID)
		b.conds = append(b.conds, fmt.Sprintf("(l.created_at < %s OR (l.created_at = %s AND l.id > %s))", t, t, id))
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(listingColumns)
	sb.WriteString("\nFROM listings l")
	if len(b.conds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.conds, "\n  AND "))
	}
	sb.WriteString("\nORDER BY l.created_at DESC, l.id ASC")
	if page.Limit > 0 {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(b.bind(int32(page.Limit)))
	}
	return sb.String(), b.args
}

type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) add(format string, v any) {
	b.conds = append(b.conds, fmt.Sprintf(format, b.bind(v)))
}

func toListingView(row sqlc.Listings) *queries.ListingView {
	return &queries.ListingView{
		ID:            row.ID,
		UserID:        row.UserID,
		Title:         row.Title,
		Description:   row.Description,
		ImageSrc:      row.ImageSrc,
		Category:      row.Category,
		RoomCount:     int(row.RoomCount),
		BathroomCount: int(row.BathroomCount),
		GuestCount:    int(row.GuestCount),
		LocationValue: row.LocationValue,
		Price:         row.Price,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
