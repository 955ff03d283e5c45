package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/infra"
	"rentalhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingReadStore struct {
	store *Store
}

func NewListingReadStore(store *Store) *ListingReadStore {
	return &ListingReadStore{store: store}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingDetailView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	view := &queries.ListingDetailView{ListingView: *toListingView(l)}
	view.Owner.ID = l.OwnerID()
	if owner, ok := s.users[l.OwnerID()]; ok {
		view.Owner.Name = owner.Name().String()
		view.Owner.Image = owner.Image()
	}
	return view, nil
}

// Search evaluates SearchFilters.Predicate against every listing and its booked ranges.
func (r *ListingReadStore) Search(ctx context.Context, filters listing.SearchFilters, page queries.Page) ([]*queries.ListingView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	booked := make(map[uuid.UUID][]daterange.DateRange)
	for _, res := range s.reservations {
		booked[res.ListingID()] = append(booked[res.ListingID()], res.DateRange())
	}

	match := filters.Predicate()
	var matches []*listing.Listing
	for _, l := range s.listings {
		if err := ctx.Err(); err != nil {
			return nil, infra.WrapRepoErr("listing search cancelled", err)
		}
		if !match(l, booked[l.ID()]) {
			continue
		}
		if page.HasCursor() && !afterCursor(l.CreatedAt(), l.ID(), page) {
			continue
		}
		matches = append(matches, l)
	}
	sort.Slice(matches, func(i, j int) bool { return listing.Less(matches[i], matches[j]) })

	if page.Limit > 0 && len(matches) > page.Limit {
		matches = matches[:page.Limit]
	}
	out := make([]*queries.ListingView, len(matches))
	for i, l := range matches {
		out[i] = toListingView(l)
	}
	return out, nil
}

func (r *ListingReadStore) FavoritesOf(ctx context.Context, userID uuid.UUID) ([]*queries.ListingView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	type fav struct {
		l  *listing.Listing
		at time.Time
	}
	var favs []fav
	for key, at := range s.favorites {
		if key.userID != userID {
			continue
		}
		if l, ok := s.listings[key.listingID]; ok {
			favs = append(favs, fav{l: l, at: at})
		}
	}
	sort.Slice(favs, func(i, j int) bool {
		if !favs[i].at.Equal(favs[j].at) {
			return favs[i].at.After(favs[j].at)
		}
		return favs[i].l.ID().String() < favs[j].l.ID().String()
	})

	out := make([]*queries.ListingView, len(favs))
	for i, f := range favs {
		out[i] = toListingView(f.l)
	}
	return out, nil
}

type ReservationReadStore struct {
	store *Store
}

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) BookedRanges(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	ranges := r.store.bookedRangesLocked(listingID)
	slices.SortFunc(ranges, func(a, b daterange.DateRange) int { return a.Start.Compare(b.Start) })
	return ranges, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.ReservationView
	for _, res := range s.reservations {
		l, ok := s.listings[res.ListingID()]
		if !ok {
			continue
		}
		switch {
		case filter.ListingID != nil && res.ListingID() != *filter.ListingID:
			continue
		case filter.UserID != nil && res.UserID() != *filter.UserID:
			continue
		case filter.AuthorID != nil && l.OwnerID() != *filter.AuthorID:
			continue
		}
		out = append(out, toReservationView(res, l))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, err := r.store.userByID(id)
	if err != nil {
		return nil, err
	}
	return &queries.UserView{
		ID:        u.ID(),
		Name:      u.Name().String(),
		Email:     u.Email(),
		Image:     u.Image(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}, nil
}

// afterCursor mirrors the SQL keyset condition at the cursor's microsecond precision.
func afterCursor(createdAt time.Time, id uuid.UUID, page queries.Page) bool {
	t := createdAt.Truncate(time.Microsecond)
	after := page.AfterCreatedAt.Truncate(time.Microsecond)
	if !t.Equal(after) {
		return t.Before(after)
	}
	return id.String() > page.AfterID.String()
}

func toListingView(l *listing.Listing) *queries.ListingView {
	a := l.Attributes()
	return &queries.ListingView{
		ID:            l.ID(),
		UserID:        l.OwnerID(),
		Title:         l.Title(),
		Description:   l.Description(),
		ImageSrc:      l.ImageSrc(),
		Category:      a.Category,
		RoomCount:     a.RoomCount,
		BathroomCount: a.BathroomCount,
		GuestCount:    a.GuestCount,
		LocationValue: a.LocationValue,
		Price:         a.Price,
		CreatedAt:     l.CreatedAt(),
	}
}

func toReservationView(res *reservation.Reservation, l *listing.Listing) *queries.ReservationView {
	return &queries.ReservationView{
		ID:         res.ID(),
		ListingID:  res.ListingID(),
		UserID:     res.UserID(),
		StartDate:  res.StartDate(),
		EndDate:    res.EndDate(),
		TotalPrice: res.TotalPrice().Amount(),
		CreatedAt:  res.CreatedAt(),
		Listing: queries.ListingSummary{
			ID:            l.ID(),
			Title:         l.Title(),
			ImageSrc:      l.ImageSrc(),
			LocationValue: l.Attributes().LocationValue,
			OwnerID:       l.OwnerID(),
		},
	}
}
