package memory

import (
	"context"

	"rentalhub/internal/domain/listing"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/domain/user"
	"rentalhub/internal/infra"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type listingRepo struct {
	tx *memTx
}

func (r *listingRepo) Create(ctx context.Context, l *listing.Listing) (uuid.UUID, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[l.OwnerID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("listing owner does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := s.listings[l.ID()]; ok {
		return uuid.Nil, infra.WrapRepoErr("listing already exists", nil, infra.KindDuplicateKey)
	}
	s.listings[l.ID()] = l
	r.tx.record(func() { delete(s.listings, l.ID()) })
	return l.ID(), nil
}

// Delete cascades to the listing's reservations and favorites.
func (r *listingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.listings[id]
	if !ok {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	delete(s.listings, id)
	r.tx.record(func() { s.listings[id] = l })

	for resID, res := range s.reservations {
		if res.ListingID() == id {
			delete(s.reservations, resID)
			r.tx.record(func() { s.reservations[resID] = res })
		}
	}
	for key, at := range s.favorites {
		if key.listingID == id {
			delete(s.favorites, key)
			r.tx.record(func() { s.favorites[key] = at })
		}
	}
	return nil
}

func (r *listingRepo) LockForUpdate(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	if err := r.tx.lock(ctx, id); err != nil {
		return nil, err
	}
	return r.tx.Reads().ListingByID(ctx, id)
}

type reservationRepo struct {
	tx *memTx
}

// Create enforces the same constraints as the relational schema, including the
// no-overlap exclusion per listing.
func (r *reservationRepo) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[res.ListingID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("reserved listing does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := s.users[res.UserID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("reserving user does not exist", nil, infra.KindForeignKeyViolated)
	}
	for _, booked := range s.bookedRangesLocked(res.ListingID()) {
		if booked.Overlaps(res.DateRange()) {
			return uuid.Nil, infra.WrapRepoErr("reservation overlaps an existing one", nil, infra.KindConflict)
		}
	}

	s.reservations[res.ID()] = res
	r.tx.record(func() { delete(s.reservations, res.ID()) })
	return res.ID(), nil
}

func (r *reservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(s.reservations, id)
	r.tx.record(func() { s.reservations[id] = res })
	return nil
}

type userRepo struct {
	tx *memTx
}

func (r *userRepo) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[u.ID()]; ok {
		return cloneUser(existing), nil
	}
	if email := u.Email(); email != nil {
		for _, other := range s.users {
			if e := other.Email(); e != nil && *e == *email {
				return nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
			}
		}
	}
	stored := cloneUser(u)
	s.users[u.ID()] = stored
	r.tx.record(func() { delete(s.users, u.ID()) })
	return cloneUser(stored), nil
}

func (r *userRepo) Update(ctx context.Context, u *user.User) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.users[u.ID()]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	s.users[u.ID()] = cloneUser(u)
	r.tx.record(func() { s.users[u.ID()] = prev })
	return nil
}

type favoriteRepo struct {
	tx *memTx
}

func (r *favoriteRepo) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return infra.WrapRepoErr("favoriting user does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := s.listings[listingID]; !ok {
		return infra.WrapRepoErr("favorited listing does not exist", nil, infra.KindForeignKeyViolated)
	}
	key := favoriteKey{userID: userID, listingID: listingID}
	if _, ok := s.favorites[key]; ok {
		return nil
	}
	s.favorites[key] = s.now()
	r.tx.record(func() { delete(s.favorites, key) })
	return nil
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, listingID: listingID}
	at, ok := s.favorites[key]
	if !ok {
		return nil
	}
	delete(s.favorites, key)
	r.tx.record(func() { s.favorites[key] = at })
	return nil
}

type notificationRepo struct {
	tx *memTx
}

func (r *notificationRepo) CreateJob(ctx context.Context, job shared.NotificationJob) error {
	r.tx.jobs = append(r.tx.jobs, job)
	return nil
}
