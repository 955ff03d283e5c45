package memory

import (
	"context"
	"slices"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/user"
	"rentalhub/internal/infra"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within applies writes immediately and undoes them in reverse order when fn fails.
// Listing locks taken inside fn are released when it returns.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store, held: make(map[uuid.UUID]func())}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	tx.commit()
	return nil
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &commandReads{store: u.store}
}

type memTx struct {
	store *Store
	undo  []func()
	held  map[uuid.UUID]func()
	jobs  []shared.NotificationJob
}

// record must be called with store.mu held.
func (t *memTx) record(undo func()) {
	t.undo = append(t.undo, undo)
}

// commit publishes the jobs queued by the transaction.
func (t *memTx) commit() {
	if len(t.jobs) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.jobs = append(t.store.jobs, t.jobs...)
}

func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, fn := range slices.Backward(t.undo) {
		fn()
	}
	t.undo = nil
}

func (t *memTx) release() {
	for _, unlock := range t.held {
		unlock()
	}
	clear(t.held)
}

func (t *memTx) lock(ctx context.Context, listingID uuid.UUID) error {
	if _, ok := t.held[listingID]; ok {
		return nil
	}
	unlock, err := t.store.acquire(ctx, listingID)
	if err != nil {
		return err
	}
	t.held[listingID] = unlock
	return nil
}

func (t *memTx) Listings() shared.ListingRepository         { return &listingRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository { return &reservationRepo{tx: t} }
func (t *memTx) Users() shared.UserRepository               { return &userRepo{tx: t} }
func (t *memTx) Favorites() shared.FavoriteRepository       { return &favoriteRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{tx: t}
}
func (t *memTx) Reads() shared.CommandReads { return &commandReads{store: t.store} }

type commandReads struct {
	store *Store
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	l, ok := r.store.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return &shared.ListingSnapshot{ID: l.ID(), OwnerID: l.OwnerID(), Price: l.Price()}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	var ownerID uuid.UUID
	if l, ok := r.store.listings[res.ListingID()]; ok {
		ownerID = l.OwnerID()
	}
	return &shared.ReservationSnapshot{
		ID:             res.ID(),
		ListingID:      res.ListingID(),
		UserID:         res.UserID(),
		ListingOwnerID: ownerID,
		Dates:          res.DateRange(),
		TotalPrice:     res.TotalPrice().Amount(),
		CreatedAt:      res.CreatedAt(),
	}, nil
}

func (r *commandReads) BookedRanges(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.bookedRangesLocked(listingID), nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.store.userByID(id)
}
