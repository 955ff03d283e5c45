package memory

import (
	"context"
	"sync"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/listing"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/domain/user"
	"rentalhub/internal/infra"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type favoriteKey struct {
	userID    uuid.UUID
	listingID uuid.UUID
}

// Store keeps every table in process memory. Writes go through a UnitOfWork so that a failed
// transaction is rolled back; readers may observe writes of a transaction still in flight.
type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]*user.User
	listings     map[uuid.UUID]*listing.Listing
	reservations map[uuid.UUID]*reservation.Reservation
	favorites    map[favoriteKey]time.Time
	jobs         []shared.NotificationJob

	locksMu     sync.Mutex
	locks       map[uuid.UUID]chan struct{}
	lockTimeout time.Duration

	clock clock.Clock
}

func NewStore(clk clock.Clock, lockTimeout time.Duration) *Store {
	return &Store{
		users:        make(map[uuid.UUID]*user.User),
		listings:     make(map[uuid.UUID]*listing.Listing),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		favorites:    make(map[favoriteKey]time.Time),
		locks:        make(map[uuid.UUID]chan struct{}),
		lockTimeout:  lockTimeout,
		clock:        clk,
	}
}

// Jobs returns a copy of the queued notification jobs.
func (s *Store) Jobs() []shared.NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]shared.NotificationJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// acquire blocks until the listing's lock is free, ctx is done, or the lock timeout passes.
func (s *Store) acquire(ctx context.Context, listingID uuid.UUID) (func(), error) {
	s.locksMu.Lock()
	ch, ok := s.locks[listingID]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[listingID] = ch
	}
	s.locksMu.Unlock()

	var timeout <-chan time.Time
	if s.lockTimeout > 0 {
		timer := time.NewTimer(s.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, infra.WrapRepoErr("listing lock wait cancelled", ctx.Err(), infra.KindLockTimeout)
	case <-timeout:
		return nil, infra.WrapRepoErr("listing lock wait timed out", nil, infra.KindLockTimeout)
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// bookedRangesLocked expects s.mu to be held.
func (s *Store) bookedRangesLocked(listingID uuid.UUID) []daterange.DateRange {
	var out []daterange.DateRange
	for _, r := range s.reservations {
		if r.ListingID() == listingID {
			out = append(out, r.DateRange())
		}
	}
	return out
}

func (s *Store) userByID(id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return cloneUser(u), nil
}

// Users are mutable aggregates; the store never hands out its own copy.
func cloneUser(u *user.User) *user.User {
	return user.ReconstructUser(u.ID(), u.Name().String(), u.Email(), u.Image(), u.CreatedAt(), u.UpdatedAt())
}
