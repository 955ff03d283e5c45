//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/infra/cache"
	"rentalhub/internal/infra/memory"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/pkg/config"
	"rentalhub/internal/usecase/commands"
	"rentalhub/internal/usecase/shared"
	"rentalhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store        *memory.Store
	uow          shared.UnitOfWork
	clock        *clock.MockClock
	users        commands.UserCommands
	listings     commands.ListingCommands
	reservations commands.ReservationCommands
	favorites    commands.FavoriteCommands
}

func newFixture(t *testing.T, availabilityCache shared.AvailabilityCache) *fixture {
	t.Helper()
	if availabilityCache == nil {
		availabilityCache = cache.NewNoop()
	}
	clk := clock.NewMockClock(testNow)
	store := memory.NewStore(clk, 2*time.Second)
	uow := memory.NewUnitOfWork(store)
	return &fixture{
		store:        store,
		uow:          uow,
		clock:        clk,
		users:        commands.NewUserUseCase(uow, clk),
		listings:     commands.NewListingUseCase(uow, clk, availabilityCache),
		reservations: commands.NewReservationUseCase(uow, clk, availabilityCache, config.KafkaConfig{Topic: "reservation.events"}),
		favorites:    commands.NewFavoriteUseCase(uow),
	}
}

// registeredUser stores a profile and returns its principal.
func (f *fixture) registeredUser(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(uuid.New())
	require.NoError(t, err)
	_, err = f.users.Register(context.Background(), p, commands.RegisterUserInput{Name: "guest"})
	require.NoError(t, err)
	return p
}

// listingOwnedBy creates a listing and returns its id.
func (f *fixture) listingOwnedBy(t *testing.T, owner auth.Principal) uuid.UUID {
	t.Helper()
	l, err := f.listings.Create(context.Background(), owner, builder.NewListingBuilder().BuildInput())
	require.NoError(t, err)
	return l.ID()
}
