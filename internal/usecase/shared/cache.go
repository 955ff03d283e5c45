package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AvailabilityCache holds the disabled days of a listing between writes.
// Implementations must treat a miss and a failure alike from the caller's point of view.
//
// A reader fills the cache by calling Version before loading the days and passing that
// version to Set. Invalidate bumps the version, so a Set racing a committed write is dropped.
type AvailabilityCache interface {
	Get(ctx context.Context, listingID uuid.UUID) ([]time.Time, bool, error)
	Version(ctx context.Context, listingID uuid.UUID) (int64, error)
	Set(ctx context.Context, listingID uuid.UUID, version int64, days []time.Time) error
	Invalidate(ctx context.Context, listingID uuid.UUID) error
}
