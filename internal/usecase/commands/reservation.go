package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/domain/availability"
	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/pkg/clock"
	"rentalhub/internal/pkg/config"
	"rentalhub/internal/pkg/errs"
	"rentalhub/internal/pkg/telemetry"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type SubmitReservationInput struct {
	ListingID  uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
}

type ReservationCommands interface {
	Submit(ctx context.Context, principal auth.Principal, in SubmitReservationInput) (*reservation.Reservation, error)
	Cancel(ctx context.Context, principal auth.Principal, reservationID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	cache    shared.AvailabilityCache
	topic    string
	services *reservation.Services
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cache shared.AvailabilityCache,
	kafkaCfg config.KafkaConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:      uow,
		clock:    clk,
		cache:    cache,
		topic:    kafkaCfg.Topic,
		services: &reservation.Services{Clock: clk},
	}
}

// Submit admits a reservation when its dates are free. Checks run in a fixed order and the
// first failure is returned: malformed range, missing fields, unknown listing, date conflict.
// The conflict check and the insert happen under the listing's lock.
func (uc *reservationUseCaseImpl) Submit(ctx context.Context, principal auth.Principal, in SubmitReservationInput) (*reservation.Reservation, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.submit",
		trace.WithAttributes(attribute.String("listing.id", in.ListingID.String())),
	)
	defer span.End()

	res, err := uc.submit(ctx, principal, in)
	telemetry.RecordError(span, err)
	return res, err
}

func (uc *reservationUseCaseImpl) submit(ctx context.Context, principal auth.Principal, in SubmitReservationInput) (*reservation.Reservation, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrNotAuthorized
	}

	if !in.StartDate.IsZero() && !in.EndDate.IsZero() &&
		daterange.Day(in.StartDate).After(daterange.Day(in.EndDate)) {
		return nil, errs.ErrInvalidDateRange
	}

	if in.ListingID == uuid.Nil || in.StartDate.IsZero() || in.EndDate.IsZero() || in.TotalPrice <= 0 {
		return nil, errs.ErrMissingFields
	}

	dates, err := daterange.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	var created *reservation.Reservation
	err = shared.WithListingLock(ctx, uc.uow, in.ListingID, func(ctx context.Context, tx shared.Tx, l *shared.ListingSnapshot) error {
		booked, err := tx.Reads().BookedRanges(ctx, l.ID)
		if err != nil {
			return err
		}
		if !availability.NewIndex(booked).IsAvailable(dates) {
			return errs.ErrDateConflict
		}

		res, err := reservation.NewReservation(uc.services, l.ID, principal.UserID, dates, reservation.NewMoney(in.TotalPrice))
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if _, err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if err := enqueueReservationEvent(ctx, tx, uc.topic, EventReservationCreated, res, principal.UserID, uc.clock.Now()); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, classify(err, errs.ErrListingNotFound)
	}

	uc.invalidate(ctx, in.ListingID)
	slog.InfoContext(ctx, "reservation admitted",
		"reservation_id", created.ID(),
		"listing_id", created.ListingID(),
		"dates", dates.String(),
	)
	return created, nil
}

// Cancel deletes the reservation when the principal is its guest or the listing owner.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, principal auth.Principal, reservationID uuid.UUID) error {
	ctx, span := telemetry.Tracer().Start(ctx, "reservation.cancel",
		trace.WithAttributes(attribute.String("reservation.id", reservationID.String())),
	)
	defer span.End()

	err := uc.cancel(ctx, principal, reservationID)
	telemetry.RecordError(span, err)
	return err
}

func (uc *reservationUseCaseImpl) cancel(ctx context.Context, principal auth.Principal, reservationID uuid.UUID) error {
	if !principal.IsAuthenticated() {
		return errs.ErrNotAuthorized
	}
	if reservationID == uuid.Nil {
		return errs.ErrReservationNotFound
	}

	var listingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return err
		}

		res := reservation.ReconstructReservation(snap.ID, snap.ListingID, snap.UserID, snap.Dates, reservation.NewMoney(snap.TotalPrice), snap.CreatedAt)
		if !res.CanBeCancelledBy(principal.UserID, snap.ListingOwnerID) {
			return errs.ErrNotAuthorized
		}

		if err := tx.Reservations().Delete(ctx, reservationID); err != nil {
			return err
		}
		listingID = snap.ListingID
		return enqueueReservationEvent(ctx, tx, uc.topic, EventReservationCancelled, res, principal.UserID, uc.clock.Now())
	})
	if err != nil {
		return classify(err, errs.ErrReservationNotFound)
	}

	uc.invalidate(ctx, listingID)
	return nil
}

func (uc *reservationUseCaseImpl) invalidate(ctx context.Context, listingID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, listingID); err != nil {
		slog.WarnContext(ctx, "availability cache invalidation failed",
			"listing_id", listingID,
			"error", err,
		)
	}
}
