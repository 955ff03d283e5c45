package commands

import (
	"context"
	"encoding/json"
	"time"

	"rentalhub/internal/domain/daterange"
	"rentalhub/internal/domain/reservation"
	"rentalhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

type reservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservationId"`
	ListingID     uuid.UUID `json:"listingId"`
	UserID        uuid.UUID `json:"userId"`
	ActorID       uuid.UUID `json:"actorId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalPrice    int64     `json:"totalPrice"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// enqueueReservationEvent writes the event in the caller's transaction; the relay publishes it after commit.
func enqueueReservationEvent(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	kind string,
	res *reservation.Reservation,
	actorID uuid.UUID,
	now time.Time,
) error {
	payload, err := json.Marshal(reservationEvent{
		Type:          kind,
		ReservationID: res.ID(),
		ListingID:     res.ListingID(),
		UserID:        res.UserID(),
		ActorID:       actorID,
		StartDate:     res.StartDate().Format(daterange.Layout),
		EndDate:       res.EndDate().Format(daterange.Layout),
		TotalPrice:    res.TotalPrice().Amount(),
		OccurredAt:    now,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, shared.NotificationJob{
		Kind:        kind,
		Topic:       topic,
		AggregateID: res.ListingID(),
		Payload:     payload,
		RunAt:       now,
	})
}
