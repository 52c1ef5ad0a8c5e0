package service

import (
	"context"

	"barkeep/pkg/kafka"
	kafka_config "barkeep/pkg/kafka/config"
	"barkeep/pkg/logger"
)

const releaseConsumerGroup = "holds-release"

// ReleaseConsumer listens for booking events and frees the advisory
// holds on slots that just got booked, so the floor plan updates
// without waiting out the TTL.
type ReleaseConsumer struct {
	consumer *kafka.Consumer
	holds    HoldService
	log      *logger.Logger
}

func NewReleaseConsumer(cfg *kafka_config.Config, holds HoldService, log *logger.Logger) (*ReleaseConsumer, error) {
	rc := &ReleaseConsumer{
		holds: holds,
		log:   log,
	}

	consumer, err := kafka.NewConsumer(cfg, kafka.TopicBookingEvents, releaseConsumerGroup, kafka.DLQBookings, rc.handle)
	if err != nil {
		return nil, err
	}
	rc.consumer = consumer

	return rc, nil
}

// Run blocks consuming booking events until the context is cancelled.
// It satisfies the application Worker interface.
func (rc *ReleaseConsumer) Run(ctx context.Context) error {
	defer rc.consumer.Close()
	return rc.consumer.Start(ctx)
}

func (rc *ReleaseConsumer) handle(ctx context.Context, msg kafka.Message) error {
	if msg.GetEventType() != kafka.EventBookingCreated {
		return nil
	}

	var event kafka.BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		rc.log.Warn("Discarding undecodable booking event", "event_id", msg.GetEventID(), "error", err)
		return nil
	}

	rc.log.Info("Releasing holds for booked slot",
		"booking_id", event.BookingID,
		"bar_id", event.BarID,
		"tables", len(event.TableIDs),
	)

	rc.holds.ReleaseSlots(ctx, event.AccountID, event.BarID, event.TableIDs, event.BookingDate, event.BookingClock)
	return nil
}
