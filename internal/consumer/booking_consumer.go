package consumer

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/service"
)

// BookingConsumer turns booking.* messages into notification records, so
// notification writes happen off the request path.
type BookingConsumer struct {
	notifications service.NotificationService
}

func NewBookingConsumer(notifications service.NotificationService) *BookingConsumer {
	return &BookingConsumer{notifications: notifications}
}

// Start listens for messages until the channel closes.
func (bc *BookingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			bc.handleMessage(msg)
		}
		log.Println("[BookingConsumer] channel closed, stopping consumer")
	}()
}

func (bc *BookingConsumer) handleMessage(msg amqp.Delivery) {
	var booking models.Booking
	if err := json.Unmarshal(msg.Body, &booking); err != nil {
		log.Printf("[BookingConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	event := strings.TrimPrefix(msg.RoutingKey, "booking.")
	if err := bc.notifications.RecordBookingEvent(context.Background(), event, &booking); err != nil {
		log.Printf("[BookingConsumer] failed to record %s for booking %s: %v", event, booking.ID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[BookingConsumer] recorded %s notifications for booking %s", event, booking.ID)
	msg.Ack(false)
}
