package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SignedNotifier delivers the team notification for a signed partner.
type SignedNotifier interface {
	SendPartnerSigned(payload SignedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier SignedNotifier
}

func NewWorker(ch *amqp.Channel, notifier SignedNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload SignedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it goes to the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Partner signed: %s (tier %s)", payload.Name, payload.PartnerTier)

			if err := w.Notifier.SendPartnerSigned(payload); err != nil {
				log.Printf("❌ [WORKER] Notification failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
