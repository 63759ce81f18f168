package notify

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// KafkaDispatcher publishes notifications to a topic consumed by the external
// push-delivery system. Send errors are logged, never propagated.
type KafkaDispatcher struct {
	producer sarama.SyncProducer
	topic    string
	logger   zerolog.Logger
}

func NewKafkaDispatcher(producer sarama.SyncProducer, topic string, logger zerolog.Logger) *KafkaDispatcher {
	return &KafkaDispatcher{producer: producer, topic: topic, logger: logger}
}

func (d *KafkaDispatcher) Notify(_ context.Context, n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		d.logger.Error().Err(err).Msg("Failed to marshal notification")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: d.topic,
		// Key by entrant so one entrant's notifications stay ordered.
		Key:   sarama.StringEncoder(n.EntrantID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := d.producer.SendMessage(msg)
	if err != nil {
		d.logger.Error().
			Err(err).
			Str("entrant_id", n.EntrantID).
			Str("event_id", n.EventID).
			Str("kind", string(n.Kind)).
			Msg("Failed to publish notification")
		return
	}

	d.logger.Debug().
		Int32("partition", partition).
		Int64("offset", offset).
		Str("kind", string(n.Kind)).
		Msg("Notification published")
}
