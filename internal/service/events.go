package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/mvoronov/locallibrary/pkg/kafka"
)

const (
	ActionCreated = "genre.created"
	ActionUpdated = "genre.updated"
	ActionDeleted = "genre.deleted"
)

// CatalogEvent is published on every successful catalog mutation.
type CatalogEvent struct {
	Action   string    `json:"action"`
	GenreUID string    `json:"genreUid"`
	Name     string    `json:"name,omitempty"`
	At       time.Time `json:"at"`
}

func catalogEvent(action string, genre model.Genre) CatalogEvent {
	return CatalogEvent{
		Action:   action,
		GenreUID: genre.GenreUID.String(),
		Name:     genre.Name,
		At:       now(),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

type Enqueuer interface {
	Enqueue(ev CatalogEvent) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(ev CatalogEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.CatalogTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// NopEnqueuer is used when no brokers are configured.
func NopEnqueuer() Enqueuer {
	return nopEnqueuer{}
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(CatalogEvent) error { return nil }
