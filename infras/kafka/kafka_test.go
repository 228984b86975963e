package kafka_test

import (
	"pitch/config"
	"pitch/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingCreated struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "2024-12-15", Value: bookingCreated{ID: "b-1", Date: "2024-12-15"}}

	kafkaMsg, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("2024-12-15"), kafkaMsg.Key)
	assert.JSONEq(t, `{"id":"b-1","date":"2024-12-15"}`, string(kafkaMsg.Value))

	decoded, err := kafka.Decode[bookingCreated](kafkaMsg)
	require.NoError(t, err)
	assert.Equal(t, "b-1", decoded.ID)
}

func TestMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()
	assert.Error(t, err)
}

func TestNewWithoutBrokers(t *testing.T) {
	assert.Nil(t, kafka.New(&config.Config{}))
}
