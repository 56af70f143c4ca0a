package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EventPublisherMock struct {
	mock.Mock
}

func NewEventPublisherMock() *EventPublisherMock {
	return &EventPublisherMock{}
}

func (m *EventPublisherMock) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}
