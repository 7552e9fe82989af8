package kv

import (
	"github.com/go-redis/redismock/v9"
)

type RedisMock struct {
	redismock.ClientMock
}

// NewRedisMock points target at a Redis backed by a redismock client, so
// code under test takes the same *Redis it would take in production.
func NewRedisMock(target **Redis) *RedisMock {
	client, mock := redismock.NewClientMock()
	*target = &Redis{client}
	return &RedisMock{mock}
}
