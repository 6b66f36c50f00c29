package notification

import (
	"context"
	"errors"
)

// ErrDelivery 通知没有送达
var ErrDelivery = errors.New("notification delivery failed")

type Notifier interface {
	Send(ctx context.Context, message string) error
}
