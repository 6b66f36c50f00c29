package notification

import (
	"context"
	"fmt"
	"io"
	"os"
)

var _ Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier 未配置推送渠道时直接打印
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{w: w}
}

func (c *ConsoleNotifier) Send(ctx context.Context, message string) error {
	if _, err := fmt.Fprintln(c.w, message); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}
	return nil
}
