package monitor

import (
	"context"
	"log/slog"

	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
)

// AlertDispatcher 把聚合结果推送出去, 推送失败只记录日志
type AlertDispatcher struct {
	notifier notification.Notifier
	metrics  *metrics.ScanMetrics
}

func NewAlertDispatcher(notifier notification.Notifier, m *metrics.ScanMetrics) *AlertDispatcher {
	return &AlertDispatcher{
		notifier: notifier,
		metrics:  m,
	}
}

// Dispatch 结果为空时什么都不做; 返回是否发送成功
func (d *AlertDispatcher) Dispatch(ctx context.Context, results []Result) bool {
	if len(results) == 0 {
		return false
	}

	msg := FormatAlert(results)
	if err := d.notifier.Send(ctx, msg); err != nil {
		slog.Error("amplitude monitor notify err", "error", err, "symbols", len(results))
		d.metrics.ObserveNotification(metrics.NotifyFailed)
		return false
	}
	slog.Info("amplitude alert sent", "symbols", len(results))
	d.metrics.ObserveNotification(metrics.NotifySent)
	return true
}
