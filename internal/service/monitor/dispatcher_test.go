package monitor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KNICEX/amplitude-scanner/internal/metrics"
	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAlertDispatcher_Dispatch(t *testing.T) {
	testCases := []struct {
		name     string
		results  []Result
		mock     func(n *MockNotifier)
		wantSent bool
		wantOK   float64
		wantFail float64
	}{
		{
			name:    "empty is noop",
			results: nil,
			mock:    func(n *MockNotifier) {},
		},
		{
			name:    "sent",
			results: []Result{result("AAA", "4")},
			mock: func(n *MockNotifier) {
				n.On("Send", mock.Anything, mock.MatchedBy(func(msg string) bool {
					return strings.HasPrefix(msg, "发现高振幅交易对:AAAUSDT")
				})).Return(nil).Once()
			},
			wantSent: true,
			wantOK:   1,
		},
		{
			name:    "delivery failed",
			results: []Result{result("AAA", "4"), result("BBB", "3")},
			mock: func(n *MockNotifier) {
				n.On("Send", mock.Anything, mock.Anything).
					Return(errors.Join(notification.ErrDelivery, errors.New("503"))).Once()
			},
			wantFail: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := new(MockNotifier)
			tc.mock(notifier)
			m := metrics.NewScanMetrics()

			sent := NewAlertDispatcher(notifier, m).Dispatch(context.Background(), tc.results)
			assert.Equal(t, tc.wantSent, sent)
			assert.Equal(t, tc.wantOK, testutil.ToFloat64(m.Notifications.WithLabelValues(metrics.NotifySent)))
			assert.Equal(t, tc.wantFail, testutil.ToFloat64(m.Notifications.WithLabelValues(metrics.NotifyFailed)))
			notifier.AssertExpectations(t)
		})
	}
}

func TestAlertDispatcher_NilMetrics(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("Send", mock.Anything, mock.Anything).Return(nil)
	assert.True(t, NewAlertDispatcher(notifier, nil).Dispatch(context.Background(), []Result{result("AAA", "4")}))
}
