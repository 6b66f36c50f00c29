package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMetrics(t *testing.T) {
	m := NewScanMetrics()
	m.ObserveInstrument(OutcomeOK)
	m.ObserveInstrument(OutcomeOK)
	m.ObserveInstrument(OutcomePending)
	m.ObserveNotification(NotifySent)
	m.ObserveCycle(nil, 3, time.Second)
	m.ObserveCycle(errors.New("boom"), 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Instruments.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Instruments.WithLabelValues(OutcomePending)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues(NotifySent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Cycles.WithLabelValues("error")))
	// 失败的周期不覆盖上次的命中数
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Matches))
}

func TestScanMetrics_Nil(t *testing.T) {
	var m *ScanMetrics
	assert.NotPanics(t, func() {
		m.ObserveInstrument(OutcomeOK)
		m.ObserveCycle(nil, 1, time.Second)
		m.ObserveNotification(NotifyFailed)
	})
	assert.Nil(t, m.Registry())
	assert.Nil(t, NewPusher("http://localhost:9091", "job", m))
}

func TestPusher_Push(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.True(t, strings.HasPrefix(r.URL.Path, "/metrics/job/amplitude_scanner"), r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewScanMetrics()
	m.ObserveInstrument(OutcomeOK)

	p := NewPusher(srv.URL, "", m)
	require.NotNil(t, p)
	require.NoError(t, p.Push(context.Background()))
	assert.Equal(t, int32(1), hits.Load())

	var empty *Pusher
	assert.NoError(t, empty.Push(context.Background()))
}
