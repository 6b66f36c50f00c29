package binance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adshao/go-binance/v2/futures"
)

// newTestClient 把 futures 客户端指向本地 httptest 服务
func newTestClient(t *testing.T, handler http.HandlerFunc) *futures.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := futures.NewClient("", "")
	cli.BaseURL = srv.URL
	cli.HTTPClient = srv.Client()
	return cli
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
