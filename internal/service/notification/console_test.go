package notification

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	require.NoError(t, n.Send(context.Background(), "发现高振幅交易对:AAAUSDT"))
	assert.Equal(t, "发现高振幅交易对:AAAUSDT\n", buf.String())
}
