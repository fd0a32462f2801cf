package websocket

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendDropsWhenQueueFull(t *testing.T) {
	c := NewClient(nil, uuid.New(), NewHub())
	for i := 0; i < sendQueueSize; i++ {
		require.NoError(t, c.Send([]byte("x")))
	}

	before := testutil.ToFloat64(metrics.WebsocketDroppedEvents)
	err := c.Send([]byte("overflow"))

	assert.ErrorIs(t, err, ErrSendBufferFull)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WebsocketDroppedEvents))
}

func TestClient_SendAfterClose(t *testing.T) {
	c := NewClient(nil, uuid.New(), NewHub())
	c.closed = true

	assert.ErrorIs(t, c.Send([]byte("x")), ErrClientClosed)
	assert.True(t, c.IsClosed())
}

func TestClient_Identity(t *testing.T) {
	owner := uuid.New()
	c := NewClient(nil, owner, NewHub())

	assert.Equal(t, owner, c.OwnerID())
	_, err := uuid.Parse(c.ID())
	assert.NoError(t, err)
}
