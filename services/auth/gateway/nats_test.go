package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainwise/rainwise/internal/pkg/constants"
	"github.com/rainwise/rainwise/internal/pkg/models"
	natspkg "github.com/rainwise/rainwise/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8369"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8369
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestPublishUserVerified(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	verifiedAt := time.Now().UTC().Truncate(time.Second)
	event := &models.UserVerifiedEvent{
		UserID:     "user-1",
		Email:      "user@example.com",
		VerifiedAt: verifiedAt,
	}

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.Subscribe(constants.SubjectUserVerified, func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	gw := NewNATSGateway(nc)
	err = gw.PublishUserVerified(context.Background(), event)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var received models.UserVerifiedEvent
		require.NoError(t, json.Unmarshal(msg.Data, &received))
		assert.Equal(t, event.UserID, received.UserID)
		assert.Equal(t, event.Email, received.Email)
		assert.True(t, verifiedAt.Equal(received.VerifiedAt))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}
