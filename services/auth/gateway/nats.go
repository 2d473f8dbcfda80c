package gateway

import (
	"context"
	"encoding/json"

	"github.com/rainwise/rainwise/internal/pkg/constants"
	"github.com/rainwise/rainwise/internal/pkg/models"
	natspkg "github.com/rainwise/rainwise/internal/pkg/nats"
)

// NATSGateway publishes auth events for the rest of the RainWise platform
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishUserVerified publishes a user verified event to NATS
func (g *NATSGateway) PublishUserVerified(ctx context.Context, event *models.UserVerifiedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectUserVerified, data)
}
