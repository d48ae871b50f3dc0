package gateway

import (
	"context"
	"encoding/json"

	"github.com/gebeta-delivery/gebeta/internal/pkg/constants"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
	"github.com/gebeta-delivery/gebeta/services/restaurants"
)

// RestaurantGW handles NATS publishing for restaurant events
type RestaurantGW struct {
	natsClient *natspkg.Client
}

// NewRestaurantGW creates a new restaurant gateway
func NewRestaurantGW(client *natspkg.Client) restaurants.RestaurantGW {
	return &RestaurantGW{natsClient: client}
}

// PublishRestaurantCreated publishes a restaurant onboarding event
func (g *RestaurantGW) PublishRestaurantCreated(ctx context.Context, restaurant *models.Restaurant) error {
	return g.publish(constants.SubjectRestaurantCreated, restaurant)
}

// PublishRestaurantUpdated publishes a restaurant flag change event
func (g *RestaurantGW) PublishRestaurantUpdated(ctx context.Context, restaurant *models.Restaurant) error {
	return g.publish(constants.SubjectRestaurantUpdated, restaurant)
}

func (g *RestaurantGW) publish(subject string, restaurant *models.Restaurant) error {
	event := models.RestaurantEvent{
		RestaurantID: restaurant.ID,
		Name:         restaurant.Name,
		IsApproved:   restaurant.IsApproved,
		IsActive:     restaurant.IsActive,
		UpdatedAt:    restaurant.UpdatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.natsClient.Publish(subject, data)
}
