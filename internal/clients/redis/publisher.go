package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// PublisherState is the routing state of a publisher kept in the cache for
// the delivery path.
type PublisherState struct {
	Status    string `json:"status"`
	Cap       int    `json:"cap"`
	BlockRule string `json:"block_rule"`
}

// PublisherKey returns the cache key of a publisher.
func PublisherKey(id int64) string {
	return "PUB_" + strconv.FormatInt(id, 10)
}

func (c *Client) SetPublisherState(ctx context.Context, id int64, state PublisherState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal publisher state: %w", err)
	}
	if err := c.Set(ctx, PublisherKey(id), payload); err != nil {
		return fmt.Errorf("failed to cache publisher state: %w", err)
	}
	return nil
}

// GetPublisherState returns ErrCacheMiss when the publisher is not cached.
func (c *Client) GetPublisherState(ctx context.Context, id int64) (PublisherState, error) {
	payload, err := c.Get(ctx, PublisherKey(id))
	if err != nil {
		return PublisherState{}, err
	}
	var state PublisherState
	if err := json.Unmarshal(payload, &state); err != nil {
		return PublisherState{}, fmt.Errorf("failed to unmarshal publisher state: %w", err)
	}
	return state, nil
}

func (c *Client) DeletePublisherState(ctx context.Context, id int64) error {
	if err := c.Del(ctx, PublisherKey(id)); err != nil {
		return fmt.Errorf("failed to evict publisher state: %w", err)
	}
	return nil
}
