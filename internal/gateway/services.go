package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

func (c *Client) ListServices(ctx context.Context, category string) ([]*domain.Service, error) {
	path := "/api/services"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	env, err := c.doRetry(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrServerRejected, env.Error)
	}

	services := []*domain.Service{}
	if len(env.Data) > 0 {
		if err := decodeData(env, &services); err != nil {
			return nil, fmt.Errorf("list services: %w", err)
		}
	}
	return services, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*domain.Service, error) {
	env, err := c.doRetry(ctx, http.MethodGet, "/api/services/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !env.Success {
		return nil, domain.ErrNotFound
	}

	var s domain.Service
	if err := decodeData(env, &s); err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}
