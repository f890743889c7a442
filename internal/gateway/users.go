package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

// UpsertUser mirrors the principal into the remote user store. The upsert is
// keyed on uid, so retrying it is safe.
func (c *Client) UpsertUser(ctx context.Context, user domain.UserMirror) error {
	env, err := c.doRetry(ctx, http.MethodPost, "/users", user)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("%w: %s", domain.ErrServerRejected, env.Error)
	}
	return nil
}
