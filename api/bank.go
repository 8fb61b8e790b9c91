package api

import (
	"context"
	"net/http"
)

// GetBank fetches a bank's information
func (c *Client) GetBank(ctx context.Context, bankID string) (Body, error) {
	if bankID == "" {
		return nil, missing("bank ID")
	}
	return c.request(ctx, http.MethodGet, path(bankEndpoint, bankID), nil)
}
