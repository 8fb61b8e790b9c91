package api

import (
	"context"
	"net/http"
)

// GetBalance fetches a user's wallet balance
func (c *Client) GetBalance(ctx context.Context, userID string) (Body, error) {
	if userID == "" {
		return nil, missing("user ID")
	}
	return c.request(ctx, http.MethodGet, path(balanceEndpoint, userID), nil)
}

// GetBalanceFromBank fetches a user's balance held at a specific bank
func (c *Client) GetBalanceFromBank(ctx context.Context, userID, bankID string) (Body, error) {
	if userID == "" {
		return nil, missing("user ID")
	}
	if bankID == "" {
		return nil, missing("bank ID")
	}
	return c.request(ctx, http.MethodGet, path(bankBalanceEndpoint, bankID, userID), nil)
}
