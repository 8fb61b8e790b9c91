package api

import "time"

// client defaults
const (
	BaseURL          = "https://discorddollars.com/api"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "ddollars-go"
)

// API endpoints, relative to the base URL
const (
	balanceEndpoint = "/balance/%s"
	bankEndpoint    = "/bank/%s"
	// the bank-scoped balance path carries its own /api prefix on top of the base URL
	bankBalanceEndpoint = "/api/bank/%s/balance/%s"
	transactEndpoint    = "/transact"
)
