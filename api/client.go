package api

// API Client-
//
// Files:
//   config.go    - base URL, endpoint paths and client defaults
//   errors.go    - configuration, validation and status errors
//   types.go     - response body and transaction request types
//   amount.go    - strict parsing of currency amounts
//   base.go      - Client struct, options, NewClient and the shared request helper
//   balance.go   - user balance lookups (wallet and bank-scoped)
//   bank.go      - bank lookups
//   transact.go  - validated peer-to-peer transactions
//
// Usage:
//   client, err := api.NewClient(token)                          // from base.go
//   balance, err := client.GetBalance(ctx, userID)                // from balance.go
//   bank, err := client.GetBank(ctx, bankID)                      // from bank.go
//   result, err := client.Transact(ctx, from, to, payer, payee, "50") // from transact.go
