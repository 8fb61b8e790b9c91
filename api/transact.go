package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// Stage identifies a step of Transact
type Stage int

const (
	StagePresence Stage = iota + 1
	StageAmount
	StageLookup
	StageExistence
	StageSufficiency
	StageCommit
)

// StageCount is the number of stages a successful Transact passes through
const StageCount = int(StageCommit)

func (s Stage) String() string {
	switch s {
	case StagePresence:
		return "checking arguments"
	case StageAmount:
		return "checking amount"
	case StageLookup:
		return "looking up accounts"
	case StageExistence:
		return "verifying accounts"
	case StageSufficiency:
		return "checking funds"
	case StageCommit:
		return "submitting transaction"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

type lookup struct {
	entity   string
	endpoint string
	body     Body
	err      error
}

// Transact moves amount from payerID at sourceBankID to payeeID at destBankID.
// All arguments are validated and the four involved records fetched before
// the transaction is posted; any failure aborts before the post.
func (c *Client) Transact(ctx context.Context, sourceBankID, destBankID, payerID, payeeID string, amount interface{}) (Body, error) {
	c.enterStage(StagePresence)
	required := []struct{ field, value string }{
		{"source bank", sourceBankID},
		{"dest bank", destBankID},
		{"payer", payerID},
		{"payee", payeeID},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, missing(r.field)
		}
	}
	if isBlankAmount(amount) {
		return nil, missing("amount")
	}
	if isZeroAmount(amount) {
		return nil, &ValidationError{Field: "amount", Err: ErrZeroAmount}
	}

	c.enterStage(StageAmount)
	value, err := ParseAmount(amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}

	c.enterStage(StageLookup)
	lookups := []*lookup{
		{entity: "payer", endpoint: path(bankBalanceEndpoint, sourceBankID, payerID)},
		{entity: "payee", endpoint: path(bankBalanceEndpoint, destBankID, payeeID)},
		{entity: "source bank", endpoint: path(bankEndpoint, sourceBankID)},
		{entity: "dest bank", endpoint: path(bankEndpoint, destBankID)},
	}
	if err := c.fetchAll(ctx, lookups); err != nil {
		return nil, err
	}

	c.enterStage(StageExistence)
	for _, l := range lookups {
		if _, ok := l.body.ID(); !ok {
			return nil, &ValidationError{Field: l.entity, Err: ErrNotFound}
		}
	}

	c.enterStage(StageSufficiency)
	// a balance that is absent or unreadable counts as zero
	balance, _ := lookups[0].body.Balance()
	if value.Decimal().GreaterThan(balance) {
		return nil, &ValidationError{Field: "payer", Err: ErrInsufficientFunds}
	}

	c.enterStage(StageCommit)
	return c.request(ctx, http.MethodPost, transactEndpoint, TransactionRequest{
		SourceBankID: sourceBankID,
		DestBankID:   destBankID,
		PayerID:      payerID,
		PayeeID:      payeeID,
		Amount:       value,
	})
}

// fetchAll runs the lookups and returns the first error in lookup order
func (c *Client) fetchAll(ctx context.Context, lookups []*lookup) error {
	if c.concurrentLookups {
		var g errgroup.Group
		for _, l := range lookups {
			l := l
			g.Go(func() error {
				l.body, l.err = c.request(ctx, http.MethodGet, l.endpoint, nil)
				return l.err
			})
		}
		// Wait reports whichever error arrived first; attribution below is by position
		_ = g.Wait()
	} else {
		for _, l := range lookups {
			l.body, l.err = c.request(ctx, http.MethodGet, l.endpoint, nil)
			if l.err != nil {
				break
			}
		}
	}

	for _, l := range lookups {
		if l.err != nil {
			return fmt.Errorf("failed to look up %s: %w", l.entity, l.err)
		}
	}
	return nil
}

func (c *Client) enterStage(s Stage) {
	if c.stageHook != nil {
		c.stageHook(s)
	}
}
