// Package interpolate computes the balancing residual of a transaction and
// absorbs it into a synthesized posting. Target tools check balance at a
// coarser per-currency precision than the source ledger, so a transaction
// that balances upstream can come out slightly off once rendered; the
// rounding posting makes it balance exactly.
package interpolate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

// Weight returns the amount a posting contributes to its transaction's
// balance: units converted at the held cost if the lot carries one, else at
// the explicit price if present, else the units themselves. The second return
// is false for a bare posting with no position, which contributes nothing.
func Weight(posting *ledger.Posting) (ledger.Amount, bool) {
	if posting.Position == nil {
		return ledger.Amount{}, false
	}

	units := posting.Position.Units
	if posting.HeldAtCost() {
		cost := posting.Position.Lot.Cost
		return ledger.Amount{
			Number:   units.Number.Mul(cost.Number),
			Currency: cost.Currency,
		}, true
	}
	if posting.Price != nil {
		return ledger.Amount{
			Number:   units.Number.Mul(posting.Price.Number),
			Currency: posting.Price.Currency,
		}, true
	}
	return units, true
}

// Residual sums the posting weights per currency and returns the non-zero
// sums, ordered by currency for deterministic output.
func Residual(txn *ledger.Transaction) []ledger.Amount {
	sums := make(map[string]decimal.Decimal)
	for _, posting := range txn.Postings {
		weight, ok := Weight(posting)
		if !ok {
			continue
		}
		sums[weight.Currency] = sums[weight.Currency].Add(weight.Number)
	}

	currencies := make([]string, 0, len(sums))
	for currency, sum := range sums {
		if !sum.IsZero() {
			currencies = append(currencies, currency)
		}
	}
	sort.Strings(currencies)

	residual := make([]ledger.Amount, 0, len(currencies))
	for _, currency := range currencies {
		residual = append(residual, ledger.Amount{Number: sums[currency], Currency: currency})
	}
	return residual
}

// FillResidualPosting returns a copy of the transaction with one extra
// posting per residual currency on the rounding account, each absorbing the
// negated residual. A transaction with no residual is returned unchanged.
// The input transaction is never mutated.
func FillResidualPosting(txn *ledger.Transaction, roundingAccount string) *ledger.Transaction {
	residual := Residual(txn)
	if len(residual) == 0 {
		return txn
	}

	postings := make([]*ledger.Posting, 0, len(txn.Postings)+len(residual))
	postings = append(postings, txn.Postings...)
	for _, amount := range residual {
		postings = append(postings, &ledger.Posting{
			Account:  roundingAccount,
			Position: &ledger.Position{Units: amount.Neg()},
		})
	}
	return txn.WithPostings(postings)
}
