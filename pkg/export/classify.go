package export

import "github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"

// Classification partitions a transaction's postings into three disjoint
// buckets, preserving the original relative order within each. The decision
// whether an at-cost posting needs a synthesized price depends on the whole
// transaction, so the classification is computed once up front and threaded
// into the posting renderer rather than re-derived per posting.
type Classification struct {
	Simple  []*ledger.Posting // no valuation
	AtPrice []*ledger.Posting // explicit conversion rate, no held cost
	AtCost  []*ledger.Posting // held at cost (cost wins over an explicit price)
}

// HasConversion reports whether the transaction mixes at-cost and at-price
// postings. The ledger dialect requires at-cost legs to carry an explicit rate
// whenever a currency conversion coexists in the same transaction.
func (c Classification) HasConversion() bool {
	return len(c.AtPrice) > 0 && len(c.AtCost) > 0
}

// Classify splits a transaction's postings by valuation. A posting whose lot
// carries a cost is at-cost regardless of any explicit price; a posting with
// a price but no cost is at-price; everything else is simple.
func Classify(txn *ledger.Transaction) Classification {
	var c Classification
	for _, posting := range txn.Postings {
		switch {
		case posting.HeldAtCost():
			c.AtCost = append(c.AtCost, posting)
		case posting.Price != nil:
			c.AtPrice = append(c.AtPrice, posting)
		default:
			c.Simple = append(c.Simple, posting)
		}
	}
	return c
}
