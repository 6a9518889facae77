package ledger

import (
	"strings"
	"time"
)

// Transaction records a financial transaction: a dated header plus an ordered,
// non-empty list of postings. Tags and links categorize and connect related
// transactions.
type Transaction struct {
	Date      time.Time
	Flag      string // "*", "!" or empty
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []*Posting
}

func (t *Transaction) Kind() Kind { return KindTransaction }

// WithPostings returns a copy of the transaction with the given postings. The
// original transaction is left untouched.
func (t *Transaction) WithPostings(postings []*Posting) *Transaction {
	dup := *t
	dup.Postings = postings
	return &dup
}

// Posting is one account-leg of a transaction. A nil Position renders as a
// bare account line (an interpolated leg already resolved upstream). Price is
// an explicit conversion rate, independent of any cost held in the lot.
type Posting struct {
	Account  string
	Flag     string
	Position *Position
	Price    *Amount
}

// HeldAtCost reports whether the posting's position carries a cost basis.
func (p *Posting) HeldAtCost() bool {
	return p.Position != nil && p.Position.Lot != nil && p.Position.Lot.Cost != nil
}

// Position is a units amount paired with an optional lot.
type Position struct {
	Units Amount
	Lot   *Lot
}

// Lot carries the cost-basis metadata of a held position: the per-unit cost
// and optional acquisition date and label.
type Lot struct {
	Cost  *Amount
	Date  *time.Time
	Label string
}

// Strs returns the canonical two-part rendering of the position: the units
// amount, and the bracketed cost clause when the lot is held at cost.
func (p *Position) Strs() (amountStr, costStr string) {
	amountStr = p.Units.String()
	if p.Lot == nil || p.Lot.Cost == nil {
		return amountStr, ""
	}

	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(p.Lot.Cost.String())
	if p.Lot.Date != nil {
		b.WriteString(", ")
		b.WriteString(p.Lot.Date.Format("2006-01-02"))
	}
	if p.Lot.Label != "" {
		b.WriteString(", \"")
		b.WriteString(p.Lot.Label)
		b.WriteString("\"")
	}
	b.WriteByte('}')
	return amountStr, b.String()
}
