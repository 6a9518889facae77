package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

func simplePosting(account, amount string) *ledger.Posting {
	units, _ := ledger.ParseAmount(amount)
	return &ledger.Posting{Account: account, Position: &ledger.Position{Units: units}}
}

func pricePosting(account, amount, price string) *ledger.Posting {
	p := simplePosting(account, amount)
	rate, _ := ledger.ParseAmount(price)
	p.Price = &rate
	return p
}

func costPosting(account, amount, cost string) *ledger.Posting {
	p := simplePosting(account, amount)
	basis, _ := ledger.ParseAmount(cost)
	p.Position.Lot = &ledger.Lot{Cost: &basis}
	return p
}

func TestClassifyPartitionsPostings(t *testing.T) {
	txn := &ledger.Transaction{Postings: []*ledger.Posting{
		costPosting("Assets:Stock", "5 GOOG", "520.0 USD"),
		simplePosting("Expenses:Commissions", "9.95 USD"),
		pricePosting("Assets:Cash", "-2939.46 CAD", "0.8879 USD"),
		simplePosting("Assets:Checking", "-100 USD"),
	}}

	cls := Classify(txn)

	assert.Len(t, cls.AtCost, 1)
	assert.Len(t, cls.AtPrice, 1)
	assert.Len(t, cls.Simple, 2)
	assert.Equal(t, "Assets:Stock", cls.AtCost[0].Account)
	assert.Equal(t, "Assets:Cash", cls.AtPrice[0].Account)
	// relative order preserved within the bucket
	assert.Equal(t, "Expenses:Commissions", cls.Simple[0].Account)
	assert.Equal(t, "Assets:Checking", cls.Simple[1].Account)
}

func TestClassifyCostWinsOverPrice(t *testing.T) {
	// A posting with both a held cost and an explicit price is at-cost; the
	// price is only consulted when the lot carries no cost.
	both := costPosting("Assets:Stock", "5 GOOG", "520.0 USD")
	rate, _ := ledger.ParseAmount("600.0 USD")
	both.Price = &rate

	// Input ordering must not matter.
	orderings := [][]*ledger.Posting{
		{both, simplePosting("Assets:Cash", "-2600 USD")},
		{simplePosting("Assets:Cash", "-2600 USD"), both},
	}
	for _, postings := range orderings {
		cls := Classify(&ledger.Transaction{Postings: postings})
		assert.Len(t, cls.AtCost, 1)
		assert.Empty(t, cls.AtPrice)
		assert.Len(t, cls.Simple, 1)
	}
}

func TestClassifyBarePostingIsSimple(t *testing.T) {
	cls := Classify(&ledger.Transaction{Postings: []*ledger.Posting{
		{Account: "Assets:Checking"},
	}})
	assert.Len(t, cls.Simple, 1)
}

func TestHasConversion(t *testing.T) {
	atCost := costPosting("Assets:Stock", "5 GOOG", "520.0 USD")
	atPrice := pricePosting("Assets:Cash", "-2939.46 CAD", "0.8879 USD")
	simple := simplePosting("Expenses:Fees", "9.95 USD")

	tests := []struct {
		name     string
		postings []*ledger.Posting
		want     bool
	}{
		{"cost and price", []*ledger.Posting{atCost, atPrice}, true},
		{"cost only", []*ledger.Posting{atCost, simple}, false},
		{"price only", []*ledger.Posting{atPrice, simple}, false},
		{"simple only", []*ledger.Posting{simple}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(&ledger.Transaction{Postings: tt.postings})
			assert.Equal(t, tt.want, cls.HasConversion())
		})
	}
}
