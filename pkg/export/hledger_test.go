package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

func TestHLedgerPostingCostBecomesPrice(t *testing.T) {
	txn := &ledger.Transaction{
		Date: date(2014, time.November, 2),
		Flag: "*",
		Postings: []*ledger.Posting{
			costPosting("Assets:CA:Investment:GOOG", "5 GOOG", "520.0 USD"),
			simplePosting("Assets:Cash", "-2600.0 USD"),
		},
	}

	p := NewHLedgerPrinter(func(txn *ledger.Transaction, _ string) *ledger.Transaction { return txn })
	got, err := p.Render(txn)
	require.NoError(t, err)

	// braces stripped, re-emitted as a price field
	assert.Contains(t, got,
		"  Assets:CA:Investment:GOOG                                                  5 GOOG      @ 520.0 USD\n")
	assert.NotContains(t, got, "{")
}

func TestHLedgerPostingExplicitPriceFoldsIntoCostSlot(t *testing.T) {
	txn := &ledger.Transaction{
		Date: date(2014, time.November, 2),
		Flag: "*",
		Postings: []*ledger.Posting{
			pricePosting("Assets:CA:Investment:Cash", "-2939.46 CAD", "0.8879 USD"),
		},
	}

	p := NewHLedgerPrinter(func(txn *ledger.Transaction, _ string) *ledger.Transaction { return txn })
	got, err := p.Render(txn)
	require.NoError(t, err)

	assert.Contains(t, got,
		"  Assets:CA:Investment:Cash                                            -2939.46 CAD     @ 0.8879 USD\n")
}

func TestHLedgerPostingCostWinsOverExplicitPrice(t *testing.T) {
	posting := costPosting("Assets:Stock", "5 GOOG", "520.0 USD")
	rate, _ := ledger.ParseAmount("521.0 USD")
	posting.Price = &rate

	txn := &ledger.Transaction{
		Date:     date(2014, time.November, 2),
		Flag:     "*",
		Postings: []*ledger.Posting{posting},
	}

	p := NewHLedgerPrinter(func(txn *ledger.Transaction, _ string) *ledger.Transaction { return txn })
	got, err := p.Render(txn)
	require.NoError(t, err)

	assert.Contains(t, got, "@ 520.0 USD")
	assert.NotContains(t, got, "@ 521.0 USD")
}

func TestHLedgerOpenAlwaysComment(t *testing.T) {
	p := NewHLedgerPrinter(nil)

	// currencies are irrelevant for this dialect
	got, err := p.Render(&ledger.Open{
		Date:       date(2014, time.May, 1),
		Account:    "Assets:US:BofA:Checking",
		Currencies: []string{"USD", "EUR"},
	})
	require.NoError(t, err)
	assert.Equal(t, ";; Open: 2014/05/01 close Assets:US:BofA:Checking\n", got)
}

func TestHLedgerInheritsBaselineHandlers(t *testing.T) {
	baseline := NewLedgerPrinter(nil)
	variant := NewHLedgerPrinter(nil)

	directives := []ledger.Directive{
		&ledger.Note{Date: date(2014, time.July, 1), Account: "Assets:Checking", Comment: "hello"},
		&ledger.Close{Date: date(2014, time.December, 31), Account: "Assets:Old"},
		&ledger.Price{Date: date(2014, time.July, 1), Currency: "HOOL", Amount: ledger.NewAmount("520.0", "USD")},
		&ledger.Balance{Date: date(2014, time.July, 1), Account: "Assets:Checking", Amount: ledger.NewAmount("1", "USD")},
	}
	for _, directive := range directives {
		want, err := baseline.Render(directive)
		require.NoError(t, err)
		got, err := variant.Render(directive)
		require.NoError(t, err)
		assert.Equal(t, want, got, "kind %s", directive.Kind())
	}
}

func TestHLedgerBalanceIsSilent(t *testing.T) {
	p := NewHLedgerPrinter(nil)
	got, err := p.Render(&ledger.Balance{
		Date:    date(2014, time.July, 1),
		Account: "Assets:Checking",
		Amount:  ledger.NewAmount("100", "USD"),
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
