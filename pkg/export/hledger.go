package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

// NewHLedgerPrinter returns a printer for the "hledger" dialect. It inherits
// the baseline handler map and replaces only the entries whose target syntax
// differs: postings and account declarations.
func NewHLedgerPrinter(fill ResidualFunc) *Printer {
	p := NewLedgerPrinter(fill)
	p.posting = renderHLedgerPosting
	p.handlers[ledger.KindOpen] = renderHLedgerOpen
	return p
}

// renderHLedgerPosting differs from the baseline in two ways: a cost clause is
// stripped of its braces and re-emitted as an "@ <cost>" price, and only two
// numeric fields are right-justified. An explicit price shares the slot with
// the cost-as-price; whichever is present is shown, with cost winning.
func renderHLedgerPosting(b *strings.Builder, posting *ledger.Posting, _ Classification) error {
	if posting.Account == "" {
		return errors.New("posting has no account")
	}

	flag := ""
	if posting.Flag != "" {
		flag = posting.Flag + " "
	}
	flagged := fmt.Sprintf("%s%-62s", flag, posting.Account)

	var amountStr, costStr string
	if posting.Position != nil {
		amountStr, costStr = posting.Position.Strs()
	}
	if costStr != "" {
		costStr = "@ " + strings.TrimSuffix(strings.TrimPrefix(costStr, "{"), "}")
	} else if posting.Price != nil {
		costStr = "@ " + posting.Price.String()
	}

	line := fmt.Sprintf("  %-64s %16s %16s", flagged,
		QuoteCurrency(amountStr), QuoteCurrency(costStr))
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
	return nil
}

// renderHLedgerOpen emits a comment: the target format has no account
// declaration, with or without currency restrictions.
func renderHLedgerOpen(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Open)
	fmt.Fprintf(b, ";; Open: %s close %s\n", entry.Date.Format(dateFormat), entry.Account)
	return nil
}
