package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/interpolate"
	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

// RoundingAccount absorbs the residual left over after the target tool's
// coarser per-currency balancing precision.
const RoundingAccount = "Equity:Rounding"

// dateFormat is the date layout both target dialects expect.
const dateFormat = "2006/01/02"

// ResidualFunc returns a transaction extended with a posting on the rounding
// account that makes it balance exactly at the target tool's reduced
// precision. It must never mutate its input.
type ResidualFunc func(txn *ledger.Transaction, roundingAccount string) *ledger.Transaction

type handlerFunc func(p *Printer, directive ledger.Directive, b *strings.Builder) error

type postingFunc func(b *strings.Builder, posting *ledger.Posting, cls Classification) error

// Printer renders one directive at a time into its textual record. Dispatch is
// an explicit kind-to-handler map so the full per-kind behavior of a dialect
// is enumerable; a dialect variant copies the baseline map and replaces only
// the entries whose syntax differs.
type Printer struct {
	handlers     map[ledger.Kind]handlerFunc
	posting      postingFunc
	fillResidual ResidualFunc
}

// NewLedgerPrinter returns a printer for the baseline "ledger" dialect.
// A nil fill falls back to the built-in residual balancer.
func NewLedgerPrinter(fill ResidualFunc) *Printer {
	if fill == nil {
		fill = interpolate.FillResidualPosting
	}
	return &Printer{
		handlers: map[ledger.Kind]handlerFunc{
			ledger.KindTransaction: renderTransaction,
			ledger.KindBalance:     renderBalance,
			ledger.KindOpen:        renderOpen,
			ledger.KindClose:       renderClose,
			ledger.KindNote:        renderNote,
			ledger.KindDocument:    renderDocument,
			ledger.KindPad:         renderPad,
			ledger.KindPrice:       renderPrice,
			ledger.KindEvent:       renderEvent,
		},
		posting:      renderLedgerPosting,
		fillResidual: fill,
	}
}

// Render formats a single directive as its complete text record. The record
// ends with its own trailing newline; separation between records is the
// exporter's job. A kind without a handler degrades to a comment line.
func (p *Printer) Render(directive ledger.Directive) (string, error) {
	var b strings.Builder

	handler, ok := p.handlers[directive.Kind()]
	if !ok {
		fmt.Fprintf(&b, ";; Unsupported: %s\n", directive.Kind())
		return b.String(), nil
	}

	if err := handler(p, directive, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderTransaction(p *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry, ok := directive.(*ledger.Transaction)
	if !ok {
		return fmt.Errorf("directive of kind %q is %T, not a transaction", directive.Kind(), directive)
	}
	if len(entry.Postings) == 0 {
		return errors.New("transaction has no postings")
	}

	// Absorb the rounding residual before anything looks at the postings, so
	// the synthesized posting is classified and rendered like any other.
	entry = p.fillResidual(entry, RoundingAccount)
	cls := Classify(entry)

	for _, tag := range sortedCopy(entry.Tags) {
		fmt.Fprintf(b, ";; Tag: #%s\n", tag)
	}
	for _, link := range sortedCopy(entry.Links) {
		fmt.Fprintf(b, ";; Link: ^%s\n", link)
	}

	var parts []string
	if entry.Payee != "" {
		parts = append(parts, entry.Payee+" |")
	}
	if entry.Narration != "" {
		parts = append(parts, entry.Narration)
	}
	fmt.Fprintf(b, "%s %s %s\n", entry.Date.Format(dateFormat), entry.Flag, strings.Join(parts, " "))

	for i, posting := range entry.Postings {
		if err := p.posting(b, posting, cls); err != nil {
			return fmt.Errorf("posting %d: %w", i, err)
		}
	}
	return nil
}

// renderLedgerPosting writes one posting line: the flagged account padded to a
// fixed column, then right-justified amount, cost and price fields, each run
// through the currency quoter, with trailing whitespace trimmed. The column
// widths are a compatibility contract with the target parser.
func renderLedgerPosting(b *strings.Builder, posting *ledger.Posting, cls Classification) error {
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

	var priceStr string
	switch {
	case posting.Price != nil:
		priceStr = "@ " + posting.Price.String()
	case cls.HasConversion() && posting.HeldAtCost():
		// The target tool rejects an at-cost leg without an explicit rate when
		// a currency conversion coexists in the same transaction.
		priceStr = "@ " + posting.Position.Lot.Cost.String()
	}

	line := fmt.Sprintf("  %-64s %16s %16s %16s", flagged,
		QuoteCurrency(amountStr), QuoteCurrency(costStr), QuoteCurrency(priceStr))
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
	return nil
}

// renderBalance emits nothing: the target formats only support file-level
// assertions, not dated ones, so the mapping is deliberately lossy.
func renderBalance(_ *Printer, _ ledger.Directive, _ *strings.Builder) error {
	return nil
}

func renderOpen(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Open)
	fmt.Fprintf(b, "account %-47s\n", entry.Account)
	if len(entry.Currencies) > 0 {
		clauses := make([]string, 0, len(entry.Currencies))
		for _, currency := range entry.Currencies {
			clauses = append(clauses, fmt.Sprintf("commodity == \"%s\"", currency))
		}
		fmt.Fprintf(b, "  assert %s\n", strings.Join(clauses, " | "))
	}
	return nil
}

func renderClose(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Close)
	fmt.Fprintf(b, ";; Close: %s close %s\n", entry.Date.Format(dateFormat), entry.Account)
	return nil
}

func renderNote(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Note)
	fmt.Fprintf(b, ";; Note: %s %s %s\n", entry.Date.Format(dateFormat), entry.Account, entry.Comment)
	return nil
}

func renderDocument(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Document)
	fmt.Fprintf(b, ";; Document: %s %s %s\n", entry.Date.Format(dateFormat), entry.Account, entry.Filename)
	return nil
}

// renderPad emits a comment only: the loader already materialized the
// balancing entries, so an active pad here would double-apply them.
func renderPad(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Pad)
	fmt.Fprintf(b, ";; Pad: %s %s %s\n", entry.Date.Format(dateFormat), entry.Account, entry.SourceAccount)
	return nil
}

func renderPrice(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Price)
	line := fmt.Sprintf("P %s 00:00:00 %-16s %16s\n",
		entry.Date.Format(dateFormat), entry.Currency, entry.Amount.String())
	b.WriteString(QuoteCurrency(line))
	return nil
}

func renderEvent(_ *Printer, directive ledger.Directive, b *strings.Builder) error {
	entry := directive.(*ledger.Event)
	fmt.Fprintf(b, ";; Event: %s \"%s\" \"%s\"\n", entry.Date.Format(dateFormat), entry.Type, entry.Description)
	return nil
}

func sortedCopy(values []string) []string {
	dup := make([]string, len(values))
	copy(dup, values)
	sort.Strings(dup)
	return dup
}
