package ledger

import "time"

// Kind identifies a directive variant. The set is closed: renderers dispatch
// over Kind and degrade gracefully on anything they do not know.
type Kind string

const (
	KindTransaction Kind = "transaction"
	KindBalance     Kind = "balance"
	KindOpen        Kind = "open"
	KindClose       Kind = "close"
	KindNote        Kind = "note"
	KindDocument    Kind = "document"
	KindPad         Kind = "pad"
	KindPrice       Kind = "price"
	KindEvent       Kind = "event"
)

// Directive is one dated ledger entry. Concrete types carry the kind-specific
// fields; consumers type-switch after dispatching on Kind.
type Directive interface {
	Kind() Kind
}

// Balance asserts the balance of an account on a date. The assertion itself is
// checked by the accounting engine upstream; here it is data only.
type Balance struct {
	Date    time.Time
	Account string
	Amount  Amount
}

// Open declares an account, optionally restricted to a set of currencies.
type Open struct {
	Date       time.Time
	Account    string
	Currencies []string
}

// Close marks an account as closed from a date on.
type Close struct {
	Date    time.Time
	Account string
}

// Note attaches a free-form comment to an account.
type Note struct {
	Date    time.Time
	Account string
	Comment string
}

// Document associates a file with an account.
type Document struct {
	Date     time.Time
	Account  string
	Filename string
}

// Pad requests automatic balancing of an account from a source account. The
// loader materializes the balancing entries; downstream formats only ever see
// the pad as an annotation.
type Pad struct {
	Date          time.Time
	Account       string
	SourceAccount string
}

// Price records an exchange rate for a currency on a date.
type Price struct {
	Date     time.Time
	Currency string
	Amount   Amount
}

// Event records a named state change, e.g. a change of location or employer.
type Event struct {
	Date        time.Time
	Type        string
	Description string
}

func (b *Balance) Kind() Kind  { return KindBalance }
func (o *Open) Kind() Kind     { return KindOpen }
func (c *Close) Kind() Kind    { return KindClose }
func (n *Note) Kind() Kind     { return KindNote }
func (d *Document) Kind() Kind { return KindDocument }
func (p *Pad) Kind() Kind      { return KindPad }
func (p *Price) Kind() Kind    { return KindPrice }
func (e *Event) Kind() Kind    { return KindEvent }
