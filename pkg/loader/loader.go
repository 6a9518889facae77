// Package loader reads a ledger from its YAML interchange form into the
// in-memory directive model. It performs no arithmetic validation; the
// accounting engine that produced the file is trusted to have balanced and
// interpolated the entries already.
package loader

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

type ledgerFile struct {
	Directives []directiveDoc `yaml:"directives"`
}

type directiveDoc struct {
	Type string `yaml:"type"`
	Date string `yaml:"date"`

	// transaction fields
	Flag      string       `yaml:"flag"`
	Payee     string       `yaml:"payee"`
	Narration string       `yaml:"narration"`
	Tags      []string     `yaml:"tags"`
	Links     []string     `yaml:"links"`
	Postings  []postingDoc `yaml:"postings"`

	// account-centric fields
	Account       string   `yaml:"account"`
	Currencies    []string `yaml:"currencies"`
	SourceAccount string   `yaml:"source_account"`
	Comment       string   `yaml:"comment"`
	Filename      string   `yaml:"filename"`

	// price and balance fields
	Currency string `yaml:"currency"`
	Amount   string `yaml:"amount"`

	// event fields
	EventType   string `yaml:"event_type"`
	Description string `yaml:"description"`
}

type postingDoc struct {
	Account string   `yaml:"account"`
	Flag    string   `yaml:"flag"`
	Amount  string   `yaml:"amount"`
	Cost    *costDoc `yaml:"cost"`
	Price   string   `yaml:"price"`
}

type costDoc struct {
	Amount string `yaml:"amount"`
	Date   string `yaml:"date"`
	Label  string `yaml:"label"`
}

// Load reads and parses a YAML ledger file.
func Load(path string) ([]ledger.Directive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return Parse(data)
}

// Parse converts YAML ledger data into an ordered directive sequence.
func Parse(data []byte) ([]ledger.Directive, error) {
	var file ledgerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	directives := make([]ledger.Directive, 0, len(file.Directives))
	for i, doc := range file.Directives {
		directive, err := buildDirective(doc)
		if err != nil {
			return nil, fmt.Errorf("directive %d (%s): %w", i, doc.Type, err)
		}
		directives = append(directives, directive)
	}
	return directives, nil
}

func buildDirective(doc directiveDoc) (ledger.Directive, error) {
	date, err := parseDate(doc.Date)
	if err != nil {
		return nil, err
	}

	switch ledger.Kind(doc.Type) {
	case ledger.KindTransaction:
		return buildTransaction(doc, date)

	case ledger.KindBalance:
		amount, err := ledger.ParseAmount(doc.Amount)
		if err != nil {
			return nil, err
		}
		return &ledger.Balance{Date: date, Account: doc.Account, Amount: amount}, nil

	case ledger.KindOpen:
		return &ledger.Open{Date: date, Account: doc.Account, Currencies: doc.Currencies}, nil

	case ledger.KindClose:
		return &ledger.Close{Date: date, Account: doc.Account}, nil

	case ledger.KindNote:
		return &ledger.Note{Date: date, Account: doc.Account, Comment: doc.Comment}, nil

	case ledger.KindDocument:
		return &ledger.Document{Date: date, Account: doc.Account, Filename: doc.Filename}, nil

	case ledger.KindPad:
		return &ledger.Pad{Date: date, Account: doc.Account, SourceAccount: doc.SourceAccount}, nil

	case ledger.KindPrice:
		amount, err := ledger.ParseAmount(doc.Amount)
		if err != nil {
			return nil, err
		}
		return &ledger.Price{Date: date, Currency: doc.Currency, Amount: amount}, nil

	case ledger.KindEvent:
		return &ledger.Event{Date: date, Type: doc.EventType, Description: doc.Description}, nil

	default:
		return nil, fmt.Errorf("unknown directive type %q", doc.Type)
	}
}

func buildTransaction(doc directiveDoc, date time.Time) (*ledger.Transaction, error) {
	if len(doc.Postings) == 0 {
		return nil, fmt.Errorf("transaction has no postings")
	}

	postings := make([]*ledger.Posting, 0, len(doc.Postings))
	for i, pd := range doc.Postings {
		posting, err := buildPosting(pd)
		if err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		postings = append(postings, posting)
	}

	return &ledger.Transaction{
		Date:      date,
		Flag:      doc.Flag,
		Payee:     doc.Payee,
		Narration: doc.Narration,
		Tags:      doc.Tags,
		Links:     doc.Links,
		Postings:  postings,
	}, nil
}

func buildPosting(doc postingDoc) (*ledger.Posting, error) {
	if doc.Account == "" {
		return nil, fmt.Errorf("posting has no account")
	}

	posting := &ledger.Posting{Account: doc.Account, Flag: doc.Flag}

	if doc.Amount != "" {
		units, err := ledger.ParseAmount(doc.Amount)
		if err != nil {
			return nil, err
		}
		position := &ledger.Position{Units: units}

		if doc.Cost != nil {
			cost, err := ledger.ParseAmount(doc.Cost.Amount)
			if err != nil {
				return nil, fmt.Errorf("cost: %w", err)
			}
			lot := &ledger.Lot{Cost: &cost, Label: doc.Cost.Label}
			if doc.Cost.Date != "" {
				acquired, err := parseDate(doc.Cost.Date)
				if err != nil {
					return nil, fmt.Errorf("cost: %w", err)
				}
				lot.Date = &acquired
			}
			position.Lot = lot
		}
		posting.Position = position
	}

	if doc.Price != "" {
		price, err := ledger.ParseAmount(doc.Price)
		if err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		posting.Price = &price
	}

	return posting, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return date, nil
}
