package export

import (
	"fmt"
	"io"

	"github.com/shunichi-ikebuchi/ledger-export/pkg/ledger"
)

// Format selects one of the two supported output dialects.
type Format string

const (
	FormatLedger  Format = "ledger"
	FormatHLedger Format = "hledger"
)

// ParseFormat validates a format name from configuration or a CLI flag.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatLedger:
		return FormatLedger, nil
	case FormatHLedger:
		return FormatHLedger, nil
	default:
		return "", fmt.Errorf("unknown export format %q (supported: %s, %s)", s, FormatLedger, FormatHLedger)
	}
}

// Exporter writes a directive sequence as blank-line-separated text records,
// in input order, to a caller-supplied sink.
type Exporter struct {
	printer *Printer
}

// NewExporter returns an exporter for the named dialect, wired to the
// built-in residual balancer.
func NewExporter(format Format) (*Exporter, error) {
	switch format {
	case FormatLedger:
		return &Exporter{printer: NewLedgerPrinter(nil)}, nil
	case FormatHLedger:
		return &Exporter{printer: NewHLedgerPrinter(nil)}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// NewExporterWithPrinter wraps an explicitly constructed printer, e.g. one
// with an injected residual balancer.
func NewExporterWithPrinter(p *Printer) *Exporter {
	return &Exporter{printer: p}
}

// Export renders every directive in order and writes each record followed by
// one separating newline. Each record already ends in a newline, so records
// are separated by exactly one blank line. On any rendering error nothing
// further is written; downstream consumers parse the output textually and
// cannot tolerate a corrupt tail.
func (e *Exporter) Export(w io.Writer, directives []ledger.Directive) error {
	for i, directive := range directives {
		record, err := e.printer.Render(directive)
		if err != nil {
			return fmt.Errorf("rendering directive %d (%s): %w", i, directive.Kind(), err)
		}
		if _, err := io.WriteString(w, record); err != nil {
			return fmt.Errorf("writing directive %d: %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing record separator: %w", err)
		}
	}
	return nil
}
