// Package export renders ledger directives into the plain-text dialects of
// two external bookkeeping tools. The two dialects share most per-directive
// rules; they differ only in how postings and account declarations are
// written. Rendering is deterministic and side-effect free apart from writes
// to the caller's sink.
package export

import (
	"regexp"
	"strings"
)

// currencyToken matches a commodity-like token: an uppercase letter, up to ten
// characters of uppercase/digit/'./_/-, and a final uppercase letter or digit.
var currencyToken = regexp.MustCompile(`\b([A-Z][A-Z0-9'._-]{0,10}[A-Z0-9])\b`)

// needsQuotes reports whether a matched token must be quoted to avoid being
// read as a number or operator by the target grammars.
func needsQuotes(currency string) bool {
	return strings.ContainsAny(currency, "0123456789.")
}

// QuoteCurrency quotes every commodity token in the string that contains a
// digit or a period. A token already surrounded by quotes is left alone, so
// the transform is idempotent. It is applied to formatted amount, cost and
// price substrings only, never to free-form narration text.
func QuoteCurrency(s string) string {
	matches := currencyToken.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range matches {
		start, end := loc[0], loc[1]
		b.WriteString(s[last:start])
		token := s[start:end]
		if needsQuotes(token) && !alreadyQuoted(s, start, end) {
			b.WriteByte('"')
			b.WriteString(token)
			b.WriteByte('"')
		} else {
			b.WriteString(token)
		}
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func alreadyQuoted(s string, start, end int) bool {
	return start > 0 && s[start-1] == '"' && end < len(s) && s[end] == '"'
}
