// Package stylesheet finds color literals used in CSS stylesheets.
package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/criticalmash/bikeshed-colors/colors"
)

// Usage is a color literal found in a declaration value.
type Usage struct {
	// enclosing at-rules, outermost first ("@media print")
	AtRules  []string
	Selector string
	Property string
	Literal  string
	Color    colors.Color
}

// Location describes where literal was found: "@media print .btn { color }".
func (u Usage) Location() string {
	var sb strings.Builder
	for _, r := range u.AtRules {
		sb.WriteString(r + " ")
	}
	if u.Selector != "" {
		sb.WriteString(u.Selector + " ")
	}
	sb.WriteString("{ " + u.Property + " }")
	return sb.String()
}

// Scanner walks stylesheet declarations and parses every color literal it
// meets: hex hashes and rgb(), rgba(), hsl(), hsla() functions.
type Scanner struct {
	log    *zap.Logger
	parser *colors.Parser
}

// NewScanner creates a new stylesheet scanner.
func NewScanner(log *zap.Logger, parser *colors.Parser) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	if parser == nil {
		parser = colors.NewParser(log)
	}
	return &Scanner{log: log.Named("stylesheet"), parser: parser}
}

// ScanFile reads and scans stylesheet file.
func (s *Scanner) ScanFile(path string) ([]Usage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}
	return s.Scan(data, path)
}

// Scan returns all color usages in document order. Candidates which could
// not be parsed are reported in the combined error, the rest are returned
// regardless.
// The optional source parameter identifies what's being scanned (for debug logging).
func (s *Scanner) Scan(data []byte, source ...string) (usages []Usage, err error) {
	if len(source) > 0 && source[0] != "" {
		s.log.Debug("Scanning CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	var (
		atRules  []string
		selector string
	)

	record := func(property string, values []css.Token) {
		for _, lit := range candidates(values) {
			u := Usage{
				AtRules:  append([]string(nil), atRules...),
				Selector: selector,
				Property: property,
				Literal:  lit,
			}
			c, er := s.parser.Parse(lit)
			if er != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", u.Location(), er))
				continue
			}
			u.Color = c
			usages = append(usages, u)
		}
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if er := parser.Err(); er != nil && !errors.Is(er, io.EOF) {
				err = multierr.Append(err, fmt.Errorf("unable to parse stylesheet: %w", er))
			}
			s.log.Debug("Stylesheet scanned", zap.Int("colors", len(usages)), zap.Int("rejected", len(multierr.Errors(err))))
			return usages, err

		case css.BeginAtRuleGrammar:
			atRules = append(atRules, joinTokens(data, parser.Values()))

		case css.EndAtRuleGrammar:
			if len(atRules) > 0 {
				atRules = atRules[:len(atRules)-1]
			}

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selector = strings.Join(parseSelectors(data, parser.Values()), ", ")

		case css.EndRulesetGrammar:
			selector = ""

		case css.DeclarationGrammar:
			record(string(data), parser.Values())

		case css.CustomPropertyGrammar:
			// value of custom property is kept as single raw token
			var values []css.Token
			for _, v := range parser.Values() {
				if v.TokenType == css.CustomPropertyValueToken {
					values = append(values, lex(v.Data)...)
					continue
				}
				values = append(values, v)
			}
			record(string(data), values)
		}
	}
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	// Split by comma for grouped selectors
	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func joinTokens(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for i, v := range values {
		if i == 0 || v.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
		}
		sb.Write(v.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func lex(raw []byte) []css.Token {
	var tokens []css.Token
	l := css.NewLexer(parse.NewInputBytes(bytes.TrimSpace(raw)))
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return tokens
		}
		tokens = append(tokens, css.Token{TokenType: tt, Data: bytes.Clone(data)})
	}
}

func isColorFunction(data []byte) bool {
	switch strings.ToLower(string(data)) {
	case "rgb(", "rgba(", "hsl(", "hsla(":
		return true
	}
	return false
}

// candidates picks color literals out of declaration value tokens. Function
// literals are rebuilt from tokens: whitespace runs become single space and
// slash separator is always surrounded by spaces.
func candidates(tokens []css.Token) []string {
	var (
		out   []string
		sb    strings.Builder
		depth int
	)
	for _, t := range tokens {
		if depth == 0 {
			switch {
			case t.TokenType == css.HashToken:
				out = append(out, string(t.Data))
			case t.TokenType == css.FunctionToken && isColorFunction(t.Data):
				sb.Reset()
				sb.Write(t.Data)
				depth = 1
			}
			continue
		}

		switch t.TokenType {
		case css.WhitespaceToken:
			if s := sb.String(); !strings.HasSuffix(s, " ") && !strings.HasSuffix(s, "(") {
				sb.WriteByte(' ')
			}
			continue
		case css.DelimToken:
			if string(t.Data) == "/" {
				s := strings.TrimSuffix(sb.String(), " ")
				sb.Reset()
				sb.WriteString(s + " / ")
				continue
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				s := strings.TrimSuffix(sb.String(), " ")
				out = append(out, s+")")
				continue
			}
		}
		sb.Write(t.Data)
	}
	return out
}
