package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: rulesets whose selectors are .class or #id
// (comma lists allowed) with "key: value;" declarations. Other selectors and at-rules
// are skipped. Later rules override earlier ones for the same property.
func ParseCSS(r io.Reader) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(r), false)
	sheet := &Stylesheet{}
	var current []int // indexes of the rules opened by the current ruleset
	depth := 0        // nesting of at-rule blocks we are skipping
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("ui: parse css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		case css.BeginRulesetGrammar:
			current = current[:0]
			if depth > 0 {
				continue
			}
			for _, sel := range strings.Split(joinTokens(p.Values()), ",") {
				sel = strings.TrimSpace(sel)
				if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') || strings.ContainsAny(sel, " >+~:[") {
					continue
				}
				current = append(current, len(sheet.Rules))
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
			}
		case css.DeclarationGrammar:
			key := strings.ToLower(strings.TrimSpace(string(data)))
			val := strings.TrimSpace(joinTokens(p.Values()))
			for _, i := range current {
				sheet.Rules[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			current = current[:0]
		}
	}
}

// ParseCSSString is ParseCSS over a string.
func ParseCSSString(content string) (*Stylesheet, error) {
	return ParseCSS(strings.NewReader(content))
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}
