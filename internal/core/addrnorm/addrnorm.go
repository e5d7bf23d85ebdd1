// Package addrnorm canonicalizes free-text street addresses into comparison
// keys. The same physical address arrives spelled differently per delivery
// portal ("C/ de Sancho de Ávila, 175" vs "Calle de Sancho de Ávila 175");
// both must normalize to the same key so the grouper can fold them.
//
// The pipeline is an explicit ordered list of named rules. Each rule is a
// pure string transform and is unit testable in isolation; read the pipeline
// variable to audit the full normalization.
package addrnorm

import (
	"strings"

	"reparto/internal/core/textnorm"
)

// Rule is a single named normalization step
type Rule struct {
	Name  string
	Apply func(string) string
}

// pipeline is the full rule list, run in order. The street-number token is
// captured before the pipeline runs and re-appended after it when a rule
// (usually city stripping) has consumed it.
var pipeline = []Rule{
	{Name: "cut-at-comma", Apply: cutAtComma},
	{Name: "strip-postal-and-city", Apply: stripPostalAndCity},
	{Name: "fold", Apply: textnorm.Fold},
	{Name: "strip-street-prefix", Apply: stripStreetPrefix},
	{Name: "strip-prepositions", Apply: stripPrepositions},
	{Name: "flatten-punctuation", Apply: flattenPunct},
}

// Normalize returns the comparison key for a free-text street address.
// It is deterministic, total and does no I/O; empty or blank input yields ""
func Normalize(addr string) string {
	s := strings.TrimSpace(addr)
	if s == "" {
		return ""
	}
	num := captureNumber(s)
	for _, r := range pipeline {
		s = r.Apply(s)
	}
	return ensureNumber(s, num)
}

// Rules exposes the pipeline for audit and per-rule tests
func Rules() []Rule { return pipeline }

// captureNumber finds the street-number token: the first digit run, with an
// optional floor/unit qualifier word and secondary digit ("175 piso 2" -> "175 2")
func captureNumber(s string) string {
	m := numberRe.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return ""
	}
	if m[2] != "" {
		return m[1] + " " + m[2]
	}
	return m[1]
}

// cutAtComma truncates the address at the first comma. Everything after it is
// city, postal code or country noise for key purposes
func cutAtComma(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// stripPostalAndCity trims a trailing postal code and any trailing city,
// district or country token found on the fixed lookup list. Runs right to
// left so "28008 Madrid" drops in two passes
func stripPostalAndCity(s string) string {
	toks := strings.Fields(s)
	for len(toks) > 0 {
		last := foldToken(toks[len(toks)-1])
		if postalRe.MatchString(last) || isCityToken(last) {
			toks = toks[:len(toks)-1]
			continue
		}
		if len(toks) >= 2 && isCityBigram(foldToken(toks[len(toks)-2]), last) {
			toks = toks[:len(toks)-2]
			continue
		}
		break
	}
	return strings.Join(toks, " ")
}

// stripStreetPrefix removes a leading street-type word (calle, avda, c/, ...)
// from the folded text
func stripStreetPrefix(s string) string {
	return strings.TrimSpace(prefixRe.ReplaceAllString(s, ""))
}

// stripPrepositions drops stand-alone prepositions and articles
func stripPrepositions(s string) string {
	toks := strings.Fields(s)
	out := toks[:0]
	for _, t := range toks {
		if _, drop := prepSet[strings.Trim(t, ".,;:-")]; drop {
			continue
		}
		out = append(out, t)
	}
	return strings.Join(out, " ")
}

// flattenPunct maps punctuation and hyphens to spaces and collapses runs
func flattenPunct(s string) string {
	return textnorm.CollapseSpaces(punctReplacer.Replace(s))
}

// ensureNumber re-appends the captured street-number token when normalization
// has consumed it (district stripping can swallow a trailing number)
func ensureNumber(s, num string) string {
	if num == "" {
		return s
	}
	primary := num
	if i := strings.IndexByte(num, ' '); i >= 0 {
		primary = num[:i]
	}
	for _, t := range strings.Fields(s) {
		if t == primary {
			return s
		}
	}
	if s == "" {
		return num
	}
	return s + " " + num
}
