package catalog

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match tiers, best first. Within a tier longer queries rank higher.
const (
	scoreExact     = 100
	scorePrefix    = 80
	scoreWordStart = 60
	scoreSubstring = 40
	scoreScattered = 30
	scoreTypo      = 1
)

// typoSimilarity is the minimum normalised Levenshtein similarity for a
// query that does not otherwise appear in a template.
const typoSimilarity = 0.7

// Filter returns the templates matching query, best match first and catalog
// order among ties. An empty query returns the whole catalog.
func (c *Catalog) Filter(query string) []Template {
	if c == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Templates()
	}

	type ranked struct {
		Template
		score int
	}
	hits := make([]ranked, 0, len(c.templates))
	for _, t := range c.templates {
		if s := max(score(t.Name, q), score(t.ID, q)); s > 0 {
			hits = append(hits, ranked{Template: t, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b ranked) int { return b.score - a.score })

	out := make([]Template, len(hits))
	for i, h := range hits {
		out[i] = h.Template
	}
	return out
}

// score rates how well the lower-cased query q matches field; 0 is no match.
func score(field, q string) int {
	f := strings.ToLower(field)
	if f == q {
		return scoreExact
	}
	if strings.HasPrefix(f, q) {
		return scorePrefix + len(q)
	}
	if i := strings.Index(f, q); i >= 0 {
		if f[i-1] == ' ' || f[i-1] == '-' {
			return scoreWordStart + len(q)
		}
		return scoreSubstring + len(q)
	}
	if gaps, ok := scatteredGaps(f, q); ok {
		return max(scoreTypo+1, scoreScattered-gaps)
	}
	longest := max(len(f), len(q))
	if 1-float64(levenshtein.ComputeDistance(f, q))/float64(longest) >= typoSimilarity {
		return scoreTypo
	}
	return 0
}

// scatteredGaps reports whether q occurs in f as a subsequence and how many
// bytes of f were skipped between the first and last matched byte.
func scatteredGaps(f, q string) (int, bool) {
	start, pos := -1, 0
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(f[pos:], q[i])
		if j < 0 {
			return 0, false
		}
		if start < 0 {
			start = pos + j
		}
		pos += j + 1
	}
	return pos - start - len(q), true
}
