// Package scorer ranks law records against a free-text query using a small
// keyword heuristic. It is a pure function of (query, records): no state, no
// errors, and an empty result is a normal outcome.
package scorer

import (
	"sort"
	"strings"

	"lawmitra-backend/models"
)

const (
	// maxResults caps how many records survive into a response
	maxResults = 3
	// phraseBonus rewards an exact substring match of the whole query,
	// so phrase matches outrank bag-of-words overlap
	phraseBonus = 10
	// titleBonus applies per keyword found in the title
	titleBonus = 3
	// categoryBonus applies per keyword contained in the category label
	categoryBonus = 2
	// contentOccurrenceCap limits how much a single over-repeated keyword
	// in the content can contribute
	contentOccurrenceCap = 3
	// minKeywordLen filters out stopword-length tokens
	minKeywordLen = 3
)

// legalTerms are domain keywords that carry extra weight when matched.
// Fixed at build time, matched case-insensitively.
var legalTerms = map[string]struct{}{
	"law":          {},
	"legal":        {},
	"act":          {},
	"penalty":      {},
	"fine":         {},
	"violation":    {},
	"offense":      {},
	"court":        {},
	"police":       {},
	"complaint":    {},
	"rights":       {},
	"protection":   {},
	"accident":     {},
	"compensation": {},
	"harassment":   {},
	"violence":     {},
	"helpline":     {},
	"license":      {},
	"arrest":       {},
	"education":    {},
	"employment":   {},
}

type scoredMatch struct {
	law   models.Law
	score int
}

// FindRelevantLaws returns the up-to-3 records most relevant to the query,
// descending by score, ties kept in input order. Records that score zero are
// dropped, so an unrelated query yields an empty slice.
func FindRelevantLaws(query string, laws []models.Law) []models.Law {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(laws) == 0 {
		return nil
	}
	keywords := strings.Fields(q)

	var matches []scoredMatch
	for _, law := range laws {
		if score := scoreLaw(q, keywords, law); score > 0 {
			matches = append(matches, scoredMatch{law: law, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	out := make([]models.Law, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.law)
	}
	return out
}

// scoreLaw computes the relevance score of one record. The query and
// keywords must already be lower-cased.
func scoreLaw(query string, keywords []string, law models.Law) int {
	title := strings.ToLower(law.Title)
	category := strings.ToLower(law.Category)
	content := strings.ToLower(law.Content)
	composite := title + " " + category + " " + strings.ToLower(law.Summary) + " " + content

	score := 0
	if strings.Contains(composite, query) {
		score += phraseBonus
	}

	for _, keyword := range keywords {
		if len(keyword) < minKeywordLen {
			continue
		}
		if !strings.Contains(composite, keyword) {
			continue
		}
		if _, ok := legalTerms[keyword]; ok {
			score += 2
		} else {
			score++
		}
		if strings.Contains(title, keyword) {
			score += titleBonus
		}
		if strings.Contains(category, keyword) {
			score += categoryBonus
		}
		if n := strings.Count(content, keyword); n > 0 {
			if n > contentOccurrenceCap {
				n = contentOccurrenceCap
			}
			score += n
		}
	}
	return score
}
