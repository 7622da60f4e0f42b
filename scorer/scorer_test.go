package scorer

import (
	"strings"
	"testing"

	"lawmitra-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func law(id, title, category, summary, content string) models.Law {
	return models.Law{ID: id, Title: title, Category: category, Summary: summary, Content: content}
}

func sampleLaws() []models.Law {
	return []models.Law{
		law("traffic-1", "Traffic Signal Violations", "traffic",
			"Jumping a red light is punishable with a fine.",
			"Disregarding traffic signals can result in a fine and license suspension."),
		law("traffic-2", "Driving Without License", "traffic",
			"Driving without a valid license can lead to imprisonment.",
			"Driving without a valid license is a serious offense."),
		law("women-1", "Sexual Harassment at Workplace", "women",
			"Protection against workplace harassment.",
			"Harassment includes unwelcome conduct. Complaints can be filed within 3 months."),
		law("accident-1", "Road Accident Compensation", "accident",
			"Victims of road accidents are entitled to compensation.",
			"Victims of road accidents can claim compensation through tribunals."),
	}
}

func TestFindRelevantLaws_ReturnsAtMostThreeSortedByScore(t *testing.T) {
	laws := sampleLaws()
	// Every record mentions something matched by this query
	results := FindRelevantLaws("license accident harassment traffic compensation", laws)

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)

	query := strings.ToLower("license accident harassment traffic compensation")
	keywords := strings.Fields(query)
	prev := -1
	for i, r := range results {
		score := scoreLaw(query, keywords, r)
		if i > 0 {
			assert.LessOrEqual(t, score, prev, "scores must be non-increasing")
		}
		prev = score
	}
}

func TestFindRelevantLaws_WholeQuerySubstringOutranksKeywordOverlap(t *testing.T) {
	laws := []models.Law{
		// Shares keywords with the query but not the phrase
		law("a", "Compensation Claims", "accident", "claim compensation", "claim compensation"),
		// Contains the exact phrase in its content
		law("b", "Unrelated Title", "misc", "", "victims may claim compensation through tribunals"),
	}
	query := "claim compensation through tribunals"
	keywords := strings.Fields(query)

	require.GreaterOrEqual(t, scoreLaw(query, keywords, laws[1]), 10)

	results := FindRelevantLaws(query, laws)
	require.NotEmpty(t, results)
	assert.Equal(t, "b", results[0].ID)
}

func TestFindRelevantLaws_ShortTokensContributeNothing(t *testing.T) {
	laws := sampleLaws()
	// All tokens are two characters or fewer, and the whole query is not a
	// substring of any record
	assert.Empty(t, FindRelevantLaws("is it ok", laws))
}

func TestScoreLaw_KeywordOrderIndependent(t *testing.T) {
	record := sampleLaws()[0]
	a := "traffic penalty violation"
	b := "violation traffic penalty"

	scoreA := scoreLaw(a, strings.Fields(a), record)
	scoreB := scoreLaw(b, strings.Fields(b), record)
	// The phrase bonus differs per ordering only if the exact phrase
	// appears; neither ordering does here, so keyword scores must match
	assert.Equal(t, scoreA, scoreB)
}

func TestFindRelevantLaws_TrafficSignalQueryRanksTitleMatchFirst(t *testing.T) {
	results := FindRelevantLaws("traffic signal violation penalty", sampleLaws())
	require.NotEmpty(t, results)
	assert.Equal(t, "traffic-1", results[0].ID)
}

func TestFindRelevantLaws_EmptyCatalog(t *testing.T) {
	assert.Empty(t, FindRelevantLaws("traffic violation", nil))
}

func TestFindRelevantLaws_NoMatchIsEmptyNotError(t *testing.T) {
	assert.Empty(t, FindRelevantLaws("xyzabc123", sampleLaws()))
}

func TestScoreLaw_ContentOccurrencesCappedAtThree(t *testing.T) {
	repeated := law("r", "", "misc", "", strings.Repeat("zoning ", 10))
	capped := law("c", "", "misc", "", "zoning zoning zoning")

	query := "zoning"
	keywords := []string{"zoning"}
	// Strip the phrase-bonus difference by scoring keyword-only queries
	// that are substrings of both contents
	assert.Equal(t,
		scoreLaw(query, keywords, capped),
		scoreLaw(query, keywords, repeated))
}

func TestScoreLaw_LegalTermAllowlistWeight(t *testing.T) {
	record := law("x", "", "misc", "", "the penalty applies and the zoning applies")

	legal := scoreLaw("penalty", []string{"penalty"}, record)
	plain := scoreLaw("zoning", []string{"zoning"}, record)
	// Same structural match, but "penalty" carries the allowlist base
	// weight of 2 instead of 1
	assert.Equal(t, 1, legal-plain)
}

func TestScoreLaw_TitleAndCategoryBonuses(t *testing.T) {
	record := law("x", "Traffic Rules", "traffic", "", "traffic")

	score := scoreLaw("traffic", []string{"traffic"}, record)
	// phrase bonus 10 + base 1 + title 3 + category 2 + content occurrence 1
	assert.Equal(t, 17, score)
}
