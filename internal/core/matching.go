package core

import (
	"sort"
	"strings"

	"github.com/valter-silva-au/foresight/pkg/models"
)

// Similarity weighting. Each weight participates only when both sides carry
// the field; the final score divides by the sum of included weights so a
// missing field is excluded rather than counted as zero.
const (
	weightName        = 0.5
	weightDescription = 0.3
	weightTags        = 0.1
	weightAliases     = 0.1
)

// Reason bands for similarity matches. Informational only.
const (
	bandVerySimilar = 0.95
	bandSimilar     = 0.85
	bandModerate    = 0.75
)

// SimilarityMatch pairs a repository item with its similarity score against a
// query and a human-readable reason for the match.
type SimilarityMatch struct {
	Item   models.RepositoryItem
	Score  float64
	Reason string
}

// stopWords mirrors the term filter used for description matching.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true,
	"to": true, "for": true, "on": true, "at": true, "by": true,
	"with": true, "from": true, "is": true, "and": true, "or": true,
}

// levenshtein computes the edit distance between two strings using the full
// dynamic-programming matrix over runes.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1]+1, curr[j-1]+1, prev[j]+1)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// stringSimilarity scores two strings in [0,1] using normalized edit
// distance, case-insensitive and trimmed. Identical strings score 1.0.
func stringSimilarity(a, b string) float64 {
	s1 := normalizeName(a)
	s2 := normalizeName(b)

	if s1 == s2 {
		return 1.0
	}

	maxLen := len([]rune(s1))
	if l := len([]rune(s2)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(s1, s2))/float64(maxLen)
}

// extractKeyTerms lowercases text, strips punctuation, and keeps tokens
// longer than two characters that are not stopwords.
func extractKeyTerms(text string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	terms := make(map[string]bool)
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 2 && !stopWords[word] {
			terms[word] = true
		}
	}
	return terms
}

// termSimilarity is the Jaccard index over key terms of both texts.
// Both empty means nothing to disagree about: 1.0. One empty: 0.0.
func termSimilarity(text1, text2 string) float64 {
	terms1 := extractKeyTerms(text1)
	terms2 := extractKeyTerms(text2)

	if len(terms1) == 0 && len(terms2) == 0 {
		return 1.0
	}
	if len(terms1) == 0 || len(terms2) == 0 {
		return 0.0
	}

	return jaccard(terms1, terms2)
}

func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for k := range a {
		if b[k] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = true
	}
	return set
}

// Similarity scores a free-text query against a repository item in [0,1].
// Fields absent on either side are excluded from both numerator and
// denominator, so sparse queries are not penalized.
func Similarity(query models.SimilarityQuery, item models.RepositoryItem) float64 {
	score := 0.0
	totalWeight := 0.0

	if query.Name != "" && item.Name != "" {
		score += stringSimilarity(query.Name, item.Name) * weightName
		totalWeight += weightName
	}

	if query.Name != "" && len(item.Aliases) > 0 {
		best := 0.0
		for _, alias := range item.Aliases {
			if s := stringSimilarity(query.Name, alias); s > best {
				best = s
			}
		}
		score += best * weightAliases
		totalWeight += weightAliases
	}

	if query.Description != "" && item.Description != "" {
		score += termSimilarity(query.Description, item.Description) * weightDescription
		totalWeight += weightDescription
	}

	if len(query.Tags) > 0 && len(item.Tags) > 0 {
		score += jaccard(tagSet(query.Tags), tagSet(item.Tags)) * weightTags
		totalWeight += weightTags
	}

	if totalWeight == 0 {
		return 0
	}
	return score / totalWeight
}

// matchReason maps a score to its informational band label.
func matchReason(score float64) string {
	switch {
	case score >= bandVerySimilar:
		return "Very similar name and description"
	case score >= bandSimilar:
		return "Similar name or close match in description"
	case score >= bandModerate:
		return "Moderate similarity in name and description"
	default:
		return "Some overlap in terminology"
	}
}

// FindSimilar scores the query against every item in the collection and
// returns matches at or above the threshold, sorted descending by score.
// An empty collection yields an empty result, not an error.
func FindSimilar(query models.SimilarityQuery, collection []models.RepositoryItem, threshold float64) []SimilarityMatch {
	var matches []SimilarityMatch
	for _, item := range collection {
		score := Similarity(query, item)
		if score >= threshold {
			matches = append(matches, SimilarityMatch{
				Item:   item,
				Score:  score,
				Reason: matchReason(score),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// SuggestUnifiedName proposes one name for a set of near-duplicate names by
// keeping their most frequent key terms (at most four), title-cased.
func SuggestUnifiedName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	if len(names) == 1 {
		return names[0]
	}

	counts := make(map[string]int)
	var order []string
	for _, name := range names {
		for term := range extractKeyTerms(name) {
			if counts[term] == 0 {
				order = append(order, term)
			}
			counts[term]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})
	if len(order) > 4 {
		order = order[:4]
	}

	parts := make([]string, len(order))
	for i, term := range order {
		parts[i] = strings.ToUpper(term[:1]) + term[1:]
	}

	unified := strings.Join(parts, " ")
	if unified == "" {
		return names[0]
	}
	return unified
}
