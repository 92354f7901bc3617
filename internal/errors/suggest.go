package errors

import "fmt"

// keywordSuggestion returns a "did you mean" hint when word is a likely
// misspelling of one of keywords, or "" otherwise.
func keywordSuggestion(word string, keywords []string) string {
	similar := findSimilarNames(word, keywords)
	if len(similar) == 0 {
		return ""
	}
	return fmt.Sprintf("did you mean `%s`?", similar[0])
}

// findSimilarNames returns the candidates within edit distance 2 of target,
// closest first. A candidate must keep at least one of its characters.
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	best := -1

	for _, candidate := range candidates {
		d := levenshteinDistance(target, candidate)
		if d == 0 || d > 2 || d >= len(candidate) {
			continue
		}
		if best == -1 || d < best {
			similar = append([]string{candidate}, similar...)
			best = d
		} else {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Create matrix
	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	// Initialize first row and column
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	// Fill the matrix
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	return min(a, min(b, c))
}
