package match

import (
	"slices"
	"strings"
	"unicode"
)

// strippedSuffixes are dropped from normalized keys when comparing, longest first,
// so "userId" and "user" or "createdAt" and "created" pair up.
var strippedSuffixes = []string{"timestamp", "ids", "utc", "id", "at"}

// Levenshtein computes the edit distance between two strings: the minimum number
// of single-byte insertions, deletions or substitutions turning a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/maxLen: 1.0 for identical strings, 0.0 for
// strings sharing nothing.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// tokenSuffixScore is the similarity of keys where one key's words end the
// other's ("id" and "userId").
const tokenSuffixScore = 0.75

// KeySimilarity compares two record keys after normalization. Keys differing only
// by a common suffix ("id", "at", ...) score as well as their stems do.
func KeySimilarity(a, b string) float64 {
	plain := Similarity(NormalizeKey(a), NormalizeKey(b))
	stemmed := Similarity(stem(a), stem(b))
	score := max(plain, stemmed)

	if score < tokenSuffixScore && (endsWithWords(a, b) || endsWithWords(b, a)) {
		score = tokenSuffixScore
	}

	return score
}

// endsWithWords reports whether the words of short end the words of long.
func endsWithWords(long, short string) bool {
	lw, sw := Tokenize(long), Tokenize(short)
	if len(sw) == 0 || len(sw) >= len(lw) {
		return false
	}

	return slices.Equal(lw[len(lw)-len(sw):], sw)
}

// NormalizeKey folds a key for fuzzy comparison: camelCase, snake_case, kebab-case
// and spaced spellings of the same words normalize equally.
//
//	"userID", "user_id", "User-Id" -> "userid"
func NormalizeKey(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits a key into lower-case words.
//
//	"getHTTPResponse" -> ["get", "http", "response"]
//	"order_item-ID"   -> ["order", "item", "id"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func stem(s string) string {
	n := NormalizeKey(s)

	for _, suffix := range strippedSuffixes {
		if len(n) > len(suffix) && strings.HasSuffix(n, suffix) {
			return strings.TrimSuffix(n, suffix)
		}
	}

	return n
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsWord reports whether runes[i] begins a new camelCase word: a lower-to-upper
// transition ("orderID" before 'I') or the last capital of an acronym followed by a
// lower-case letter ("XMLParser" before 'P').
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
