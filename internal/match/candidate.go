package match

import (
	"go/types"
	"sort"
)

// Weights of the combined candidate score.
const (
	nameWeight = 0.6
	typeWeight = 0.4
)

// SuggestThreshold is the minimum key similarity for a "did you mean" suggestion.
const SuggestThreshold = 0.6

// Key is a record key with its Go type, nil when unknown.
type Key struct {
	Name string
	Type types.Type
}

// Candidate is a possible pairing of a primary key with an other key.
type Candidate struct {
	Primary Key
	Other   Key

	NameScore float64
	Compat    Result
	Score     float64
}

// CandidateList is sorted by Score, best first.
type CandidateList []Candidate

// Rank scores every other key as a partner for primary.
func Rank(primary Key, others []Key) CandidateList {
	list := make(CandidateList, 0, len(others))

	for _, other := range others {
		c := Candidate{
			Primary:   primary,
			Other:     other,
			NameScore: KeySimilarity(primary.Name, other.Name),
		}

		if primary.Type != nil && other.Type != nil {
			c.Compat = ScoreBothWays(primary.Type, other.Type)
		}

		c.Score = c.NameScore*nameWeight + typeScore(c.Compat.Compatibility)*typeWeight
		list = append(list, c)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}

		return list[i].Other.Name < list[j].Other.Name
	})

	return list
}

func typeScore(c Compatibility) float64 {
	switch c {
	case Identical:
		return 1.0
	case Assignable:
		return 0.9
	case Convertible:
		return 0.7
	case NeedsTransform:
		return 0.4
	default:
		return 0.0
	}
}

// Best returns the best candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// HighConfidence returns the best candidate when its name score reaches minName
// and it leads the runner-up by at least minGap. Otherwise it returns nil.
func (c CandidateList) HighConfidence(minName, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.NameScore < minName {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Suggest returns up to n candidates most similar to name, best first, ignoring
// those below SuggestThreshold.
func Suggest(name string, candidates []string, n int) []string {
	type scored struct {
		name  string
		score float64
	}

	var list []scored

	for _, c := range candidates {
		if s := KeySimilarity(name, c); s >= SuggestThreshold && c != name {
			list = append(list, scored{c, s})
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].score != list[j].score {
			return list[i].score > list[j].score
		}

		return list[i].name < list[j].name
	})

	if len(list) > n {
		list = list[:n]
	}

	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.name
	}

	return out
}
