package dialogue

import (
	"math/rand"
	"unicode/utf8"
)

// Fit selects conversations so the rendered document stays within limit
// characters (Unicode code points, not bytes). Phase 1 appends in input
// order and stops at the first conversation that would overflow. If that
// already takes everything, its result stands. Otherwise phase 2 makes one
// independent attempt over a shuffled copy, again appending greedily from
// empty, and its result replaces phase 1's — a best-effort fill for
// variety, not a packing optimum.
//
// rng may be nil, in which case the shared global source is used; tests
// and the --seed flag pass a seeded source.
func Fit(convs []Conversation, limit int, rng *rand.Rand) []Conversation {
	selected := fillGreedy(convs, limit)
	if len(selected) == len(convs) {
		return selected
	}

	shuffled := make([]Conversation, len(convs))
	copy(shuffled, convs)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	return fillGreedy(shuffled, limit)
}

// fillGreedy appends conversations in order until the next append would
// push the rendered document past limit, then stops. It never skips ahead.
func fillGreedy(convs []Conversation, limit int) []Conversation {
	var selected []Conversation

	for _, conv := range convs {
		candidate := append(selected, conv)
		if utf8.RuneCountInString(Render(candidate)) > limit {
			break
		}
		selected = candidate
	}

	return selected
}
