package wordle

import (
	"sort"
	"strings"
)

// Knowledge is the constraint set accumulated from feedback: per-position
// placed letters, per-position eliminated letters, minimum global counts
// of confirmed-present letters and globally absent letters. It is the
// state abstraction used as the RL state key. Constraints only tighten,
// and folding the same feedback in any order yields the same Knowledge.
type Knowledge struct {
	length     int
	placed     []byte
	eliminated []map[byte]bool
	present    map[byte]int
	absent     map[byte]bool
}

func NewKnowledge(length int) *Knowledge {
	eliminated := make([]map[byte]bool, length)
	for i := range eliminated {
		eliminated[i] = make(map[byte]bool)
	}
	return &Knowledge{
		length:     length,
		placed:     make([]byte, length),
		eliminated: eliminated,
		present:    make(map[byte]int),
		absent:     make(map[byte]bool),
	}
}

// Observe folds one scored guess into the constraint set.
func (k *Knowledge) Observe(guess string, result Feedback) {
	// matched counts every occurrence scored Correct or Present,
	// missed marks letters with at least one Absent occurrence
	matched := make(map[byte]int)
	missed := make(map[byte]bool)
	for i := 0; i < len(guess) && i < k.length; i++ {
		c := guess[i]
		switch result[i] {
		case Correct:
			k.placed[i] = c
			matched[c] += 1
		case Present:
			k.eliminated[i][c] = true
			matched[c] += 1
		default:
			k.eliminated[i][c] = true
			missed[c] = true
		}
	}
	for c, n := range matched {
		if n > k.present[c] {
			k.present[c] = n
		}
	}
	// a letter is globally absent only when no occurrence of it in any
	// guess scored Correct or Present
	for c := range missed {
		if matched[c] == 0 && k.present[c] == 0 {
			k.absent[c] = true
		}
	}
}

// Placed counts the positions with a known-correct letter.
func (k *Knowledge) Placed() int {
	n := 0
	for _, c := range k.placed {
		if c != 0 {
			n += 1
		}
	}
	return n
}

// Consistent reports whether the word satisfies every constraint.
func (k *Knowledge) Consistent(word string) bool {
	if len(word) != k.length {
		return false
	}
	counts := make(map[byte]int, k.length)
	for i := 0; i < k.length; i++ {
		c := word[i]
		if k.placed[i] != 0 && k.placed[i] != c {
			return false
		}
		if k.eliminated[i][c] {
			return false
		}
		if k.absent[c] {
			return false
		}
		counts[c] += 1
	}
	for c, min := range k.present {
		if counts[c] < min {
			return false
		}
	}
	return true
}

// Filter keeps the words consistent with the constraint set, preserving
// order.
func (k *Knowledge) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if k.Consistent(w) {
			out = append(out, w)
		}
	}
	return out
}

// Key is the canonical, order-independent string form of the constraints.
func (k *Knowledge) Key() string {
	var b strings.Builder
	for _, c := range k.placed {
		if c == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(c)
		}
	}
	b.WriteByte('|')
	b.WriteString(sortedCounts(k.present))
	b.WriteByte('|')
	b.WriteString(sortedSet(k.absent))
	for i := range k.eliminated {
		b.WriteByte('|')
		b.WriteString(sortedSet(k.eliminated[i]))
	}
	return b.String()
}

func (k *Knowledge) Clone() *Knowledge {
	out := NewKnowledge(k.length)
	copy(out.placed, k.placed)
	for i := range k.eliminated {
		for c := range k.eliminated[i] {
			out.eliminated[i][c] = true
		}
	}
	for c, n := range k.present {
		out.present[c] = n
	}
	for c := range k.absent {
		out.absent[c] = true
	}
	return out
}

func sortedSet(set map[byte]bool) string {
	letters := make([]byte, 0, len(set))
	for c := range set {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func sortedCounts(counts map[byte]int) string {
	letters := make([]byte, 0, len(counts))
	for c := range counts {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	var b strings.Builder
	for _, c := range letters {
		b.WriteByte(c)
		b.WriteByte('0' + byte(counts[c]))
	}
	return b.String()
}
