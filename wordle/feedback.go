package wordle

// LetterFeedback classifies one guess letter against the secret.
type LetterFeedback int

const (
	// Absent letters do not occur in the secret, beyond occurrences
	// already matched as Correct or Present
	Absent LetterFeedback = iota
	// Present letters occur in the secret but at a different position
	Present
	// Correct letters occupy the same position as in the secret
	Correct
)

// Feedback is the per-position result of one guess. Its length always
// equals the word length.
type Feedback []LetterFeedback

// Score evaluates guess against secret with Wordle's duplicate-letter
// rule: exact matches claim their letter first, remaining occurrences are
// Present only while unmatched copies of that letter remain in the secret.
// Both words must have the same length.
func Score(secret, guess string) Feedback {
	result := make(Feedback, len(guess))
	counts := make(map[byte]int, len(secret))
	for i := 0; i < len(secret); i++ {
		counts[secret[i]] += 1
	}
	for i := 0; i < len(guess); i++ {
		if guess[i] == secret[i] {
			result[i] = Correct
			counts[guess[i]] -= 1
		}
	}
	for i := 0; i < len(guess); i++ {
		if result[i] == Correct {
			continue
		}
		if counts[guess[i]] > 0 {
			result[i] = Present
			counts[guess[i]] -= 1
		}
	}
	return result
}

func (f Feedback) AllCorrect() bool {
	for _, lf := range f {
		if lf != Correct {
			return false
		}
	}
	return len(f) > 0
}

// Greens counts the Correct positions.
func (f Feedback) Greens() int {
	n := 0
	for _, lf := range f {
		if lf == Correct {
			n += 1
		}
	}
	return n
}

func (f Feedback) String() string {
	out := make([]byte, len(f))
	for i, lf := range f {
		switch lf {
		case Correct:
			out[i] = 'g'
		case Present:
			out[i] = 'y'
		default:
			out[i] = 'b'
		}
	}
	return string(out)
}
