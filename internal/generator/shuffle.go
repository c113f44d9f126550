package generator

import "math/rand"

// shuffleOptions returns the correct answer and its distractors in uniformly
// random order, together with the index of the correct answer. The index is
// recomputed by locating the answer text in the shuffled slice, never carried
// over from the pre-shuffle position.
func shuffleOptions(rng *rand.Rand, correct string, distractors []string) ([]string, int) {
	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	for i, option := range options {
		if option == correct {
			return options, i
		}
	}
	// Unreachable: the correct answer is always one of the options.
	return options, 0
}
