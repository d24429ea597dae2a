package bank

import "math/rand"

// Shuffle returns a shuffled copy of questions truncated to limit.
// A limit of zero or one larger than the bank keeps every question.
// The input slice is not modified.
func Shuffle(questions []Question, limit int, seed int64) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return Limit(shuffled, limit)
}

// Limit returns at most limit questions from the front of questions.
func Limit(questions []Question, limit int) []Question {
	if limit <= 0 || limit > len(questions) {
		return questions
	}
	return questions[:limit]
}

// Arrange returns the questions to play: shuffled with seed when shuffle is
// set, then truncated to limit.
func (b *Bank) Arrange(shuffle bool, limit int, seed int64) []Question {
	if shuffle {
		return Shuffle(b.Questions, limit, seed)
	}
	return Limit(b.Questions, limit)
}
