package surface

// Queue is a front-consumable sequence of raw tokens.
type Queue struct {
	tokens []string
	head   int
}

// NewQueue returns a queue over a copy of tokens.
func NewQueue(tokens []string) *Queue {
	return &Queue{tokens: append([]string(nil), tokens...)}
}

// Len returns the number of tokens left.
func (q *Queue) Len() int {
	return len(q.tokens) - q.head
}

// Peek returns the first n remaining tokens without consuming them.
func (q *Queue) Peek(n int) []string {
	return q.tokens[q.head : q.head+n]
}

// Pop consumes and returns the first token.
func (q *Queue) Pop() string {
	tok := q.tokens[q.head]
	q.head++
	return tok
}

// Drop consumes n tokens.
func (q *Queue) Drop(n int) {
	q.head += n
}
