package services

// Sequence hands out consecutive numbers, starting at zero. Each factory
// owns its own sequence; nothing here is safe for concurrent use.
type Sequence struct {
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the current number and advances the sequence
func (s *Sequence) Next() int64 {
	n := s.next
	s.next++
	return n
}

// Peek returns the number the next call to Next will hand out
func (s *Sequence) Peek() int64 {
	return s.next
}
