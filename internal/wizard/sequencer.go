package wizard

// Sequencer is a linear cursor over steps 1..N, with N+1 as the preview
// state. Moves are clamped; nothing is ever rejected.
type Sequencer struct {
	total   int
	current int
}

// NewSequencer starts at step 1 of total steps.
func NewSequencer(total int) *Sequencer {
	if total < 1 {
		total = 1
	}
	return &Sequencer{total: total, current: 1}
}

// Current is the 1-based cursor, Total()+1 when previewing.
func (s *Sequencer) Current() int { return s.current }

// Total is the number of editable steps.
func (s *Sequencer) Total() int { return s.total }

// InPreview reports whether the cursor sits on the terminal state.
func (s *Sequencer) InPreview() bool { return s.current == s.total+1 }

// Advance moves one step forward, stopping at the preview state.
func (s *Sequencer) Advance() int {
	if s.current <= s.total {
		s.current++
	}
	return s.current
}

// Retreat moves one step back, stopping at step 1.
func (s *Sequencer) Retreat() int {
	if s.current > 1 {
		s.current--
	}
	return s.current
}

// Reset returns to step 1.
func (s *Sequencer) Reset() {
	s.current = 1
}

// Progress is the completion percentage shown next to the step counter,
// 100 once in preview.
func (s *Sequencer) Progress() int {
	if s.InPreview() {
		return 100
	}
	return s.current * 100 / s.total
}
