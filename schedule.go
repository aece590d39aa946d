package pixveil

import (
	"github.com/pixveil/pixveil/internal/prng"
)

// position is one accepted embedding slot.
type position struct {
	pos     int64
	x, y    int
	channel int
}

// scheduler maps generator draws to unique, complexity-eligible
// (pixel, channel) positions. Candidate draws land anywhere in
// [0, capacity); draws below the complexity threshold or already consumed
// are rejected and redrawn. The budget caps total draws per operation, so
// a threshold that rejects nearly the whole image fails deterministically
// instead of spinning forever.
//
// gate is the buffer complexity is evaluated against. During embedding it
// is the untouched source buffer, never the partially written output, so
// the accept/reject sequence does not depend on mutation order.
type scheduler struct {
	gen       *prng.LCG
	gate      *PixelBuffer
	threshold int
	budget    int64
	attempts  int64
	accepted  int
	used      map[int64]struct{}
}

// attemptFactorDefault bounds scheduling work at capacity × factor draws.
const attemptFactorDefault = 4

func newScheduler(gen *prng.LCG, gate *PixelBuffer, threshold, attemptFactor int) *scheduler {
	if attemptFactor <= 0 {
		attemptFactor = attemptFactorDefault
	}
	return &scheduler{
		gen:       gen,
		gate:      gate,
		threshold: threshold,
		budget:    gate.Capacity() * int64(attemptFactor),
		used:      make(map[int64]struct{}),
	}
}

// next yields the next accepted position, or a BudgetExhaustedError tagged
// with op once the draw budget runs out.
func (s *scheduler) next(op string, required int) (position, error) {
	capacity := s.gate.Capacity()
	for s.attempts < s.budget {
		s.attempts++
		pos := int64(s.gen.Next()) % capacity

		x, y, channel := s.gate.locate(pos)
		if s.gate.Complexity(x, y) < s.threshold {
			continue
		}
		if _, taken := s.used[pos]; taken {
			continue
		}

		s.used[pos] = struct{}{}
		s.accepted++
		return position{pos: pos, x: x, y: y, channel: channel}, nil
	}
	return position{}, &BudgetExhaustedError{
		Op:       op,
		Accepted: s.accepted,
		Required: required,
		Attempts: s.attempts,
	}
}
