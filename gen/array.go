package gen

import "math/rand"

// ArrayOf generates a slice of **exact** length n, using the element generator.
// It is "array-like": great when you need to simulate [N]T.
// Shrink: cannot remove elements; only tries local shrink at each position,
// exploring multiple branches (BFS/DFS) and deduplicating candidates. Since
// the length never changes, the position-to-shrinker mapping is stable
// across rebases: only the element that actually moved needs to be told it
// was accepted, so every other position's shrinker keeps its own progress.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	return From(func(r *rand.Rand, _ Size) ([]T, Shrinker[[]T]) {
		if r == nil {
			// Using math/rand for deterministic property-based testing
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		if n < 0 {
			n = 0
		}

		// generate values + element shrinkers
		cur := make([]T, n)
		elS := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(r, Size{})
			cur[i], elS[i] = v, s
		}

		type step struct {
			vals    []T
			elemIdx int
		}

		queue := make([]step, 0, 32)
		seen := map[string]struct{}{sig(cur): {}}
		var last step

		push := func(s step) {
			k := sig(s.vals)
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			cp := append(([]T)(nil), s.vals...)
			queue = append(queue, step{vals: cp, elemIdx: s.elemIdx})
		}

		// Generate neighbors by trying to "tame" each position with one local shrink step
		grow := func(base []T) {
			queue = queue[:0]
			L := len(base)
			for i := L - 1; i >= 0; i-- {
				if elS[i] == nil {
					continue
				}
				if nv, ok := elS[i](false); ok { // propose 1 candidate for position i
					cand := append(([]T)(nil), base...)
					cand[i] = nv
					push(step{vals: cand, elemIdx: i})
				}
			}
		}
		grow(cur)

		pop := func() (step, bool) {
			if len(queue) == 0 {
				return step{}, false
			}
			if shrinkStrategy == ShrinkStrategyDFS {
				v := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				return v, true
			}
			v := queue[0]
			queue = queue[1:]
			return v, true
		}

		return cur, func(accept bool) ([]T, bool) {
			if accept && sig(last.vals) != sig(cur) {
				cur = last.vals
				// the winning candidate came from shrinking one position;
				// tell its shrinker the new value was accepted so it keeps
				// narrowing from there instead of losing its place.
				if last.elemIdx >= 0 && last.elemIdx < len(elS) && elS[last.elemIdx] != nil {
					elS[last.elemIdx](true)
				}
				grow(cur)
			}
			nxt, ok := pop()
			if !ok {
				return nil, false
			}
			last = nxt
			return nxt.vals, true
		}
	})
}
