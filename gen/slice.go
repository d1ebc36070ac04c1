package gen

import (
	"fmt"
	"math/rand"
)

// SliceOf generates []T from an element generator.
// - size.Min/Max control the length (default Min=0, Max=16).
// Shrink:
//
//	(1) remove large blocks (half, quarter, ...) → remove indices
//	(2) remove isolated element (right→left)
//	(3) try shrink on elements (propagating accept)
//
// Element shrinkers survive a rebase: when the accepted candidate came from
// removing a range, the surviving elements keep the same shrinker closures
// they already had (their values never changed); when it came from shrinking
// a single element, that element's own shrinker is told to commit so later
// rounds keep narrowing it instead of starting over.
func SliceOf[T any](elem Generator[T], size Size) Generator[[]T] {
	return From(func(r *rand.Rand, sz Size) ([]T, Shrinker[[]T]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		// defaults
		if size.Min == 0 && size.Max == 0 {
			size.Min, size.Max = 0, 16
		}
		if sz.Min != 0 || sz.Max != 0 {
			size = sz
		}
		if size.Max < size.Min {
			size.Max = size.Min
		}

		// length
		n := size.Min
		if size.Max > size.Min {
			n += r.Intn(size.Max - size.Min + 1)
		}

		// generate elems + capture shrinkers
		vals := make([]T, n)
		shks := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(r, Size{})
			vals[i], shks[i] = v, s
		}
		cur := append(([]T)(nil), vals...) // snapshot
		curShks := append(([]Shrinker[T])(nil), shks...)

		// a queued step carries the parallel shrinker slice alongside the
		// values, and elemIdx names the position an element-shrink step
		// came from (-1 for a removal step, where no commit is needed).
		type step struct {
			vals    []T
			shks    []Shrinker[T]
			elemIdx int
		}

		// dedup by textual "signature" (ok for testing; avoids cycles)
		seen := map[string]struct{}{sig(cur): {}}
		queue := make([]step, 0, 64)
		var last step

		push := func(s step) {
			k := sig(s.vals)
			if _, ok := seen[k]; ok {
				return
			}
			seen[k] = struct{}{}
			// copy to avoid sharing backing arrays across queued steps
			cpVals := append(([]T)(nil), s.vals...)
			cpShks := append(([]Shrinker[T])(nil), s.shks...)
			queue = append(queue, step{vals: cpVals, shks: cpShks, elemIdx: s.elemIdx})
		}

		// remove intervals [i:j) from base/baseShks in lockstep
		rem := func(base []T, baseShks []Shrinker[T], i, j int) ([]T, []Shrinker[T]) {
			outVals := make([]T, 0, len(base)-(j-i))
			outVals = append(outVals, base[:i]...)
			outVals = append(outVals, base[j:]...)
			outShks := make([]Shrinker[T], 0, len(baseShks)-(j-i))
			outShks = append(outShks, baseShks[:i]...)
			outShks = append(outShks, baseShks[j:]...)
			return outVals, outShks
		}

		growNeighbors := func(base []T, baseShks []Shrinker[T]) {
			queue = queue[:0]
			L := len(base)
			if L == 0 {
				return
			}
			// (1) remove large blocks (binary: half, quarter, ...)
			chunk := L / 2
			for chunk >= 1 {
				for i := 0; i+chunk <= L; i += chunk {
					v, s := rem(base, baseShks, i, i+chunk)
					push(step{vals: v, shks: s, elemIdx: -1})
				}
				chunk /= 2
			}
			// (2) remove isolated element (R->L)
			for i := L - 1; i >= 0; i-- {
				v, s := rem(base, baseShks, i, i+1)
				push(step{vals: v, shks: s, elemIdx: -1})
			}
			// (3) shrink elements locally, maintaining size
			//     (generates one neighbor per position with 1 shrink step)
			for i := L - 1; i >= 0; i-- {
				if baseShks == nil || baseShks[i] == nil {
					continue
				}
				if nv, ok := baseShks[i](false); ok { // false: proposing candidate
					cand := append(([]T)(nil), base...)
					cand[i] = nv
					candShks := append(([]Shrinker[T])(nil), baseShks...)
					push(step{vals: cand, shks: candShks, elemIdx: i})
				}
			}
		}
		growNeighbors(cur, curShks)

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
				curShks = last.shks
				// an element-shrink step already peeked its new value via
				// shks[i](false); tell that same shrinker it was accepted so
				// its own internal base advances and it keeps narrowing
				// from here instead of from the pre-shrink value.
				if last.elemIdx >= 0 && last.elemIdx < len(curShks) && curShks[last.elemIdx] != nil {
					curShks[last.elemIdx](true)
				}
				growNeighbors(cur, curShks)
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

// sig creates a simplified textual signature of a generic slice.
// For shrinking dedup purposes in tests, this is sufficient.
func sig[T any](s []T) string { return fmt.Sprintf("%#v", s) }
