package gen

// signedShrinkInit is a generic implementation for signed integer shrinking.
// Int, Int8, Int16, Int32, and Int64 all delegate their shrink search here
// instead of each carrying its own copy of the same neighbor heuristics.
func signedShrinkInit[T ~int | ~int8 | ~int16 | ~int32 | ~int64](start, min, max T) (T, Shrinker[T]) {
	cur := clampSigned(start, min, max)
	last := cur

	queue := make([]T, 0, 16)
	seen := map[T]struct{}{cur: {}}

	push := func(x T) {
		if x < min || x > max {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		queue = append(queue, x)
	}

	growNeighbors := func(base T) {
		queue = queue[:0]
		target := shrinkTargetSigned(min, max)

		if base != target {
			push(target)
		}

		if base != target {
			next := midpointTowardsSigned(base, target)
			if next != base {
				push(next)
			}
			series := next
			for i := 0; i < 8; i++ {
				if series == target {
					break
				}
				series = midpointTowardsSigned(series, target)
				if series != base {
					push(series)
				}
			}
		}

		if base != target {
			step := stepTowardsSigned(base, target)
			if step != base {
				push(step)
			}
		}

		if base != min {
			push(min)
		}
		if base != max {
			push(max)
		}
	}
	growNeighbors(cur)

	pop := func() (T, bool) {
		if len(queue) == 0 {
			return 0, false
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

	return cur, func(accept bool) (T, bool) {
		if accept && last != cur {
			cur = last
			growNeighbors(cur)
		}
		nxt, ok := pop()
		if !ok {
			return 0, false
		}
		last = nxt
		return nxt, true
	}
}

func shrinkTargetSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](min, max T) T {
	if min <= 0 && 0 <= max {
		return 0
	}
	if min > 0 {
		return min
	}
	return max
}

func midpointTowardsSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](a, b T) T {
	if a == b {
		return a
	}
	d := b - a
	step := d / 2
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return a + step
}

func stepTowardsSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](a, b T) T {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}

func clampSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](x, min, max T) T {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func absSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func maxSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// autoRangeSigned decides the effective [-M, M] range for a signed generator by
// combining the locally requested Size with the runner-provided Size, falling
// back to [-100, 100] when neither specifies a magnitude.
func autoRangeSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](local, fromRunner Size) (T, T) {
	var m T
	m = maxSigned(m, absSigned(T(local.Min)))
	m = maxSigned(m, absSigned(T(local.Max)))
	m = maxSigned(m, absSigned(T(fromRunner.Min)))
	m = maxSigned(m, absSigned(T(fromRunner.Max)))
	if m == 0 {
		m = 100
	}
	return -m, m
}
