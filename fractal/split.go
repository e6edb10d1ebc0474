package fractal

import "math"

// Split draws the three sub triangles of `t` and recurses into each of them,
// top first, then left, then right. Each sub triangle is drawn before
// its own sub triangles. A depth <= 0 draws nothing.
//
// The recursion is as deep as `depth`: callers should bound it
// (see fractaldraw.MaxDepth).
func (t Triangle) Split(depth int) {
	if depth <= 0 {
		return
	}
	t.TopSub().Draw().Split(depth - 1)
	t.LeftSub().Draw().Split(depth - 1)
	t.RightSub().Draw().Split(depth - 1)
}

type pending struct {
	t     Triangle
	depth int
}

// SplitStack issues the exact same draw sequence as Split,
// using an explicit stack instead of recursion.
func (t Triangle) SplitStack(depth int) {
	if depth <= 0 {
		return
	}
	var stack []pending
	push := func(parent Triangle, depth int) {
		subs := parent.Subdivide()
		// reverse order so that the top one is popped first
		for i := len(subs) - 1; i >= 0; i-- {
			stack = append(stack, pending{subs[i], depth - 1})
		}
	}

	push(t, depth)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p.t.Draw()
		if p.depth > 0 {
			push(p.t, p.depth)
		}
	}
}

// DrawCount returns the number of triangles drawn by Split(depth),
// that is 3 + 9 + ... + 3^depth. The count saturates at math.MaxInt,
// which is reached for depth 40 with 64 bit integers.
func DrawCount(depth int) int {
	total, level := 0, 1
	for i := 0; i < depth; i++ {
		if level > math.MaxInt/3 {
			return math.MaxInt
		}
		level *= 3
		if total > math.MaxInt-level {
			return math.MaxInt
		}
		total += level
	}
	return total
}
