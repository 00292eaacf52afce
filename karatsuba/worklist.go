// SPDX-License-Identifier: MIT

package karatsuba

// Worklist evaluation
//
// The recursion tree is flattened into an arena of frames addressed by
// index. A frame is visited twice: first to split (or finish as a base
// case), then, once its three children have reported, to combine. Children
// write into their parent's parts slot and push the parent back when the
// last one arrives, so the order of completion is the same post-order the
// recursive version produces.
//
// When a frame combines, its three children are the last three arena
// entries (their own subtrees were already dropped), so they are truncated
// away. The arena never holds more than 1 + 3·depth frames.

// Slots in frame.parts.
const (
	slotP = iota // high × high
	slotQ        // low × low
	slotS        // (high+low) × (high+low)
)

// noParent marks the root frame.
const noParent = -1

// frame is one pending sub-multiplication.
type frame struct {
	a, b    string
	depth   int
	parent  int // index into the arena, or noParent
	slot    int // which of the parent's parts this frame fills
	shift   int // low-part length, set once split
	pending int // children still running
	split   bool
	parts   [3]string
}

// multiplyWorklist computes the same product as multiplyRecursive without
// growing the Go stack.
func multiplyWorklist(a, b string, threshold int, st *Stats) string {
	product, _ := runWorklist(a, b, threshold, st)

	return product
}

// runWorklist is multiplyWorklist that also returns the peak arena length.
func runWorklist(a, b string, threshold int, st *Stats) (string, int) {
	arena := []frame{{a: a, b: b, parent: noParent}}
	stack := []int{0}
	peak := len(arena)
	var result string

	// deliver hands a finished product to the parent, or to result for the root.
	deliver := func(i int, v string) {
		f := &arena[i]
		f.a, f.b, f.parts = "", "", [3]string{}
		if f.parent == noParent {
			result = v

			return
		}
		p := &arena[f.parent]
		p.parts[f.slot] = v
		p.pending--
		if p.pending == 0 {
			stack = append(stack, f.parent)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if arena[i].split {
			f := &arena[i]
			deliver(i, combine(f.parts[slotP], f.parts[slotQ], f.parts[slotS], f.shift))
			arena = arena[:len(arena)-3]

			continue
		}

		fa, fb, depth := arena[i].a, arena[i].b, arena[i].depth
		if isBase(fa, fb, threshold) {
			st.visit(depth, false)
			deliver(i, direct(fa, fb))

			continue
		}
		st.visit(depth, true)

		h := split(fa, fb)
		sa, sb := h.sums()
		arena[i].split = true
		arena[i].shift = h.shift
		arena[i].pending = 3

		// Pushed in reverse so P is evaluated first, like the recursive walk.
		children := [3][2]string{
			slotP: {h.aHi, h.bHi},
			slotQ: {h.aLo, h.bLo},
			slotS: {sa, sb},
		}
		for slot := slotS; slot >= slotP; slot-- {
			arena = append(arena, frame{
				a:      children[slot][0],
				b:      children[slot][1],
				depth:  depth + 1,
				parent: i,
				slot:   slot,
			})
			stack = append(stack, len(arena)-1)
		}
		peak = max(peak, len(arena))
	}

	return result, peak
}
