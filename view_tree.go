package dock

import "slices"

// --- View's own API ---

// AddChild appends children to this View.
func (v *View) AddChild(children ...*View) {
	v.mutate(func() {
		for _, child := range children {
			if child.parent != nil {
				child.parent.detach(child)
			}
			child.parent = v
			v.children = append(v.children, child)
		}
	})
}

// InsertChild inserts a child at index i, clamped to the valid range.
func (v *View) InsertChild(i int, child *View) {
	v.mutate(func() {
		if child.parent != nil {
			child.parent.detach(child)
		}
		i = min(max(i, 0), len(v.children))
		child.parent = v
		v.children = slices.Insert(v.children, i, child)
	})
}

// RemoveChild removes a child from this View, preserving the order of the
// remaining children. It reports whether the child belongs to this View; a
// removal requested during a pass is applied when the pass returns.
func (v *View) RemoveChild(child *View) bool {
	if !slices.Contains(v.children, child) {
		return false
	}
	v.mutate(func() {
		v.detach(child)
	})
	return true
}

// RemoveAllChildren removes all children from this View.
func (v *View) RemoveAllChildren() {
	v.mutate(func() {
		for _, child := range v.children {
			child.parent = nil
		}
		v.children = nil
	})
}

// detach removes child without marking dirty or deferring.
func (v *View) detach(child *View) {
	i := slices.Index(v.children, child)
	if i < 0 {
		return
	}
	v.children = slices.Delete(v.children, i, i+1)
	child.parent = nil
	v.markDirty()
}

// Children returns the child views.
func (v *View) Children() []*View {
	return v.children
}

// Parent returns the parent view, or nil if this is the root.
func (v *View) Parent() *View {
	return v.parent
}

// Root returns the top-most ancestor of this View.
func (v *View) Root() *View {
	root := v
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk calls fn for this View and every descendant in depth-first order.
// Returning false from fn skips the view's children.
func (v *View) Walk(fn func(*View) bool) {
	if !fn(v) {
		return
	}
	for _, child := range v.children {
		child.Walk(fn)
	}
}

// Find returns the first view in the subtree whose name or id matches.
func (v *View) Find(nameOrID string) *View {
	var found *View
	v.Walk(func(n *View) bool {
		if found != nil {
			return false
		}
		if n.name == nameOrID || n.id == nameOrID {
			found = n
			return false
		}
		return true
	})
	return found
}

// --- Dirty tracking ---

// RequestLayout marks this View and its ancestors as needing a new pass.
func (v *View) RequestLayout() {
	v.mutate(func() {})
}

// IsDirty returns whether this View needs a new pass.
func (v *View) IsDirty() bool {
	return v.dirty
}

// markDirty marks this View and all ancestors dirty.
func (v *View) markDirty() {
	for n := v; n != nil && !n.dirty; n = n.parent {
		n.dirty = true
	}
}

// mutate applies fn and marks the view dirty. While a pass is running on
// this view's tree, fn is queued and applied after the pass returns so the
// child set and dock assignments stay fixed for the whole pass.
func (v *View) mutate(fn func()) {
	root := v.Root()
	if root.inPass {
		root.pending = append(root.pending, func() {
			fn()
			v.markDirty()
		})
		return
	}
	fn()
	v.markDirty()
}

// beginPass marks the tree rooted at v as being laid out.
func (v *View) beginPass() {
	v.inPass = true
}

// endPass closes the pass and applies queued mutations.
func (v *View) endPass() {
	v.inPass = false
	pending := v.pending
	v.pending = nil
	for _, fn := range pending {
		fn()
	}
}
