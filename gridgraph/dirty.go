package gridgraph

// MarkDirty records that n's search state was modified. Marking the same
// node twice before the next CleanDirty is a no-op.
func (g *Grid) MarkDirty(n *Node) {
	if n.dirty {
		return
	}
	n.dirty = true
	g.dirty = append(g.dirty, n)
}

// CleanDirty resets every node marked since the last call and empties the
// list. Cost is O(touched nodes), not O(grid size).
func (g *Grid) CleanDirty() {
	for _, n := range g.dirty {
		n.Clean()
		n.dirty = false
	}
	g.dirty = g.dirty[:0]
}

// DirtyLen returns the number of nodes currently awaiting a reset.
func (g *Grid) DirtyLen() int {
	return len(g.dirty)
}
