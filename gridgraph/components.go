package gridgraph

// Components finds all contiguous regions of passable cells (Weight > 0),
// according to the grid's connectivity.
// Components are listed in row-major order of their first cell; each
// component lists its nodes in BFS discovery order.
//
// Components does not read or write search state and may be called between searches.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]*Node {
	seen := make(map[*Node]struct{})
	var comps [][]*Node

	g.Walk(func(n0 *Node) {
		if n0.IsWall() {
			return
		}
		if _, ok := seen[n0]; ok {
			return
		}
		// BFS to collect component
		seen[n0] = struct{}{}
		comp := []*Node{n0}
		buf := make([]*Node, 0, len(g.neighborOffsets))
		for qi := 0; qi < len(comp); qi++ {
			buf = g.AppendNeighbors(buf[:0], comp[qi])
			for _, v := range buf {
				if v.IsWall() {
					continue
				}
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	})

	return comps
}

// Reachable reports whether b can be reached from a by moving through
// passable cells. a itself may be a wall: its neighbors are still
// considered, matching how a search treats its start node.
// Returns false if either node does not belong to g or b is a wall.
func (g *Grid) Reachable(a, b *Node) bool {
	if !g.Owns(a) || !g.Owns(b) || (b.IsWall() && a != b) {
		return false
	}
	if a == b {
		return true
	}
	seen := map[*Node]struct{}{a: {}}
	queue := []*Node{a}
	buf := make([]*Node, 0, len(g.neighborOffsets))
	for qi := 0; qi < len(queue); qi++ {
		buf = g.AppendNeighbors(buf[:0], queue[qi])
		for _, v := range buf {
			if v.IsWall() {
				continue
			}
			if v == b {
				return true
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	return false
}
