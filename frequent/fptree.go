package frequent

import (
	"cmp"
	"slices"
)

// fpNode is one item occurrence on a prefix path. A node is owned by
// exactly one parent; parent and neighbor are non-owning back/side
// references. neighbor threads all nodes carrying the same item across
// the whole tree.
type fpNode[T cmp.Ordered] struct {
	item     T
	count    int
	root     bool
	parent   *fpNode[T]
	children map[T]*fpNode[T]
	neighbor *fpNode[T]
}

// fpTree is a prefix tree over support-ordered transactions. heads is the
// header table: for each item, the entry point into its neighbor chain.
// counts accumulates each item's total support in the tree and always
// equals the sum of counts along that item's chain.
type fpTree[T cmp.Ordered] struct {
	root   *fpNode[T]
	heads  map[T]*fpNode[T]
	counts map[T]int
}

func newFPTree[T cmp.Ordered]() *fpTree[T] {
	return &fpTree[T]{
		root:   &fpNode[T]{root: true, children: make(map[T]*fpNode[T])},
		heads:  make(map[T]*fpNode[T]),
		counts: make(map[T]int),
	}
}

// insert walks items from the root, incrementing the count of an existing
// child or creating a new one. Colliding with an existing child is the
// normal shared-prefix case, never an error. A fresh node takes over as
// the header entry for its item and inherits the previous head as its
// neighbor, so the whole chain stays reachable.
func (t *fpTree[T]) insert(items []T, count int) {
	current := t.root
	for _, item := range items {
		child, ok := current.children[item]
		if !ok {
			child = &fpNode[T]{
				item:     item,
				parent:   current,
				children: make(map[T]*fpNode[T]),
				neighbor: t.heads[item],
			}
			current.children[item] = child
			t.heads[item] = child
		}
		child.count += count
		t.counts[item] += count
		current = child
	}
}

// chainSupport sums the counts along an item's neighbor chain: the item's
// total support in this (sub)tree.
func (t *fpTree[T]) chainSupport(item T) int {
	support := 0
	for n := t.heads[item]; n != nil; n = n.neighbor {
		support += n.count
	}
	return support
}

// prefixPath is one entry of a conditional pattern base: the items on the
// path from the root down to (but excluding) the anchoring node, with the
// occurrence count the path carries for that node.
type prefixPath[T cmp.Ordered] struct {
	items []T
	count int
}

// prefixPaths collects the conditional pattern base for item. Each node in
// the item's chain contributes its ancestor path in root-first order. The
// recorded count is the anchoring node's count: ancestors never carry
// fewer occurrences than a descendant, so the descendant is the narrowest
// point of the path.
func (t *fpTree[T]) prefixPaths(item T) []prefixPath[T] {
	var paths []prefixPath[T]
	for n := t.heads[item]; n != nil; n = n.neighbor {
		var items []T
		for p := n.parent; p != nil && !p.root; p = p.parent {
			items = append(items, p.item)
		}
		if len(items) == 0 {
			continue
		}
		slices.Reverse(items)
		paths = append(paths, prefixPath[T]{items: items, count: n.count})
	}
	return paths
}

// headerItems returns the items present in the header table in ascending
// order. Mining iterates this for deterministic traversal; callers must
// still treat mining output as a set.
func (t *fpTree[T]) headerItems() []T {
	items := make([]T, 0, len(t.heads))
	for item := range t.heads {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}
