// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2011 CUE, 2017 Dorkmaster Flek, 2026 WoozyMasta
// Source: github.com/woozymasta/lz10

package lz10

// Match tree layout: node arrays are indexed by window position. Index
// WindowSize is the nil node; right[rootBase+c] is the root of the tree
// holding every position whose first byte is c.
const (
	ringSize = WindowSize + MaxMatch - 1
	ringMask = WindowSize - 1
	treeNil  = WindowSize
	rootBase = WindowSize + 1
)

// matchTree is the window ring plus one binary search tree per first byte.
// Tree order is the lexicographic order of the MaxMatch bytes starting at a position.
type matchTree struct {
	// ring[WindowSize:] mirrors ring[:MaxMatch-1] so keys never wrap.
	ring   [ringSize]byte
	parent [WindowSize + 1]int
	left   [WindowSize + 1]int
	right  [WindowSize + 1 + 256]int

	matchLen int // Longest match found by the last insert.
	matchPos int // Window position of that match.
}

// reset empties every tree and clears the window.
func (t *matchTree) reset() {
	t.ring = [ringSize]byte{}
	for i := rootBase; i < len(t.right); i++ {
		t.right[i] = treeNil
	}
	for i := 0; i < WindowSize; i++ {
		t.parent[i] = treeNil
	}

	t.matchLen = 0
	t.matchPos = 0
}

// insert adds window position r to the tree of its first byte and records
// the longest match against positions already there.
//
// The first position reaching a given length wins. Position r-1 is never
// reported. A full MaxMatch match ends the search and r takes over the
// node of the matched position, which leaves the tree.
func (t *matchTree) insert(r int) {
	prev := (r - 1) & ringMask
	key := t.ring[r : r+MaxMatch]
	p := rootBase + int(key[0])
	cmp := 1

	t.matchLen = 0
	t.left[r] = treeNil
	t.right[r] = treeNil

	for {
		if cmp >= 0 {
			if t.right[p] == treeNil {
				t.right[p] = r
				t.parent[r] = p
				return
			}
			p = t.right[p]
		} else {
			if t.left[p] == treeNil {
				t.left[p] = r
				t.parent[r] = p
				return
			}
			p = t.left[p]
		}

		// key[0] == ring[p] for every member of this tree.
		i := 1
		for ; i < MaxMatch; i++ {
			cmp = int(key[i]) - int(t.ring[p+i])
			if cmp != 0 {
				break
			}
		}

		if i > t.matchLen && p != prev {
			t.matchPos = p
			t.matchLen = i
			if i == MaxMatch {
				break
			}
		}
	}

	t.parent[r] = t.parent[p]
	t.left[r] = t.left[p]
	t.right[r] = t.right[p]
	t.parent[t.left[p]] = r
	t.parent[t.right[p]] = r
	t.replaceChild(t.parent[p], p, r)
	t.parent[p] = treeNil
}

// remove deletes window position p from its tree. Positions that are not
// in a tree are ignored.
func (t *matchTree) remove(p int) {
	if t.parent[p] == treeNil {
		return
	}

	var q int
	switch {
	case t.right[p] == treeNil:
		q = t.left[p]
	case t.left[p] == treeNil:
		q = t.right[p]
	default:
		// In-order predecessor: rightmost node of the left subtree.
		q = t.left[p]
		if t.right[q] != treeNil {
			for t.right[q] != treeNil {
				q = t.right[q]
			}

			t.right[t.parent[q]] = t.left[q]
			t.parent[t.left[q]] = t.parent[q]
			t.left[q] = t.left[p]
			t.parent[t.left[p]] = q
		}

		t.right[q] = t.right[p]
		t.parent[t.right[p]] = q
	}

	t.parent[q] = t.parent[p]
	t.replaceChild(t.parent[p], p, q)
	t.parent[p] = treeNil
}

// replaceChild points the link of parent that held old at node instead.
// Roots only have a right link, so they always take the first branch.
func (t *matchTree) replaceChild(parent, old, node int) {
	if t.right[parent] == old {
		t.right[parent] = node
	} else {
		t.left[parent] = node
	}
}
