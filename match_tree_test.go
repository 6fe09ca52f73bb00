package lz10

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

// newTestTree returns an empty tree whose ring holds data (mirror included).
func newTestTree(data []byte) *matchTree {
	mt := &matchTree{}
	mt.reset()
	copy(mt.ring[:WindowSize], data)
	copy(mt.ring[WindowSize:], mt.ring[:MaxMatch-1])
	return mt
}

// key returns the MaxMatch bytes indexed for position p.
func (t *matchTree) key(p int) []byte {
	return t.ring[p : p+MaxMatch]
}

// checkTrees verifies links and ordering of every tree and returns its members.
func checkTrees(tb testing.TB, mt *matchTree) map[int]bool {
	tb.Helper()

	members := make(map[int]bool)
	var walk func(node, parent int, first byte) []int
	walk = func(node, parent int, first byte) []int {
		if node == treeNil {
			return nil
		}
		if members[node] {
			tb.Fatalf("position %d reachable twice", node)
		}
		members[node] = true
		if mt.parent[node] != parent {
			tb.Fatalf("position %d: parent=%d want %d", node, mt.parent[node], parent)
		}
		if mt.ring[node] != first {
			tb.Fatalf("position %d in tree 0x%02x starts with 0x%02x", node, first, mt.ring[node])
		}

		order := walk(mt.left[node], node, first)
		order = append(order, node)
		return append(order, walk(mt.right[node], node, first)...)
	}

	for c := 0; c < 256; c++ {
		order := walk(mt.right[rootBase+c], rootBase+c, byte(c))
		for i := 1; i < len(order); i++ {
			if bytes.Compare(mt.key(order[i-1]), mt.key(order[i])) > 0 {
				tb.Fatalf("tree 0x%02x out of order at %d/%d", c, order[i-1], order[i])
			}
		}
	}

	for p := 0; p < WindowSize; p++ {
		if mt.parent[p] != treeNil && !members[p] {
			tb.Fatalf("position %d has parent %d but is not reachable", p, mt.parent[p])
		}
	}

	return members
}

// commonPrefix returns the shared prefix length of a and b.
func commonPrefix(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

func lowEntropyRing(seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]byte, WindowSize)
	for i := range data {
		data[i] = "abc"[rng.UintN(3)]
	}

	return data
}

func TestMatchTree_ResetEmptiesTrees(t *testing.T) {
	mt := newTestTree(lowEntropyRing(1))
	for p := 0; p < 100; p++ {
		mt.insert(p)
	}

	mt.reset()
	if members := checkTrees(t, mt); len(members) != 0 {
		t.Fatalf("reset left %d positions", len(members))
	}
	if mt.ring != [ringSize]byte{} {
		t.Fatal("reset left window bytes")
	}
}

func TestMatchTree_InsertFindsLongestMatch(t *testing.T) {
	mt := newTestTree(lowEntropyRing(2))

	// Even positions only, so the excluded previous position is never a member.
	for r := 0; r < WindowSize-MaxMatch; r += 2 {
		want := 0
		for p := range checkTrees(t, mt) {
			want = max(want, commonPrefix(mt.key(r), mt.key(p)))
		}

		mt.insert(r)
		if mt.matchLen != want {
			t.Fatalf("insert(%d): matchLen=%d want %d", r, mt.matchLen, want)
		}
		if want > 0 && commonPrefix(mt.key(r), mt.key(mt.matchPos)) != want {
			t.Fatalf("insert(%d): position %d does not match %d bytes", r, mt.matchPos, want)
		}
	}
	checkTrees(t, mt)
}

func TestMatchTree_FullMatchReplacesNode(t *testing.T) {
	mt := newTestTree(bytes.Repeat([]byte("xyz"), WindowSize/3+1))

	mt.insert(0)
	mt.insert(3)
	if mt.matchLen != MaxMatch || mt.matchPos != 0 {
		t.Fatalf("matchLen=%d matchPos=%d", mt.matchLen, mt.matchPos)
	}

	members := checkTrees(t, mt)
	if members[0] || !members[3] || len(members) != 1 {
		t.Fatalf("members=%v", members)
	}
	if mt.parent[0] != treeNil {
		t.Fatal("replaced position still linked")
	}
}

func TestMatchTree_PreviousPositionExcluded(t *testing.T) {
	mt := newTestTree(bytes.Repeat([]byte{'q'}, WindowSize))

	mt.insert(10)
	mt.insert(11)
	if mt.matchLen != 0 {
		t.Fatalf("previous position reported: matchLen=%d matchPos=%d", mt.matchLen, mt.matchPos)
	}

	// Both stay: equal keys of the previous position go to the right.
	members := checkTrees(t, mt)
	if !members[10] || !members[11] || mt.right[10] != 11 {
		t.Fatalf("members=%v right[10]=%d", members, mt.right[10])
	}

	mt.insert(12)
	if mt.matchLen != MaxMatch || mt.matchPos != 10 {
		t.Fatalf("matchLen=%d matchPos=%d", mt.matchLen, mt.matchPos)
	}
}

func TestMatchTree_RemoveKeepsOrder(t *testing.T) {
	mt := newTestTree(lowEntropyRing(3))
	rng := rand.New(rand.NewPCG(4, 4))

	inserted := make([]int, 0, 2000)
	for r := 0; r < 4000; r += 2 {
		mt.insert(r)
		inserted = append(inserted, r)
	}

	rng.Shuffle(len(inserted), func(i, j int) {
		inserted[i], inserted[j] = inserted[j], inserted[i]
	})
	for i, p := range inserted {
		mt.remove(p)
		if mt.parent[p] != treeNil {
			t.Fatalf("remove(%d) left parent link", p)
		}
		if i%100 == 0 {
			if checkTrees(t, mt)[p] {
				t.Fatalf("remove(%d) left position reachable", p)
			}
		}
	}

	if members := checkTrees(t, mt); len(members) != 0 {
		t.Fatalf("%d positions left after removing all", len(members))
	}
}

func TestMatchTree_RemoveAbsentIsNoop(t *testing.T) {
	mt := newTestTree(lowEntropyRing(5))
	for r := 0; r < 64; r++ {
		mt.insert(r)
	}
	before := checkTrees(t, mt)

	mt.remove(1000)
	after := checkTrees(t, mt)
	if len(before) != len(after) {
		t.Fatalf("members changed: %d -> %d", len(before), len(after))
	}
}

func TestMatchTreePool_ReturnsEmptyTree(t *testing.T) {
	mt := acquireMatchTree()
	copy(mt.ring[:], "dirty window")
	mt.insert(0)
	releaseMatchTree(mt)

	mt = acquireMatchTree()
	defer releaseMatchTree(mt)
	if members := checkTrees(t, mt); len(members) != 0 {
		t.Fatalf("pooled tree has %d positions", len(members))
	}
	if mt.ring[0] != 0 {
		t.Fatal("pooled tree kept window bytes")
	}
}
