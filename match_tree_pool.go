package lz10

import "sync"

// matchTreePool recycles match trees between Compress calls.
var matchTreePool = sync.Pool{
	New: func() any {
		return &matchTree{}
	},
}

// acquireMatchTree returns an empty match tree owned by the caller.
func acquireMatchTree() *matchTree {
	t := matchTreePool.Get().(*matchTree)
	t.reset()
	return t
}

// releaseMatchTree returns a match tree to the pool.
func releaseMatchTree(t *matchTree) {
	if t == nil {
		return
	}

	matchTreePool.Put(t)
}
