package hashing

// tableKey identifies a cached subtree: the position hash and the remaining depth.
type tableKey struct {
	hash  uint64
	depth int
}

// NodeTable caches leaf-node counts of already counted subtrees.
type NodeTable struct {
	entries map[tableKey]uint64
	// maxCapacity limits the number of entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewNodeTable creates a node table. maxCapacity of 0 means unlimited capacity.
func NewNodeTable(maxCapacity int) *NodeTable {
	return &NodeTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count for the position hash at depth.
func (t *NodeTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a node count. It is silently dropped once the table is full.
func (t *NodeTable) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[tableKey{hash, depth}] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *NodeTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of cached entries.
func (t *NodeTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *NodeTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *NodeTable) Misses() int {
	return t.misses
}

// Reset clears the table and its statistics.
func (t *NodeTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
	t.misses = 0
}
