package dedup

import (
	"sort"
)

// trieNode holds at most one canonical record. Children are indices into
// Trie.nodes, each node is owned by exactly one parent.
type trieNode struct {
	children map[rune]int32
	record   RecordID
}

// Trie maps word forms to canonical records. Records must be inserted in
// ascending length so the shorter, more general forms are settled first;
// Insert takes care of that for each batch.
type Trie struct {
	arena     *Arena
	nodes     []trieNode
	tolerance int
	count     int
}

// NewTrie creates an empty trie over the records of arena.
func NewTrie(arena *Arena, tolerance int) *Trie {
	return &Trie{
		arena:     arena,
		nodes:     []trieNode{{record: NoRecord}},
		tolerance: tolerance,
	}
}

// Insert sorts ids by ascending folded length (stable, so equal lengths keep
// their order) and inserts them one by one, merging each into the first
// similar record found on its path.
func (t *Trie) Insert(ids ...RecordID) {
	sorted := make([]RecordID, len(ids))
	copy(sorted, ids)
	lengths := make(map[RecordID]int, len(sorted))
	for _, id := range sorted {
		lengths[id] = t.arena.Get(id).Len()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return lengths[sorted[i]] < lengths[sorted[j]]
	})

	for _, id := range sorted {
		t.put(id)
	}
}

func (t *Trie) put(id RecordID) {
	rec := t.arena.Get(id)
	runes := []rune(rec.Folded)

	cur := int32(0)
	for i := 0; ; i++ {
		n := &t.nodes[cur]
		if i == len(runes) {
			if n.record == NoRecord {
				n.record = id
				t.count++
			} else {
				Merge(t.arena.Get(n.record), rec)
			}
			return
		}
		if n.record != NoRecord && Similar(t.arena.Get(n.record), rec, t.tolerance) {
			Merge(t.arena.Get(n.record), rec)
			return
		}

		next, ok := n.children[runes[i]]
		if !ok {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{record: NoRecord})
			// append may have moved the slice
			n = &t.nodes[cur]
			if n.children == nil {
				n.children = make(map[rune]int32)
			}
			n.children[runes[i]] = next
		}
		cur = next
	}
}

// FindClosest returns the canonical record that id resolves to: the first
// similar record along its path, or whatever sits at the end of its path.
// ok is false when no representative exists.
func (t *Trie) FindClosest(id RecordID) (RecordID, bool) {
	rec := t.arena.Get(id)
	runes := []rune(rec.Folded)

	cur := int32(0)
	for i := 0; ; i++ {
		n := &t.nodes[cur]
		if i == len(runes) {
			return n.record, n.record != NoRecord
		}
		if n.record != NoRecord && Similar(t.arena.Get(n.record), rec, t.tolerance) {
			return n.record, true
		}
		next, ok := n.children[runes[i]]
		if !ok {
			return NoRecord, false
		}
		cur = next
	}
}

// Extract returns every canonical record exactly once, in pre-order with
// children visited in ascending rune order.
func (t *Trie) Extract() []RecordID {
	ids := make([]RecordID, 0, t.count)
	var walk func(idx int32)
	walk = func(idx int32) {
		n := &t.nodes[idx]
		if n.record != NoRecord {
			ids = append(ids, n.record)
		}
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, r := range keys {
			walk(n.children[r])
		}
	}
	walk(0)
	return ids
}

// Len returns the number of canonical records.
func (t *Trie) Len() int {
	return t.count
}
