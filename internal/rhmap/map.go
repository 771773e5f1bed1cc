// Copyright (C) 2022 Garrison Hinson-Hasty. All Rights Reserved.

// Package rhmap implements the Robin Hood hash table used for object
// members, keyed by 64-bit FNV-1a hashes with a separate vector
// recording key insertion order.
package rhmap

import (
	"iter"

	"github.com/garrisonhh/ghh-json/internal/alloc"
	"github.com/garrisonhh/ghh-json/internal/seq"
)

const (
	initCap = 8 // also the shrink floor
)

const (
	fnvBasis = 0xcbf29ce484222325
	fnvPrime = 0x00000100000001b3
)

// hashKey returns the 64-bit FNV-1a hash of key. A zero result is
// mapped to the offset basis, keeping zero reserved as the empty-slot
// sentinel.
func hashKey[S ~string | ~[]byte](key S) uint64 {
	h := uint64(fnvBasis)
	for i := 0; i < len(key); i++ {
		h = (h ^ uint64(key[i])) * fnvPrime
	}
	if h == 0 {
		h = fnvBasis
	}
	return h
}

type node[V any] struct {
	hash  uint64 // 0 means the slot is empty
	steps int    // distance from the hash's home slot
	val   V
}

// A Map is an open-addressed hash table with Robin Hood insertion:
// probing walks forward from hash mod cap, and an insert steals the
// slot of any node that sits closer to its own home. Two keys are the
// same key exactly when their hashes are equal; the key bytes are kept
// only to report insertion order.
//
// The table doubles when an insert would pass half occupancy and halves
// when deletion drops occupancy under a quarter, so probe chains stay
// short. Map methods are not safe for concurrent use.
type Map[V any] struct {
	h     *alloc.Heap
	nodes alloc.Block[node[V]]
	keys  *seq.Vector[[]byte]
	size  int
}

// New constructs an empty map on h.
func New[V any](h *alloc.Heap) *Map[V] {
	return &Map[V]{
		h:     h,
		nodes: alloc.Make[node[V]](h, initCap),
		keys:  seq.New[[]byte](h, initCap),
	}
}

// Len reports the number of entries in m.
func (m *Map[V]) Len() int { return m.size }

// Cap reports the current table capacity.
func (m *Map[V]) Cap() int { return len(m.nodes.Data) }

// Put stores val under key. If a key with the same hash is already
// present, its value is replaced and Put reports true; the key order is
// unchanged and the caller's key bytes are not recorded. Otherwise key
// is appended to the key order and Put reports false.
//
// The map keeps key without copying it, so the caller must pass storage
// that stays valid and unmodified for the life of the map.
func (m *Map[V]) Put(key []byte, val V) bool {
	h := hashKey(key)
	if i := m.find(h); i >= 0 {
		m.nodes.Data[i].val = val
		return true
	}
	if c := len(m.nodes.Data); m.size+1 > c/2 {
		m.rehash(2 * c)
	}
	m.insert(h, val)
	m.keys.Push(key)
	m.size++
	return false
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) { return m.get(hashKey(key)) }

// GetBytes is Get for a byte-slice key.
func (m *Map[V]) GetBytes(key []byte) (V, bool) { return m.get(hashKey(key)) }

func (m *Map[V]) get(h uint64) (V, bool) {
	if i := m.find(h); i >= 0 {
		return m.nodes.Data[i].val, true
	}
	var zero V
	return zero, false
}

// Delete removes the entry stored under key and returns its value. The
// key-order slot is recycled by moving the last key into it, so the
// order of the remaining keys changes.
func (m *Map[V]) Delete(key string) (V, bool) {
	val, ok := m.remove(hashKey(key))
	if ok {
		m.dropKey(key, false)
	}
	return val, ok
}

// DeleteOrdered removes the entry stored under key and returns its
// value, preserving the order of the remaining keys.
func (m *Map[V]) DeleteOrdered(key string) (V, bool) {
	val, ok := m.remove(hashKey(key))
	if ok {
		m.dropKey(key, true)
	}
	return val, ok
}

// KeyAt returns the key at position i of the insertion order.
func (m *Map[V]) KeyAt(i int) []byte { return m.keys.At(i) }

// All ranges over the entries of m in key order. The map must not be
// modified during iteration.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func(key []byte, val V) bool) {
		for i := 0; i < m.keys.Len(); i++ {
			k := m.keys.At(i)
			v, _ := m.GetBytes(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// Release frees the map's heap storage. The map must not be used
// afterward.
func (m *Map[V]) Release() {
	alloc.Free(m.h, m.nodes)
	m.nodes = alloc.Block[node[V]]{}
	m.keys.Release()
	m.size = 0
}

// find returns the table index of the node with hash h, or -1. The
// probe ends at the first empty slot, which the occupancy bound
// guarantees exists.
func (m *Map[V]) find(h uint64) int {
	nodes := m.nodes.Data
	c := len(nodes)
	i := int(h % uint64(c))
	for nodes[i].hash != h {
		if nodes[i].hash == 0 {
			return -1
		}
		i = (i + 1) % c
	}
	return i
}

// insert places a new node for hash h, stealing the slot of any node
// that sits closer to its own home than the carried node does.
func (m *Map[V]) insert(h uint64, val V) {
	nodes := m.nodes.Data
	c := len(nodes)
	n := node[V]{hash: h, val: val}
	i := int(h % uint64(c))
	for nodes[i].hash != 0 {
		if nodes[i].steps < n.steps {
			nodes[i], n = n, nodes[i]
		}
		i = (i + 1) % c
		n.steps++
	}
	nodes[i] = n
}

// remove deletes the node with hash h and shifts the following probe
// chain back over the vacated slot, so recorded distances stay true.
func (m *Map[V]) remove(h uint64) (V, bool) {
	i := m.find(h)
	if i < 0 {
		var zero V
		return zero, false
	}
	nodes := m.nodes.Data
	c := len(nodes)
	val := nodes[i].val

	last, steps := i, 0
	for {
		i = (i + 1) % c
		if nodes[i].hash == 0 {
			break
		}
		steps++
		if nodes[i].steps >= steps {
			nodes[last] = nodes[i]
			nodes[last].steps -= steps
			last = i
			steps = 0
		}
	}
	var zero node[V]
	nodes[last] = zero

	m.size--
	if c > initCap && m.size < c/4 {
		m.rehash(c / 2)
	}
	return val, true
}

// rehash moves every occupied node into a fresh table of newCap slots,
// recomputing homes and probe distances from scratch.
func (m *Map[V]) rehash(newCap int) {
	old := m.nodes
	m.nodes = alloc.Make[node[V]](m.h, newCap)
	for _, n := range old.Data {
		if n.hash != 0 {
			m.insert(n.hash, n.val)
		}
	}
	alloc.Free(m.h, old)
}

// dropKey removes the first key-order entry whose bytes equal key.
func (m *Map[V]) dropKey(key string, ordered bool) {
	for i := 0; i < m.keys.Len(); i++ {
		if string(m.keys.At(i)) == key {
			if ordered {
				m.keys.OrderedRemove(i)
			} else {
				m.keys.SwapRemove(i)
			}
			return
		}
	}
}
