// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"container/heap"
	"io"
	"strings"
)

// A Tree is a Huffman tree. Its leaves hold the symbols of the frequency
// table it was built from; every interior node has exactly two children.
//
// Nodes live in a single slice and refer to their children by index,
// so a Tree owns all of its nodes and can be discarded as a unit.
type Tree struct {
	nodes []node
	root  int
}

type node struct {
	sym         Symbol // leaves only
	freq        int
	left, right int // -1 for leaves
}

func (t *Tree) isLeaf(i int) bool { return t.nodes[i].left < 0 }

// BuildTree builds a Huffman tree from ft.
// It returns ErrNoData if ft is empty.
//
// Nodes of equal frequency are merged in the order they entered the queue:
// leaves in lexicographic symbol order, then merged nodes in order of creation.
// Other tie-breaking rules can produce different codes, but never a different
// total encoded length.
func BuildTree(ft FrequencyTable) (*Tree, error) {
	if len(ft) == 0 {
		return nil, ErrNoData
	}
	syms := ft.Symbols()
	t := &Tree{nodes: make([]node, 0, 2*len(syms)-1)}
	h := make(nodeHeap, 0, len(syms))
	for _, s := range syms {
		h = append(h, heapItem{node: t.add(node{sym: s, freq: ft[s], left: -1, right: -1}), freq: ft[s], seq: len(h)})
	}
	heap.Init(&h)
	seq := len(h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		f := a.freq + b.freq
		heap.Push(&h, heapItem{node: t.add(node{freq: f, left: a.node, right: b.node}), freq: f, seq: seq})
		seq++
	}
	t.root = h[0].node
	log.Debugf("huffman: %d symbols, %d nodes, weight %d", len(syms), len(t.nodes), t.nodes[t.root].freq)
	return t, nil
}

func (t *Tree) add(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Leaves returns the number of distinct symbols in t.
func (t *Tree) Leaves() int { return (len(t.nodes) + 1) / 2 }

// Weight returns the total frequency of the symbols in t.
func (t *Tree) Weight() int { return t.nodes[t.root].freq }

// Code returns the code table of t: the path from the root to each leaf,
// with '0' for a left edge and '1' for a right edge.
// A tree with a single leaf has no edges; its symbol gets the code "0".
func (t *Tree) Code() CodeTable {
	codes := make(CodeTable, t.Leaves())
	if t.isLeaf(t.root) {
		codes[t.nodes[t.root].sym] = "0"
		return codes
	}
	var path []byte
	var walk func(i int)
	walk = func(i int) {
		n := t.nodes[i]
		if n.left < 0 {
			codes[n.sym] = string(path)
			return
		}
		path = append(path, '0')
		walk(n.left)
		path[len(path)-1] = '1'
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(t.root)
	return codes
}

// Decode decodes bits by walking t from the root, one bit per edge,
// emitting a symbol at each leaf.
//
// It returns a *DecodeError wrapping ErrIncomplete if bits ends inside a code,
// ErrInvalidBit for a character other than '0' or '1', and ErrCorrupt if a bit
// leads nowhere (only possible for a single-leaf tree, whose one code is "0").
func (t *Tree) Decode(bits string) (string, error) {
	var sb strings.Builder
	br := newBitReader(strings.NewReader(bits))
	cur := t.root
	var pending []byte
	for {
		b, err := br.readBit()
		if err != nil {
			if err != io.EOF {
				return sb.String(), br.decodeError(err, pending)
			}
			break
		}
		if t.isLeaf(t.root) {
			if b != 0 {
				return sb.String(), br.decodeError(ErrCorrupt, []byte{'1'})
			}
			sb.WriteString(t.nodes[t.root].sym)
			continue
		}
		pending = append(pending, '0'+b)
		if b == 0 {
			cur = t.nodes[cur].left
		} else {
			cur = t.nodes[cur].right
		}
		if t.isLeaf(cur) {
			sb.WriteString(t.nodes[cur].sym)
			cur = t.root
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return sb.String(), br.decodeError(ErrIncomplete, pending)
	}
	return sb.String(), nil
}

type heapItem struct {
	node int
	freq int
	seq  int // queue entry order, for ties
}

// nodeHeap is a min-heap of tree nodes ordered by frequency.
type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *nodeHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
