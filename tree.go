package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the child slots of a leaf node.
const noChild = int32(-1)

// Tree is a Huffman tree.  Its nodes live in a single arena and refer to
// their children by index, so the whole tree is owned by the Tree value.
//
// Leaves are stored first, one per distinct Symbol in ascending Symbol order,
// followed by the internal nodes in the order they were created.  The root is
// therefore always the last node.
//
type Tree struct {
	nodes []node
}

type node struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

// BuildTree constructs the Huffman tree for the given frequencies.  The table
// must contain at least one Symbol.
//
// If the table holds exactly one Symbol, the tree consists of a single leaf.
//
func BuildTree(ft FrequencyTable) Tree {
	symbols := ft.Symbols()
	numLeaves := len(symbols)
	assert.Assertf(numLeaves > 0, "BuildTree called with an empty FrequencyTable")

	nodes := make([]node, 0, 2*numLeaves-1)
	refs := make([]nodeRef, 0, numLeaves)
	for _, symbol := range symbols {
		index := int32(len(nodes))
		weight := ft.Count(symbol)
		nodes = append(nodes, node{weight: weight, left: noChild, right: noChild, symbol: symbol})
		refs = append(refs, nodeRef{index, weight})
	}

	// Repeatedly pop the two lightest nodes, combine them into a new
	// internal node, and push that back, until only the root remains.

	h := weightHeap{refs}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeRef)
		b := heap.Pop(&h).(nodeRef)

		// Compute weightSum using saturating addition
		weightSum := a.weight + b.weight
		if weightSum < a.weight {
			weightSum = math.MaxUint64
		}

		index := int32(len(nodes))
		nodes = append(nodes, node{weight: weightSum, left: a.index, right: b.index})
		heap.Push(&h, nodeRef{index, weightSum})
	}

	root := heap.Pop(&h).(nodeRef)
	assert.Assertf(int(root.index) == len(nodes)-1, "root %d is not the last node of %d", root.index, len(nodes))

	return Tree{nodes: nodes}
}

// Len returns the number of leaves, i.e. the number of distinct symbols.
func (t Tree) Len() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the total symbol count.
func (t Tree) Weight() uint64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[t.root()].weight
}

// Depth returns the length of the longest root-to-leaf path.
func (t Tree) Depth() int {
	var maxDepth int
	t.walk(func(symbol Symbol, hc Code) {
		if int(hc.Size) > maxDepth {
			maxDepth = int(hc.Size)
		}
	})
	return maxDepth
}

func (t Tree) root() int32 {
	return int32(len(t.nodes) - 1)
}

// walk visits every leaf in left-to-right order, passing the path to it from
// the root: 0 for each left descent, 1 for each right descent.
func (t Tree) walk(fn func(symbol Symbol, path Code)) {
	if len(t.nodes) == 0 {
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are ever pushed, so the stack never holds more
	// than Depth() items.

	type stackItem struct {
		index int32
		path  Code
		x     byte
	}

	root := t.nodes[t.root()]
	if root.isLeaf() {
		fn(root.symbol, Code{})
		return
	}

	stack := make([]stackItem, 0, 2*log2uint32(uint32(t.Len())))
	stack = append(stack, stackItem{index: t.root()})

	processChild := func(child int32, path Code) {
		n := t.nodes[child]
		if n.isLeaf() {
			fn(n.symbol, path)
			return
		}
		assert.Assertf(path.Size < maxBitsPerCode, "Huffman tree deeper than %d bits", maxBitsPerCode)
		stack = append(stack, stackItem{index: child, path: path})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.nodes[top.index]
		switch x {
		case 0:
			processChild(n.left, top.path.Append(0))
		case 1:
			processChild(n.right, top.path.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Dump writes a programmer-readable debugging dump of the tree's arena to the
// given writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	for index, n := range t.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\t%d: Leaf{%d, %d}\n", index, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\t%d: Internal{%d, %d, %d}\n", index, n.weight, n.left, n.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeRef + type weightHeap {{{

type nodeRef struct {
	index  int32
	weight uint64
}

type weightHeap struct {
	list []nodeRef
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeRef))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
