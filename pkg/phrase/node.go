package phrase

import "iter"

// NodeID is a handle into a trie's node arena.
type NodeID uint32

// node is one word position of some registered phrase.
type node struct {
	key      string
	phrase   string
	terminal bool
	order    []NodeID          // children in insertion order
	children map[string]NodeID // normalized word -> child
}

// arena is the contiguous backing store of a trie. Node handles are indexes.
type arena struct {
	nodes []node
	norm  *Normalizer
}

func (a *arena) alloc(key string) NodeID {
	a.nodes = append(a.nodes, node{key: key})
	return NodeID(len(a.nodes) - 1)
}

func (a *arena) child(id NodeID, key string) (NodeID, bool) {
	c, ok := a.nodes[id].children[key]
	return c, ok
}

func (a *arena) addChild(id NodeID, key string) NodeID {
	c := a.alloc(key)
	n := &a.nodes[id]
	if n.children == nil {
		n.children = make(map[string]NodeID)
	}
	n.children[key] = c
	n.order = append(n.order, c)
	return c
}

// clone deep-copies the arena so the copy shares no mutable state.
func (a *arena) clone() *arena {
	out := &arena{nodes: make([]node, len(a.nodes)), norm: a.norm}
	for i, n := range a.nodes {
		cp := node{key: n.key, phrase: n.phrase, terminal: n.terminal}
		if len(n.order) > 0 {
			cp.order = append([]NodeID(nil), n.order...)
			cp.children = make(map[string]NodeID, len(n.children))
			for k, v := range n.children {
				cp.children[k] = v
			}
		}
		out.nodes[i] = cp
	}
	return out
}

// Node is a read-only view of a trie node. The zero Node is not valid;
// lookups report absence through their boolean result instead.
type Node struct {
	a  *arena
	id NodeID
}

// ID returns the node's arena handle.
func (n Node) ID() NodeID {
	return n.id
}

// Key returns the (normalized) word at this level.
func (n Node) Key() string {
	return n.a.nodes[n.id].key
}

// Phrase returns the registered phrase ending at this node, if any.
func (n Node) Phrase() (string, bool) {
	nd := &n.a.nodes[n.id]
	return nd.phrase, nd.terminal
}

// Size returns the number of immediate children.
func (n Node) Size() int {
	return len(n.a.nodes[n.id].order)
}

// Child returns the child reached by word, normalized the way the owning trie normalizes.
func (n Node) Child(word string) (Node, bool) {
	c, ok := n.a.child(n.id, n.a.norm.Normalize(word))
	if !ok {
		return Node{}, false
	}
	return Node{a: n.a, id: c}, true
}

// Children iterates the immediate children in insertion order.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, c := range n.a.nodes[n.id].order {
			if !yield(Node{a: n.a, id: c}) {
				return
			}
		}
	}
}
