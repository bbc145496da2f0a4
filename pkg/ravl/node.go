package ravl

// Node is a single entry of a rank-augmented AVL tree. A node owns its value
// and its two subtrees exclusively.
type Node struct {
	key    int32
	value  any
	height int
	size   int
	left   *Node
	right  *Node
}

func newNode(key int32, value any) *Node {
	return &Node{key: key, value: value, height: 1, size: 1}
}

func (n *Node) Key() int32 {
	return n.key
}

func (n *Node) Value() any {
	return n.value
}

// Height is the number of nodes on the longest path from n down to a leaf.
func (n *Node) Height() int {
	return height(n)
}

// Size is the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	return size(n)
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func size(n *Node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func updateHeight(n *Node) {
	if n == nil {
		return
	}
	n.height = 1 + max(height(n.left), height(n.right))
}

func updateSize(n *Node) {
	if n == nil {
		return
	}
	n.size = 1 + size(n.left) + size(n.right)
}

func update(n *Node) {
	updateHeight(n)
	updateSize(n)
}

func balanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}
