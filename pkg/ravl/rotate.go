package ravl

func rotateRight(y *Node) *Node {
	if y == nil || y.left == nil {
		return y
	}
	x := y.left
	T2 := x.right

	x.right = y
	y.left = T2

	update(y)
	update(x)

	return x
}

func rotateLeft(x *Node) *Node {
	if x == nil || x.right == nil {
		return x
	}
	y := x.right
	T2 := y.left

	y.left = x
	x.right = T2

	update(x)
	update(y)

	return y
}

func rotateLeftRight(n *Node) *Node {
	if n == nil || n.left == nil {
		return n
	}
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

func rotateRightLeft(n *Node) *Node {
	if n == nil || n.right == nil {
		return n
	}
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

// rebalance expects the children of n to be balanced with current metrics.
// The returned node replaces n in its parent.
func rebalance(n *Node) *Node {
	if n == nil {
		return nil
	}
	update(n)
	balance := balanceFactor(n)

	// Left heavy
	if balance > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		return rotateLeftRight(n)
	}
	// Right heavy
	if balance < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		return rotateRightLeft(n)
	}

	return n
}
