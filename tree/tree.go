package tree

// Insert adds key to the tree rooted at root and returns the new root.
// Duplicate keys are silently ignored. New nodes materialize at
// (spawnX, spawnY) and ease into place once layout assigns targets.
func Insert(root *Node, key int, spawnX, spawnY float64) *Node {
	if root == nil {
		return NewNode(key, spawnX, spawnY)
	}
	if key < root.Key {
		root.Left = Insert(root.Left, key, spawnX, spawnY)
	} else if key > root.Key {
		root.Right = Insert(root.Right, key, spawnX, spawnY)
	}
	return root
}

// Min returns the leftmost node under root, nil for an empty tree.
func Min(root *Node) *Node {
	for root != nil && root.Left != nil {
		root = root.Left
	}
	return root
}

// Delete removes key from the tree rooted at root and returns the new
// root. Absent keys are a no-op. A node with two children takes its
// in-order successor's key and the successor is deleted from the right
// subtree.
func Delete(root *Node, key int) *Node {
	if root == nil {
		return nil
	}
	switch {
	case key < root.Key:
		root.Left = Delete(root.Left, key)
	case key > root.Key:
		root.Right = Delete(root.Right, key)
	default:
		if root.Left == nil {
			return root.Right
		}
		if root.Right == nil {
			return root.Left
		}
		succ := Min(root.Right)
		root.Key = succ.Key
		root.Right = Delete(root.Right, succ.Key)
	}
	return root
}

// Find returns the node holding key, or nil.
func Find(root *Node, key int) *Node {
	for root != nil {
		if key == root.Key {
			return root
		}
		if key < root.Key {
			root = root.Left
		} else {
			root = root.Right
		}
	}
	return nil
}

// Height returns the number of levels in the tree; 0 for empty.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	lh := Height(root.Left)
	rh := Height(root.Right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// Count returns the number of nodes.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}

// Walk visits every node in no particular order using an explicit
// stack. Used for whole-tree visual updates where order is irrelevant.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
}

// ResetTags restores every node to the normal visual tag.
func ResetTags(root *Node) {
	Walk(root, func(n *Node) {
		n.Tag = TagNormal
	})
}

// InOrderKeys returns keys in sorted order.
func InOrderKeys(root *Node) []int {
	var keys []int
	var rec func(n *Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		rec(n.Left)
		keys = append(keys, n.Key)
		rec(n.Right)
	}
	rec(root)
	return keys
}

// PreOrderKeys returns keys in pre-order.
func PreOrderKeys(root *Node) []int {
	var keys []int
	var rec func(n *Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		keys = append(keys, n.Key)
		rec(n.Left)
		rec(n.Right)
	}
	rec(root)
	return keys
}

// PostOrderKeys returns keys in post-order.
func PostOrderKeys(root *Node) []int {
	var keys []int
	var rec func(n *Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		rec(n.Left)
		rec(n.Right)
		keys = append(keys, n.Key)
	}
	rec(root)
	return keys
}
