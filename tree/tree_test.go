package tree

import (
	"reflect"
	"sort"
	"testing"
)

func buildTree(keys ...int) *Node {
	var root *Node
	for _, k := range keys {
		root = Insert(root, k, 0, 0)
	}
	return root
}

func TestInsertOrdering(t *testing.T) {
	tests := []struct {
		name string
		keys []int
	}{
		{"Classic shape", []int{50, 30, 70, 20, 40}},
		{"Ascending", []int{1, 2, 3, 4, 5}},
		{"Descending", []int{5, 4, 3, 2, 1}},
		{"Single", []int{42}},
		{"Zigzag", []int{50, 10, 40, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := buildTree(tt.keys...)

			want := append([]int(nil), tt.keys...)
			sort.Ints(want)
			got := InOrderKeys(root)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Expected in-order keys %v, got %v", want, got)
			}
		})
	}
}

func TestInsertDuplicateIgnored(t *testing.T) {
	root := buildTree(50, 30, 70)
	root = Insert(root, 30, 0, 0)

	if got := Count(root); got != 3 {
		t.Errorf("Expected 3 nodes after duplicate insert, got %d", got)
	}
	if got := InOrderKeys(root); !reflect.DeepEqual(got, []int{30, 50, 70}) {
		t.Errorf("Expected in-order keys [30 50 70], got %v", got)
	}
}

func TestInsertSpawnPosition(t *testing.T) {
	root := Insert(nil, 50, 40, -5)
	if root.X != 40 || root.Y != -5 {
		t.Errorf("Expected new node to spawn at (40,-5), got (%v,%v)", root.X, root.Y)
	}
	if root.Opacity != 1 {
		t.Errorf("Expected opacity 1, got %v", root.Opacity)
	}
}

func TestTraversalOrders(t *testing.T) {
	root := buildTree(50, 30, 70, 20, 40)

	tests := []struct {
		name string
		walk func(*Node) []int
		want []int
	}{
		{"In-order", InOrderKeys, []int{20, 30, 40, 50, 70}},
		{"Pre-order", PreOrderKeys, []int{50, 30, 20, 40, 70}},
		{"Post-order", PostOrderKeys, []int{20, 40, 30, 70, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.walk(root); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name   string
		keys   []int
		delete int
		want   []int
	}{
		{"Leaf", []int{50, 30, 70, 20}, 20, []int{30, 50, 70}},
		{"Single child left", []int{50, 30, 20}, 30, []int{20, 50}},
		{"Single child right", []int{50, 30, 40}, 30, []int{40, 50}},
		{"Two children", []int{50, 30, 70, 20, 40}, 30, []int{20, 40, 50, 70}},
		{"Root with two children", []int{50, 30, 70}, 50, []int{30, 70}},
		{"Absent key is a no-op", []int{50, 30, 70}, 99, []int{30, 50, 70}},
		{"Empty tree", nil, 1, nil},
		{"Last node", []int{50}, 50, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := buildTree(tt.keys...)
			root = Delete(root, tt.delete)
			if got := InOrderKeys(root); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected in-order keys %v after deleting %d, got %v", tt.want, tt.delete, got)
			}
		})
	}
}

func TestDeleteTwoChildrenUsesSuccessor(t *testing.T) {
	// Deleting 30 (children 20, 40) must move the successor key 40 up
	// into the old 30 slot and remove the original 40 leaf
	root := buildTree(50, 30, 70, 20, 40)
	root = Delete(root, 30)

	if root.Left == nil || root.Left.Key != 40 {
		t.Fatalf("Expected successor key 40 in the old 30 slot, got %+v", root.Left)
	}
	if root.Left.Right != nil {
		t.Errorf("Expected original 40 leaf to be removed, got %+v", root.Left.Right)
	}
	if root.Left.Left == nil || root.Left.Left.Key != 20 {
		t.Errorf("Expected 20 to remain as left child, got %+v", root.Left.Left)
	}
}

func TestDeleteKeepsOrderingInvariant(t *testing.T) {
	root := buildTree(50, 30, 70, 20, 40, 60, 80, 10, 25, 35, 45)

	for _, k := range []int{30, 70, 50, 10, 45} {
		root = Delete(root, k)
		keys := InOrderKeys(root)
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("Ordering invariant broken after deleting %d: %v", k, keys)
			}
		}
	}
}

func TestFind(t *testing.T) {
	root := buildTree(50, 30, 70, 20, 40)

	for _, k := range []int{50, 30, 70, 20, 40} {
		n := Find(root, k)
		if n == nil || n.Key != k {
			t.Errorf("Expected to find key %d, got %+v", k, n)
		}
	}
	if n := Find(root, 999); n != nil {
		t.Errorf("Expected nil for absent key, got %+v", n)
	}
	if n := Find(nil, 1); n != nil {
		t.Errorf("Expected nil for empty tree, got %+v", n)
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want int
	}{
		{"Empty", nil, 0},
		{"Single", []int{1}, 1},
		{"Balanced", []int{50, 30, 70}, 2},
		{"Chain", []int{1, 2, 3, 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Height(buildTree(tt.keys...)); got != tt.want {
				t.Errorf("Expected height %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	root := buildTree(50, 30, 70, 20, 40, 60, 80)

	seen := make(map[int]int)
	Walk(root, func(n *Node) {
		seen[n.Key]++
	})

	if len(seen) != 7 {
		t.Fatalf("Expected 7 distinct nodes, got %d", len(seen))
	}
	for k, count := range seen {
		if count != 1 {
			t.Errorf("Expected key %d visited once, got %d", k, count)
		}
	}
}

func TestResetTags(t *testing.T) {
	root := buildTree(50, 30, 70)
	root.Tag = TagFound
	root.Left.Tag = TagFlashOn
	root.Right.Tag = TagCursor

	ResetTags(root)

	Walk(root, func(n *Node) {
		if n.Tag != TagNormal {
			t.Errorf("Expected key %d tag reset to normal, got %v", n.Key, n.Tag)
		}
	})
}
