package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/treescope/tree"
)

// searchHops runs the search machine to completion and returns how many
// hops it took.
func searchHops(t *testing.T, c *Context, key int) int {
	t.Helper()
	c.StartSearch(key)
	hops := 0
	for i := 0; i < 100; i++ {
		if c.Mode() == ModeIdle {
			return hops
		}
		c.Update(c.searchHop + 10*time.Millisecond)
		hops++
	}
	t.Fatal("Search did not terminate within 100 hops")
	return 0
}

func TestSearchFindsPresentKeys(t *testing.T) {
	tests := []struct {
		name string
		key  int
	}{
		{"Root", 50},
		{"Inner left", 30},
		{"Inner right", 70},
		{"Leaf left", 20},
		{"Leaf right", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(50, 30, 70, 20, 40)
			searchHops(t, c, tt.key)

			if !c.Found() {
				t.Errorf("Expected found=true for key %d", tt.key)
			}
			if c.Cursor() == nil || c.Cursor().Key != tt.key {
				t.Errorf("Expected cursor on key %d, got %v", tt.key, c.Cursor())
			}
			if c.Cursor().Tag != tree.TagFound {
				t.Errorf("Expected found node tagged, got %v", c.Cursor().Tag)
			}
		})
	}
}

func TestSearchAbsentKey(t *testing.T) {
	c := newTestContext(50, 30, 70, 20, 40)
	before := tree.InOrderKeys(c.Root)

	searchHops(t, c, 999)

	if c.Found() {
		t.Error("Expected found=false for absent key")
	}
	if c.Cursor() != nil {
		t.Errorf("Expected cursor to walk off to nil, got %v", c.Cursor().Key)
	}
	if got := tree.InOrderKeys(c.Root); !reflect.DeepEqual(got, before) {
		t.Errorf("Expected tree unchanged by search, got %v", got)
	}
}

func TestSearchTerminatesWithinHeightHops(t *testing.T) {
	keys := []int{50, 30, 70, 20, 40, 60, 80, 10, 25}

	for _, key := range []int{50, 10, 25, 80, 999, -7} {
		c := newTestContext(keys...)
		bound := tree.Height(c.Root) + 1
		hops := searchHops(t, c, key)
		if hops > bound {
			t.Errorf("Expected key %d resolved within %d hops, took %d", key, bound, hops)
		}
	}
}

func TestSearchEmptyTree(t *testing.T) {
	c := newTestContext()
	c.StartSearch(1)

	c.Update(time.Millisecond)

	if c.Mode() != ModeIdle {
		t.Errorf("Expected immediate idle on empty tree, got %v", c.Mode())
	}
	if c.Found() {
		t.Error("Expected found=false on empty tree")
	}
}

func TestSearchHopGating(t *testing.T) {
	c := newTestContext(50, 30, 70)
	c.StartSearch(70)

	if c.Cursor() == nil || c.Cursor().Key != 50 {
		t.Fatal("Expected cursor to start at root")
	}

	c.Update(c.searchHop / 2)
	if c.Cursor().Key != 50 {
		t.Error("Expected no hop before the interval elapses")
	}

	c.Update(c.searchHop)
	if c.Cursor().Key != 70 {
		t.Errorf("Expected cursor on 70 after one hop, got %d", c.Cursor().Key)
	}
}

func TestSearchCuesHopsAndFound(t *testing.T) {
	c := newTestContext(50, 30, 70, 20, 40)
	rec := &cueRecorder{ctx: c}
	c.Sound = rec

	searchHops(t, c, 40)

	// Path 50→30→40: two movement blips, then the found chime
	if !reflect.DeepEqual(rec.visits, []int{50, 30}) {
		t.Errorf("Expected hop cues at [50 30], got %v", rec.visits)
	}
	if rec.founds != 1 {
		t.Errorf("Expected one found cue, got %d", rec.founds)
	}
}
