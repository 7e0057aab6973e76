package list

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestListScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.list")
	defer teardown()
	//
	l3 := List[int]{}.Add(1).Add(2).Add(3)
	l4 := l3.Add(4)
	if l3.String() != "{1,2,3}" || l3.Len() != 3 {
		t.Errorf("expected original list to be {1,2,3}, is %s", l3)
	}
	if l4.String() != "{1,2,3,4}" || l4.Len() != 4 {
		t.Errorf("expected derived list to be {1,2,3,4}, is %s", l4)
	}
	t.Logf("l4 = %s", l4.DebugString())
}

func TestListPositional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.list")
	defer teardown()
	//
	l := Of("a", "c")
	l, err := l.Insert(1, "b")
	require.NoError(t, err)
	l, err = l.Insert(3, "d") // index == size appends
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Slice())
	x, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "c", x)
	m, err := l.Set(2, "C")
	require.NoError(t, err)
	assert.Equal(t, "{a,b,C,d}", m.String())
	assert.Equal(t, "{a,b,c,d}", l.String())
	m, err = m.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "{b,C,d}", m.String())
}

func TestListAt(t *testing.T) {
	l := Of("a", "b")
	var v string
	var err error
	switch m := l.At(1).Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
		t.Errorf("expected element at 1, have error %v", err)
	}
	if v != "b" {
		t.Errorf("expected b, is %q", v)
	}
	if _, err = l.At(2).Get(); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected index error, is %v", err)
	}
}

func TestListIndexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.list")
	defer teardown()
	//
	l := Of(1, 2, 3)
	if _, err := l.Insert(4, 9); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected insert at size+1 to fail with index out of range, is %v", err)
	}
	if _, err := l.Insert(-1, 9); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected insert at -1 to fail, is %v", err)
	}
	if _, err := l.Get(3); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected get at size to fail, is %v", err)
	}
	if _, err := l.Set(3, 9); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected set at size to fail, is %v", err)
	}
	empty := Empty[int]()
	if _, err := empty.RemoveAt(0); !errors.Is(err, bintree.ErrIndexOutOfRange) {
		t.Errorf("expected remove on empty list to fail, is %v", err)
	}
	if _, err := empty.Get(0); err == nil {
		t.Errorf("expected get on empty list to fail")
	}
	if l.String() != "{1,2,3}" {
		t.Errorf("expected failed operations to leave list unchanged, is %s", l)
	}
}

func TestListUnchanged(t *testing.T) {
	l := Of("x", "y", "z")
	if !l.Remove("w").Same(l) {
		t.Errorf("expected removing an absent element to return the same list")
	}
	y, _ := l.Get(1)
	m, _ := l.Set(1, y)
	if !m.Same(l) {
		t.Errorf("expected setting an identical element to return the same list")
	}
	if (List[int]{}).Tree() != Empty[int]().Tree() {
		t.Errorf("expected zero list to use the canonical empty tree")
	}
}

type name struct {
	first, last string
}

func TestListLookups(t *testing.T) {
	l := Of(1, 2, 3, 2, 1)
	assert.Equal(t, 1, l.IndexOf(2))
	assert.Equal(t, 3, l.LastIndexOf(2))
	assert.Equal(t, -1, l.IndexOf(7))
	assert.Equal(t, -1, l.LastIndexOf(7))
	assert.True(t, l.Contains(3))
	assert.Equal(t, "{1,3,2,1}", l.Remove(2).String())
	assert.Equal(t, 4, l.LastIndexFunc(func(x int) bool { return x < 2 }))
	//
	p1, p2 := &name{"Ada", "Lovelace"}, &name{"Ada", "Lovelace"}
	names := Of(p1)
	if _, ok := names.FirstEqual(p2); ok {
		t.Errorf("expected pointers without Equals method to compare by identity")
	}
	if n, ok := names.FirstEqual(p1); !ok || n != p1 {
		t.Errorf("expected to find p1")
	}
}

func TestListEquality(t *testing.T) {
	a := Of(1, 2, 3)
	b := Empty[int]().Add(3)
	b, _ = b.Insert(0, 1)
	b, _ = b.Insert(1, 2)
	c := Of(3, 2, 1)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equal(c), "lists are order sensitive")
	assert.False(t, a.Equal(a.Add(4)))
	assert.True(t, Empty[int]().Equal(List[int]{}))
}

func TestListSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.list")
	defer teardown()
	//
	l := Of("one", "two", "three")
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, `["one","two","three"]`, string(data))
	var m List[string]
	require.NoError(t, json.Unmarshal(data, &m))
	assert.True(t, l.Equal(m))
	//
	ydata, err := yaml.Marshal(l)
	require.NoError(t, err)
	var y List[string]
	require.NoError(t, yaml.Unmarshal(ydata, &y))
	assert.True(t, l.Equal(y), "expected YAML round trip to preserve %s, is %s", l, y)
	//
	data, err = json.Marshal(Empty[string]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	var e List[string]
	require.NoError(t, json.Unmarshal(data, &e))
	assert.True(t, e.Same(Empty[string]()), "expected empty list to decode to the canonical empty list")
}

func TestListRandomModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.list")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(1))
	model := arraylist.New()
	l := Empty[int]()
	var snapshots []List[int]
	var sizes []int
	for i := 0; i < 12000; i++ {
		switch op := rnd.Intn(10); {
		case op < 5 || model.Size() == 0:
			k := rnd.Intn(model.Size() + 1)
			var err error
			l, err = l.Insert(k, i)
			require.NoError(t, err)
			model.Insert(k, i)
		case op < 8:
			k := rnd.Intn(model.Size())
			var err error
			l, err = l.RemoveAt(k)
			require.NoError(t, err)
			model.Remove(k)
		default:
			k := rnd.Intn(model.Size())
			var err error
			l, err = l.Set(k, -i)
			require.NoError(t, err)
			model.Set(k, -i)
		}
		if i%1000 == 0 {
			snapshots = append(snapshots, l)
			sizes = append(sizes, l.Len())
		}
	}
	require.Equal(t, model.Size(), l.Len())
	for i, v := range model.Values() {
		x, err := l.Get(i)
		require.NoError(t, err)
		if x != v.(int) {
			t.Fatalf("expected element %d to be %d, is %d", i, v, x)
		}
	}
	for i, s := range snapshots {
		if s.Len() != sizes[i] {
			t.Errorf("expected snapshot %d to keep size %d, has %d", i, sizes[i], s.Len())
		}
	}
	t.Logf("final list: len=%d, depth=%d", l.Len(), l.Depth())
}
