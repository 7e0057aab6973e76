package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pds/persistent"
	"github.com/npillmayer/pds/persistent/bintree"
	"github.com/npillmayer/pds/persistent/hashset"
	"github.com/npillmayer/pds/persistent/list"
	"github.com/npillmayer/pds/persistent/treemap"
	"github.com/npillmayer/pds/persistent/treeset"
	"github.com/pterm/pterm"
)

var errUnknownOp = errors.New("unknown operation")

// value is a collection bound to a name. Applying an operation never changes a value,
// but derives a new one.
type value interface {
	Kind() string
	String() string
	Len() int
	Depth() int
	DebugString() string
	Apply(op string, args []string) (value, error)
	Shape() pterm.TreeNode
}

func makeValue(kind string, args []string) (value, error) {
	switch kind {
	case "list":
		return listValue{persistent.NewList[string]().AddAll(args...)}, nil
	case "set":
		return setValue{persistent.NewOrderedSet[string]().AddAll(args...)}, nil
	case "hashset":
		return hashValue{persistent.NewHashSet[string]().AddAll(args...)}, nil
	case "map":
		return mapValue{persistent.NewOrderedMap[string, string]()}.Apply("put", args)
	}
	return nil, fmt.Errorf("unknown collection type %q", kind)
}

func needArgs(op string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%s needs %d argument(s), has %d", op, n, len(args))
	}
	return nil
}

// --- List ------------------------------------------------------------------

type listValue struct {
	l list.List[string]
}

func (v listValue) Kind() string        { return "list" }
func (v listValue) String() string      { return v.l.String() }
func (v listValue) Len() int            { return v.l.Len() }
func (v listValue) Depth() int          { return v.l.Depth() }
func (v listValue) DebugString() string { return v.l.DebugString() }

func (v listValue) Shape() pterm.TreeNode {
	return shapeOf(v.l.Tree())
}

func (v listValue) Apply(op string, args []string) (value, error) {
	l := v.l
	switch op {
	case "add":
		return listValue{l.AddAll(args...)}, nil
	case "remove":
		for _, a := range args {
			l = l.Remove(a)
		}
		return listValue{l}, nil
	case "insert", "set":
		if err := needArgs(op, args, 2); err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		if op == "insert" {
			l, err = l.Insert(index, args[1])
		} else {
			l, err = l.Set(index, args[1])
		}
		return listValue{l}, err
	case "removeat":
		if err := needArgs(op, args, 1); err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, err
		}
		l, err = l.RemoveAt(index)
		return listValue{l}, err
	}
	return nil, fmt.Errorf("%w %q for lists", errUnknownOp, op)
}

// --- Ordered set -----------------------------------------------------------

type setValue struct {
	s treeset.Set[string]
}

func (v setValue) Kind() string        { return "set" }
func (v setValue) String() string      { return v.s.String() }
func (v setValue) Len() int            { return v.s.Len() }
func (v setValue) Depth() int          { return v.s.Depth() }
func (v setValue) DebugString() string { return v.s.DebugString() }

func (v setValue) Shape() pterm.TreeNode {
	return shapeOf(v.s.Tree())
}

func (v setValue) Apply(op string, args []string) (value, error) {
	switch op {
	case "add":
		return setValue{v.s.AddAll(args...)}, nil
	case "put":
		return setValue{v.s.PutAll(args...)}, nil
	case "remove":
		s := v.s
		for _, a := range args {
			s = s.Remove(a)
		}
		return setValue{s}, nil
	}
	return nil, fmt.Errorf("%w %q for sets", errUnknownOp, op)
}

// --- Hash set --------------------------------------------------------------

type hashValue struct {
	s hashset.Set[string]
}

func (v hashValue) Kind() string   { return "hashset" }
func (v hashValue) String() string { return v.s.String() }
func (v hashValue) Len() int       { return v.s.Len() }

func (v hashValue) Depth() int { return v.s.Depth() }

func (v hashValue) DebugString() string { return v.s.DebugString() }

func (v hashValue) Shape() pterm.TreeNode {
	root := pterm.TreeNode{Text: fmt.Sprintf("%d buckets", v.s.Buckets())}
	for e := range v.s.All() {
		root.Children = append(root.Children, pterm.TreeNode{Text: e})
	}
	return root
}

func (v hashValue) Apply(op string, args []string) (value, error) {
	switch op {
	case "add":
		return hashValue{v.s.AddAll(args...)}, nil
	case "put":
		return hashValue{v.s.PutAll(args...)}, nil
	case "remove":
		s := v.s
		for _, a := range args {
			s = s.Remove(a)
		}
		return hashValue{s}, nil
	}
	return nil, fmt.Errorf("%w %q for hash sets", errUnknownOp, op)
}

// --- Map -------------------------------------------------------------------

type mapValue struct {
	m treemap.Map[string, string]
}

func (v mapValue) Kind() string        { return "map" }
func (v mapValue) String() string      { return v.m.String() }
func (v mapValue) Len() int            { return v.m.Len() }
func (v mapValue) Depth() int          { return v.m.Depth() }
func (v mapValue) DebugString() string { return v.m.DebugString() }

func (v mapValue) Shape() pterm.TreeNode {
	return shapeOf(v.m.Entries().Tree())
}

// Apply supports 'put key=value…' and 'remove key…'.
func (v mapValue) Apply(op string, args []string) (value, error) {
	m := v.m
	switch op {
	case "put":
		for _, a := range args {
			key, val, ok := strings.Cut(a, "=")
			if !ok {
				return nil, fmt.Errorf("expected key=value, have %q", a)
			}
			m = m.Put(key, val)
		}
		return mapValue{m}, nil
	case "remove":
		for _, a := range args {
			m = m.Remove(a)
		}
		return mapValue{m}, nil
	}
	return nil, fmt.Errorf("%w %q for maps", errUnknownOp, op)
}

// --- Shapes ----------------------------------------------------------------

// shapeOf converts a tree into a pterm tree. Empty children of inner nodes are shown
// as '·', to tell left from right children.
func shapeOf[E any](n *bintree.Node[E]) pterm.TreeNode {
	if n.IsEmpty() {
		return pterm.TreeNode{Text: "·"}
	}
	node := pterm.TreeNode{Text: fmt.Sprint(n.Element())}
	if n.IsLeaf() {
		return node
	}
	node.Children = []pterm.TreeNode{shapeOf(n.Left()), shapeOf(n.Right())}
	return node
}
