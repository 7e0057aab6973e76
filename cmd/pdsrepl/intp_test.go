package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pds/persistent"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, intp *Intp, line string) []string {
	out, err := intp.Eval(line)
	require.NoError(t, err, line)
	return out.Lines
}

func TestBindAndDerive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.repl")
	defer teardown()
	//
	intp := NewIntp()
	assert.Equal(t, []string{"l1 = {a,b,c}"}, eval(t, intp, "l1 = list a b c"))
	assert.Equal(t, []string{"l2 = {a,b,c,d}"}, eval(t, intp, "l2 = l1 add d"))
	assert.Equal(t, []string{"{a,b,c}"}, eval(t, intp, "l1"))
	assert.Equal(t, []string{"l3 = {a,x,c,d}"}, eval(t, intp, "l3 = l2 set 1 x"))
	assert.Equal(t, []string{"l4 = {x,c,d}"}, eval(t, intp, "l4 = l3 removeat 0"))
	assert.Equal(t, []string{"s = {A,B}"}, eval(t, intp, "s = set B A B"))
	assert.Equal(t, []string{"h = {A,B}"}, eval(t, intp, "h = hashset B A"))
	assert.Equal(t, []string{"m = {[1 -> one],[2 -> two]}"}, eval(t, intp, "m = map 2=two 1=one"))
	assert.Equal(t, []string{"m2 = {[2 -> two]}"}, eval(t, intp, "m2 = m remove 1"))
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pds.repl")
	defer teardown()
	//
	intp := NewIntp()
	eval(t, intp, "l = list a")
	_, err := intp.Eval("x = nope add 1")
	assert.True(t, errors.Is(err, errUnknownName))
	_, err = intp.Eval("x = l frobnicate")
	assert.True(t, errors.Is(err, errUnknownOp))
	_, err = intp.Eval("x = l insert 5 z")
	assert.True(t, errors.Is(err, persistent.ErrIndexOutOfRange))
	_, err = intp.Eval("x = map nokey")
	assert.Error(t, err)
	_, err = intp.Eval("undo")
	assert.NoError(t, err)
	_, err = intp.Eval("undo")
	assert.True(t, errors.Is(err, errNoHistory))
	_, err = intp.Eval("what is this")
	assert.True(t, errors.Is(err, errSyntax))
}

func TestAt(t *testing.T) {
	intp := NewIntp()
	eval(t, intp, "l = list a b c")
	eval(t, intp, "s = set a")
	assert.Equal(t, []string{"b"}, eval(t, intp, "at l 1"))
	_, err := intp.Eval("at l 3")
	assert.ErrorIs(t, err, persistent.ErrIndexOutOfRange)
	_, err = intp.Eval("at s 0")
	assert.ErrorIs(t, err, errSyntax)
}

func TestUndo(t *testing.T) {
	intp := NewIntp()
	eval(t, intp, "a = list 1")
	eval(t, intp, "a = a add 2")
	assert.Equal(t, []string{"{1,2}"}, eval(t, intp, "a"))
	eval(t, intp, "undo")
	assert.Equal(t, []string{"{1}"}, eval(t, intp, "a"))
	eval(t, intp, "undo")
	_, err := intp.Eval("a")
	assert.ErrorIs(t, err, errUnknownName)
}

func TestShowAndTree(t *testing.T) {
	intp := NewIntp()
	eval(t, intp, "s = set A B C")
	show := eval(t, intp, "show s")
	require.Len(t, show, 3)
	assert.Equal(t, "set s = {A,B,C}", show[0])
	assert.Equal(t, "size=3, depth=2", show[1])
	assert.Equal(t, "(A)<- B ->(C)", show[2])
	out, err := intp.Eval("tree s")
	require.NoError(t, err)
	require.NotNil(t, out.Tree)
	assert.Equal(t, "B", out.Tree.Text)
	require.Len(t, out.Tree.Children, 2)
	assert.Equal(t, "A", out.Tree.Children[0].Text)
}

func TestDemo(t *testing.T) {
	intp := NewIntp()
	out := eval(t, intp, "demo")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "l2 = {1,2,3,4}")
	assert.Contains(t, joined, "s2 = {A,C}")
	assert.Contains(t, joined, "m2 = {[1 -> one],[2 -> two],[3 -> three]}")
	l1, _ := intp.env.Get("l1")
	assert.Equal(t, "{1,2,3}", l1.String())
}
