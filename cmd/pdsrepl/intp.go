package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pds/persistent/list"
	"github.com/npillmayer/pds/persistent/treemap"
	"github.com/pterm/pterm"
)

var (
	errUnknownName = errors.New("unknown name")
	errSyntax      = errors.New("syntax error")
	errNoHistory   = errors.New("nothing to undo")
)

// Output is the result of evaluating a command: lines of text and an optional tree.
type Output struct {
	Lines []string
	Label string
	Tree  *pterm.TreeNode
}

func lines(l ...string) Output {
	return Output{Lines: l}
}

// Intp is our interpreter object. Its environment of named collections is itself a
// persistent map; every binding creates a new version of the environment, and older
// versions are kept for undo.
type Intp struct {
	env     treemap.Map[string, value]
	history list.List[treemap.Map[string, value]]
	quit    bool
}

// NewIntp creates an interpreter with an empty environment.
func NewIntp() *Intp {
	return &Intp{env: treemap.Natural[string, value]()}
}

const help = `commands:
  NAME = list|set|hashset ELEM…     create a collection
  NAME = map KEY=VALUE…             create a map
  NAME = SRC OP ARGS…               derive a collection from SRC; OP is one of
                                    add, put, remove, insert I E, set I E, removeat I
  at NAME I                         print the element at position I of a list
  show NAME                         print a collection with diagnostics
  tree NAME                         draw the tree underlying a collection
  env                               list all names
  undo                              revert the last binding
  demo                              run a short demonstration
  quit`

// Eval evaluates a single command line. Collection type names take precedence over
// names bound in the environment.
func (intp *Intp) Eval(line string) (Output, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Output{}, nil
	}
	tracer().Debugf("eval %v", tokens)
	switch cmd := tokens[0]; {
	case len(tokens) >= 3 && tokens[1] == "=":
		return intp.bind(tokens[0], tokens[2:])
	case cmd == "quit" || cmd == "exit":
		intp.quit = true
		return Output{}, nil
	case cmd == "help":
		return lines(help), nil
	case cmd == "env":
		return intp.listEnv(), nil
	case cmd == "undo":
		return intp.undo()
	case cmd == "demo":
		return intp.demo()
	case cmd == "at" && len(tokens) == 3:
		return intp.at(tokens[1], tokens[2])
	case cmd == "show" && len(tokens) == 2:
		return intp.show(tokens[1])
	case cmd == "tree" && len(tokens) == 2:
		v, err := intp.lookup(tokens[1])
		if err != nil {
			return Output{}, err
		}
		shape := v.Shape()
		return Output{Label: tokens[1], Tree: &shape}, nil
	case len(tokens) == 1:
		v, err := intp.lookup(cmd)
		if err != nil {
			return Output{}, err
		}
		return lines(v.String()), nil
	}
	return Output{}, fmt.Errorf("%w: %q, try 'help'", errSyntax, line)
}

func (intp *Intp) lookup(name string) (value, error) {
	if v, ok := intp.env.Get(name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", errUnknownName, name)
}

func (intp *Intp) bind(name string, expr []string) (Output, error) {
	var v value
	var err error
	switch expr[0] {
	case "list", "set", "hashset", "map":
		v, err = makeValue(expr[0], expr[1:])
	default:
		var src value
		if src, err = intp.lookup(expr[0]); err != nil {
			return Output{}, err
		}
		if len(expr) < 2 {
			return Output{}, fmt.Errorf("%w: missing operation on %s", errSyntax, expr[0])
		}
		v, err = src.Apply(expr[1], expr[2:])
	}
	if err != nil {
		return Output{}, err
	}
	intp.history = intp.history.Add(intp.env)
	intp.env = intp.env.Put(name, v)
	tracer().Infof("bound %s to %s of size %d", name, v.Kind(), v.Len())
	return lines(fmt.Sprintf("%s = %s", name, v)), nil
}

func (intp *Intp) show(name string) (Output, error) {
	v, err := intp.lookup(name)
	if err != nil {
		return Output{}, err
	}
	return lines(
		fmt.Sprintf("%s %s = %s", v.Kind(), name, v),
		fmt.Sprintf("size=%d, depth=%d", v.Len(), v.Depth()),
		v.DebugString(),
	), nil
}

func (intp *Intp) at(name, pos string) (Output, error) {
	v, err := intp.lookup(name)
	if err != nil {
		return Output{}, err
	}
	lv, ok := v.(listValue)
	if !ok {
		return Output{}, fmt.Errorf("%w: %s is a %s, not a list", errSyntax, name, v.Kind())
	}
	index, err := strconv.Atoi(pos)
	if err != nil {
		return Output{}, err
	}
	var e string
	switch m := lv.l.At(index).Match(); m {
	case m.Ok(&e):
		return lines(e), nil
	case m.Err(&err):
	}
	return Output{}, err
}

func (intp *Intp) listEnv() Output {
	var out Output
	for name, v := range intp.env.All() {
		out.Lines = append(out.Lines, fmt.Sprintf("%-8s %-8s %s", name, v.Kind(), v))
	}
	if len(out.Lines) == 0 {
		out.Lines = []string{"environment is empty"}
	}
	return out
}

func (intp *Intp) undo() (Output, error) {
	if intp.history.IsEmpty() {
		return Output{}, errNoHistory
	}
	last := intp.history.Len() - 1
	prev, err := intp.history.Get(last)
	if err != nil {
		return Output{}, err
	}
	if intp.history, err = intp.history.RemoveAt(last); err != nil {
		return Output{}, err
	}
	intp.env = prev
	return lines(fmt.Sprintf("environment has %d names", prev.Len())), nil
}

var demoScript = []string{
	"l1 = list 1 2 3",
	"l2 = l1 add 4",
	"s1 = set A B C",
	"s2 = s1 remove B",
	"m1 = map 1=one 2=two",
	"m2 = m1 put 3=three",
	"env",
}

func (intp *Intp) demo() (Output, error) {
	var out Output
	for _, cmd := range demoScript {
		o, err := intp.Eval(cmd)
		if err != nil {
			return out, err
		}
		out.Lines = append(out.Lines, o.Lines...)
	}
	return out, nil
}
