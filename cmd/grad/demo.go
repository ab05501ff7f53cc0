package main

import (
	"fmt"
	"io"

	"github.com/born-ml/grad/engine"
)

// demoGraph builds L = (a*b + c) * f with a=2, b=-3, c=10, f=-2.
func demoGraph() (leaves []*engine.Value, root *engine.Value) {
	a := engine.New(2).SetLabel("a")
	b := engine.New(-3).SetLabel("b")
	c := engine.New(10).SetLabel("c")
	f := engine.New(-2).SetLabel("f")

	e := a.Mul(b).SetLabel("e")
	d := e.Add(c).SetLabel("d")
	L := d.Mul(f).SetLabel("L")
	return []*engine.Value{a, b, c, f, e, d}, L
}

func runDemo(w io.Writer) error {
	leaves, L := demoGraph()
	L.Backward()

	for _, v := range append([]*engine.Value{L}, leaves...) {
		if _, err := fmt.Fprintf(w, "%-2s %s\n", v.Label(), v); err != nil {
			return err
		}
	}
	return nil
}

func runDOT(w io.Writer) error {
	_, L := demoGraph()
	L.Backward()

	out, err := engine.DOT(L, "demo")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
