package engine

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// GraphNode is a gonum graph node wrapping one Value of a computation graph.
type GraphNode struct {
	id    int64
	Value *Value
}

// ID implements graph.Node. IDs are positions in TopoOrder of the root.
func (n *GraphNode) ID() int64 {
	return n.id
}

// DOTID implements dot.Node.
func (n *GraphNode) DOTID() string {
	return fmt.Sprintf("v%d", n.id)
}

// Attributes implements encoding.Attributer for DOT rendering.
func (n *GraphNode) Attributes() []encoding.Attribute {
	v := n.Value
	label := fmt.Sprintf("data %.4f | grad %.4f", v.data, v.grad)
	if v.label != "" {
		label = v.label + " | " + label
	}
	if !v.IsLeaf() {
		op := v.op.String()
		if v.op == OpPow {
			op = fmt.Sprintf("**%v", v.exponent)
		}
		label = op + " | " + label
	}
	return []encoding.Attribute{
		{Key: "label", Value: label},
		{Key: "shape", Value: "box"},
	}
}

// Graph builds a directed gonum graph of every node reachable from root.
// Edges run from operand to result, in the direction data flows.
//
// The graph is a snapshot: nodes reference the live Values, but edges
// added to the computation afterwards are not reflected.
func Graph(root *Value) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()

	order := TopoOrder(root)
	nodes := make(map[*Value]*GraphNode, len(order))
	for i, v := range order {
		n := &GraphNode{id: int64(i), Value: v}
		nodes[v] = n
		g.AddNode(n)
	}

	for _, v := range order {
		for _, operand := range v.operands {
			from, to := nodes[operand], nodes[v]
			// x*x references the same operand twice; gonum keeps one edge.
			if g.HasEdgeFromTo(from.ID(), to.ID()) {
				continue
			}
			g.SetEdge(g.NewEdge(from, to))
		}
	}
	return g
}

// DOT renders the graph reachable from root in Graphviz DOT format.
func DOT(root *Value, name string) ([]byte, error) {
	b, err := dot.Marshal(Graph(root), name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("dot: marshal graph: %w", err)
	}
	return b, nil
}
