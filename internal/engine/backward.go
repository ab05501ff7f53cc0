package engine

import "math"

// Backward computes d(v)/d(node) for every node reachable from v and
// accumulates it into each node's Grad.
//
// Algorithm:
//  1. Order the reachable nodes so every node comes after all of its
//     consumers (TopoOrder).
//  2. Seed v.Grad with 1.
//  3. Walk the order and let each node add its contribution into its
//     operands. A node's own Grad is complete by the time it is visited,
//     since every consumer precedes it.
//
// Gradients are never reset here. Running Backward twice over the same
// graph adds the second pass onto the first, except for v itself, which
// is re-seeded.
func (v *Value) Backward() {
	order := TopoOrder(v)

	v.grad = 1
	for _, node := range order {
		node.propagate()
	}
}

// TopoOrder returns every node reachable from root exactly once, root
// first and leaves last, such that each node appears after all nodes
// that use it as an operand.
//
// The order is the reverse of an iterative depth-first post-order that
// visits operands left to right, so it is deterministic for a given graph.
func TopoOrder(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // Index of the next operand to descend into
	}

	var post []*Value
	visited := map[*Value]struct{}{root: {}}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		post = append(post, top.node)
		stack = stack[:len(stack)-1]
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}

// propagate applies the local gradient rule of v, adding v.grad times the
// local derivative into each operand.
func (v *Value) propagate() {
	switch v.op {
	case OpLeaf:
		// No operands.

	case OpAdd:
		a, b := v.operands[0], v.operands[1]
		a.grad += v.grad
		b.grad += v.grad

	case OpSub:
		a, b := v.operands[0], v.operands[1]
		a.grad += v.grad
		b.grad -= v.grad

	case OpMul:
		a, b := v.operands[0], v.operands[1]
		a.grad += b.data * v.grad
		b.grad += a.data * v.grad

	case OpDiv:
		// a * b^-1
		a, b := v.operands[0], v.operands[1]
		a.grad += v.grad / b.data
		b.grad += -a.data / (b.data * b.data) * v.grad

	case OpPow:
		a := v.operands[0]
		a.grad += v.exponent * math.Pow(a.data, v.exponent-1) * v.grad

	case OpNeg:
		v.operands[0].grad -= v.grad

	case OpReLU:
		a := v.operands[0]
		if a.data > 0 {
			a.grad += v.grad
		}

	case OpExp:
		v.operands[0].grad += v.data * v.grad

	case OpTanh:
		v.operands[0].grad += (1 - v.data*v.data) * v.grad

	case OpLog:
		a := v.operands[0]
		a.grad += v.grad / a.data
	}
}
