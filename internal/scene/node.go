package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is one element of the scene graph. A node without geometry acts as a
// group whose transform applies to all of its children.
type Node struct {
	Name      string
	Transform Transform
	Visible   bool

	parent   *Node
	children []*Node
}

// NewNode creates a visible node with an identity transform
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: Identity(), Visible: true}
}

// Add attaches child to n, detaching it from any previous parent first
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child if it belongs to n
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// WorldMatrix composes the local matrices from the root down to n
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul4(m)
	}
	return m
}

// Walk visits n and its descendants depth-first, parents before children
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
