package modifier

import "fmt"

// Node is an element of a selection tree: a *Single leaf or a *Group of weighted children
// The set of node kinds is closed
type Node interface {
	// Name is a debug identifier; leaf names are reported in ActiveModifiers
	Name() string

	// choose descends to one leaf; ok is false when no leaf can be picked
	choose(rng Source) (leaf *Single, ok bool)
}

// Single is a leaf node: a named modifier that selects itself once reached
type Single struct {
	name     string
	behavior Modifier
}

// NewSingle creates a leaf; a nil behavior is a programming error and panics
func NewSingle(name string, behavior Modifier) *Single {
	if behavior == nil {
		panic(fmt.Sprintf("modifier: nil behavior for %q", name))
	}
	return &Single{name: name, behavior: behavior}
}

// Name returns the modifier name
func (s *Single) Name() string {
	return s.name
}

// Behavior returns the modifier activated when this leaf is selected
func (s *Single) Behavior() Modifier {
	return s.behavior
}

// Leaves never consume the generator
func (s *Single) choose(Source) (*Single, bool) {
	return s, true
}

type weightedNode struct {
	node   Node
	weight uint32
}

// Group picks one child by weight and descends into it
// Children keep insertion order, which fixes the mapping from draws to children
type Group struct {
	name     string
	children []weightedNode
}

// NewGroup creates an empty group
func NewGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group's debug name
func (g *Group) Name() string {
	return g.name
}

// WithSingle appends a leaf child
func (g *Group) WithSingle(s *Single, weight uint32) *Group {
	g.children = append(g.children, weightedNode{node: s, weight: weight})
	return g
}

// WithGroup appends a nested group
func (g *Group) WithGroup(child *Group, weight uint32) *Group {
	g.children = append(g.children, weightedNode{node: child, weight: weight})
	return g
}

// Add appends any node with an untyped weight, rejecting negative or oversized values
func (g *Group) Add(node Node, weight int) error {
	w, err := checkWeight(weight)
	if err != nil {
		return fmt.Errorf("group %q child %q: %w", g.name, node.Name(), err)
	}
	g.children = append(g.children, weightedNode{node: node, weight: w})
	return nil
}

// Len returns the number of children
func (g *Group) Len() int {
	return len(g.children)
}

// Weights returns child weights in insertion order
func (g *Group) Weights() []uint32 {
	weights := make([]uint32, len(g.children))
	for i, c := range g.children {
		weights[i] = c.weight
	}
	return weights
}

// An empty or all-zero group fails without drawing
func (g *Group) choose(rng Source) (*Single, bool) {
	dist, err := NewWeightedIndex(g.Weights())
	if err != nil {
		return nil, false
	}
	return g.children[dist.Sample(rng)].node.choose(rng)
}
