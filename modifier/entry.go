package modifier

// Entry is a top-level slot in a pool: a node gated by an independent activation chance
type Entry struct {
	node   Node
	chance float32
}

// NewEntry gates node behind chance, a percentage in [0, 100]
func NewEntry(node Node, chance float32) *Entry {
	return &Entry{node: node, chance: chance}
}

// NewSingleEntry is NewEntry(NewSingle(name, behavior), chance)
func NewSingleEntry(name string, behavior Modifier, chance float32) *Entry {
	return NewEntry(NewSingle(name, behavior), chance)
}

// NewGroupEntry is NewEntry(group, chance)
func NewGroupEntry(group *Group, chance float32) *Entry {
	return NewEntry(group, chance)
}

// Node returns the gated node
func (e *Entry) Node() Node {
	return e.node
}

// Chance returns the activation percentage
func (e *Entry) Chance() float32 {
	return e.chance
}

// choose rolls the gate with one draw and descends only when the roll is below chance
// 0 never descends, 100 and above always does, NaN never does
func (e *Entry) choose(rng Source) (*Single, bool) {
	roll := float64(rng.Float32()) * 100
	if !(roll < float64(e.chance)) {
		return nil, false
	}
	return e.node.choose(rng)
}
