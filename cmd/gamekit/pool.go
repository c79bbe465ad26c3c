package main

import (
	"fmt"

	"github.com/lixenwraith/gamekit/modifier"
	"github.com/lixenwraith/gamekit/seed"
)

type weighted struct {
	name   string
	weight int
}

// group builds a group of catalog leaves, rejecting unknown names and invalid weights
func group(name string, children ...weighted) (*modifier.Group, error) {
	g := modifier.NewGroup(name)
	for _, c := range children {
		leaf, err := modifier.FromCatalog(c.name)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		if err := g.Add(leaf, c.weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// buildPool assembles the modifier pool for a run
func buildPool(s seed.Seed) (*modifier.Modifiers, error) {
	gravity, err := group("gravity", weighted{"low_gravity", 3}, weighted{"high_gravity", 1})
	if err != nil {
		return nil, err
	}
	speed, err := group("speed", weighted{"fast", 1}, weighted{"slow", 1})
	if err != nil {
		return nil, err
	}
	weather, err := group("weather", weighted{"rain", 2}, weighted{"snow", 1})
	if err != nil {
		return nil, err
	}
	// Movement picks either a gravity or a speed change
	movement := modifier.NewGroup("movement").
		WithGroup(gravity, 2).
		WithGroup(speed, 1)

	mirror, err := modifier.FromCatalog("mirror")
	if err != nil {
		return nil, err
	}
	trail, err := modifier.FromCatalog("trail")
	if err != nil {
		return nil, err
	}

	return modifier.New(s).
		WithEntry(modifier.NewGroupEntry(movement, 70)).
		WithEntry(modifier.NewGroupEntry(weather, 40)).
		WithEntry(modifier.NewEntry(mirror, 15)).
		WithEntry(modifier.NewEntry(trail, 50)), nil
}
