// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dalzilio/scram"
)

// yamlModel is the YAML description of a model: an optional settings block
// plus one or more fault trees, each with its own event definitions. The
// first gate of each tree is its top gate.
type yamlModel struct {
	Name       string         `yaml:"name"`
	Settings   *yamlSettings  `yaml:"settings"`
	FaultTrees []yamlTree     `yaml:"fault-trees"`
}

type yamlSettings struct {
	Algorithm     string   `yaml:"algorithm"`
	Approximation string   `yaml:"approximation"`
	LimitOrder    int      `yaml:"limit-order"`
	NumSums       int      `yaml:"num-sums"`
	Probability   *bool    `yaml:"probability"`
	CutOff        *float64 `yaml:"cut-off"`
}

type yamlTree struct {
	Name        string       `yaml:"name"`
	BasicEvents []yamlBasic  `yaml:"basic-events"`
	HouseEvents []yamlHouse  `yaml:"house-events"`
	Gates       []yamlGate   `yaml:"gates"`
}

type yamlBasic struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Probability float64 `yaml:"probability"`
}

type yamlHouse struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	State bool   `yaml:"state"`
}

type yamlGate struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Connective string   `yaml:"connective"`
	K          int      `yaml:"k"`
	Children   []string `yaml:"children"`
}

// loadModel reads a YAML model file and builds the validated in-memory
// model, together with the settings of the file merged over the defaults.
func loadModel(path string) (*scram.Model, scram.Settings, error) {
	set := scram.DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, set, err
	}
	var ym yamlModel
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, set, fmt.Errorf("%s: %w", path, err)
	}
	if ym.Settings != nil {
		s := ym.Settings
		if s.Algorithm != "" {
			set.Algorithm = s.Algorithm
		}
		if s.Approximation != "" {
			set.Approximation = s.Approximation
		}
		if s.LimitOrder != 0 {
			set.LimitOrder = s.LimitOrder
		}
		if s.NumSums != 0 {
			set.NumSums = s.NumSums
		}
		if s.Probability != nil {
			set.Probability = *s.Probability
		}
		if s.CutOff != nil {
			set.CutOff = *s.CutOff
		}
	}
	model := scram.NewModel(ym.Name)
	for _, yt := range ym.FaultTrees {
		tree, err := buildTree(yt)
		if err != nil {
			return nil, set, fmt.Errorf("%s: %w", path, err)
		}
		if err := model.AddFaultTree(tree); err != nil {
			return nil, set, fmt.Errorf("%s: %w", path, err)
		}
	}
	return model, set, nil
}

// buildTree resolves the children references of a YAML tree and validates
// the result. Gates may reference gates defined later in the file.
func buildTree(yt yamlTree) (*scram.FaultTree, error) {
	events := make(map[string]scram.Event)
	for _, b := range yt.BasicEvents {
		events[b.ID] = &scram.BasicEvent{ID: b.ID, Name: b.Name, Prob: b.Probability}
	}
	for _, h := range yt.HouseEvents {
		events[h.ID] = &scram.HouseEvent{ID: h.ID, Name: h.Name, State: h.State}
	}
	gates := make([]*scram.Gate, len(yt.Gates))
	for i, g := range yt.Gates {
		conn, err := scram.ParseConnective(g.Connective)
		if err != nil {
			return nil, fmt.Errorf("gate %s: %w", g.ID, err)
		}
		gates[i] = &scram.Gate{ID: g.ID, Name: g.Name, Conn: conn, K: g.K}
		if _, ok := events[g.ID]; ok {
			return nil, fmt.Errorf("gate %s: identifier already used by an event", g.ID)
		}
		events[g.ID] = gates[i]
	}
	for i, g := range yt.Gates {
		for _, ref := range g.Children {
			child, ok := events[ref]
			if !ok {
				return nil, fmt.Errorf("gate %s: unknown child %q", g.ID, ref)
			}
			gates[i].Children = append(gates[i].Children, child)
		}
	}
	tree := scram.NewFaultTree(yt.Name)
	for _, g := range gates {
		if err := tree.AddGate(g); err != nil {
			return nil, err
		}
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}
