// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package scram

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var gateColors = map[Connective]string{
	Or:      "blue",
	And:     "green",
	Not:     "red",
	Xor:     "brown",
	Inhibit: "yellow",
	AtLeast: "cyan",
	Null:    "gray",
	Nor:     "magenta",
	Nand:    "orange",
}

// Graphing writes a GraphViz DOT rendering of the fault tree: one digraph
// whose gate nodes are labelled with their connective (and the k/m ratio for
// AtLeast gates) and whose repeated primary events are split into numbered
// replica nodes, one per occurrence, to visualize repetition. The rendering
// is orthogonal to analysis and never fails on trees the analyzer accepts.
func Graphing(w io.Writer, t *FaultTree) error {
	x, err := assignIndices(t, false)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(w)
	name := strings.ToUpper(strings.Map(dotIdent, t.Name))
	if name == "" {
		name = "FAULTTREE"
	}
	fmt.Fprintf(buf, "digraph %s {\n", name)

	// Edges first, counting the repetitions of every primary event. The
	// n-th occurrence of a primary event points to its replica node id_Rn.
	repeat := make(map[string]int)
	var order []string
	for _, g := range x.gates {
		for _, c := range g.Children {
			switch c := c.(type) {
			case *Gate:
				fmt.Fprintf(buf, "\"%s\" -> \"%s\";\n", g.ID, c.ID)
			default:
				id := c.EventID()
				if _, ok := repeat[id]; !ok {
					order = append(order, id)
					repeat[id] = 0
				} else {
					repeat[id]++
				}
				fmt.Fprintf(buf, "\"%s\" -> \"%s_R%d\";\n", g.ID, id, repeat[id])
			}
		}
	}

	// Gate nodes: the top gate is an ellipse, the others are boxes.
	for i, g := range x.gates {
		shape := "box"
		fontsize := 11
		if i == 0 {
			shape = "ellipse"
			fontsize = 12
		}
		label := strings.ToUpper(g.Conn.String())
		if g.Conn == AtLeast {
			label = fmt.Sprintf("%s %d/%d", label, g.K, len(g.Children))
		}
		fmt.Fprintf(buf, "\"%s\" [shape=%s, fontsize=%d, fontcolor=black, color=%s, label=\"%s\\n{ %s }\"]\n",
			g.ID, shape, fontsize, gateColors[g.Conn], display(g.ID, g.Name), label)
	}

	// Replica nodes of the primary events, in first-occurrence order.
	for _, id := range order {
		ev := findPrimary(x, id)
		for i := 0; i <= repeat[id]; i++ {
			switch ev := ev.(type) {
			case *BasicEvent:
				fmt.Fprintf(buf, "\"%s_R%d\" [shape=circle, height=1, fontsize=10, fixedsize=true, fontcolor=black, label=\"%s\\n[basic]\\n%g\"]\n",
					id, i, display(ev.ID, ev.Name), ev.Prob)
			case *HouseEvent:
				fmt.Fprintf(buf, "\"%s_R%d\" [shape=circle, height=1, fontsize=10, fixedsize=true, fontcolor=green, label=\"%s\\n[house]\\n%t\"]\n",
					id, i, display(ev.ID, ev.Name), ev.State)
			}
		}
	}

	fmt.Fprintln(buf, "}")
	if err := buf.Flush(); err != nil {
		return &IOError{Op: "graphing", Err: err}
	}
	return nil
}

// findPrimary retrieves the basic or house event with the given identifier
// by scanning the children of the indexed gates.
func findPrimary(x *indexes, id string) Event {
	for _, g := range x.gates {
		for _, c := range g.Children {
			if _, ok := c.(*Gate); ok {
				continue
			}
			if c.EventID() == id {
				return c
			}
		}
	}
	return nil
}

// dotIdent maps tree names to characters acceptable in a DOT graph
// identifier.
func dotIdent(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return r
	}
	return '_'
}
