// Package prayerset reads prayer sets, ordered lists of prayer keys, from a
// multi-document YAML file and expands their random groups.
//
// A document looks like
//
//	title: Preces Vespertinae
//	order:
//	  - signum_crucis
//	  - marian:
//	      count: 1-2
//	      random: true
//	      chance: 50
//	prayers:
//	  marian: [salve_regina, sub_tuum_praesidium]
//
// A group name without an entry under prayers stands for the prayer of the
// same name.
package prayerset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the prayer-set file inside the prayer directory.
const DefaultFile = ".config.yaml"

// ErrNoPrayerSets is returned when a file defines no titled prayer set.
var ErrNoPrayerSets = errors.New("no prayer sets defined")

// Definition is one prayer set as written in the file.
type Definition struct {
	Title  string              `yaml:"title"`
	Order  []Item              `yaml:"order"`
	Groups map[string][]string `yaml:"prayers"`
}

// Item is one entry of a set's order: either a single prayer or a group.
type Item struct {
	Prayer string
	Group  string
	Rule   Rule
}

// Rule controls how many prayers of a group are said.
type Rule struct {
	// HasCount is false when no count was given; the whole group is then
	// said once. Otherwise MinCount and MaxCount bound the number of
	// prayers, and a count of 0 says none.
	HasCount bool
	MinCount int
	MaxCount int
	// Random picks each prayer at random instead of in order.
	Random bool
	// Chance is the percentage with which the group is said at all.
	Chance int
}

type ruleYAML struct {
	Count  *countYAML `yaml:"count"`
	Random bool       `yaml:"random"`
	Chance *int       `yaml:"chance"`
}

type countYAML struct {
	min, max int
}

// UnmarshalYAML accepts "N" or "a-b".
func (c *countYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: count must be a number or a range", node.Line)
	}
	value := strings.TrimSpace(node.Value)
	if n, err := strconv.Atoi(value); err == nil {
		c.min, c.max = n, n
		return nil
	}

	lo, hi, ok := strings.Cut(value, "-")
	if !ok {
		return fmt.Errorf("line %d: invalid count %q", node.Line, value)
	}
	var err error
	if c.min, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return fmt.Errorf("line %d: invalid count %q: %w", node.Line, value, err)
	}
	if c.max, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
		return fmt.Errorf("line %d: invalid count %q: %w", node.Line, value, err)
	}
	return nil
}

// UnmarshalYAML accepts a plain prayer key or a single-key mapping from a
// group name to its rule.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		it.Prayer = node.Value
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: a group entry must have exactly one name", node.Line)
		}
		it.Group = node.Content[0].Value

		var raw ruleYAML
		if err := node.Content[1].Decode(&raw); err != nil {
			return fmt.Errorf("group %q: %w", it.Group, err)
		}
		it.Rule = Rule{Random: raw.Random, Chance: 100}
		if raw.Count != nil {
			it.Rule.HasCount = true
			it.Rule.MinCount, it.Rule.MaxCount = raw.Count.min, raw.Count.max
		}
		if raw.Chance != nil {
			it.Rule.Chance = *raw.Chance
		}
		return it.Rule.validate(it.Group)
	default:
		return fmt.Errorf("line %d: order entries must be prayer names or groups", node.Line)
	}
}

func (r Rule) validate(group string) error {
	if r.MinCount < 0 || r.MaxCount < r.MinCount {
		return fmt.Errorf("group %q: invalid count range %d-%d", group, r.MinCount, r.MaxCount)
	}
	if r.Chance < 0 || r.Chance > 100 {
		return fmt.Errorf("group %q: chance %d outside 0..100", group, r.Chance)
	}
	return nil
}

// Parse reads every document of a prayer-set file. Documents without a
// title are skipped.
func Parse(data []byte) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var defs []Definition
	for {
		var def Definition
		err := dec.Decode(&def)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing prayer sets: %w", err)
		}
		if def.Title == "" {
			continue
		}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, ErrNoPrayerSets
	}
	return defs, nil
}

// Load reads and parses the prayer-set file name from fsys.
func Load(fsys fs.FS, name string) ([]Definition, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading prayer sets: %w", err)
	}
	return Parse(data)
}

// Titles returns the titles of defs in file order.
func Titles(defs []Definition) []string {
	titles := make([]string, len(defs))
	for i, d := range defs {
		titles[i] = d.Title
	}
	return titles
}
