// internal/defs/types.go
package defs

import (
	"gopkg.in/yaml.v3"
)

// Stats are the values shared by party members and enemies.
type Stats struct {
	Name        string   `yaml:"name"`
	Class       string   `yaml:"class"`
	Type        string   `yaml:"type"`
	Life        int      `yaml:"life"`
	Energy      int      `yaml:"energy"`
	Power       float64  `yaml:"power"`
	Dodge       float64  `yaml:"dodge"`
	Critical    float64  `yaml:"critical"`
	CritBonus   float64  `yaml:"critical_bonus"`
	Specialties []string `yaml:"specialties"`
}

// CharacterDefinition is a party member.
type CharacterDefinition struct {
	Stats `yaml:",inline"`

	Row    int      `yaml:"row"`
	Level  int      `yaml:"level"`
	Mana   bool     `yaml:"mana"`
	Skills []string `yaml:"skills"`
}

// StrategyDefinition is a node of an enemy strategy tree. Exactly one of
// Skill, Say or the composite lists is set. Say is a line the enemy speaks
// instead of acting. Weight and When are read by the
// parent weighted or conditional node.
type StrategyDefinition struct {
	Skill       string               `yaml:"skill"`
	Say         string               `yaml:"say"`
	Priority    []StrategyDefinition `yaml:"priority"`
	Sequential  []StrategyDefinition `yaml:"sequential"`
	Weighted    []StrategyDefinition `yaml:"weighted"`
	Conditional []StrategyDefinition `yaml:"conditional"`
	Weight      float64              `yaml:"weight"`
	When        string               `yaml:"when"`
}

// UnmarshalYAML accepts a bare skill key as a leaf.
func (s *StrategyDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = StrategyDefinition{Skill: value.Value}
		return nil
	}
	type plain StrategyDefinition
	return value.Decode((*plain)(s))
}

// EnemyDefinition holds all the static data for a kind of enemy.
type EnemyDefinition struct {
	Stats `yaml:",inline"`

	Size        int                `yaml:"size"`
	Actions     int                `yaml:"actions"`
	Resistances map[string]float64 `yaml:"resistances"`
	Passives    []string           `yaml:"passives"`
	Strategy    StrategyDefinition `yaml:"strategy"`
}

// SlotDefinition places one enemy in an encounter row.
type SlotDefinition struct {
	Enemy    string `yaml:"enemy"`
	Champion bool   `yaml:"champion"`
}

// UnmarshalYAML accepts a bare enemy key for a regular enemy.
func (s *SlotDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = SlotDefinition{Enemy: value.Value}
		return nil
	}
	type plain SlotDefinition
	return value.Decode((*plain)(s))
}

// EncounterDefinition lists the rows of one fight, front first.
type EncounterDefinition struct {
	Rows [][]SlotDefinition `yaml:"rows"`
}

// DungeonDefinition is a scripted sequence of encounters.
type DungeonDefinition struct {
	Name       string                `yaml:"name"`
	Encounters []EncounterDefinition `yaml:"encounters"`
}

// Catalog is the whole game data.
type Catalog struct {
	Party    []CharacterDefinition      `yaml:"party"`
	Enemies  map[string]EnemyDefinition `yaml:"enemies"`
	Dungeons []DungeonDefinition        `yaml:"dungeons"`
}
