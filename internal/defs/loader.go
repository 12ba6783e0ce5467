// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"draconis/internal/combat"
	"draconis/internal/config"
)

var (
	ErrUnknownEnemy   = errors.New("unknown enemy")
	ErrUnknownDungeon = errors.New("unknown dungeon")
	ErrUnknownFight   = errors.New("unknown fight")
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Load parses the catalog shipped with the game.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log.Printf("defs: loaded %d party members, %d enemies, %d dungeons", len(c.Party), len(c.Enemies), len(c.Dungeons))
	return &c, nil
}

// Validate checks every reference of the catalog by building each party
// member and each enemy once.
func (c *Catalog) Validate() error {
	if len(c.Party) == 0 {
		return errors.New("catalog has no party")
	}
	for i, def := range c.Party {
		if def.Row < 0 || def.Row >= config.PartyRows {
			return fmt.Errorf("party member %q: %w: %d", def.Name, combat.ErrInvalidRow, def.Row)
		}
		if _, err := buildCharacter(def, 1); err != nil {
			return fmt.Errorf("party member %d: %w", i, err)
		}
	}
	for key := range c.Enemies {
		if _, err := c.BuildEnemy(key, false, 1, 1); err != nil {
			return err
		}
	}
	for i, d := range c.Dungeons {
		if len(d.Encounters) == 0 {
			return fmt.Errorf("dungeon %q has no encounter", d.Name)
		}
		for j, enc := range d.Encounters {
			if len(enc.Rows) > config.OppositionRows {
				return fmt.Errorf("dungeon %d fight %d: %w: %d rows", i, j, combat.ErrInvalidRow, len(enc.Rows))
			}
			for _, row := range enc.Rows {
				for _, slot := range row {
					if _, ok := c.Enemies[slot.Enemy]; !ok {
						return fmt.Errorf("dungeon %d fight %d: %w: %q", i, j, ErrUnknownEnemy, slot.Enemy)
					}
				}
			}
		}
	}
	return nil
}
