package combat

import (
	"fmt"
	"strings"
)

// ElementType is the element of a skill, matched against enemy resistances.
type ElementType int

const (
	Physical ElementType = iota
	Fire
	Ice
	Lightning
	Poison
	Light
	Dark
)

var elementNames = map[ElementType]string{
	Physical:  "physical",
	Fire:      "fire",
	Ice:       "ice",
	Lightning: "lightning",
	Poison:    "poison",
	Light:     "light",
	Dark:      "dark",
}

func (e ElementType) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ElementType(%d)", int(e))
}

// ParseElementType maps a catalog name to an ElementType.
func ParseElementType(name string) (ElementType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range elementNames {
		if n == name {
			return e, nil
		}
	}
	return Physical, fmt.Errorf("unknown element %q", name)
}
