package game

import "github.com/google/uuid"

type BuildingType string

const (
	BuildingTownCenter BuildingType = "town_center"
	BuildingBarracks   BuildingType = "barracks"
	BuildingFarm       BuildingType = "farm"
	BuildingMine       BuildingType = "mine"
	BuildingLumberMill BuildingType = "lumber_mill"
	BuildingTower      BuildingType = "tower"
	BuildingWall       BuildingType = "wall"
	BuildingWorkshop   BuildingType = "workshop"
)

// Building is a stationary entity. Production and resource generation only
// run once construction is complete.
type Building struct {
	ID      string       `json:"building_id"`
	Name    string       `json:"name"`
	Type    BuildingType `json:"type"`
	OwnerID string       `json:"owner_id"`

	X int `json:"x"`
	Y int `json:"y"`

	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`

	ConstructionComplete bool `json:"construction_complete"`

	ProducesClasses    []string       `json:"produces_classes,omitempty"`
	ResourceGeneration map[string]int `json:"resource_generation,omitempty"`
	Abilities          []string       `json:"abilities,omitempty"`
	CreationCost       map[string]int `json:"creation_cost,omitempty"`
}

func NewBuilding(name string, typ BuildingType, ownerID string, x, y int, design BuildingDesign) *Building {
	return &Building{
		ID:                   uuid.NewString(),
		Name:                 name,
		Type:                 typ,
		OwnerID:              ownerID,
		X:                    x,
		Y:                    y,
		Health:               design.Health,
		MaxHealth:            design.Health,
		ConstructionComplete: true,
		ProducesClasses:      append([]string(nil), design.ProducesClasses...),
		ResourceGeneration:   copyCost(design.ResourceGeneration),
		Abilities:            append([]string(nil), design.Abilities...),
		CreationCost:         copyCost(design.CreationCost),
	}
}

func (b *Building) Destroyed() bool {
	return b.Health <= 0
}

func (b *Building) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
}

func (b *Building) HasAbility(id string) bool {
	for _, a := range b.Abilities {
		if a == id {
			return true
		}
	}
	return false
}

func (b *Building) CanProduceClass(class string) bool {
	for _, c := range b.ProducesClasses {
		if c == class {
			return true
		}
	}
	return false
}

func copyCost(cost map[string]int) map[string]int {
	if cost == nil {
		return nil
	}
	out := make(map[string]int, len(cost))
	for k, v := range cost {
		out[k] = v
	}
	return out
}
