package game

// ProductionReport describes the outcome of one create_unit request.
// Refund is what came back for units that could not be placed.
type ProductionReport struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`

	Requested int      `json:"requested"`
	Created   int      `json:"created"`
	UnitIDs   []string `json:"unit_ids,omitempty"`

	TotalCost map[string]int `json:"total_cost,omitempty"`
	Refund    map[string]int `json:"refund,omitempty"`
}

// ProduceUnits spawns quantity units of a named design from a production
// building. The full cost is charged up front; units spawn on free tiles
// around the building in a fixed scan order, and the exact per-unit cost of
// every unit that found no tile (or hit the faction cap) is refunded.
func (s *State) ProduceUnits(f *Faction, b *Building, designName string, quantity int) ProductionReport {
	if quantity <= 0 {
		return ProductionReport{Reason: "quantity must be positive", Requested: quantity}
	}
	if b.Destroyed() {
		return ProductionReport{Reason: "building is destroyed", Requested: quantity}
	}
	if !b.ConstructionComplete {
		return ProductionReport{Reason: "building construction is not complete", Requested: quantity}
	}
	design, ok := f.UnitDesigns[designName]
	if !ok {
		return ProductionReport{Reason: "unknown unit design: " + designName, Requested: quantity}
	}
	if !b.CanProduceClass(string(design.Class)) {
		return ProductionReport{Reason: "building cannot produce class " + string(design.Class), Requested: quantity}
	}

	perUnit := ScaleCost(design.CreationCost, s.Balance.UnitCostMultiplier)
	total := MultiplyCost(perUnit, quantity)
	if !f.SpendResources(total) {
		return ProductionReport{Reason: "insufficient resources", Requested: quantity, TotalCost: total}
	}

	report := ProductionReport{Success: true, Requested: quantity, TotalCost: total}
	for i := 0; i < quantity; i++ {
		tile, ok := s.FreeTileAdjacent(b.X, b.Y)
		if !ok {
			break
		}
		u := NewUnit(design.Name, design.Class, f.AgentID, tile.X, tile.Y, design.Stats, design.Abilities)
		u.CreationCost = copyCost(perUnit)
		if !f.AddUnit(u) {
			break
		}
		tile.PlaceUnit(u.ID)
		report.Created++
		report.UnitIDs = append(report.UnitIDs, u.ID)
	}

	if unplaced := quantity - report.Created; unplaced > 0 {
		refund := MultiplyCost(perUnit, unplaced)
		f.Refund(refund)
		report.Refund = refund
	}
	if report.Created > 0 {
		s.LogEvent("units_created", map[string]any{
			"agent_id": f.AgentID,
			"design":   design.Name,
			"count":    report.Created,
		})
	}
	return report
}
