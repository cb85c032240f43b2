package pricing

import "math"

// Breakdown stage names, in computation order.
const (
	StageCoreFare    = "core_fare"
	StageStairs      = "stairs"
	StageItems       = "items"
	StageLoad        = "load"
	StageWork        = "work_subtotal"
	StageOptions     = "options"
	StageService     = "service_subtotal"
	StageHalfPremium = "half_packing_premium"
	StageDisplay     = "display_adjusted"
	StageOperator    = "operator_adjusted"
	StageStorage     = "storage"
	StageLadder      = "ladder"
	StageTotal       = "total"
)

// Line is one labeled stage subtotal of a quote breakdown.
type Line struct {
	Stage  string `json:"stage"`
	Amount int64  `json:"amount"`
}

// Quote is the result of one price computation. When the request is missing a
// vehicle class the quote is Incomplete and carries no price; Compute never
// returns an error.
type Quote struct {
	Incomplete bool   `json:"incomplete"`
	Total      int64  `json:"total"`
	Breakdown  []Line `json:"breakdown,omitempty"`
}

// Compute prices a move request. It is pure: the same request and config
// always produce the same quote, and the request is never mutated.
//
// Stage order is fixed. Each stage rounds to the nearest currency unit before
// feeding the next. The half-packing premium covers the service subtotal
// (core fare + work + options); the storage per-diem and the ladder fee are
// added after every multiplier, deliberately outside the premium. Product has
// been flagged on that ordering and confirmed it stands.
func Compute(req QuoteRequest, cfg Config) Quote {
	cfg = cfg.normalized()

	fare, ok := VehicleFareTable[req.VehicleClass]
	if !ok {
		return Quote{Incomplete: true}
	}

	effective := req.EffectiveMoveType()

	coreFare := roundMoney(float64(fare.BaseFare) + clampKm(req.DistanceKm)*float64(fare.PerKm))

	stairs := stairCost(req.OriginStairs) + stairCost(req.DestStairs)

	merged := mergeQuantityMaps(req.ItemQuantities, req.DisposalFrom, req.DisposalTo)
	items := itemCost(merged, cfg)

	load := loadCost(req.LoadBand, effective)

	work := stairs + items + load
	options := optionCost(&req)

	service := coreFare + work + options

	premiumed := service
	if effective == MoveHalfPacking {
		premiumed = roundMoney(float64(service) * cfg.HalfPackingPremium)
	}

	displayed := roundMoney(float64(premiumed) * cfg.DisplayMultiplier)
	operated := roundMoney(float64(displayed) * cfg.OperatorMultiplier)

	storage := storageCost(&req)
	ladder := ladderCost(&req)

	total := operated + storage + ladder
	if total < 0 {
		total = 0
	}

	return Quote{
		Total: total,
		Breakdown: []Line{
			{Stage: StageCoreFare, Amount: coreFare},
			{Stage: StageStairs, Amount: stairs},
			{Stage: StageItems, Amount: items},
			{Stage: StageLoad, Amount: load},
			{Stage: StageWork, Amount: work},
			{Stage: StageOptions, Amount: options},
			{Stage: StageService, Amount: service},
			{Stage: StageHalfPremium, Amount: premiumed},
			{Stage: StageDisplay, Amount: displayed},
			{Stage: StageOperator, Amount: operated},
			{Stage: StageStorage, Amount: storage},
			{Stage: StageLadder, Amount: ladder},
			{Stage: StageTotal, Amount: total},
		},
	}
}

// stairCost converts flights climbed (floor - 1) into tiered cost. The first
// flight, the next two, and everything above are priced at separate rates.
// Only sides without an elevator pay it.
func stairCost(s StairInfo) int64 {
	if !s.NoElevator {
		return 0
	}
	flights := clampFloor(s.Floor) - 1
	if flights <= 0 {
		return 0
	}
	tier1 := minInt(flights, 1)
	tier2 := minInt(maxInt(flights-1, 0), 2)
	tier3 := maxInt(flights-3, 0)
	return int64(tier1)*StairTier1Rate + int64(tier2)*StairTier2Rate + int64(tier3)*StairTier3Rate
}

// itemCost prices the merged transport+disposal quantity map. Unknown keys are
// skipped entirely: priced at zero and excluded from the compounding count.
func itemCost(merged map[string]int, cfg Config) int64 {
	var raw int64
	n := 0
	for key, qty := range merged {
		item, ok := FurniturePriceTable[key]
		if !ok || qty <= 0 {
			continue
		}
		unit := roundMoney(float64(item.UnitPrice) * cfg.ItemPriceMultiplier * RiskMultiplier(key))
		raw += unit * int64(qty)
		n += qty
	}
	if n == 0 {
		return 0
	}
	growth := math.Pow(1+cfg.ItemGrowthRate, float64(n-1))
	return roundMoney(float64(raw) * growth)
}

// loadCost resolves the selected box-count band against the move type variant.
func loadCost(band LoadBand, effective MoveType) int64 {
	if band == LoadBandNone {
		return 0
	}
	entry, ok := LoadBandTable(effective)[band]
	if !ok {
		return 0
	}
	return roundMoney(float64(entry.BasePrice) * LoadBandMultiplier[band])
}

// optionCost sums the flat surcharges. None of these participate in the
// half-packing premium or display multipliers.
func optionCost(req *QuoteRequest) int64 {
	var cost int64

	cost += int64(clampQty(req.RidePassengers)) * RideUnitFee

	if req.OriginLabor.CannotCarryAlone {
		cost += CannotCarryFee
	}
	if req.DestLabor.CannotCarryAlone {
		cost += CannotCarryFee
	}
	if req.OriginLabor.HelperRequested {
		cost += HelperFee
	}
	if req.DestLabor.HelperRequested {
		cost += HelperFee
	}

	cost += cleaningCost(req.Cleaning)

	return cost
}

// storageCost charges the per-diem for storage moves. Days clamp to at least
// one. Like the ladder fee it bypasses every multiplier.
func storageCost(req *QuoteRequest) int64 {
	if req.MoveType != MoveStorage {
		return 0
	}
	days := req.StorageDays
	if days < 1 {
		days = 1
	}
	return int64(days) * StoragePerDayFee
}

// cleaningCost applies the flat per-side fee for the move cleaning add-on.
func cleaningCost(c CleaningAddOn) int64 {
	if !c.Enabled {
		return 0
	}
	unit, ok := MoveCleaningFee[c.Intensity]
	if !ok {
		unit = MoveCleaningFee[CleaningLight]
	}
	sides := int64(0)
	if c.Origin {
		sides++
	}
	if c.Dest {
		sides++
	}
	return unit * sides
}

// ladderCost sums the per-side ladder truck flat fees, each looked up by that
// side's declared floor.
func ladderCost(req *QuoteRequest) int64 {
	var cost int64
	if req.OriginLadder.Enabled {
		cost += LadderFeeByFloor(req.OriginLadder.Floor)
	}
	if req.DestLadder.Enabled {
		cost += LadderFeeByFloor(req.DestLadder.Floor)
	}
	return cost
}

func roundMoney(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
