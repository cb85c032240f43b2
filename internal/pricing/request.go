package pricing

import "math"

// VehicleClass selects the base fare and per-km rate.
type VehicleClass string

const (
	VehicleTruck VehicleClass = "truck"
	VehicleVan   VehicleClass = "van"
	VehicleLorry VehicleClass = "lorry"
)

// MoveType distinguishes who packs and whether goods are held in storage.
type MoveType string

const (
	MoveGeneral     MoveType = "general"
	MoveHalfPacking MoveType = "half"
	MoveStorage     MoveType = "storage"
)

// LoadBand is a coarse box-count bucket, independent of itemized furniture.
// Zero means not selected.
type LoadBand int

const (
	LoadBandNone LoadBand = 0
	LoadBand1    LoadBand = 1
	LoadBand2    LoadBand = 2
	LoadBand3    LoadBand = 3
	LoadBand4    LoadBand = 4
)

// CleaningIntensity selects the per-side move cleaning fee.
type CleaningIntensity string

const (
	CleaningLight CleaningIntensity = "light"
	CleaningDeep  CleaningIntensity = "deep"
)

// StairInfo describes elevator access on one side of the move.
type StairInfo struct {
	NoElevator bool `json:"no_elevator"`
	Floor      int  `json:"floor"`
}

// LadderInfo describes a ladder truck request on one side. It is independent
// of StairInfo: a customer may want a ladder truck with a working elevator.
type LadderInfo struct {
	Enabled bool `json:"enabled"`
	Floor   int  `json:"floor"`
}

// LaborInfo carries the per-side labor surcharges.
type LaborInfo struct {
	CannotCarryAlone bool `json:"cannot_carry_alone"`
	HelperRequested  bool `json:"helper_requested"`
}

// CleaningAddOn is the optional move-out cleaning rider.
type CleaningAddOn struct {
	Enabled   bool              `json:"enabled"`
	Origin    bool              `json:"origin"`
	Dest      bool              `json:"destination"`
	Intensity CleaningIntensity `json:"intensity"`
}

// QuoteRequest is the immutable input of one price computation. The UI builds
// a fresh value on every input change; the engine never mutates it.
type QuoteRequest struct {
	VehicleClass VehicleClass `json:"vehicle_class"`
	DistanceKm   float64      `json:"distance_km"`

	MoveType    MoveType `json:"move_type"`
	StorageBase MoveType `json:"storage_base,omitempty"`
	StorageDays int      `json:"storage_days,omitempty"`

	HasWaypoint bool `json:"has_waypoint"`

	OriginStairs StairInfo `json:"origin_stairs"`
	DestStairs   StairInfo `json:"dest_stairs"`

	OriginLadder LadderInfo `json:"origin_ladder"`
	DestLadder   LadderInfo `json:"dest_ladder"`

	OriginLabor LaborInfo `json:"origin_labor"`
	DestLabor   LaborInfo `json:"dest_labor"`

	RidePassengers int      `json:"ride_passengers"`
	LoadBand       LoadBand `json:"load_band"`

	ItemQuantities map[string]int `json:"item_quantities,omitempty"`
	DisposalFrom   map[string]int `json:"disposal_from,omitempty"`
	DisposalTo     map[string]int `json:"disposal_to,omitempty"`

	// Night is display-only; it contributes nothing to the price.
	Night bool `json:"night"`

	Cleaning CleaningAddOn `json:"cleaning"`
}

// EffectiveMoveType resolves storage moves to their nested base type.
func (r *QuoteRequest) EffectiveMoveType() MoveType {
	if r.MoveType == MoveStorage {
		if r.StorageBase == MoveHalfPacking {
			return MoveHalfPacking
		}
		return MoveGeneral
	}
	if r.MoveType == MoveHalfPacking {
		return MoveHalfPacking
	}
	return MoveGeneral
}

// clampFloor forces a floor to at least 1.
func clampFloor(f int) int {
	if f < 1 {
		return 1
	}
	return f
}

// clampQty forces a quantity to at least 0.
func clampQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

// clampKm guards against negative and non-finite distances.
func clampKm(km float64) float64 {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0
	}
	return km
}

// mergeQuantityMaps sums quantities key-wise across maps, clamping each
// contribution to non-negative.
func mergeQuantityMaps(maps ...map[string]int) map[string]int {
	out := make(map[string]int)
	for _, m := range maps {
		for k, q := range m {
			out[k] += clampQty(q)
		}
	}
	return out
}
