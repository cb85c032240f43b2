package cleaning

import "math"

// CleanType is the occupancy situation of the unit being cleaned.
type CleanType string

const (
	CleanMoveIn   CleanType = "movein"
	CleanMoveOut  CleanType = "moveout"
	CleanOccupied CleanType = "occupied"
)

// SoilLevel grades how dirty the unit is.
type SoilLevel string

const (
	SoilLight  SoilLevel = "light"
	SoilNormal SoilLevel = "normal"
	SoilHeavy  SoilLevel = "heavy"
)

// QuoteRequest is the immutable input of one cleaning price computation.
type QuoteRequest struct {
	Pyeong    int       `json:"pyeong"`
	CleanType CleanType `json:"clean_type"`
	SoilLevel SoilLevel `json:"soil_level"`

	Bathrooms int `json:"bathrooms"`
	Balconies int `json:"balconies"`
	Wardrobes int `json:"wardrobes"`

	ParkingHard bool `json:"parking_hard"`
	NoElevator  bool `json:"no_elevator"`
	Floor       int  `json:"floor"`

	OuterWindowEnabled bool `json:"outer_window_enabled"`
	OuterWindowPyeong  int  `json:"outer_window_pyeong"`

	PhytoncideEnabled bool `json:"phytoncide_enabled"`
	DisinfectEnabled  bool `json:"disinfect_enabled"`
	TrashBags         int  `json:"trash_bags"`

	BasicOptions     map[string]int `json:"basic_options,omitempty"`
	ApplianceOptions map[string]int `json:"appliance_options,omitempty"`
}

// Quote is the result of a cleaning computation.
type Quote struct {
	Base     int64 `json:"base"`
	Extras   int64 `json:"extras"`
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}

// Config carries the cleaning multiplier levers.
type Config struct {
	OperatorMultiplier float64
	DisplayMultiplier  float64
}

// DefaultConfig returns the production cleaning levers.
func DefaultConfig() Config {
	return Config{OperatorMultiplier: 1.0, DisplayMultiplier: 0.95}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.OperatorMultiplier <= 0 {
		c.OperatorMultiplier = def.OperatorMultiplier
	}
	if c.DisplayMultiplier <= 0 {
		c.DisplayMultiplier = def.DisplayMultiplier
	}
	return c
}

// Compute prices a cleaning request. The base is the larger of the flat
// minimum and the per-pyeong rate, scaled by the occupancy then soil
// multipliers with rounding after each; structural and option surcharges are
// flat on top, then the operator and display multipliers close out the chain.
func Compute(req QuoteRequest, cfg Config) Quote {
	cfg = cfg.normalized()

	pyeong := req.Pyeong
	if pyeong < 1 {
		pyeong = 1
	}

	base := int64(pyeong) * PerPyeongRate
	if base < MinimumPrice {
		base = MinimumPrice
	}

	base = roundMoney(float64(base) * multiplier(TypeMultiplier, req.CleanType))
	base = roundMoney(float64(base) * multiplier(SoilMultiplier, req.SoilLevel))

	extras := structuralExtras(&req, pyeong)
	extras += optionExtras(req.BasicOptions, BasicOptionTable)
	extras += optionExtras(req.ApplianceOptions, ApplianceOptionTable)

	subtotal := roundMoney(float64(base+extras) * cfg.OperatorMultiplier)
	total := roundMoney(float64(subtotal) * cfg.DisplayMultiplier)

	return Quote{Base: base, Extras: extras, Subtotal: subtotal, Total: total}
}

func structuralExtras(req *QuoteRequest, pyeong int) int64 {
	var extra int64

	baths := req.Bathrooms
	if baths < 1 {
		baths = 1
	}
	if baths > 1 {
		extra += int64(baths-1) * BathExtraEach
	}

	if req.Balconies >= BalconyThreshold {
		extra += BalconyExtra
	}
	if req.Wardrobes >= WardrobeThreshold {
		extra += WardrobeExtra
	}
	if req.ParkingHard {
		extra += ParkingHardExtra
	}

	if req.NoElevator {
		floor := req.Floor
		if floor < 1 {
			floor = 1
		}
		extra += int64(floor-1) * NoElevatorPerFloor
	}

	if req.OuterWindowEnabled && req.OuterWindowPyeong > 0 {
		extra += int64(req.OuterWindowPyeong) * OuterWindowPerPy
	}

	// Phytoncide auto-applies by pyeong unless an explicit quantity was
	// chosen in the options modal.
	if req.PhytoncideEnabled && req.BasicOptions[PhytoncideKey] <= 0 {
		extra += int64(pyeong) * PhytoncidePerPyeong
	}

	if req.DisinfectEnabled {
		extra += DisinfectFlatFee
	}
	if req.TrashBags > 0 {
		extra += int64(req.TrashBags) * TrashBagFee
	}

	return extra
}

func optionExtras(quantities map[string]int, table map[string]Option) int64 {
	var extra int64
	for key, qty := range quantities {
		opt, ok := table[key]
		if !ok || qty <= 0 {
			continue
		}
		extra += opt.Price * int64(qty)
	}
	return extra
}

func multiplier[K comparable](table map[K]float64, key K) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1.0
}

func roundMoney(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v))
}
