package cleaning

// Base pricing: flat minimum against a per-pyeong rate, whichever is higher.
const (
	PerPyeongRate int64 = 12000
	MinimumPrice  int64 = 140000
)

// Site condition multipliers applied to the base, in order: occupancy type
// first, soil level second, each rounded before the next.
var (
	SoilMultiplier = map[SoilLevel]float64{
		SoilLight:  1.0,
		SoilNormal: 1.1,
		SoilHeavy:  1.2,
	}
	TypeMultiplier = map[CleanType]float64{
		CleanMoveIn:   1.0,
		CleanMoveOut:  1.0,
		CleanOccupied: 1.15,
	}
)

// Structural surcharges tuned by operations.
const (
	BathExtraEach       int64 = 20000 // per bathroom beyond the first
	ParkingHardExtra    int64 = 20000
	NoElevatorPerFloor  int64 = 5000 // per floor above ground
	BalconyThreshold          = 3
	BalconyExtra        int64 = 50000
	WardrobeThreshold         = 2
	WardrobeExtra       int64 = 50000
	OuterWindowPerPy    int64 = 8000
	PhytoncidePerPyeong int64 = 5000
	DisinfectFlatFee    int64 = 80000
	TrashBagFee         int64 = 5000
)

// PhytoncideKey is the basic-option key that overrides the per-pyeong
// phytoncide auto-application when the customer sets an explicit quantity.
const PhytoncideKey = "피톤치드(평)"

// Option is a priced add-on catalog entry.
type Option struct {
	Label string
	Price int64
}

// BasicOptionTable lists the spot-treatment add-ons.
var BasicOptionTable = map[string]Option{
	"곰팡이제거":  {Label: "곰팡이 제거(부위)", Price: 40000},
	"스티커제거":  {Label: "스티커/뽁뽁이 제거(부위)", Price: 40000},
	"페인트잔여":  {Label: "페인트/실리콘 잔여물(부위)", Price: 50000},
	"니코틴케어":  {Label: "니코틴/찌든때 케어", Price: 50000},
	"반려동물케어": {Label: "반려동물 털/냄새 케어", Price: 40000},
	PhytoncideKey: {Label: "피톤치드/탈취(평)", Price: 5000},
}

// ApplianceOptionTable lists the appliance and fabric deep-clean add-ons.
var ApplianceOptionTable = map[string]Option{
	"에어컨(벽걸이)":   {Label: "에어컨(벽걸이) 분해청소", Price: 70000},
	"에어컨(스탠드)":   {Label: "에어컨(스탠드) 분해청소", Price: 140000},
	"에어컨(천장1way)": {Label: "에어컨(천장 1way) 분해청소", Price: 90000},
	"에어컨(천장4way)": {Label: "에어컨(천장 4way) 분해청소", Price: 140000},
	"세탁기청소":      {Label: "세탁기 분해청소", Price: 85000},
	"건조기청소":      {Label: "건조기 청소", Price: 100000},
	"냉장고청소":      {Label: "냉장고 청소(내부 분해)", Price: 120000},
	"후드청소":       {Label: "주방 후드 청소", Price: 263000},
	"매트리스청소":     {Label: "매트리스 청소", Price: 80000},
	"소파청소":       {Label: "소파 청소", Price: 90000},
	"비데청소":       {Label: "비데 청소/살균", Price: 60000},
}
