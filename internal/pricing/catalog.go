package pricing

// VehicleFare pairs the flat departure fare with the per-kilometer rate.
type VehicleFare struct {
	BaseFare int64
	PerKm    int64
}

// VehicleFareTable maps a vehicle class to its fare parameters.
var VehicleFareTable = map[VehicleClass]VehicleFare{
	VehicleTruck: {BaseFare: 50000, PerKm: 1550},
	VehicleVan:   {BaseFare: 50000, PerKm: 1550},
	VehicleLorry: {BaseFare: 90000, PerKm: 1550},
}

// Item is a priced furniture or appliance catalog entry.
type Item struct {
	Label     string
	UnitPrice int64
}

// FurniturePriceTable is the shared item-key space for transport and disposal
// quantities. Keys not present here are ignored by the engine.
var FurniturePriceTable = map[string]Item{
	// appliances
	"전자레인지":  {Label: "전자레인지", UnitPrice: 1500},
	"공기청정기":  {Label: "공기청정기", UnitPrice: 3500},
	"청소기":    {Label: "청소기", UnitPrice: 2500},
	"TV(55이하)": {Label: "TV(55인치 이하)", UnitPrice: 20000},
	"TV(65이상)": {Label: "TV(65인치 이상)", UnitPrice: 40000},
	"모니터":    {Label: "모니터", UnitPrice: 9000},
	"데스크탑":   {Label: "데스크탑 본체", UnitPrice: 4000},
	"프린터":    {Label: "프린터/복합기", UnitPrice: 3000},
	"정수기(이동만)": {Label: "정수기(이동만)", UnitPrice: 3000},
	"세탁기(12kg이하)": {Label: "세탁기(12kg 이하)", UnitPrice: 20000},
	"세탁기(12kg초과)": {Label: "세탁기(12kg 초과)", UnitPrice: 60000},
	"건조기(12kg이하)": {Label: "건조기(12kg 이하)", UnitPrice: 20000},
	"건조기(12kg초과)": {Label: "건조기(12kg 초과)", UnitPrice: 60000},
	"냉장고(380L이하)": {Label: "냉장고(380L 이하)", UnitPrice: 30000},
	"냉장고(600L이하)": {Label: "냉장고(381~600L)", UnitPrice: 12000},
	"냉장고(600L초과)": {Label: "냉장고(601L 이상)", UnitPrice: 180000},
	"김치냉장고": {Label: "김치냉장고", UnitPrice: 60000},
	"스타일러":  {Label: "스타일러", UnitPrice: 120000},

	// furniture
	"의자":             {Label: "의자", UnitPrice: 3000},
	"행거":             {Label: "행거", UnitPrice: 3000},
	"협탁/사이드테이블(소형)": {Label: "협탁/사이드테이블(소형)", UnitPrice: 5000},
	"화장대(소형)":        {Label: "화장대(소형)", UnitPrice: 9000},
	"책상/테이블(일반)":     {Label: "책상/테이블(일반)", UnitPrice: 8000},
	"서랍장(3~5단)":      {Label: "서랍장(3~5단)", UnitPrice: 8000},
	"책장(일반)":         {Label: "책장(일반)", UnitPrice: 10000},
	"수납장/TV장(일반)":    {Label: "수납장/TV장(일반)", UnitPrice: 10000},
	"소파(2~3인)":       {Label: "소파(2~3인)", UnitPrice: 15000},
	"소파(4인이상)":       {Label: "소파(4인 이상)", UnitPrice: 30000},
	"침대매트리스(킹제외)":    {Label: "침대 매트리스(킹 제외)", UnitPrice: 10000},
	"침대프레임(분해/조립)":   {Label: "침대프레임 분해/조립", UnitPrice: 40000},
}

// furnitureCatalogOrder fixes the display order of FurniturePriceTable keys.
var furnitureCatalogOrder = []string{
	"전자레인지", "공기청정기", "청소기", "TV(55이하)", "TV(65이상)", "모니터",
	"데스크탑", "프린터", "정수기(이동만)", "세탁기(12kg이하)", "세탁기(12kg초과)",
	"건조기(12kg이하)", "건조기(12kg초과)", "냉장고(380L이하)", "냉장고(600L이하)",
	"냉장고(600L초과)", "김치냉장고", "스타일러",
	"의자", "행거", "협탁/사이드테이블(소형)", "화장대(소형)", "책상/테이블(일반)",
	"서랍장(3~5단)", "책장(일반)", "수납장/TV장(일반)", "소파(2~3인)", "소파(4인이상)",
	"침대매트리스(킹제외)", "침대프레임(분해/조립)",
}

// CatalogKeys returns the furniture item keys in display order.
func CatalogKeys() []string {
	out := make([]string, len(furnitureCatalogOrder))
	copy(out, furnitureCatalogOrder)
	return out
}

// RiskMultiplierTable inflates fragile or heavy item categories. Any key not
// present carries the default multiplier of 1.0.
var RiskMultiplierTable = map[string]float64{
	"TV(55이하)":      1.25,
	"TV(65이상)":      1.35,
	"모니터":           1.3,
	"데스크탑":          1.15,
	"스타일러":          1.2,
	"냉장고(380L이하)":   1.15,
	"냉장고(600L이하)":   1.15,
	"냉장고(600L초과)":   1.15,
	"김치냉장고":         1.15,
	"세탁기(12kg이하)":   1.1,
	"세탁기(12kg초과)":   1.1,
	"건조기(12kg이하)":   1.1,
	"건조기(12kg초과)":   1.1,
}

// LoadBandEntry prices a coarse box-count bucket.
type LoadBandEntry struct {
	Label     string
	BasePrice int64
}

// LoadBandGeneralTable applies when the customer packs everything themselves.
var LoadBandGeneralTable = map[LoadBand]LoadBandEntry{
	LoadBand1: {Label: "1~5개", BasePrice: 10000},
	LoadBand2: {Label: "6~10개", BasePrice: 20000},
	LoadBand3: {Label: "11~15개", BasePrice: 30000},
	LoadBand4: {Label: "16~20개", BasePrice: 40000},
}

// LoadBandHalfTable applies to half-packing moves.
var LoadBandHalfTable = map[LoadBand]LoadBandEntry{
	LoadBand1: {Label: "1~5개", BasePrice: 20000},
	LoadBand2: {Label: "6~10개", BasePrice: 35000},
	LoadBand3: {Label: "11~15개", BasePrice: 50000},
	LoadBand4: {Label: "16~20개", BasePrice: 65000},
}

// LoadBandMultiplier scales the band base price by volume pressure.
var LoadBandMultiplier = map[LoadBand]float64{
	LoadBand1: 1.00,
	LoadBand2: 1.25,
	LoadBand3: 1.55,
	LoadBand4: 1.95,
}

// Stair tier unit rates: the first flight, flights two and three, and every
// flight above the third.
const (
	StairTier1Rate int64 = 7000
	StairTier2Rate int64 = 5000
	StairTier3Rate int64 = 6000
)

// Ladder truck flat fees by floor range.
const (
	LadderFeeLow  int64 = 100000 // <= 6F
	LadderFeeMid  int64 = 120000 // 7F - 12F
	LadderFeeHigh int64 = 140000 // >= 13F
)

// Flat option fees.
const (
	RideUnitFee      int64 = 10000
	CannotCarryFee   int64 = 30000
	HelperFee        int64 = 40000
	StoragePerDayFee int64 = 20000
)

// Per-side move cleaning add-on fees by intensity.
var MoveCleaningFee = map[CleaningIntensity]int64{
	CleaningLight: 30000,
	CleaningDeep:  60000,
}

// LoadBandTable returns the band table for the effective move type variant.
func LoadBandTable(effective MoveType) map[LoadBand]LoadBandEntry {
	if effective == MoveHalfPacking {
		return LoadBandHalfTable
	}
	return LoadBandGeneralTable
}

// LadderFeeByFloor resolves the ladder truck flat fee for a declared floor.
func LadderFeeByFloor(floor int) int64 {
	f := clampFloor(floor)
	switch {
	case f <= 6:
		return LadderFeeLow
	case f <= 12:
		return LadderFeeMid
	default:
		return LadderFeeHigh
	}
}

// RiskMultiplier returns the per-item risk multiplier, defaulting to 1.0.
func RiskMultiplier(key string) float64 {
	if m, ok := RiskMultiplierTable[key]; ok {
		return m
	}
	return 1.0
}
