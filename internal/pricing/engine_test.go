package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() QuoteRequest {
	return QuoteRequest{
		VehicleClass: VehicleTruck,
		DistanceKm:   10,
		MoveType:     MoveGeneral,
		LoadBand:     LoadBand1,
	}
}

func stage(t *testing.T, q Quote, name string) int64 {
	t.Helper()
	for _, l := range q.Breakdown {
		if l.Stage == name {
			return l.Amount
		}
	}
	t.Fatalf("stage %q not found in breakdown", name)
	return 0
}

func TestComputeAnchorCase(t *testing.T) {
	// Truck at 10km with the smallest box band and nothing else selected.
	q := Compute(baseRequest(), DefaultConfig())

	require.False(t, q.Incomplete)
	assert.Equal(t, int64(65500), stage(t, q, StageCoreFare))
	assert.Equal(t, int64(10000), stage(t, q, StageLoad))
	assert.Equal(t, int64(75500), stage(t, q, StageService))
	assert.Equal(t, int64(71725), q.Total)
}

func TestComputeMissingVehicleIsIncomplete(t *testing.T) {
	req := baseRequest()
	req.VehicleClass = ""

	q := Compute(req, DefaultConfig())

	assert.True(t, q.Incomplete)
	assert.Zero(t, q.Total)
	assert.Empty(t, q.Breakdown)
}

func TestComputeIsDeterministic(t *testing.T) {
	req := baseRequest()
	req.ItemQuantities = map[string]int{"의자": 2, "모니터": 1}
	req.DisposalFrom = map[string]int{"의자": 1}
	req.OriginStairs = StairInfo{NoElevator: true, Floor: 5}

	first := Compute(req, DefaultConfig())
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Compute(req, DefaultConfig()))
	}
}

func TestComputeDoesNotMutateRequest(t *testing.T) {
	req := baseRequest()
	req.ItemQuantities = map[string]int{"의자": 2}
	req.DisposalFrom = map[string]int{"의자": 1}

	Compute(req, DefaultConfig())

	assert.Equal(t, map[string]int{"의자": 2}, req.ItemQuantities)
	assert.Equal(t, map[string]int{"의자": 1}, req.DisposalFrom)
}

func TestStairCostTiers(t *testing.T) {
	cases := []struct {
		floor int
		want  int64
	}{
		{1, 0},
		{2, 7000},
		{3, 12000},
		{4, 17000},
		{5, 23000},
		{10, 53000},
	}
	for _, tc := range cases {
		got := stairCost(StairInfo{NoElevator: true, Floor: tc.floor})
		assert.Equal(t, tc.want, got, "floor %d", tc.floor)
	}
}

func TestStairCostRequiresNoElevator(t *testing.T) {
	assert.Zero(t, stairCost(StairInfo{NoElevator: false, Floor: 15}))
}

func TestStairCostBothSidesAdd(t *testing.T) {
	req := baseRequest()
	req.OriginStairs = StairInfo{NoElevator: true, Floor: 2}
	req.DestStairs = StairInfo{NoElevator: true, Floor: 3}

	q := Compute(req, DefaultConfig())
	assert.Equal(t, int64(19000), stage(t, q, StageStairs))
}

func TestItemCostMergesTransportAndDisposal(t *testing.T) {
	cfg := DefaultConfig()

	merged := mergeQuantityMaps(
		map[string]int{"의자": 1},
		map[string]int{"의자": 1},
	)
	split := itemCost(merged, cfg)

	together := itemCost(map[string]int{"의자": 2}, cfg)
	assert.Equal(t, together, split)
}

func TestItemCostCompounds(t *testing.T) {
	cfg := DefaultConfig()

	one := itemCost(map[string]int{"의자": 1}, cfg)
	assert.Equal(t, int64(3300), one)

	// Two items pay one extra growth step over twice the unit price.
	two := itemCost(map[string]int{"의자": 2}, cfg)
	assert.Equal(t, int64(6798), two)
	assert.Greater(t, two, one*2)
}

func TestItemCostAppliesRiskMultiplier(t *testing.T) {
	cfg := DefaultConfig()

	// 모니터 carries a 1.3 risk multiplier: round(9000 * 1.1 * 1.3) = 12870.
	got := itemCost(map[string]int{"모니터": 1}, cfg)
	assert.Equal(t, int64(12870), got)
}

func TestItemCostIgnoresUnknownKeys(t *testing.T) {
	cfg := DefaultConfig()

	known := itemCost(map[string]int{"의자": 1}, cfg)
	mixed := itemCost(map[string]int{"의자": 1, "없는키": 3}, cfg)

	assert.Equal(t, known, mixed)
	assert.Zero(t, itemCost(map[string]int{"없는키": 3}, cfg))
}

func TestLoadCostByBandAndVariant(t *testing.T) {
	assert.Equal(t, int64(10000), loadCost(LoadBand1, MoveGeneral))
	assert.Equal(t, int64(25000), loadCost(LoadBand2, MoveGeneral))
	assert.Equal(t, int64(46500), loadCost(LoadBand3, MoveGeneral))
	assert.Equal(t, int64(78000), loadCost(LoadBand4, MoveGeneral))

	assert.Equal(t, int64(20000), loadCost(LoadBand1, MoveHalfPacking))
	assert.Zero(t, loadCost(LoadBandNone, MoveGeneral))
}

func TestHalfPackingPremiumCoversServiceSubtotal(t *testing.T) {
	req := baseRequest()
	req.MoveType = MoveHalfPacking

	q := Compute(req, DefaultConfig())

	service := stage(t, q, StageService)
	premiumed := stage(t, q, StageHalfPremium)
	assert.Equal(t, int64(math.Round(float64(service)*1.18)), premiumed)
}

func TestGeneralMovePaysNoPremium(t *testing.T) {
	q := Compute(baseRequest(), DefaultConfig())
	assert.Equal(t, stage(t, q, StageService), stage(t, q, StageHalfPremium))
}

func TestStorageMoveUsesBaseVariantAndPerDiem(t *testing.T) {
	req := baseRequest()
	req.MoveType = MoveStorage
	req.StorageBase = MoveGeneral
	req.StorageDays = 3

	q := Compute(req, DefaultConfig())

	// General band pricing, plus 3 days of per-diem outside the multipliers.
	assert.Equal(t, int64(10000), stage(t, q, StageLoad))
	assert.Equal(t, int64(60000), stage(t, q, StageStorage))
	assert.Zero(t, stage(t, q, StageOptions))
}

func TestStorageDaysClampToOne(t *testing.T) {
	req := baseRequest()
	req.MoveType = MoveStorage
	req.StorageDays = 0

	q := Compute(req, DefaultConfig())
	assert.Equal(t, int64(20000), stage(t, q, StageStorage))
}

func TestStoragePerDiemOutsideMultipliers(t *testing.T) {
	req := baseRequest()
	req.MoveType = MoveStorage
	req.StorageBase = MoveHalfPacking
	req.StorageDays = 5

	withDays := Compute(req, DefaultConfig())

	req.StorageDays = 6
	oneMore := Compute(req, DefaultConfig())

	// One extra day moves the total by exactly the flat daily rate,
	// untouched by the premium or display multipliers.
	assert.Equal(t, int64(20000), oneMore.Total-withDays.Total)
	assert.Equal(t, stage(t, withDays, StageHalfPremium), stage(t, oneMore, StageHalfPremium))
}

func TestLadderFeeAddedAfterMultipliers(t *testing.T) {
	req := baseRequest()
	req.OriginLadder = LadderInfo{Enabled: true, Floor: 5}

	with := Compute(req, DefaultConfig())
	without := Compute(baseRequest(), DefaultConfig())

	// Exactly the flat fee, untouched by the 0.95 display multiplier.
	assert.Equal(t, int64(100000), with.Total-without.Total)
	assert.Equal(t, int64(100000), stage(t, with, StageLadder))
}

func TestLadderFeeByFloorRanges(t *testing.T) {
	assert.Equal(t, LadderFeeLow, LadderFeeByFloor(1))
	assert.Equal(t, LadderFeeLow, LadderFeeByFloor(6))
	assert.Equal(t, LadderFeeMid, LadderFeeByFloor(7))
	assert.Equal(t, LadderFeeMid, LadderFeeByFloor(12))
	assert.Equal(t, LadderFeeHigh, LadderFeeByFloor(13))
	assert.Equal(t, LadderFeeHigh, LadderFeeByFloor(40))
}

func TestBothLadderSidesAdd(t *testing.T) {
	req := baseRequest()
	req.OriginLadder = LadderInfo{Enabled: true, Floor: 3}
	req.DestLadder = LadderInfo{Enabled: true, Floor: 13}

	q := Compute(req, DefaultConfig())
	assert.Equal(t, LadderFeeLow+LadderFeeHigh, stage(t, q, StageLadder))
}

func TestOptionFees(t *testing.T) {
	req := baseRequest()
	req.RidePassengers = 2
	req.OriginLabor = LaborInfo{CannotCarryAlone: true, HelperRequested: true}
	req.DestLabor = LaborInfo{HelperRequested: true}
	req.Cleaning = CleaningAddOn{Enabled: true, Origin: true, Dest: true, Intensity: CleaningDeep}

	q := Compute(req, DefaultConfig())

	// 2*10000 ride + 30000 carry + 2*40000 helper + 2*60000 deep cleaning.
	assert.Equal(t, int64(250000), stage(t, q, StageOptions))
}

func TestCleaningIntensityDefaultsToLight(t *testing.T) {
	got := cleaningCost(CleaningAddOn{Enabled: true, Origin: true, Intensity: "bogus"})
	assert.Equal(t, MoveCleaningFee[CleaningLight], got)
}

func TestNightFlagContributesNothing(t *testing.T) {
	req := baseRequest()
	req.Night = true

	assert.Equal(t, Compute(baseRequest(), DefaultConfig()).Total, Compute(req, DefaultConfig()).Total)
}

func TestDistanceMonotonicity(t *testing.T) {
	prev := int64(-1)
	for km := 0.0; km <= 100; km += 5 {
		req := baseRequest()
		req.DistanceKm = km
		total := Compute(req, DefaultConfig()).Total
		assert.GreaterOrEqual(t, total, prev, "km=%v", km)
		prev = total
	}
}

func TestBadInputsClampToZeroContribution(t *testing.T) {
	req := baseRequest()
	req.DistanceKm = math.NaN()
	req.RidePassengers = -4
	req.ItemQuantities = map[string]int{"의자": -3}
	req.OriginStairs = StairInfo{NoElevator: true, Floor: -2}

	q := Compute(req, DefaultConfig())

	require.False(t, q.Incomplete)
	assert.Equal(t, int64(50000), stage(t, q, StageCoreFare))
	assert.Zero(t, stage(t, q, StageStairs))
	assert.Zero(t, stage(t, q, StageItems))
	assert.Zero(t, stage(t, q, StageOptions))
	assert.GreaterOrEqual(t, q.Total, int64(0))
}

func TestZeroConfigFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, Compute(baseRequest(), DefaultConfig()), Compute(baseRequest(), Config{}))
}

func TestOperatorMultiplierApplied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OperatorMultiplier = 2.0

	q := Compute(baseRequest(), cfg)
	assert.Equal(t, int64(143450), q.Total)
}
