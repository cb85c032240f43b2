// Package inquiry builds the outbound consultation messages and records each
// submitted inquiry. The price shown in a message is always the engine's
// computed total, reused unchanged.
package inquiry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ddlogi/quote-platform/internal/cleaning"
	"github.com/ddlogi/quote-platform/internal/pricing"
	"github.com/ddlogi/quote-platform/internal/slots"
)

// DepositRate is the up-front share of the total quoted price.
const DepositRate = 0.2

// DepositSplit divides a total into the 20% deposit and the balance due on
// the day of service. The two always sum back to the total.
func DepositSplit(total int64) (deposit, balance int64) {
	if total < 0 {
		total = 0
	}
	deposit = int64(float64(total)*DepositRate + 0.5)
	return deposit, total - deposit
}

var vehicleLabelKR = map[pricing.VehicleClass]string{
	pricing.VehicleTruck: "1톤 카고",
	pricing.VehicleVan:   "1톤 저상탑",
	pricing.VehicleLorry: "1톤 카고+저상탑",
}

// MoveDetails is everything the move inquiry message needs.
type MoveDetails struct {
	Request pricing.QuoteRequest `json:"request"`
	Total   int64                `json:"total"`

	MoveDate string       `json:"move_date"`
	TimeSlot slots.SlotID `json:"time_slot"`

	OriginAddress   string `json:"origin_address"`
	WaypointAddress string `json:"waypoint_address,omitempty"`
	DestAddress     string `json:"dest_address"`

	ItemsNote    string `json:"items_note,omitempty"`
	DisposalNote string `json:"disposal_note,omitempty"`
}

// BuildMoveMessage renders the customer-facing move inquiry text.
func BuildMoveMessage(d MoveDetails) string {
	total := d.Total
	if total < 0 {
		total = 0
	}
	deposit, balance := DepositSplit(total)
	req := d.Request

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line("안녕하세요. 디디운송 견적 문의드립니다.")
	line("")
	line("[조건]")
	line("- 서비스: 이사·용달")
	line("- 이사 방식: " + moveTypeLabelKR(req))
	line("- 차량: " + orLabel(vehicleLabelKR[req.VehicleClass], "미선택"))
	line("- 거리: " + distanceLabel(req.DistanceKm))
	line("- 일정: " + orLabel(d.MoveDate, "미선택"))
	line("- 희망 시간: " + timeSlotLabel(d.TimeSlot))
	if d.OriginAddress != "" {
		line("- 출발지: " + d.OriginAddress)
	}
	if req.HasWaypoint && d.WaypointAddress != "" {
		line("- 경유지: " + d.WaypointAddress)
	}
	if d.DestAddress != "" {
		line("- 도착지: " + d.DestAddress)
	}
	line(fmt.Sprintf("- 계단: 출발 %s / 도착 %s", stairsLabel(req.OriginStairs), stairsLabel(req.DestStairs)))
	line("- 짐양(박스): " + loadLabel(req))
	line("- 가구·가전(합산): " + mergedItemsLabel(req))
	if d.ItemsNote != "" {
		line("- 가구·가전 기타사항: " + d.ItemsNote)
	}
	if d.DisposalNote != "" {
		line("- 버리기 기타사항: " + d.DisposalNote)
	}
	line("- 사다리차: " + ladderLabel(req))
	line("- 청소 옵션: " + moveCleaningLabel(req.Cleaning))
	if req.MoveType == pricing.MoveStorage {
		days := req.StorageDays
		if days < 1 {
			days = 1
		}
		line("- 보관료(옵션): " + formatKRW(int64(days)*pricing.StoragePerDayFee))
	}
	line("")
	line("[예상금액]")
	line(formatKRW(total))
	line("[예약금(20%)] " + formatKRW(deposit))
	line("[잔금(80%)] " + formatKRW(balance))
	line("")
	line("※ 예약금 입금 시 예약 확정되며, 잔금은 운송 당일 결제합니다.")
	line("※ 예약금은 일정 확보 및 기사 배정을 위한 비용으로, 입금 후 고객 사정에 의한 취소/변경 시 환불이 어렵습니다.")
	line("※ 현장 상황에 따라 금액이 변동될 수 있습니다.")

	return b.String()
}

// CleanDetails is everything the cleaning inquiry message needs.
type CleanDetails struct {
	Request cleaning.QuoteRequest `json:"request"`
	Total   int64                 `json:"total"`

	MoveDate string       `json:"move_date"`
	TimeSlot slots.SlotID `json:"time_slot"`

	Rooms       int    `json:"rooms"`
	Address     string `json:"address"`
	AddressNote string `json:"address_note,omitempty"`
	Note        string `json:"note,omitempty"`
}

// BuildCleanMessage renders the customer-facing cleaning inquiry text.
func BuildCleanMessage(d CleanDetails) string {
	total := d.Total
	if total < 0 {
		total = 0
	}
	deposit, balance := DepositSplit(total)
	req := d.Request

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line("안녕하세요. 디디운송 입주청소 견적 문의드립니다.")
	line("")
	line("[조건]")
	line("- 서비스: 입주청소")
	line("- 청소 유형: " + cleanTypeLabel(req.CleanType))
	if req.Pyeong > 0 {
		line(fmt.Sprintf("- 평수: %d평", req.Pyeong))
	} else {
		line("- 평수: 미입력")
	}
	line(fmt.Sprintf("- 구조: 방 %d / 화장실 %d / 베란다 %d / 붙박이장 %d",
		d.Rooms, req.Bathrooms, req.Balconies, req.Wardrobes))
	line("- 주소: " + orLabel(d.Address, "미입력"))
	if d.AddressNote != "" {
		line("- 주소/출입 메모: " + d.AddressNote)
	}
	line("- 일정: " + orLabel(d.MoveDate, "미선택"))
	line("- 희망 시간: " + timeSlotLabel(d.TimeSlot))
	if req.ParkingHard {
		line("- 주차: 어려움")
	} else {
		line("- 주차: 보통/가능")
	}
	if req.NoElevator {
		line(fmt.Sprintf("- 엘리베이터: 없음(%d층)", req.Floor))
	} else {
		line("- 엘리베이터: 있음")
	}
	line("- 오염도: " + string(req.SoilLevel))
	if req.OuterWindowEnabled {
		line(fmt.Sprintf("- 외창: 사용 (%d평)", req.OuterWindowPyeong))
	} else {
		line("- 외창: 미사용")
	}
	line("- 피톤치드: " + usageLabel(req.PhytoncideEnabled))
	line("- 살균/소독: " + usageLabel(req.DisinfectEnabled))
	line(fmt.Sprintf("- 폐기/정리(봉투): %d개", req.TrashBags))
	line("- 청소 옵션(특수): " + optionQtyLabel(req.BasicOptions, basicOptionLabel))
	line("- 가전·가구 클리닝: " + optionQtyLabel(req.ApplianceOptions, applianceOptionLabel))
	if d.Note != "" {
		line("- 기타사항: " + d.Note)
	}
	line("")
	line("[예상금액]")
	line(formatKRW(total))
	line("[예약금(20%)] " + formatKRW(deposit))
	line("[잔금(80%)] " + formatKRW(balance))
	line("")
	line("※ 예약금 입금 시 예약 확정되며, 잔금은 작업 당일 결제합니다.")
	line("※ 현장 상태(오염/주차/동선/외창/옵션 범위)에 따라 금액이 변동될 수 있습니다.")

	return b.String()
}

func moveTypeLabelKR(req pricing.QuoteRequest) string {
	if req.MoveType == pricing.MoveStorage {
		base := "일반"
		if req.StorageBase == pricing.MoveHalfPacking {
			base = "반포장"
		}
		days := req.StorageDays
		if days < 1 {
			days = 1
		}
		return fmt.Sprintf("보관이사 (보관-%s, %d일 / 보관료 2만원×일수 옵션)", base, days)
	}
	if req.MoveType == pricing.MoveHalfPacking {
		return "반포장 이사"
	}
	return "일반이사"
}

func stairsLabel(s pricing.StairInfo) string {
	if s.NoElevator {
		return fmt.Sprintf("%d층(엘베없음)", s.Floor)
	}
	return "엘베있음"
}

func loadLabel(req pricing.QuoteRequest) string {
	if req.LoadBand == pricing.LoadBandNone {
		return "미선택"
	}
	entry, ok := pricing.LoadBandTable(req.EffectiveMoveType())[req.LoadBand]
	if !ok {
		return "미선택"
	}
	return entry.Label
}

func mergedItemsLabel(req pricing.QuoteRequest) string {
	merged := make(map[string]int)
	for _, m := range []map[string]int{req.ItemQuantities, req.DisposalFrom, req.DisposalTo} {
		for k, q := range m {
			if q > 0 {
				merged[k] += q
			}
		}
	}
	var parts []string
	for _, key := range pricing.CatalogKeys() {
		if q := merged[key]; q > 0 {
			parts = append(parts, fmt.Sprintf("%s×%d", pricing.FurniturePriceTable[key].Label, q))
		}
	}
	if len(parts) == 0 {
		return "없음"
	}
	return strings.Join(parts, ", ")
}

func ladderLabel(req pricing.QuoteRequest) string {
	var parts []string
	var total int64
	if req.OriginLadder.Enabled {
		fee := pricing.LadderFeeByFloor(req.OriginLadder.Floor)
		total += fee
		parts = append(parts, fmt.Sprintf("출발 %d층(%s)", req.OriginLadder.Floor, formatKRW(fee)))
	}
	if req.DestLadder.Enabled {
		fee := pricing.LadderFeeByFloor(req.DestLadder.Floor)
		total += fee
		parts = append(parts, fmt.Sprintf("도착 %d층(%s)", req.DestLadder.Floor, formatKRW(fee)))
	}
	if len(parts) == 0 {
		return "불필요"
	}
	return fmt.Sprintf("%s (합계 %s)", strings.Join(parts, " / "), formatKRW(total))
}

func moveCleaningLabel(c pricing.CleaningAddOn) string {
	if !c.Enabled {
		return "미사용"
	}
	intensity := "일반"
	if c.Intensity == pricing.CleaningDeep {
		intensity = "딥클리닝"
	}
	var sides []string
	var cost int64
	unit, ok := pricing.MoveCleaningFee[c.Intensity]
	if !ok {
		unit = pricing.MoveCleaningFee[pricing.CleaningLight]
	}
	if c.Origin {
		sides = append(sides, "출발지")
		cost += unit
	}
	if c.Dest {
		sides = append(sides, "도착지")
		cost += unit
	}
	if len(sides) == 0 {
		return "미사용"
	}
	return fmt.Sprintf("%s %s (%s)", strings.Join(sides, "+"), intensity, formatKRW(cost))
}

func cleanTypeLabel(t cleaning.CleanType) string {
	switch t {
	case cleaning.CleanOccupied:
		return "거주청소(짐있음)"
	case cleaning.CleanMoveOut:
		return "이사청소(퇴거)"
	default:
		return "입주청소(공실)"
	}
}

func basicOptionLabel(key string) string {
	if opt, ok := cleaning.BasicOptionTable[key]; ok {
		return opt.Label
	}
	return key
}

func applianceOptionLabel(key string) string {
	if opt, ok := cleaning.ApplianceOptionTable[key]; ok {
		return opt.Label
	}
	return key
}

func optionQtyLabel(quantities map[string]int, label func(string) string) string {
	var parts []string
	for key, qty := range quantities {
		if qty > 0 {
			parts = append(parts, fmt.Sprintf("%s×%d", label(key), qty))
		}
	}
	if len(parts) == 0 {
		return "없음"
	}
	// Stable output regardless of map iteration order.
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func timeSlotLabel(slot slots.SlotID) string {
	if slot == "" {
		return "미선택"
	}
	return slots.SlotLabelKR(slot)
}

func distanceLabel(km float64) string {
	if km <= 0 {
		return "미계산"
	}
	return fmt.Sprintf("%dkm", int(km+0.5))
}

func usageLabel(enabled bool) string {
	if enabled {
		return "사용"
	}
	return "미사용"
}

func orLabel(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formatKRW renders an amount as ₩1,234,567.
func formatKRW(v int64) string {
	if v < 0 {
		v = 0
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	b.WriteString("₩")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
