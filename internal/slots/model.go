package slots

import (
	"time"
)

// SlotID identifies one bookable time slot within a day. Values are the hour
// of day as a decimal string, matching the operator panel's catalog.
type SlotID string

// SlotOption pairs a slot identifier with its customer-facing Korean label.
type SlotOption struct {
	Value   SlotID `json:"value"`
	LabelKR string `json:"label_kr"`
}

// Catalog lists the bookable slots in display order.
var Catalog = []SlotOption{
	{Value: "7", LabelKR: "오전 7시"},
	{Value: "8", LabelKR: "오전 8시"},
	{Value: "9", LabelKR: "오전 9시"},
	{Value: "10", LabelKR: "오전 10시"},
	{Value: "11", LabelKR: "오전 11시"},
	{Value: "12", LabelKR: "오후 12시"},
	{Value: "13", LabelKR: "오후 1시"},
	{Value: "14", LabelKR: "오후 2시"},
	{Value: "15", LabelKR: "오후 3시"},
}

// Status is the persisted lifecycle state of a reservation. There is no
// persisted pending state: an insert either lands as confirmed or conflicts.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// Reservation is one confirmed (or later canceled) slot row.
type Reservation struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Slot      SlotID    `json:"time_slot"`
	Status    Status    `json:"status"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidSlot reports whether the slot exists in the catalog.
func ValidSlot(slot SlotID) bool {
	for _, opt := range Catalog {
		if opt.Value == slot {
			return true
		}
	}
	return false
}

// SlotLabelKR returns the Korean label for a slot, or the raw value when the
// slot is not in the catalog.
func SlotLabelKR(slot SlotID) string {
	for _, opt := range Catalog {
		if opt.Value == slot {
			return opt.LabelKR
		}
	}
	return string(slot)
}

// ValidDate reports whether the date is a well-formed calendar day.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
