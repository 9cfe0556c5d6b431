package domain

import "time"

type ToolCategory string

const (
	ToolCategoryTillage       ToolCategory = "TILLAGE"
	ToolCategoryHarvest       ToolCategory = "HARVEST"
	ToolCategoryPump          ToolCategory = "PUMP"
	ToolCategoryTransport     ToolCategory = "TRANSPORT"
	ToolCategoryWorkshopTools ToolCategory = "WORKSHOP_TOOLS"
	ToolCategoryOther         ToolCategory = "OTHER"
)

type ToolStatus string

const (
	ToolStatusAvailable        ToolStatus = "AVAILABLE"
	ToolStatusBorrowed         ToolStatus = "BORROWED"
	ToolStatusUnderMaintenance ToolStatus = "UNDER_MAINTENANCE"
	// BROKEN is only ever set by a manual admin edit; no lifecycle
	// operation produces it.
	ToolStatusBroken ToolStatus = "BROKEN"
)

type Tool struct {
	ID          int32        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ToolCategory `json:"category"`
	Status      ToolStatus   `json:"status"`
	ImageURL    string       `json:"image_url,omitempty"`
	// Specifications is a free-form key/value map stored as JSON.
	Specifications map[string]string `json:"specifications,omitempty"`
	// PricePerDayCents is nil when the tool is lending-only (not rentable).
	PricePerDayCents *int64    `json:"price_per_day_cents,omitempty"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}

// Rentable reports whether the tool can be the target of a RENTAL transaction.
func (t *Tool) Rentable() bool {
	return t.PricePerDayCents != nil && *t.PricePerDayCents > 0
}
