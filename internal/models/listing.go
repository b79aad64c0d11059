package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing categories (closed enumeration).
const (
	CategoryPlastic      = "plastic"
	CategoryMetal        = "metal"
	CategoryOrganic      = "organic"
	CategoryPaper        = "paper"
	CategoryEwaste       = "ewaste"
	CategoryTextile      = "textile"
	CategoryGlass        = "glass"
	CategoryChemical     = "chemical"
	CategoryConstruction = "construction"
	CategoryOther        = "other"
)

// Listing units.
const (
	UnitKg     = "kg"
	UnitTons   = "tons"
	UnitUnits  = "units"
	UnitLiters = "liters"
)

// Listing frequencies.
const (
	FrequencyOneTime    = "one-time"
	FrequencyWeekly     = "weekly"
	FrequencyMonthly    = "monthly"
	FrequencyContinuous = "continuous"
)

// Listing statuses. Transitions only move forward: available → matched or
// closed, matched → completed or closed, closed → completed. A listing is
// never deleted, only moved along this lifecycle.
const (
	StatusAvailable = "available"
	StatusMatched   = "matched"
	StatusCompleted = "completed"
	StatusClosed    = "closed"
)

var categories = map[string]bool{
	CategoryPlastic: true, CategoryMetal: true, CategoryOrganic: true,
	CategoryPaper: true, CategoryEwaste: true, CategoryTextile: true,
	CategoryGlass: true, CategoryChemical: true, CategoryConstruction: true,
	CategoryOther: true,
}

var units = map[string]bool{
	UnitKg: true, UnitTons: true, UnitUnits: true, UnitLiters: true,
}

var frequencies = map[string]bool{
	FrequencyOneTime: true, FrequencyWeekly: true, FrequencyMonthly: true,
	FrequencyContinuous: true,
}

var statusTransitions = map[string]map[string]bool{
	StatusAvailable: {StatusMatched: true, StatusClosed: true},
	StatusMatched:   {StatusCompleted: true, StatusClosed: true},
	StatusClosed:    {StatusCompleted: true},
	StatusCompleted: {},
}

func IsValidCategory(c string) bool  { return categories[c] }
func IsValidUnit(u string) bool      { return units[u] }
func IsValidFrequency(f string) bool { return frequencies[f] }

// ValidTransition reports whether a listing status may move from → to.
func ValidTransition(from, to string) bool {
	next, ok := statusTransitions[from]
	return ok && next[to]
}

// WasteListing is an offer of surplus material available for exchange.
type WasteListing struct {
	ListingID    uuid.UUID      `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	Title        string         `gorm:"column:title;not null" json:"title"`
	Description  string         `gorm:"column:description" json:"description"`
	Category     string         `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Quantity     float64        `gorm:"column:quantity;type:decimal(18,2);not null" json:"quantity"`
	Unit         string         `gorm:"column:unit;type:varchar(10);not null;default:'kg'" json:"unit"`
	Location     string         `gorm:"column:location" json:"location"`
	Frequency    string         `gorm:"column:frequency;type:varchar(20)" json:"frequency"`
	Status       string         `gorm:"column:status;type:varchar(20);default:'available'" json:"status"`
	Images       datatypes.JSON `gorm:"column:images;type:jsonb" json:"images"`
	ContactName  string         `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail string         `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone string         `gorm:"column:contact_phone" json:"contact_phone"`
	CreatedBy    string         `gorm:"column:created_by;not null;index" json:"created_by"`
	CreatedDate  time.Time      `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (WasteListing) TableName() string {
	return "waste_listings"
}

func (l *WasteListing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}
