package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction records a settled exchange. QuantityExchanged is in metric
// tons, CO2Saved in kilograms. Written by the settlement flow, read-only
// everywhere else.
type Transaction struct {
	TxID              uuid.UUID `gorm:"column:tx_id;type:uuid;primaryKey" json:"tx_id"`
	ProviderEmail     string    `gorm:"column:provider_email;not null;index" json:"provider_email"`
	QuantityExchanged float64   `gorm:"column:quantity_exchanged;type:decimal(18,2)" json:"quantity_exchanged"`
	CO2Saved          float64   `gorm:"column:co2_saved;type:decimal(18,2)" json:"co2_saved"`
	CreatedDate       time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.TxID == uuid.Nil {
		t.TxID = uuid.New()
	}
	return nil
}
