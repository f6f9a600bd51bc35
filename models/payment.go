package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentType string

const (
	PaymentDeposit   PaymentType = "deposit"
	PaymentFull      PaymentType = "full"
	PaymentRemainder PaymentType = "remainder"
	PaymentRefund    PaymentType = "refund"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentExpired   PaymentStatus = "expired"
)

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;not null" json:"booking_id"`

	// Amount is signed: refunds are stored negative.
	Amount float64       `gorm:"type:decimal(12,2)" json:"amount"`
	Type   PaymentType   `gorm:"type:varchar(20);not null" json:"type"`
	Status PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	// Gateway correlation identifiers.
	OrderID       string `gorm:"size:64;uniqueIndex" json:"order_id"`
	RequestID     string `gorm:"size:64" json:"request_id"`
	TransactionID string `gorm:"size:64" json:"transaction_id,omitempty"`

	PayURL    string `json:"pay_url,omitempty"`
	QRCodeURL string `json:"qr_code_url,omitempty"`

	// RawIPN keeps the gateway callback body verbatim for audit.
	// Default naming would render the column raw_ip_n.
	RawIPN datatypes.JSON `gorm:"column:raw_ipn" json:"raw_ipn,omitempty"`

	Histories []PaymentHistory `gorm:"foreignKey:PaymentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"histories,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentHistory is an append-only ledger entry, never updated after insert.
type PaymentHistory struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	PaymentID   uint          `gorm:"index;not null" json:"payment_id"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Amount      float64       `gorm:"type:decimal(12,2)" json:"amount"`
	Description string        `gorm:"size:300" json:"description"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
