package domain

import "time"

type TransactionType string

const (
	TransactionTypeLending TransactionType = "LENDING"
	TransactionTypeRental  TransactionType = "RENTAL"
)

type TransactionStatus string

const (
	TransactionStatusPendingApproval TransactionStatus = "PENDING_APPROVAL"
	TransactionStatusApproved        TransactionStatus = "APPROVED"
	TransactionStatusRejected        TransactionStatus = "REJECTED"
	// Returned is reserved for a future returns-processing flow.
	TransactionStatusReturned TransactionStatus = "RETURNED"
	// Overdue is set by the scheduled overdue job, never by a request path.
	TransactionStatusOverdue TransactionStatus = "OVERDUE"
)

type Transaction struct {
	ID     int32             `json:"id"`
	ToolID int32             `json:"tool_id"`
	UserID int32             `json:"user_id"`
	Type   TransactionType   `json:"transaction_type"`
	Status TransactionStatus `json:"status"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ReturnDate     *time.Time `json:"return_date,omitempty"`
	ReturnNotes    string     `json:"return_notes,omitempty"`
	ReturnPhotoURL string     `json:"return_photo_url,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	// Failed and Refunded are reserved for future payment-failure and
	// refund handling.
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodEWallet  PaymentMethod = "E_WALLET"
	PaymentMethodCash     PaymentMethod = "CASH"
)

// Payment is the one-to-one dependent record of a RENTAL transaction. Its
// amount is computed at transaction creation and never user-supplied.
type Payment struct {
	ID            int32         `json:"id"`
	TransactionID int32         `json:"transaction_id"`
	AmountCents   int64         `json:"amount_cents"`
	Method        PaymentMethod `json:"payment_method,omitempty"`
	Status        PaymentStatus `json:"status"`
	ProofURL      string        `json:"payment_proof_url,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
	UpdatedOn     time.Time     `json:"updated_on"`
}
