package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeBankTransfer   = "BANK"
	TypeMobileTransfer = "MOBILE"
)

const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

func init() {
	// amounts render as bare JSON numbers, e.g. 50.25 rather than "50.25"
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction records a single transfer intent, either a bank transfer or a
// mobile money transfer. Amounts are fixed-point USD. The target fields are
// free-form: nothing ties the populated set to TransactionType.
type Transaction struct {
	ID                      int64           `json:"id"`
	TransactionType         string          `json:"transaction_type"`
	Amount                  decimal.Decimal `json:"amount"`
	SourceAccountID         int64           `json:"-"`
	SourceAccount           *BankAccount    `json:"source_account"`
	TargetIBAN              *string         `json:"target_iban"`
	TargetSwiftCode         *string         `json:"target_swift_code"`
	TargetBankAccountNumber *string         `json:"target_bank_account_number"`
	TargetBankName          *string         `json:"target_bank_name"`
	TargetPhoneNumber       *string         `json:"target_phone_number"`
	TargetCountry           *string         `json:"target_country"`
	Provider                *string         `json:"provider"`
	Status                  string          `json:"status"`
	CreatedAt               time.Time       `json:"created_at"`
}
