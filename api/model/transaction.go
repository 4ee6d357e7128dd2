package model

import (
	"github.com/shopspring/decimal"

	"github.com/moneyapi/moneyapi/model"
)

// RecordTransaction is the create payload for both transfer kinds. A status
// field is accepted but ignored; new transactions always start pending.
type RecordTransaction struct {
	TransactionType         string          `json:"transaction_type"`
	Amount                  decimal.Decimal `json:"amount"`
	SourceAccount           int64           `json:"source_account"`
	TargetIBAN              *string         `json:"target_iban"`
	TargetSwiftCode         *string         `json:"target_swift_code"`
	TargetBankAccountNumber *string         `json:"target_bank_account_number"`
	TargetBankName          *string         `json:"target_bank_name"`
	TargetPhoneNumber       *string         `json:"target_phone_number"`
	TargetCountry           *string         `json:"target_country"`
	Provider                *string         `json:"provider"`
	Status                  string          `json:"status"`
}

func (t *RecordTransaction) ToTransaction() *model.Transaction {
	return &model.Transaction{
		TransactionType:         t.TransactionType,
		Amount:                  t.Amount,
		SourceAccountID:         t.SourceAccount,
		TargetIBAN:              t.TargetIBAN,
		TargetSwiftCode:         t.TargetSwiftCode,
		TargetBankAccountNumber: t.TargetBankAccountNumber,
		TargetBankName:          t.TargetBankName,
		TargetPhoneNumber:       t.TargetPhoneNumber,
		TargetCountry:           t.TargetCountry,
		Provider:                t.Provider,
	}
}

type UpdateTransactionStatus struct {
	Status string `json:"status"`
}
