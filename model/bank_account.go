package model

// BankAccount is an account hosted under a BankServer. Responses carry the
// owning server as a nested object, never as a bare id.
type BankAccount struct {
	ID            int64       `json:"id"`
	BankServerID  int64       `json:"-"`
	BankServer    *BankServer `json:"bank_server"`
	AccountName   string      `json:"account_name"`
	AccountNumber string      `json:"account_number"`
}
