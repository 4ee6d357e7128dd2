package model

import "github.com/moneyapi/moneyapi/model"

// CreateBankAccount takes the owning server as a bare id; responses embed the
// full server object.
type CreateBankAccount struct {
	BankServer    int64  `json:"bank_server"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

func (a *CreateBankAccount) ToBankAccount() model.BankAccount {
	return model.BankAccount{
		BankServerID:  a.BankServer,
		AccountName:   a.AccountName,
		AccountNumber: a.AccountNumber,
	}
}
