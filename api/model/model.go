/*
Copyright 2024 MoneyAPI Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func (s *CreateBankServer) ValidateCreateBankServer() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.ServerIPAddress, validation.Required, is.IP),
	)
}

func (a *CreateBankAccount) ValidateCreateBankAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.BankServer, validation.Required),
		validation.Field(&a.AccountName, validation.Required),
		validation.Field(&a.AccountNumber, validation.Required),
	)
}

// Only presence is checked here. The target fields carry no rules, and no
// rule ties the populated set to the transaction type; any combination may be
// submitted for either kind of transfer.
func (t *RecordTransaction) ValidateRecordTransaction() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.TransactionType, validation.Required),
		validation.Field(&t.Amount, validation.Required),
		validation.Field(&t.SourceAccount, validation.Required),
	)
}

// The status value itself is not checked against the recognized statuses.
func (u *UpdateTransactionStatus) ValidateUpdateTransactionStatus() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Status, validation.Required),
	)
}
