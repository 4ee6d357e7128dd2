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

package moneyapi

import (
	"context"

	"github.com/moneyapi/moneyapi/model"
)

// CreateBankAccount stores an account under an existing server. The server is
// resolved first so a dangling reference fails with not-found before anything
// is written, and the resolved server rides along in the response.
func (m *MoneyAPI) CreateBankAccount(ctx context.Context, account model.BankAccount) (model.BankAccount, error) {
	server, err := m.datasource.GetBankServerByID(ctx, account.BankServerID)
	if err != nil {
		return model.BankAccount{}, err
	}

	account, err = m.datasource.CreateBankAccount(ctx, account)
	if err != nil {
		return model.BankAccount{}, err
	}

	account.BankServer = server
	return account, nil
}

func (m *MoneyAPI) GetBankAccountByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	return m.datasource.GetBankAccountByID(ctx, id)
}

func (m *MoneyAPI) GetAllBankAccounts(ctx context.Context) ([]model.BankAccount, error) {
	return m.datasource.GetAllBankAccounts(ctx)
}

// UpdateBankAccount reassigns the server reference and overwrites the name
// and number. Both the account and the new server must exist.
func (m *MoneyAPI) UpdateBankAccount(ctx context.Context, account *model.BankAccount) (*model.BankAccount, error) {
	server, err := m.datasource.GetBankServerByID(ctx, account.BankServerID)
	if err != nil {
		return nil, err
	}

	if err := m.datasource.UpdateBankAccount(ctx, account); err != nil {
		return nil, err
	}

	account.BankServer = server
	return account, nil
}

func (m *MoneyAPI) DeleteBankAccount(ctx context.Context, id int64) error {
	return m.datasource.DeleteBankAccount(ctx, id)
}
