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

// RecordTransaction stores a transfer intent against an existing source
// account. Any caller-supplied status is discarded; every new transaction
// starts out pending. The target fields are stored as given, whatever the
// declared transaction type.
func (m *MoneyAPI) RecordTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	account, err := m.datasource.GetBankAccountByID(ctx, txn.SourceAccountID)
	if err != nil {
		return nil, err
	}

	txn.Status = model.StatusPending
	txn, err = m.datasource.RecordTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	txn.SourceAccount = account
	return txn, nil
}

func (m *MoneyAPI) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	return m.datasource.GetTransaction(ctx, id)
}

func (m *MoneyAPI) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	return m.datasource.GetAllTransactions(ctx)
}

// UpdateTransactionStatus overwrites the status and returns the full record
// with its nested source account. The supplied value is not checked against
// the recognized statuses.
func (m *MoneyAPI) UpdateTransactionStatus(ctx context.Context, id int64, status string) (*model.Transaction, error) {
	if err := m.datasource.UpdateTransactionStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return m.datasource.GetTransaction(ctx, id)
}

func (m *MoneyAPI) DeleteTransaction(ctx context.Context, id int64) error {
	return m.datasource.DeleteTransaction(ctx, id)
}
