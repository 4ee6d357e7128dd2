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
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneyapi/moneyapi/model"
)

// MockDataSource is a mock implementation of the IDataSource interface
type MockDataSource struct {
	mock.Mock
}

// Bank server methods

func (m *MockDataSource) CreateBankServer(ctx context.Context, server model.BankServer) (model.BankServer, error) {
	args := m.Called(ctx, server)
	return args.Get(0).(model.BankServer), args.Error(1)
}

func (m *MockDataSource) GetBankServerByID(ctx context.Context, id int64) (*model.BankServer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankServer), args.Error(1)
}

func (m *MockDataSource) GetAllBankServers(ctx context.Context) ([]model.BankServer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BankServer), args.Error(1)
}

func (m *MockDataSource) UpdateBankServer(ctx context.Context, server *model.BankServer) error {
	args := m.Called(ctx, server)
	return args.Error(0)
}

func (m *MockDataSource) DeleteBankServer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Bank account methods

func (m *MockDataSource) CreateBankAccount(ctx context.Context, account model.BankAccount) (model.BankAccount, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.BankAccount), args.Error(1)
}

func (m *MockDataSource) GetBankAccountByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockDataSource) GetAllBankAccounts(ctx context.Context) ([]model.BankAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.BankAccount), args.Error(1)
}

func (m *MockDataSource) UpdateBankAccount(ctx context.Context, account *model.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockDataSource) DeleteBankAccount(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Transaction methods

func (m *MockDataSource) RecordTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockDataSource) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockDataSource) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockDataSource) UpdateTransactionStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDataSource) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// API key methods

func (m *MockDataSource) CreateAPIKey(ctx context.Context) (*model.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.APIKey), args.Error(1)
}

func (m *MockDataSource) GetAPIKeyByKey(ctx context.Context, key string) (*model.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.APIKey), args.Error(1)
}

func (m *MockDataSource) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.APIKey), args.Error(1)
}

func (m *MockDataSource) TouchAPIKey(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
