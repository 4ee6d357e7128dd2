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

package database

import (
	"context"

	"github.com/moneyapi/moneyapi/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	bankServer  // Interface for bank-server-related operations
	bankAccount // Interface for bank-account-related operations
	transaction // Interface for transaction-related operations
	apiKey      // Interface for API-key-related operations
}

// bankServer defines methods for handling bank servers.
type bankServer interface {
	CreateBankServer(ctx context.Context, server model.BankServer) (model.BankServer, error) // Creates a new bank server
	GetBankServerByID(ctx context.Context, id int64) (*model.BankServer, error)              // Retrieves a bank server by ID
	GetAllBankServers(ctx context.Context) ([]model.BankServer, error)                       // Retrieves all bank servers
	UpdateBankServer(ctx context.Context, server *model.BankServer) error                    // Overwrites a bank server
	DeleteBankServer(ctx context.Context, id int64) error                                    // Deletes a bank server and its dependents
}

// bankAccount defines methods for handling bank accounts.
type bankAccount interface {
	CreateBankAccount(ctx context.Context, account model.BankAccount) (model.BankAccount, error) // Creates a new bank account
	GetBankAccountByID(ctx context.Context, id int64) (*model.BankAccount, error)                // Retrieves an account with its server
	GetAllBankAccounts(ctx context.Context) ([]model.BankAccount, error)                         // Retrieves all accounts with servers
	UpdateBankAccount(ctx context.Context, account *model.BankAccount) error                     // Overwrites a bank account
	DeleteBankAccount(ctx context.Context, id int64) error                                       // Deletes an account and its transactions
}

// transaction defines methods for handling transactions.
type transaction interface {
	RecordTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) // Records a new transaction
	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)                  // Retrieves a transaction with nested account and server
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)                       // Retrieves all transactions
	UpdateTransactionStatus(ctx context.Context, id int64, status string) error                // Overwrites the status of a transaction
	DeleteTransaction(ctx context.Context, id int64) error                                     // Deletes a transaction
}

// apiKey defines methods for handling API keys.
type apiKey interface {
	CreateAPIKey(ctx context.Context) (*model.APIKey, error)               // Creates a new API key with a fresh random value
	GetAPIKeyByKey(ctx context.Context, key string) (*model.APIKey, error) // Retrieves an API key by its value
	ListAPIKeys(ctx context.Context) ([]*model.APIKey, error)              // Retrieves all API keys
	TouchAPIKey(ctx context.Context, id int64) error                       // Bumps the updated_at timestamp of an API key
}
