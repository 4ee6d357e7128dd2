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
	"database/sql"
	"fmt"

	"github.com/moneyapi/moneyapi/internal/apierror"
	"github.com/moneyapi/moneyapi/model"
)

// bankAccountSelect joins every account to its owning server so responses can
// embed the server object without a second round trip.
const bankAccountSelect = `
	SELECT a.id, a.account_name, a.account_number,
	       s.id, s.name, s.server_ip_address
	FROM bank_accounts a
	JOIN bank_servers s ON a.bank_server_id = s.id
`

// CreateBankAccount inserts a new BankAccount into the database.
// The caller is responsible for having resolved the owning server first.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - account: The account carrying the server reference, display name and number.
// Returns:
// - model.BankAccount: The created account with the assigned identifier.
// - error: An error if the insert fails.
func (d Datasource) CreateBankAccount(ctx context.Context, account model.BankAccount) (model.BankAccount, error) {
	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO bank_accounts (bank_server_id, account_name, account_number)
		VALUES ($1, $2, $3)
		RETURNING id
	`, account.BankServerID, account.AccountName, account.AccountNumber).Scan(&account.ID)
	if err != nil {
		return account, postgresError(err, "bank account must reference an existing bank server")
	}

	return account, nil
}

// scanBankAccountRow scans one joined account row into a BankAccount with its
// server populated.
func scanBankAccountRow(scan func(dest ...interface{}) error) (*model.BankAccount, error) {
	account := &model.BankAccount{}
	server := &model.BankServer{}

	err := scan(
		&account.ID, &account.AccountName, &account.AccountNumber,
		&server.ID, &server.Name, &server.ServerIPAddress,
	)
	if err != nil {
		return nil, err
	}

	account.BankServerID = server.ID
	account.BankServer = server
	return account, nil
}

// GetBankAccountByID retrieves an account by its ID, with the owning server
// embedded.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the account to retrieve.
// Returns:
// - A pointer to the retrieved BankAccount or a not-found error.
func (d Datasource) GetBankAccountByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	row := d.Conn.QueryRowContext(ctx, bankAccountSelect+`
	WHERE a.id = $1
	`, id)

	account, err := scanBankAccountRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank account with ID '%d' not found", id), err)
		}
		return nil, err
	}

	return account, nil
}

// GetAllBankAccounts retrieves all accounts with their servers embedded, in
// insertion order.
// Returns:
// - A slice of BankAccount objects or an error if the query or scan fails.
func (d Datasource) GetAllBankAccounts(ctx context.Context) ([]model.BankAccount, error) {
	rows, err := d.Conn.QueryContext(ctx, bankAccountSelect+`
	ORDER BY a.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.BankAccount
	for rows.Next() {
		account, err := scanBankAccountRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

// UpdateBankAccount reassigns the server reference and overwrites the name and
// number unconditionally.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - account: The account carrying the target ID and the new field values.
// Returns:
// - A not-found error when the account ID does not exist, otherwise nil.
func (d Datasource) UpdateBankAccount(ctx context.Context, account *model.BankAccount) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE bank_accounts
		SET bank_server_id = $2, account_name = $3, account_number = $4
		WHERE id = $1
	`, account.ID, account.BankServerID, account.AccountName, account.AccountNumber)
	if err != nil {
		return postgresError(err, "bank account must reference an existing bank server")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank account with ID '%d' not found", account.ID), nil)
	}

	return nil
}

// DeleteBankAccount removes an account. Dependent transactions go with it
// through the foreign-key cascade.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the account to delete.
// Returns:
// - A not-found error when the ID does not exist, otherwise nil.
func (d Datasource) DeleteBankAccount(ctx context.Context, id int64) error {
	result, err := d.Conn.ExecContext(ctx, `
		DELETE FROM bank_accounts WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank account with ID '%d' not found", id), nil)
	}

	return nil
}
