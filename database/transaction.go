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
	"time"

	"github.com/moneyapi/moneyapi/internal/apierror"
	"github.com/moneyapi/moneyapi/model"
)

// transactionSelect joins every transaction to its source account and,
// transitively, that account's server, so responses carry the full nested
// objects in one query.
const transactionSelect = `
	SELECT t.id, t.transaction_type, t.amount,
	       t.target_iban, t.target_swift_code, t.target_bank_account_number, t.target_bank_name,
	       t.target_phone_number, t.target_country, t.provider,
	       t.status, t.created_at,
	       a.id, a.account_name, a.account_number,
	       s.id, s.name, s.server_ip_address
	FROM transactions t
	JOIN bank_accounts a ON t.source_account_id = a.id
	JOIN bank_servers s ON a.bank_server_id = s.id
`

// RecordTransaction inserts a new transfer intent. The creation timestamp is
// assigned here and is immutable afterwards; the status is whatever the caller
// set (the service layer forces pending on create).
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - txn: The transaction to record.
// Returns:
// - *model.Transaction: The recorded transaction with the assigned identifier and timestamp.
// - error: An error if the insert fails.
func (d Datasource) RecordTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	txn.CreatedAt = time.Now()

	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO transactions
			(transaction_type, amount, source_account_id,
			 target_iban, target_swift_code, target_bank_account_number, target_bank_name,
			 target_phone_number, target_country, provider, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, txn.TransactionType, txn.Amount, txn.SourceAccountID,
		txn.TargetIBAN, txn.TargetSwiftCode, txn.TargetBankAccountNumber, txn.TargetBankName,
		txn.TargetPhoneNumber, txn.TargetCountry, txn.Provider, txn.Status, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		return nil, postgresError(err, "transaction must reference an existing bank account")
	}

	return txn, nil
}

// transactionScanArgs lays out the scan destinations matching transactionSelect.
func transactionScanArgs(txn *model.Transaction, account *model.BankAccount, server *model.BankServer) []interface{} {
	return []interface{}{
		&txn.ID, &txn.TransactionType, &txn.Amount,
		&txn.TargetIBAN, &txn.TargetSwiftCode, &txn.TargetBankAccountNumber, &txn.TargetBankName,
		&txn.TargetPhoneNumber, &txn.TargetCountry, &txn.Provider,
		&txn.Status, &txn.CreatedAt,
		&account.ID, &account.AccountName, &account.AccountNumber,
		&server.ID, &server.Name, &server.ServerIPAddress,
	}
}

func assembleTransaction(txn *model.Transaction, account *model.BankAccount, server *model.BankServer) {
	account.BankServerID = server.ID
	account.BankServer = server
	txn.SourceAccountID = account.ID
	txn.SourceAccount = account
}

// GetTransaction retrieves a transaction by its ID, with the source account
// and that account's server embedded.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the transaction to retrieve.
// Returns:
// - A pointer to the retrieved Transaction or a not-found error.
func (d Datasource) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	row := d.Conn.QueryRowContext(ctx, transactionSelect+`
	WHERE t.id = $1
	`, id)

	txn := &model.Transaction{}
	account := &model.BankAccount{}
	server := &model.BankServer{}
	err := row.Scan(transactionScanArgs(txn, account, server)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("transaction with ID '%d' not found", id), err)
		}
		return nil, err
	}

	assembleTransaction(txn, account, server)
	return txn, nil
}

// GetAllTransactions retrieves all transactions in insertion order, each with
// its nested source account and server.
// Returns:
// - A slice of Transaction objects or an error if the query or scan fails.
func (d Datasource) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := d.Conn.QueryContext(ctx, transactionSelect+`
	ORDER BY t.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn := &model.Transaction{}
		account := &model.BankAccount{}
		server := &model.BankServer{}
		err := rows.Scan(transactionScanArgs(txn, account, server)...)
		if err != nil {
			return nil, err
		}
		assembleTransaction(txn, account, server)
		transactions = append(transactions, *txn)
	}

	return transactions, rows.Err()
}

// UpdateTransactionStatus overwrites the status of a transaction with the
// supplied value. The value is not checked against the recognized statuses;
// there is also no read-modify-write wrapping, so concurrent updates resolve
// to whichever write lands last.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the transaction to update.
// - status: The new status value.
// Returns:
// - A not-found error when the ID does not exist, otherwise nil.
func (d Datasource) UpdateTransactionStatus(ctx context.Context, id int64, status string) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE transactions
		SET status = $2
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("transaction with ID '%d' not found", id), nil)
	}

	return nil
}

// DeleteTransaction removes a transaction from the database.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the transaction to delete.
// Returns:
// - A not-found error when the ID does not exist, otherwise nil.
func (d Datasource) DeleteTransaction(ctx context.Context, id int64) error {
	result, err := d.Conn.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("transaction with ID '%d' not found", id), nil)
	}

	return nil
}
