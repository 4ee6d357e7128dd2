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
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/moneyapi/moneyapi/internal/apierror"
	"github.com/moneyapi/moneyapi/model"
)

func expectAccountLookup(mock sqlmock.Sqlmock, accountID int64) {
	mock.ExpectQuery("FROM bank_accounts a").
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "account_name", "account_number",
			"id", "name", "server_ip_address",
		}).AddRow(accountID, "Ada Operating", "0045812290", 1, "First National", "10.1.4.22"))
}

func TestRecordTransactionForcesPending(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	iban := "DE89370400440532013000"
	swift := "COBADEFFXXX"
	txn := &model.Transaction{
		TransactionType: model.TypeBankTransfer,
		Amount:          decimal.NewFromFloat(150.75),
		SourceAccountID: 3,
		TargetIBAN:      &iban,
		TargetSwiftCode: &swift,
		Status:          model.StatusSuccess, // must be discarded
	}

	expectAccountLookup(mock, 3)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(txn.TransactionType, txn.Amount, txn.SourceAccountID,
			&iban, &swift, nil, nil, nil, nil, nil,
			model.StatusPending, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	result, err := d.RecordTransaction(context.Background(), txn)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), result.ID)
	assert.Equal(t, model.StatusPending, result.Status)
	assert.WithinDuration(t, time.Now(), result.CreatedAt, time.Second)
	assert.NotNil(t, result.SourceAccount)
	assert.Equal(t, "Ada Operating", result.SourceAccount.AccountName)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRecordTransactionMissingAccount(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	txn := &model.Transaction{
		TransactionType: model.TypeMobileTransfer,
		Amount:          decimal.NewFromInt(20),
		SourceAccountID: 99,
	}

	mock.ExpectQuery("FROM bank_accounts a").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "account_name", "account_number",
			"id", "name", "server_ip_address",
		}))

	_, err = d.RecordTransaction(context.Background(), txn)

	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func transactionColumns() []string {
	return []string{
		"id", "transaction_type", "amount",
		"target_iban", "target_swift_code", "target_bank_account_number", "target_bank_name",
		"target_phone_number", "target_country", "provider",
		"status", "created_at",
		"id", "account_name", "account_number",
		"id", "name", "server_ip_address",
	}
}

func TestGetTransaction(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	createdAt := time.Now()
	mock.ExpectQuery("FROM transactions t").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()).
			AddRow(11, "MOBILE", "20.00",
				nil, nil, nil, nil,
				"+254700000001", "KE", "m-pesa",
				"pending", createdAt,
				3, "Ada Operating", "0045812290",
				1, "First National", "10.1.4.22"))

	result, err := d.GetTransaction(context.Background(), 11)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), result.ID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, result.TargetIBAN)
	assert.NotNil(t, result.TargetPhoneNumber)
	assert.Equal(t, "+254700000001", *result.TargetPhoneNumber)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, int64(3), result.SourceAccountID)
	assert.Equal(t, "First National", result.SourceAccount.BankServer.Name)
}

func TestGetAllTransactions(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	createdAt := time.Now()
	rows := sqlmock.NewRows(transactionColumns()).
		AddRow(11, "BANK", "150.75",
			"DE89370400440532013000", "COBADEFFXXX", nil, nil,
			nil, nil, nil,
			"pending", createdAt,
			3, "Ada Operating", "0045812290",
			1, "First National", "10.1.4.22").
		AddRow(12, "MOBILE", "20.00",
			nil, nil, nil, nil,
			"+254700000001", "KE", "m-pesa",
			"success", createdAt,
			3, "Ada Operating", "0045812290",
			1, "First National", "10.1.4.22")

	mock.ExpectQuery("FROM transactions t").WillReturnRows(rows)

	result, err := d.GetAllTransactions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "BANK", result[0].TransactionType)
	assert.Equal(t, "success", result[1].Status)
}

func TestUpdateTransactionStatus(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	mock.ExpectExec("UPDATE transactions").
		WithArgs(int64(11), "failed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	createdAt := time.Now()
	mock.ExpectQuery("FROM transactions t").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(transactionColumns()).
			AddRow(11, "BANK", "150.75",
				"DE89370400440532013000", "COBADEFFXXX", nil, nil,
				nil, nil, nil,
				"failed", createdAt,
				3, "Ada Operating", "0045812290",
				1, "First National", "10.1.4.22"))

	result, err := d.UpdateTransactionStatus(context.Background(), 11, "failed")

	assert.NoError(t, err)
	assert.Equal(t, "failed", result.Status)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestUpdateTransactionStatusNotFound(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	mock.ExpectExec("UPDATE transactions").
		WithArgs(int64(42), "success").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = d.UpdateTransactionStatus(context.Background(), 42, "success")

	assert.Error(t, err)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNotFound, apiErr.Code)
}

func TestDeleteTransaction(t *testing.T) {
	datasource, mock, err := newTestDataSource()
	if err != nil {
		t.Fatalf("Error creating test data source: %s", err)
	}

	d, err := NewMoneyAPI(datasource)
	if err != nil {
		t.Fatalf("Error creating service instance: %s", err)
	}

	mock.ExpectExec("DELETE FROM transactions").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = d.DeleteTransaction(context.Background(), 11)
	assert.NoError(t, err)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
