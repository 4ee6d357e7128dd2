package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMarshalsAmountAsNumber(t *testing.T) {
	iban := "DE89370400440532013000"
	txn := Transaction{
		ID:              11,
		TransactionType: TypeBankTransfer,
		Amount:          decimal.NewFromFloat(150.75),
		TargetIBAN:      &iban,
		Status:          StatusPending,
	}

	out, err := json.Marshal(txn)
	assert.NoError(t, err)

	assert.Contains(t, string(out), `"amount":150.75`)
	assert.Contains(t, string(out), `"target_iban":"DE89370400440532013000"`)
	// absent optional fields serialize as null, not as empty strings
	assert.Contains(t, string(out), `"target_phone_number":null`)
}

func TestTransactionInternalAccountIDHidden(t *testing.T) {
	txn := Transaction{
		ID:              11,
		SourceAccountID: 3,
		Amount:          decimal.NewFromInt(20),
	}

	out, err := json.Marshal(txn)
	assert.NoError(t, err)

	assert.NotContains(t, string(out), "source_account_id")
	assert.Contains(t, string(out), `"source_account":null`)
}

func TestBankAccountEmbedsServer(t *testing.T) {
	account := BankAccount{
		ID:            3,
		BankServerID:  1,
		BankServer:    &BankServer{ID: 1, Name: "First National", ServerIPAddress: "10.1.4.22"},
		AccountName:   "Ada Operating",
		AccountNumber: "0045812290",
	}

	out, err := json.Marshal(account)
	assert.NoError(t, err)

	assert.Contains(t, string(out), `"bank_server":{"id":1`)
	assert.NotContains(t, string(out), "bank_server_id")
}
