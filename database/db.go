package database

import (
	"database/sql"
	"sync"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/moneyapi/moneyapi/config"
	"github.com/moneyapi/moneyapi/internal/apierror"
)

// Declare a package-level variable to hold the singleton instance.
// Ensure the instance is not accessible outside the package.
var instance *Datasource
var once sync.Once

type Datasource struct {
	Conn *sql.DB
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	con, err := GetDBConnection(configuration)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// GetDBConnection provides a global access point to the instance and initializes it if it's not already.
func GetDBConnection(configuration *config.Configuration) (*Datasource, error) {
	var err error
	once.Do(func() {
		con, errConn := ConnectDB(configuration.DataSource.Dns)
		if errConn != nil {
			err = errConn
			return
		}
		instance = &Datasource{Conn: con}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func ConnectDB(dns string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	err = db.Ping()
	if err != nil {
		logrus.Errorf("database connection error ❌: %v", err)
		return nil, errors.Wrap(err, "pinging database")
	}
	err = createBankServerTable(db)
	if err != nil {
		return nil, err
	}
	err = createBankAccountTable(db)
	if err != nil {
		return nil, err
	}
	err = createTransactionTable(db)
	if err != nil {
		return nil, err
	}
	err = createAPIKeyTable(db)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// postgresError translates driver errors into the API error taxonomy.
// 23505 is unique_violation, 23503 is foreign_key_violation.
func postgresError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return apierror.NewAPIError(apierror.ErrConflict, message, err)
		case "23503":
			return apierror.NewAPIError(apierror.ErrInvalidInput, message, err)
		}
	}
	return err
}

// createBankServerTable creates a PostgreSQL table for the BankServer struct
func createBankServerTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bank_servers (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			server_ip_address TEXT NOT NULL UNIQUE
		)
	`)
	if err != nil {
		logrus.Errorf("Error creating bank_servers table: %v", err)
	}
	return err
}

// createBankAccountTable creates a PostgreSQL table for the BankAccount struct
func createBankAccountTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bank_accounts (
			id SERIAL PRIMARY KEY,
			bank_server_id BIGINT NOT NULL REFERENCES bank_servers(id) ON DELETE CASCADE,
			account_name TEXT NOT NULL,
			account_number TEXT NOT NULL
		)
	`)
	if err != nil {
		logrus.Errorf("Error creating bank_accounts table: %v", err)
	}
	return err
}

// createTransactionTable creates a PostgreSQL table for the Transaction struct.
// The status column carries no CHECK constraint; the stored value is whatever
// the caller last wrote.
func createTransactionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			transaction_type TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			source_account_id BIGINT NOT NULL REFERENCES bank_accounts(id) ON DELETE CASCADE,
			target_iban TEXT,
			target_swift_code TEXT,
			target_bank_account_number TEXT,
			target_bank_name TEXT,
			target_phone_number TEXT,
			target_country TEXT,
			provider TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		logrus.Errorf("Error creating transactions table: %v", err)
	}
	return err
}

// createAPIKeyTable creates a PostgreSQL table for the APIKey struct
func createAPIKeyTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS api_keys (
			id SERIAL PRIMARY KEY,
			api_key TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		logrus.Errorf("Error creating api_keys table: %v", err)
	}
	return err
}
