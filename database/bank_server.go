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

// CreateBankServer inserts a new BankServer into the database.
// Name and address uniqueness is enforced by the table and surfaced as a conflict.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - server: The bank server containing the name and server IP address.
// Returns:
// - model.BankServer: The created server with the assigned identifier.
// - error: A conflict error on duplicate name or address, or any other query error.
func (d Datasource) CreateBankServer(ctx context.Context, server model.BankServer) (model.BankServer, error) {
	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO bank_servers (name, server_ip_address)
		VALUES ($1, $2)
		RETURNING id
	`, server.Name, server.ServerIPAddress).Scan(&server.ID)
	if err != nil {
		return server, postgresError(err, "bank server name and address must be unique")
	}

	return server, nil
}

// GetBankServerByID retrieves a bank server by its ID from the database.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the bank server to retrieve.
// Returns:
// - A pointer to the retrieved BankServer or a not-found error.
func (d Datasource) GetBankServerByID(ctx context.Context, id int64) (*model.BankServer, error) {
	row := d.Conn.QueryRowContext(ctx, `
		SELECT id, name, server_ip_address
		FROM bank_servers WHERE id = $1
	`, id)

	server := &model.BankServer{}
	err := row.Scan(&server.ID, &server.Name, &server.ServerIPAddress)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank server with ID '%d' not found", id), err)
		}
		return nil, err
	}

	return server, nil
}

// GetAllBankServers retrieves all bank servers from the database in insertion order.
// Returns:
// - A slice of BankServer objects or an error if the query or scan fails.
func (d Datasource) GetAllBankServers(ctx context.Context) ([]model.BankServer, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT id, name, server_ip_address
		FROM bank_servers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var servers []model.BankServer
	for rows.Next() {
		server := model.BankServer{}
		err := rows.Scan(&server.ID, &server.Name, &server.ServerIPAddress)
		if err != nil {
			return nil, err
		}
		servers = append(servers, server)
	}

	return servers, rows.Err()
}

// UpdateBankServer overwrites both fields of a bank server. There is no
// partial update.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - server: The server carrying the target ID and the new field values.
// Returns:
// - A not-found error when the ID does not exist, a conflict error on a
//   uniqueness violation, otherwise nil.
func (d Datasource) UpdateBankServer(ctx context.Context, server *model.BankServer) error {
	result, err := d.Conn.ExecContext(ctx, `
		UPDATE bank_servers
		SET name = $2, server_ip_address = $3
		WHERE id = $1
	`, server.ID, server.Name, server.ServerIPAddress)
	if err != nil {
		return postgresError(err, "bank server name and address must be unique")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank server with ID '%d' not found", server.ID), nil)
	}

	return nil
}

// DeleteBankServer removes a bank server. Dependent accounts and their
// transactions go with it through the foreign-key cascade.
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The ID of the bank server to delete.
// Returns:
// - A not-found error when the ID does not exist, otherwise nil.
func (d Datasource) DeleteBankServer(ctx context.Context, id int64) error {
	result, err := d.Conn.ExecContext(ctx, `
		DELETE FROM bank_servers WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("bank server with ID '%d' not found", id), nil)
	}

	return nil
}
