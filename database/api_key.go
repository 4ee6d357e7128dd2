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
	"errors"
	"time"

	"github.com/moneyapi/moneyapi/model"
)

var (
	ErrAPIKeyNotFound = errors.New("api key not found")
)

// CreateAPIKey generates a fresh key value and stores it. The value comes from
// model.NewAPIKey at insert time, so no two rows ever share a key.
//
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
//
// Returns:
// - *model.APIKey: The created API key with its generated value and identifier.
// - error: An error if the database insertion fails.
func (d Datasource) CreateAPIKey(ctx context.Context) (*model.APIKey, error) {
	apiKey := model.NewAPIKey()

	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO api_keys (api_key, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, apiKey.Key, apiKey.CreatedAt, apiKey.UpdatedAt).Scan(&apiKey.ID)
	if err != nil {
		return nil, err
	}

	return apiKey, nil
}

// GetAPIKeyByKey retrieves an API key record using its key string. This is
// used by the authentication middleware for bearer-token comparison.
//
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - key: The API key string to search for in the database.
//
// Returns:
// - *model.APIKey: The API key record if found.
// - error: Returns ErrAPIKeyNotFound if the key doesn't exist, or other database errors.
func (d Datasource) GetAPIKeyByKey(ctx context.Context, key string) (*model.APIKey, error) {
	apiKey := &model.APIKey{}
	err := d.Conn.QueryRowContext(ctx, `
		SELECT id, api_key, created_at, updated_at
		FROM api_keys
		WHERE api_key = $1
	`, key).Scan(
		&apiKey.ID,
		&apiKey.Key,
		&apiKey.CreatedAt,
		&apiKey.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAPIKeyNotFound
	}
	if err != nil {
		return nil, err
	}

	return apiKey, nil
}

// ListAPIKeys retrieves all stored API keys, newest first.
//
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
//
// Returns:
// - []*model.APIKey: A slice of API key records.
// - error: An error if the database query fails or scanning fails.
func (d Datasource) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	rows, err := d.Conn.QueryContext(ctx, `
		SELECT id, api_key, created_at, updated_at
		FROM api_keys
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var apiKeys []*model.APIKey
	for rows.Next() {
		apiKey := &model.APIKey{}
		err := rows.Scan(
			&apiKey.ID,
			&apiKey.Key,
			&apiKey.CreatedAt,
			&apiKey.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		apiKeys = append(apiKeys, apiKey)
	}

	return apiKeys, rows.Err()
}

// TouchAPIKey updates the updated_at timestamp for an API key to the current
// time. Called during authentication to track key usage.
//
// Parameters:
// - ctx: Context for managing the request lifecycle and cancellation.
// - id: The identifier of the API key to update.
//
// Returns:
// - error: An error if the database update operation fails.
func (d Datasource) TouchAPIKey(ctx context.Context, id int64) error {
	_, err := d.Conn.ExecContext(ctx, `
		UPDATE api_keys
		SET updated_at = $1
		WHERE id = $2
	`, time.Now(), id)
	return err
}
