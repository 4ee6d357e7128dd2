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
	"github.com/moneyapi/moneyapi/database"
)

// MoneyAPI represents the main struct for the MoneyAPI application. It holds
// no state beyond the datasource; every request is a synchronous round trip
// to storage.
type MoneyAPI struct {
	datasource database.IDataSource
}

// NewMoneyAPI initializes a new instance of MoneyAPI with the provided
// database datasource.
//
// Parameters:
// - db database.IDataSource: The datasource for database operations.
//
// Returns:
// - *MoneyAPI: A pointer to the newly created MoneyAPI instance.
// - error: An error if any of the initialization steps fail.
func NewMoneyAPI(db database.IDataSource) (*MoneyAPI, error) {
	return &MoneyAPI{datasource: db}, nil
}
