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

	"github.com/moneyapi/moneyapi/model"
)

func (m *MoneyAPI) CreateBankServer(ctx context.Context, server model.BankServer) (model.BankServer, error) {
	return m.datasource.CreateBankServer(ctx, server)
}

func (m *MoneyAPI) GetAllBankServers(ctx context.Context) ([]model.BankServer, error) {
	return m.datasource.GetAllBankServers(ctx)
}

func (m *MoneyAPI) GetBankServerByID(ctx context.Context, id int64) (*model.BankServer, error) {
	return m.datasource.GetBankServerByID(ctx, id)
}

// UpdateBankServer overwrites both fields of the server identified by
// server.ID and returns the result.
func (m *MoneyAPI) UpdateBankServer(ctx context.Context, server *model.BankServer) (*model.BankServer, error) {
	if err := m.datasource.UpdateBankServer(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func (m *MoneyAPI) DeleteBankServer(ctx context.Context, id int64) error {
	return m.datasource.DeleteBankServer(ctx, id)
}
