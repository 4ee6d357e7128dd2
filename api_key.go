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

func (m *MoneyAPI) CreateAPIKey(ctx context.Context) (*model.APIKey, error) {
	return m.datasource.CreateAPIKey(ctx)
}

func (m *MoneyAPI) GetAPIKeyByKey(ctx context.Context, key string) (*model.APIKey, error) {
	return m.datasource.GetAPIKeyByKey(ctx, key)
}

func (m *MoneyAPI) ListAPIKeys(ctx context.Context) ([]*model.APIKey, error) {
	return m.datasource.ListAPIKeys(ctx)
}

func (m *MoneyAPI) TouchAPIKey(ctx context.Context, id int64) error {
	return m.datasource.TouchAPIKey(ctx, id)
}
