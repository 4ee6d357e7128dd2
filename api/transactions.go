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

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/moneyapi/moneyapi/api/model"
	"github.com/moneyapi/moneyapi/internal/apierror"
)

// RecordTransaction records a new transfer intent. Whatever status the caller
// sends, the stored transaction starts out pending.
func (a Api) RecordTransaction(c *gin.Context) {
	var newTransaction model2.RecordTransaction
	if err := c.ShouldBindJSON(&newTransaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newTransaction.ValidateRecordTransaction(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	txn := newTransaction.ToTransaction()
	resp, err := a.moneyapi.RecordTransaction(c.Request.Context(), txn)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := a.moneyapi.GetTransaction(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllTransactions(c *gin.Context) {
	transactions, err := a.moneyapi.GetAllTransactions(c.Request.Context())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// UpdateTransactionStatus overwrites the status of an existing transaction
// and returns the refreshed record.
func (a Api) UpdateTransactionStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload model2.UpdateTransactionStatus
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := payload.ValidateUpdateTransactionStatus(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.moneyapi.UpdateTransactionStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.moneyapi.DeleteTransaction(c.Request.Context(), id); err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
