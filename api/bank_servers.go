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

// CreateBankServer creates a new bank server from the request payload.
func (a Api) CreateBankServer(c *gin.Context) {
	var newServer model2.CreateBankServer
	if err := c.ShouldBindJSON(&newServer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newServer.ValidateCreateBankServer(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	server := newServer.ToBankServer()
	resp, err := a.moneyapi.CreateBankServer(c.Request.Context(), server)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBankServer fetches a single bank server by id.
func (a Api) GetBankServer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := a.moneyapi.GetBankServerByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAllBankServers returns every bank server, oldest first.
func (a Api) GetAllBankServers(c *gin.Context) {
	servers, err := a.moneyapi.GetAllBankServers(c.Request.Context())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, servers)
}

// UpdateBankServer replaces the name and address of an existing bank server.
func (a Api) UpdateBankServer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload model2.CreateBankServer
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := payload.ValidateCreateBankServer(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	server := payload.ToBankServer()
	server.ID = id
	resp, err := a.moneyapi.UpdateBankServer(c.Request.Context(), &server)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBankServer removes a bank server. Accounts and transactions under it
// go with it.
func (a Api) DeleteBankServer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.moneyapi.DeleteBankServer(c.Request.Context(), id); err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
