package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/moneyapi/moneyapi/api/model"
	"github.com/moneyapi/moneyapi/internal/apierror"
)

// CreateBankAccount creates an account under an existing bank server. The
// response embeds the full server object.
func (a Api) CreateBankAccount(c *gin.Context) {
	var newAccount model2.CreateBankAccount
	if err := c.ShouldBindJSON(&newAccount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := newAccount.ValidateCreateBankAccount(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	account := newAccount.ToBankAccount()
	resp, err := a.moneyapi.CreateBankAccount(c.Request.Context(), account)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetBankAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := a.moneyapi.GetBankAccountByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAllBankAccounts(c *gin.Context) {
	accounts, err := a.moneyapi.GetAllBankAccounts(c.Request.Context())
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// UpdateBankAccount replaces every writable field, including moving the
// account to a different bank server.
func (a Api) UpdateBankAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload model2.CreateBankAccount
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := payload.ValidateCreateBankAccount(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	account := payload.ToBankAccount()
	account.ID = id
	resp, err := a.moneyapi.UpdateBankAccount(c.Request.Context(), &account)
	if err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a Api) DeleteBankAccount(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.moneyapi.DeleteBankAccount(c.Request.Context(), id); err != nil {
		c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
