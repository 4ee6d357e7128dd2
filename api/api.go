package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moneyapi/moneyapi"
	"github.com/moneyapi/moneyapi/api/middleware"
)

type Api struct {
	moneyapi *moneyapi.MoneyAPI
	router   *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.GET("/bank-servers", a.GetAllBankServers)
	router.GET("/bank-servers/:id", a.GetBankServer)
	router.POST("/bank-servers", a.CreateBankServer)
	router.PUT("/bank-servers/:id", a.UpdateBankServer)
	router.DELETE("/bank-servers/:id", a.DeleteBankServer)

	router.GET("/bank-accounts", a.GetAllBankAccounts)
	router.GET("/bank-accounts/:id", a.GetBankAccount)
	router.POST("/bank-accounts", a.CreateBankAccount)
	router.PUT("/bank-accounts/:id", a.UpdateBankAccount)
	router.DELETE("/bank-accounts/:id", a.DeleteBankAccount)

	router.GET("/transactions", a.GetAllTransactions)
	router.GET("/transactions/:id", a.GetTransaction)
	router.POST("/transactions", a.RecordTransaction)
	router.PUT("/transactions/:id/status", a.UpdateTransactionStatus)
	router.DELETE("/transactions/:id", a.DeleteTransaction)

	return a.router
}

func NewAPI(service *moneyapi.MoneyAPI) *Api {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.NewAuthMiddleware(service).Authenticate())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{moneyapi: service, router: r}
}

// parseID reads the :id route param. Anything non-numeric is rejected with a
// 400 before the storage layer is involved.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}
