package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitshare/fruitshare-api/schema"
	"github.com/fruitshare/fruitshare-api/store"
)

// accountRegister is the API for registering a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	requester := c.GetString("requester")

	var params struct {
		Email       string `json:"email" binding:"required"`
		DisplayName string `json:"display_name"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	u, err := s.store.CreateAccount(requester, params.Email, params.DisplayName)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": u,
	})
}

// accountDetail is the API to query the caller's account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":           account,
		"positivity_ratio": account.PositivityRatio(),
	})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.DeleteAccount(requester); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
