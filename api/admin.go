package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminExpireListings triggers the listing expiry sweep through the job
// pool.
func (s *Server) adminExpireListings(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_listings",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
