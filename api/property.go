package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitshare/fruitshare-api/store"
)

// getProperty returns the caller's verified property
func (s *Server) getProperty(c *gin.Context) {
	requester := c.GetString("requester")

	property, err := s.store.GetProperty(requester)
	if err != nil {
		if err == store.ErrPropertyNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPropertyNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// upsertProperty creates or replaces the caller's single property. The
// claimed coordinate is checked against the live GPS reading from the
// Geo-Position header before anything is persisted.
func (s *Server) upsertProperty(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Address string   `json:"address" binding:"required"`
		Lat     *float64 `json:"lat" binding:"required"`
		Lng     *float64 `json:"lng" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	live, err := liveGeoPosition(c.GetHeader("Geo-Position"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	property, err := s.store.UpsertProperty(requester, params.Address, *params.Lat, *params.Lng, *live)
	if err != nil {
		if proximity, ok := err.(*store.ProximityError); ok {
			resp := errorPropertyTooFar
			resp.Message = fmt.Sprintf("%s: measured distance %.0f meters", resp.Message, proximity.DistanceMeters)
			abortWithEncoding(c, http.StatusBadRequest, resp, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// deleteProperty removes the caller's property
func (s *Server) deleteProperty(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.DeleteProperty(requester); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
