package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitshare/fruitshare-api/store"
)

// listMessages returns the chat thread of a request for one of its two
// parties, oldest first, together with the request itself. The embedded
// listing is projected for the viewer like everywhere else.
func (s *Server) listMessages(c *gin.Context) {
	requester := c.GetString("requester")
	requestID := c.Param("requestID")

	req, listing, err := s.store.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	messages, err := s.store.ListMessages(requester, requestID)
	if err != nil {
		if err == store.ErrThreadForbidden {
			abortWithEncoding(c, http.StatusForbidden, errorThreadForbidden)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request":  requestDetailView(requester, store.RequestDetail{Request: *req, Listing: *listing}, false),
		"messages": messages,
	})
}

// postMessage appends a message to the thread of a request
func (s *Server) postMessage(c *gin.Context) {
	requester := c.GetString("requester")
	requestID := c.Param("requestID")

	var params struct {
		Content string `json:"content"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	message, err := s.store.AppendMessage(requester, requestID, params.Content)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrThreadForbidden:
			abortWithEncoding(c, http.StatusForbidden, errorThreadForbidden)
		case store.ErrEmptyMessage:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessage)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, message)
}
