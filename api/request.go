package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/fruitshare/fruitshare-api/schema"
	"github.com/fruitshare/fruitshare-api/store"
)

// requestView is the API shape of a pickup request in list and detail
// responses. The embedded listing is already projected for the viewer.
type requestView struct {
	schema.PickupRequest
	Listing   interface{}  `json:"listing"`
	Requester *schema.User `json:"requester,omitempty"`
}

// requestDetailView projects one request for a viewer. The embedded
// listing goes through the same disclosure check as the listing detail
// endpoint, so an address never leaks through an embedding.
func requestDetailView(viewerID string, detail store.RequestDetail, withRequester bool) requestView {
	view := requestView{
		PickupRequest: detail.Request,
		Listing: listingView(viewerID, detail.Listing,
			detail.Request.RequesterID == viewerID && detail.Request.Status == schema.RequestAccepted),
	}

	if withRequester {
		requester := detail.Requester
		view.Requester = &requester
	}

	return view
}

// createRequest is the API for claiming a pickup against a listing
func (s *Server) createRequest(c *gin.Context) {
	logger := log.WithField("api", "createRequest")
	requester := c.GetString("requester")
	listingID := c.Param("listingID")

	var params struct {
		Message string `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	req, err := s.store.CreateRequest(listingID, requester, params.Message)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		case store.ErrListingNotActive:
			abortWithEncoding(c, http.StatusBadRequest, errorListingNotActive)
		case store.ErrSelfRequest:
			abortWithEncoding(c, http.StatusBadRequest, errorSelfRequest)
		case store.ErrDuplicateRequest:
			abortWithEncoding(c, http.StatusBadRequest, errorDuplicateRequest)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "notify_request_created",
		Args: []tasks.Arg{
			{Type: "string", Value: req.ID.String()},
		},
	}); err != nil {
		logger.WithError(err).Error("enqueue request notification")
	}

	c.JSON(http.StatusCreated, req)
}

// listListingRequests returns all requests against one of the caller's
// listings.
func (s *Server) listListingRequests(c *gin.Context) {
	requester := c.GetString("requester")
	listingID := c.Param("listingID")

	details, err := s.store.ListListingRequests(requester, listingID)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		case store.ErrListingNotOwned:
			abortWithEncoding(c, http.StatusForbidden, errorListingNotOwned)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	views := make([]requestView, 0, len(details))
	for _, d := range details {
		views = append(views, requestDetailView(requester, d, true))
	}

	c.JSON(http.StatusOK, gin.H{"requests": views})
}

// listRequests returns the caller's requests. `type=incoming` lists
// requests made against the caller's listings, `type=outgoing` (the
// default) lists the requests the caller has made.
func (s *Server) listRequests(c *gin.Context) {
	requester := c.GetString("requester")

	var (
		details       []store.RequestDetail
		err           error
		withRequester bool
	)

	switch c.Query("type") {
	case "incoming":
		details, err = s.store.ListIncomingRequests(requester)
		withRequester = true
	case "outgoing", "":
		details, err = s.store.ListOutgoingRequests(requester)
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	views := make([]requestView, 0, len(details))
	for _, d := range details {
		views = append(views, requestDetailView(requester, d, withRequester))
	}

	c.JSON(http.StatusOK, gin.H{"requests": views})
}

// getRequest returns one request, its listing projected for the viewer.
// Only the two parties may see it.
func (s *Server) getRequest(c *gin.Context) {
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

	if !schema.IsParty(requester, *req, *listing) {
		abortWithEncoding(c, http.StatusForbidden, errorTransitionForbidden)
		return
	}

	c.JSON(http.StatusOK, requestDetailView(requester, store.RequestDetail{
		Request: *req,
		Listing: *listing,
	}, false))
}

// patchRequest moves a request through its lifecycle. Completing a
// pickup additionally requires the picked up quantity and a rating for
// the listing owner.
func (s *Server) patchRequest(c *gin.Context) {
	logger := log.WithField("api", "patchRequest")
	requester := c.GetString("requester")
	requestID := c.Param("requestID")

	var params struct {
		Status           schema.RequestStatus `json:"status" binding:"required"`
		PickedUpQuantity string               `json:"picked_up_quantity"`
		Rating           schema.Rating        `json:"rating"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var completion *schema.Completion
	if params.Status == schema.RequestCompleted {
		completion = &schema.Completion{
			PickedUpQuantity: params.PickedUpQuantity,
			Rating:           params.Rating,
		}
	}

	req, err := s.store.TransitionRequest(requester, requestID, params.Status, completion)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrTransitionForbidden:
			abortWithEncoding(c, http.StatusForbidden, errorTransitionForbidden)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition)
		case store.ErrIncompleteCompletion:
			abortWithEncoding(c, http.StatusBadRequest, errorIncompleteCompletion)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if params.Status == schema.RequestAccepted || params.Status == schema.RequestDeclined {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_decided",
			Args: []tasks.Arg{
				{Type: "string", Value: req.ID.String()},
				{Type: "string", Value: string(params.Status)},
			},
		}); err != nil {
			logger.WithError(err).Error("enqueue decision notification")
		}
	}

	c.JSON(http.StatusOK, req)
}
