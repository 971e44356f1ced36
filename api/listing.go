package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/fruitshare/fruitshare-api/external/geocoding"
	"github.com/fruitshare/fruitshare-api/geo"
	"github.com/fruitshare/fruitshare-api/schema"
	"github.com/fruitshare/fruitshare-api/store"
)

const dateLayout = "2006-01-02"

// listingView projects a listing for a viewer. It is the single place
// where the full address may survive a read, so every path embedding a
// listing goes through it.
func listingView(viewerID string, listing schema.Listing, hasAcceptedRequest bool) interface{} {
	if schema.CanSeeExactAddress(viewerID, listing, hasAcceptedRequest) {
		return listing
	}

	return listing.Public()
}

// publicListings projects a slice of listings for the browse feed.
// Browsing is always the public projection, whoever asks.
func publicListings(listings []schema.Listing) []schema.PublicListing {
	result := make([]schema.PublicListing, 0, len(listings))
	for _, l := range listings {
		result = append(result, l.Public())
	}
	return result
}

// createListing is the API for advertising surplus fruit. The address is
// geocoded, fuzzed once and persisted; the freshness prediction runs in
// the background.
func (s *Server) createListing(c *gin.Context) {
	logger := log.WithField("api", "createListing")
	requester := c.GetString("requester")

	var params struct {
		FruitType      string `json:"fruit_type" binding:"required"`
		Quantity       string `json:"quantity" binding:"required"`
		Description    string `json:"description"`
		FullAddress    string `json:"full_address" binding:"required"`
		AvailableStart string `json:"available_start" binding:"required"`
		AvailableEnd   string `json:"available_end" binding:"required"`
		PickupNotes    string `json:"pickup_notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	availableStart, err := time.Parse(dateLayout, params.AvailableStart)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	availableEnd, err := time.Parse(dateLayout, params.AvailableEnd)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	property, err := s.store.GetProperty(requester)
	if err != nil {
		if err == store.ErrPropertyNotFound {
			abortWithEncoding(c, http.StatusBadRequest, errorPropertyRequired)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if !property.IsVerified {
		abortWithEncoding(c, http.StatusBadRequest, errorPropertyRequired)
		return
	}

	place, err := s.geocoder.Geocode(c, params.FullAddress)
	if err != nil {
		logger.WithError(err).Error("geocode address")
		if err == geocoding.ErrAddressNotFound {
			abortWithEncoding(c, http.StatusBadRequest, errorAddressNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusServiceUnavailable, errorAddressNotFound, err)
		return
	}

	fuzzyLat, fuzzyLng := geo.Fuzzy(place.Lat, place.Lng)

	listing, err := s.store.CreateListing(store.ListingParams{
		OwnerID:        requester,
		FruitType:      params.FruitType,
		Quantity:       params.Quantity,
		Description:    params.Description,
		FullAddress:    params.FullAddress,
		City:           place.City,
		State:          place.State,
		ZipCode:        place.ZipCode,
		ApproximateLat: fuzzyLat,
		ApproximateLng: fuzzyLng,
		AvailableStart: availableStart,
		AvailableEnd:   availableEnd,
		PickupNotes:    params.PickupNotes,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "predict_listing_expiration",
		Args: []tasks.Arg{
			{Type: "string", Value: listing.ID.String()},
		},
	}); err != nil {
		logger.WithError(err).Error("enqueue freshness prediction")
	}

	// the creator is the owner, so the full view applies
	c.JSON(http.StatusCreated, listing)
}

// listListings is the public browse API. With lat/lng parameters it
// serves the nearby map lookup through the geo index; otherwise it
// serves the feed, optionally filtered by fruit type. Both variants
// return the public projection only.
func (s *Server) listListings(c *gin.Context) {
	latParam := c.Query("lat")
	lngParam := c.Query("lng")

	if latParam != "" && lngParam != "" {
		s.listNearbyListings(c, latParam, lngParam)
		return
	}

	listings, err := s.store.ListActiveListings(c.Query("fruit_type"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, publicListings(listings))
}

func (s *Server) listNearbyListings(c *gin.Context, latParam, lngParam string) {
	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	distance := 10000
	if d := c.Query("distance"); d != "" {
		if distance, err = strconv.Atoi(d); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
	}

	ids, err := s.mongoStore.NearbyListingIDs(distance, schema.Location{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	listings, err := s.store.ListListingsByIDs(ids)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, publicListings(listings))
}

// getListing returns one listing, projected for the viewer
func (s *Server) getListing(c *gin.Context) {
	id := c.Param("listingID")
	viewer := c.GetString("requester")

	listing, err := s.store.GetListing(id)
	if err != nil {
		if err == store.ErrListingNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	accepted := false
	if viewer != "" && viewer != listing.UserID {
		if accepted, err = s.store.HasAcceptedRequest(id, viewer); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
	}

	c.JSON(http.StatusOK, listingView(viewer, *listing, accepted))
}

// updateListing lets the owner close out an active listing
func (s *Server) updateListing(c *gin.Context) {
	id := c.Param("listingID")
	requester := c.GetString("requester")

	var params struct {
		Status schema.ListingStatus `json:"status" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.UpdateListingStatus(requester, id, params.Status); err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorListingNotFound)
		case store.ErrListingNotOwned:
			abortWithEncoding(c, http.StatusForbidden, errorListingNotOwned)
		case store.ErrListingNotActive:
			abortWithEncoding(c, http.StatusBadRequest, errorListingNotActive)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
