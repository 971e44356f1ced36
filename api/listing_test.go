package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fruitshare/fruitshare-api/api/mocks"
	"github.com/fruitshare/fruitshare-api/schema"
	"github.com/fruitshare/fruitshare-api/store"
)

func testRequester(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != "" {
			c.Set("requester", id)
		}
		c.Next()
	}
}

func testListing(owner string) schema.Listing {
	return schema.Listing{
		ID:             uuid.New(),
		UserID:         owner,
		FruitType:      "lemon",
		Quantity:       "3 bags",
		FullAddress:    "123 Orchard Lane, Santa Rosa, CA 95401",
		City:           "Santa Rosa",
		State:          "CA",
		ZipCode:        "95401",
		ApproximateLat: 38.44121234,
		ApproximateLng: -122.71441234,
		Status:         schema.ListingActive,
	}
}

func TestGetListingHidesAddressFromStranger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	a.EXPECT().GetListing(listing.ID.String()).Return(&listing, nil).Times(1)
	a.EXPECT().HasAcceptedRequest(listing.ID.String(), "stranger").Return(false, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("stranger"))
	router.GET("/:listingID", s.getListing)

	req := httptest.NewRequest("GET", "/"+listing.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))

	_, present := jResp["full_address"]
	assert.False(t, present, "full address leaked to a stranger")
	assert.Equal(t, "Santa Rosa", jResp["city"])
}

func TestGetListingShowsAddressToOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	a.EXPECT().GetListing(listing.ID.String()).Return(&listing, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("owner"))
	router.GET("/:listingID", s.getListing)

	req := httptest.NewRequest("GET", "/"+listing.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, listing.FullAddress, jResp["full_address"])
}

func TestGetListingShowsAddressToAcceptedRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	a.EXPECT().GetListing(listing.ID.String()).Return(&listing, nil).Times(1)
	a.EXPECT().HasAcceptedRequest(listing.ID.String(), "picker").Return(true, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("picker"))
	router.GET("/:listingID", s.getListing)

	req := httptest.NewRequest("GET", "/"+listing.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, listing.FullAddress, jResp["full_address"])
}

func TestGetListingAnonymous(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	a.EXPECT().GetListing(listing.ID.String()).Return(&listing, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/:listingID", s.getListing)

	req := httptest.NewRequest("GET", "/"+listing.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))

	_, present := jResp["full_address"]
	assert.False(t, present, "full address leaked to an anonymous viewer")
}

func TestListListingsAlwaysPublic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	a.EXPECT().ListActiveListings("").Return([]schema.Listing{
		testListing("owner"),
		testListing("owner"),
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("owner"))
	router.GET("/", s.listListings)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp, 2)

	for _, l := range jResp {
		_, present := l["full_address"]
		assert.False(t, present, "full address leaked through the browse feed")
	}
}

func TestListListingsNearby(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: a, mongoStore: m}

	listing := testListing("owner")
	ids := []string{listing.ID.String()}

	m.EXPECT().NearbyListingIDs(5000, schema.Location{
		Latitude:  38.44,
		Longitude: -122.71,
	}).Return(ids, nil).Times(1)
	a.EXPECT().ListListingsByIDs(ids).Return([]schema.Listing{listing}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listListings)

	req := httptest.NewRequest("GET", "/?lat=38.44&lng=-122.71&distance=5000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp, 1)
	assert.Equal(t, listing.ID.String(), jResp[0]["id"])

	_, present := jResp[0]["full_address"]
	assert.False(t, present, "full address leaked through the nearby search")
}

func TestUpdateListingNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	a.EXPECT().UpdateListingStatus("stranger", listing.ID.String(), schema.ListingCompleted).
		Return(store.ErrListingNotOwned).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("stranger"))
	router.PATCH("/:listingID", s.updateListing)

	req := httptest.NewRequest("PATCH", "/"+listing.ID.String(),
		jsonBody(`{"status": "completed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
