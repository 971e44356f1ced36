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

func TestUpsertPropertyVerified(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	property := schema.Property{
		ID:         uuid.New(),
		UserID:     "owner",
		Address:    "123 Orchard Lane",
		Lat:        38.4412,
		Lng:        -122.7144,
		IsVerified: true,
	}

	a.EXPECT().UpsertProperty("owner", "123 Orchard Lane", 38.4412, -122.7144, schema.Location{
		Latitude:  38.44121,
		Longitude: -122.71441,
	}).Return(&property, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("owner"))
	router.POST("/", s.upsertProperty)

	req := httptest.NewRequest("POST", "/",
		jsonBody(`{"address": "123 Orchard Lane", "lat": 38.4412, "lng": -122.7144}`))
	req.Header.Set("Geo-Position", "38.44121;-122.71441")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, true, jResp["is_verified"])
}

func TestUpsertPropertyTooFar(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	a.EXPECT().UpsertProperty("owner", "123 Orchard Lane", 38.4412, -122.7144, gomock.Any()).
		Return(nil, &store.ProximityError{DistanceMeters: 1204}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("owner"))
	router.POST("/", s.upsertProperty)

	req := httptest.NewRequest("POST", "/",
		jsonBody(`{"address": "123 Orchard Lane", "lat": 38.4412, "lng": -122.7144}`))
	req.Header.Set("Geo-Position", "38.45;-122.70")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(1201), jResp.Code)
	assert.Contains(t, jResp.Message, "1204 meters")
}

func TestUpsertPropertyMissingGeoPosition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("owner"))
	router.POST("/", s.upsertProperty)

	req := httptest.NewRequest("POST", "/",
		jsonBody(`{"address": "123 Orchard Lane", "lat": 38.4412, "lng": -122.7144}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestParseGeoPosition(t *testing.T) {
	lat, lng, err := parseGeoPosition("38.4412;-122.7144")
	assert.NoError(t, err)
	assert.Equal(t, 38.4412, lat)
	assert.Equal(t, -122.7144, lng)

	_, _, err = parseGeoPosition("38.4412")
	assert.Error(t, err)

	_, _, err = parseGeoPosition("north;west")
	assert.Error(t, err)
}
