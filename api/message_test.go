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

func TestPostMessageThreadForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	requestID := uuid.New().String()
	a.EXPECT().AppendMessage("stranger", requestID, "can I come by?").
		Return(nil, store.ErrThreadForbidden).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("stranger"))
	router.POST("/:requestID/messages", s.postMessage)

	req := httptest.NewRequest("POST", "/"+requestID+"/messages",
		jsonBody(`{"content": "can I come by?"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(1500), jResp.Code)
}

func TestPostMessageEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	requestID := uuid.New().String()
	a.EXPECT().AppendMessage("picker", requestID, "   ").
		Return(nil, store.ErrEmptyMessage).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("picker"))
	router.POST("/:requestID/messages", s.postMessage)

	req := httptest.NewRequest("POST", "/"+requestID+"/messages",
		jsonBody(`{"content": "   "}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestPostMessageAppends(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	message := schema.Message{
		ID:              uuid.New(),
		PickupRequestID: requestID,
		SenderID:        "picker",
		Content:         "I can come by at 5",
	}

	a.EXPECT().AppendMessage("picker", requestID.String(), "I can come by at 5").
		Return(&message, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("picker"))
	router.POST("/:requestID/messages", s.postMessage)

	req := httptest.NewRequest("POST", "/"+requestID.String()+"/messages",
		jsonBody(`{"content": "I can come by at 5"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "I can come by at 5", jResp["content"])
	assert.Equal(t, "picker", jResp["sender_id"])
}

// the thread embeds the request and its listing, so the listing must go
// through the same projection as everywhere else
func TestListMessagesEmbeddedListingProjected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockFruitShareCore(ctl)
	s := Server{store: a}

	listing := testListing("owner")
	request := schema.PickupRequest{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		RequesterID: "picker",
		Status:      schema.RequestPending,
	}

	a.EXPECT().GetRequest(request.ID.String()).Return(&request, &listing, nil).Times(1)
	a.EXPECT().ListMessages("picker", request.ID.String()).Return([]schema.Message{
		{
			ID:              uuid.New(),
			PickupRequestID: request.ID,
			SenderID:        "picker",
			Content:         "still available?",
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(testRequester("picker"))
	router.GET("/:requestID/messages", s.listMessages)

	req := httptest.NewRequest("GET", "/"+request.ID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Request struct {
			Listing map[string]interface{} `json:"listing"`
		} `json:"request"`
		Messages []map[string]interface{} `json:"messages"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.Messages, 1)

	_, present := jResp.Request.Listing["full_address"]
	assert.False(t, present, "full address leaked through the message thread")
}
