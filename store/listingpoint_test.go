package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fruitshare/fruitshare-api/schema"
)

type ListingPointTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewListingPointTestSuite(connURI, dbName string) *ListingPointTestSuite {
	return &ListingPointTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ListingPointTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *ListingPointTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestNearbyListingIDs checks that listing points are returned ordered
// from nearest to farthest and that the distance bound holds
func (s *ListingPointTestSuite) TestNearbyListingIDs() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// downtown Santa Rosa
	center := schema.Location{Latitude: 38.4404, Longitude: -122.7141}

	s.NoError(store.AddListingPoint("listing-near", schema.Location{
		Latitude:  38.4410,
		Longitude: -122.7150,
	}, "lemon"))
	s.NoError(store.AddListingPoint("listing-farther", schema.Location{
		Latitude:  38.4500,
		Longitude: -122.7000,
	}, "plum"))
	s.NoError(store.AddListingPoint("listing-another-town", schema.Location{
		Latitude:  38.2919,
		Longitude: -122.4580,
	}, "apple"))

	ids, err := store.NearbyListingIDs(5000, center)
	s.NoError(err)
	s.Equal([]string{"listing-near", "listing-farther"}, ids)

	ids, err = store.NearbyListingIDs(200, center)
	s.NoError(err)
	s.Equal([]string{"listing-near"}, ids)
}

func (s *ListingPointTestSuite) TestAddAndRemoveListingPoint() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	point := schema.Location{Latitude: 40.0, Longitude: -105.0}
	s.NoError(store.AddListingPoint("listing-remove-me", point, "peach"))

	// the unique index rejects a second point for the same listing
	s.Error(store.AddListingPoint("listing-remove-me", point, "peach"))

	s.NoError(store.RemoveListingPoint("listing-remove-me"))

	ids, err := store.NearbyListingIDs(1000, point)
	s.NoError(err)
	s.NotContains(ids, "listing-remove-me")
}

func TestListingPointTestSuite(t *testing.T) {
	suite.Run(t, NewListingPointTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
