package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fruitshare/fruitshare-api/schema"
)

// ListingPoints - geo index over the fuzzed positions of listings
type ListingPoints interface {
	AddListingPoint(listingID string, cords schema.Location, fruitType string) error
	RemoveListingPoint(listingID string) error
	NearbyListingIDs(distance int, cords schema.Location) ([]string, error)
}

// AddListingPoint registers the public position of a listing in the
// 2dsphere index. Only fuzzed coordinates ever reach this collection.
func (m *mongoDB) AddListingPoint(listingID string, cords schema.Location, fruitType string) error {
	c := m.client.Database(m.database).Collection(schema.ListingPointCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	point := schema.ListingPoint{
		ListingID: listingID,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{cords.Longitude, cords.Latitude},
		},
		FruitType: fruitType,
	}

	if _, err := c.InsertOne(ctx, point); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"listing_id": listingID,
			"error":      err,
		}).Error("add listing point")
		return err
	}

	return nil
}

// RemoveListingPoint drops a listing from the geo index
func (m *mongoDB) RemoveListingPoint(listingID string) error {
	c := m.client.Database(m.database).Collection(schema.ListingPointCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.DeleteOne(ctx, bson.M{"listing_id": listingID})
	return err
}

// NearbyListingIDs - find listing ids around a coordinate by distance in
// meters, ordered from nearest to farthest
func (m *mongoDB) NearbyListingIDs(distance int, cords schema.Location) ([]string, error) {
	query := distanceQuery(distance, cords)
	c := m.client.Database(m.database).Collection(schema.ListingPointCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby listings with error: %s", err)
		return []string{}, fmt.Errorf("nearby listings query with error: %s", err)
	}

	listingIDs := make([]string, 0)
	var record schema.ListingPoint

	for cur.Next(ctx) {
		err = cur.Decode(&record)
		if nil != err {
			log.WithField("prefix", mongoLogPrefix).Infof("query nearby listings with error: %s", err)
			return []string{}, fmt.Errorf("nearby listings query decode record with error: %s", err)
		}
		listingIDs = append(listingIDs, record.ListingID)
	}

	return listingIDs, nil
}

// $nearSphere provides documents from nearest to farthest
// reference: https://docs.mongodb.com/manual/reference/operator/query/nearSphere/#op._S_nearSphere
func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}, {
					Key:   "$maxDistance",
					Value: distance,
				}},
			}},
		}},
	}}
}
