package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fruitshare/fruitshare-api/external/freshness"
	"github.com/fruitshare/fruitshare-api/external/pushcenter"
	"github.com/fruitshare/fruitshare-api/store"
)

// BackgroundManager is a struct for fruitshare background manager
type BackgroundManager struct {
	store store.FruitShareCore

	push *pushcenter.Client

	freshness freshness.Predictor

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	fruitShareCore := store.NewFruitShareStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	return &BackgroundManager{
		store: fruitShareCore,
		push:  pushcenter.NewClient(httpClient),
		freshness: freshness.New(
			viper.GetString("freshness.endpoint"),
			viper.GetString("freshness.token"),
			httpClient,
		),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("fruitshare-worker", 5)
	return m.worker.Launch()
}
