package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/covid-county-map/external/geoinfo"
	"github.com/bitmark-inc/covid-county-map/external/jhu"
	"github.com/bitmark-inc/covid-county-map/store"
)

const logPrefix = "background"

// BackgroundManager is a struct for countymap background manager
type BackgroundManager struct {
	mongoStore store.MongoStore

	feed jhu.JHU

	geoClient geoinfo.GeoInfo

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	feed := jhu.New(viper.GetString("jhu.url"), viper.GetDuration("jhu.timeout"))

	// geocode backfill is optional; without a key rows missing coordinates
	// stay in the table and are skipped at render
	var geoClient geoinfo.GeoInfo
	if apiKey := viper.GetString("geoinfo.apikey"); apiKey != "" {
		client, err := geoinfo.New(apiKey)
		if err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("init geo client")
		} else {
			geoClient = client
		}
	}

	return &BackgroundManager{
		mongoStore: mongoStore,
		feed:       feed,
		geoClient:  geoClient,
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
	m.worker = m.taskServer.NewWorker("countymap-worker", 5)
	return m.worker.Launch()
}
