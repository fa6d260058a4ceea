package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/bitmark-inc/momentum-api/store"
)

// BackgroundManager is a struct for momentum background manager
type BackgroundManager struct {
	store      store.MomentumCore
	mongoStore store.MongoStore

	notificationCenter NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(momentumCore store.MomentumCore, mongoStore store.MongoStore, notificationCenter NotificationCenter, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:              momentumCore,
		mongoStore:         mongoStore,
		notificationCenter: notificationCenter,
		taskServer:         taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every job handled by the momentum worker
func (m *BackgroundManager) RegisterTasks() error {
	return m.RegisterTask(BroadcastHealthAlertTask, m.BroadcastHealthAlert)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("momentum-worker", concurrency)
	return m.worker.Launch()
}

// Quit stops the running worker
func (m *BackgroundManager) Quit() {
	if m.worker != nil {
		m.worker.Quit()
	}
}
