package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
)

// Enqueuer schedules background jobs from the api server
type Enqueuer interface {
	EnqueueHealthAlert(accountNumber, date string, findings []string) error
}

type MachineryEnqueuer struct {
	server *machinery.Server
}

func NewMachineryEnqueuer(server *machinery.Server) *MachineryEnqueuer {
	return &MachineryEnqueuer{server: server}
}

func (e *MachineryEnqueuer) EnqueueHealthAlert(accountNumber, date string, findings []string) error {
	_, err := e.server.SendTask(&tasks.Signature{
		Name: BroadcastHealthAlertTask,
		Args: []tasks.Arg{
			{Type: "string", Value: accountNumber},
			{Type: "string", Value: date},
			{Type: "[]string", Value: findings},
		},
	})
	return err
}
