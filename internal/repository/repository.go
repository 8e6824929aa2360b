package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Profile      ProfileRepository
	Project      ProjectRepository
	Application  ApplicationRepository
	Notification NotificationRepository
	Tx           Transactor
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Profile:      NewProfileRepository(db),
		Project:      NewProjectRepository(db),
		Application:  NewApplicationRepository(db),
		Notification: NewNotificationRepository(db),
		Tx:           NewTransactor(db),
	}
}
