package botstorage

import "github.com/kickerlab/foosserver/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	Log(user model.User, msg string) error
	Subscribe(user model.User) error
	Unsubscribe(user model.User) error
	UpdateUserRole(user model.User) error
}
