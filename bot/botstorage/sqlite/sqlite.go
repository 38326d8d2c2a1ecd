package sqlite

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/kickerlab/foosserver/bot/botstorage"
	dbmodel "github.com/kickerlab/foosserver/bot/gen/model"
	"github.com/kickerlab/foosserver/bot/gen/table"
	"github.com/kickerlab/foosserver/bot/model"
	"github.com/kickerlab/foosserver/internal/config"
	sqlite3 "github.com/kickerlab/foosserver/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	_, err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		Exec(s.db)
	if err != nil {
		return model.User{}, err
	}
	return s.GetUser(user.ID)
}

// getUserModel carries a user row together with its subscription rows.
type getUserModel struct {
	dbmodel.Users
	Subscriptions []dbmodel.Subscriptions
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dest getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.Subscriptions.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.Subscriptions, table.Subscriptions.UserID.EQ(table.Users.ID)),
		).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.User{}, sql.ErrNoRows
		}
		return model.User{}, err
	}
	return convertGetUserModelToDomain(dest), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.Subscriptions.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.Subscriptions, table.Subscriptions.UserID.EQ(table.Users.ID)),
		).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	converted := make([]model.User, 0, len(dest))
	for i := range dest {
		converted = append(converted, convertGetUserModelToDomain(dest[i]))
	}
	return converted, nil
}

func (s *Storage) Log(user model.User, msg string) error {
	message := dbmodel.MessageLog{
		UserID:    int32(user.ID),
		Message:   msg,
		CreatedAt: time.Now(),
	}
	_, err := table.MessageLog.
		INSERT(table.MessageLog.UserID, table.MessageLog.Message, table.MessageLog.CreatedAt).
		MODEL(message).
		Exec(s.db)
	return err
}

func (s *Storage) Subscribe(user model.User) error {
	sub := dbmodel.Subscriptions{
		UserID:    int32(user.ID),
		EventType: string(model.NewMatch),
	}
	_, err := table.Subscriptions.
		INSERT(table.Subscriptions.AllColumns).
		MODEL(sub).
		Exec(s.db)
	if err != nil {
		if strings.HasPrefix(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return err
	}
	return nil
}

func (s *Storage) Unsubscribe(user model.User) error {
	_, err := table.Subscriptions.
		DELETE().
		WHERE(
			table.Subscriptions.UserID.EQ(sqlite.Int(int64(user.ID))).
				AND(table.Subscriptions.EventType.EQ(sqlite.String(string(model.NewMatch)))),
		).Exec(s.db)
	return err
}

func (s *Storage) UpdateUserRole(user model.User) error {
	_, err := table.Users.
		UPDATE(table.Users.RoleID).
		SET(sqlite.Int(int64(user.Role))).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) dbmodel.Users {
	return dbmodel.Users{
		ID:        int32(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		RoleID:    int32(model.RoleUser),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertGetUserModelToDomain(user getUserModel) model.User {
	converted := model.User{
		ID:        int(user.Users.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      model.UserRole(user.RoleID),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	for i := range user.Subscriptions {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(user.Subscriptions[i].EventType))
	}
	return converted
}
