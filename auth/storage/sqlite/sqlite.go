package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kickerlab/foosserver/auth/gen/model"
	"github.com/kickerlab/foosserver/auth/gen/table"
	"github.com/kickerlab/foosserver/auth/service"
	"github.com/kickerlab/foosserver/auth/storage"
	"github.com/kickerlab/foosserver/auth/users"
	sqlite3 "github.com/kickerlab/foosserver/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg service.Config) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest struct {
		model.Users
		Roles model.Roles
	}
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.Roles.AllColumns,
		).
		FROM(table.Users.INNER_JOIN(table.Roles, table.Roles.ID.EQ(table.Users.RoleID))).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String())).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUser(dest.Users, dest.Roles)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.String(user.ID.String()))
	case user.Name != "":
		where = table.Users.Username.EQ(sqlite.String(user.Name))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Secret{}, sql.ErrNoRows
		}
		return users.Secret{}, err
	}
	hash, err := hexToBytes(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hexToBytes(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Username:     user.Name,
		PasswordHash: bytesToHex(secret.PasswordHash),
		PasswordSalt: bytesToHex(secret.Salt),
		RoleID:       roleID(user.Role),
		CreatedAt:    time.Now(),
	}
	_, err := table.Users.
		INSERT(table.Users.AllColumns.Except(table.Users.DeletedAt)).
		MODEL(dbUser).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error) {
	var dest struct {
		model.Users
		Roles model.Roles
	}
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.Roles.AllColumns,
		).
		FROM(table.Users.INNER_JOIN(table.Roles, table.Roles.ID.EQ(table.Users.RoleID))).
		WHERE(
			table.Users.Username.EQ(sqlite.String(name)).
				AND(table.Users.DeletedAt.IS_NULL()).
				AND(table.Users.PasswordHash.EQ(sqlite.String(bytesToHex(passwordHash)))),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUser(dest.Users, dest.Roles)
}

const (
	roleIDAdmin int32 = 1
	roleIDUser  int32 = 2
)

func roleID(role string) int32 {
	if role == users.RoleAdmin {
		return roleIDAdmin
	}
	return roleIDUser
}

func convertUser(user model.Users, role model.Roles) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:           id,
		Name:         user.Username,
		Role:         role.Name,
		RegisteredAt: user.CreatedAt,
	}, nil
}

func bytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func hexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
