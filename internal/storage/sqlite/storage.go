package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/kickerlab/foosserver/gen/model"
	"github.com/kickerlab/foosserver/gen/table"
	"github.com/kickerlab/foosserver/internal/domain"
	"github.com/kickerlab/foosserver/internal/elo"
	sqlite3 "github.com/kickerlab/foosserver/internal/migrate"
	"github.com/kickerlab/foosserver/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "rating-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("rating storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_fk=1"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.Rating.DESC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayers(players), nil
}

func (s *Storage) RegisterIfAbsent(ctx context.Context, name string) error {
	_, err := table.Players.
		INSERT(
			table.Players.Name,
			table.Players.Rating,
			table.Players.Games,
			table.Players.Wins,
			table.Players.Losses,
			table.Players.GoalDiff,
		).
		VALUES(name, elo.InitialRating, 0, 0, 0, 0).
		ON_CONFLICT(table.Players.Name).DO_NOTHING().
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Settle(ctx context.Context, report domain.MatchReport, calc elo.Calculator) (domain.Match, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (domain.Match, error) {
		a1, err := getOrCreate(ctx, tx, report.A1)
		if err != nil {
			return domain.Match{}, err
		}
		a2, err := getOrCreate(ctx, tx, report.A2)
		if err != nil {
			return domain.Match{}, err
		}
		b1, err := getOrCreate(ctx, tx, report.B1)
		if err != nil {
			return domain.Match{}, err
		}
		b2, err := getOrCreate(ctx, tx, report.B2)
		if err != nil {
			return domain.Match{}, err
		}

		teamA := (a1.Rating + a2.Rating) / 2.0
		teamB := (b1.Rating + b2.Rating) / 2.0
		deltaA, deltaB := calc.Deltas(teamA, teamB, report.GoalsA, report.GoalsB)

		winA := report.GoalsA > report.GoalsB
		goalDiffA := report.GoalsA - report.GoalsB

		updated := []model.Players{
			applyResult(a1, deltaA, winA, goalDiffA),
			applyResult(a2, deltaA, winA, goalDiffA),
			applyResult(b1, deltaB, !winA, -goalDiffA),
			applyResult(b2, deltaB, !winA, -goalDiffA),
		}
		for _, player := range updated {
			if err := updatePlayer(ctx, tx, player); err != nil {
				return domain.Match{}, err
			}
		}

		now := time.Now()
		dbMatch := model.Matches{
			Date:   now,
			A1ID:   a1.ID,
			A2ID:   a2.ID,
			B1ID:   b1.ID,
			B2ID:   b2.ID,
			GoalsA: int32(report.GoalsA),
			GoalsB: int32(report.GoalsB),
			DeltaA: deltaA,
			DeltaB: deltaB,
		}
		res, err := table.Matches.
			INSERT(table.Matches.MutableColumns).
			MODEL(dbMatch).
			ExecContext(ctx, tx)
		if err != nil {
			return domain.Match{}, err
		}
		matchID, err := res.LastInsertId()
		if err != nil {
			return domain.Match{}, err
		}

		for _, player := range updated {
			snapshot := model.PlayerRatingsHistory{
				PlayerID:  player.ID,
				MatchID:   int32(matchID),
				Rating:    int32(player.Rating),
				CreatedAt: now,
			}
			_, err := table.PlayerRatingsHistory.
				INSERT(table.PlayerRatingsHistory.MutableColumns).
				MODEL(snapshot).
				ExecContext(ctx, tx)
			if err != nil {
				return domain.Match{}, err
			}
		}

		return domain.Match{
			ID:     matchID,
			Date:   now,
			A1:     convertPlayer(updated[0]),
			A2:     convertPlayer(updated[1]),
			B1:     convertPlayer(updated[2]),
			B2:     convertPlayer(updated[3]),
			GoalsA: report.GoalsA,
			GoalsB: report.GoalsB,
			DeltaA: deltaA,
			DeltaB: deltaB,
		}, nil
	})
}

// applyResult folds one settled match into a player row: same delta and
// counters for both players of a side.
func applyResult(player model.Players, delta float64, win bool, goalDiff int) model.Players {
	player.Rating += delta
	player.Games++
	if win {
		player.Wins++
	} else {
		player.Losses++
	}
	player.GoalDiff += int32(goalDiff)
	return player
}

func updatePlayer(ctx context.Context, tx *sql.Tx, player model.Players) error {
	_, err := table.Players.
		UPDATE(
			table.Players.Rating,
			table.Players.Games,
			table.Players.Wins,
			table.Players.Losses,
			table.Players.GoalDiff,
		).
		SET(player.Rating, player.Games, player.Wins, player.Losses, player.GoalDiff).
		WHERE(table.Players.ID.EQ(sqlite.Int32(player.ID))).
		ExecContext(ctx, tx)
	return err
}

func getOrCreate(ctx context.Context, tx *sql.Tx, name string) (model.Players, error) {
	player, err := getByName(ctx, tx, name)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return model.Players{}, err
	}
	_, err = table.Players.
		INSERT(
			table.Players.Name,
			table.Players.Rating,
			table.Players.Games,
			table.Players.Wins,
			table.Players.Losses,
			table.Players.GoalDiff,
		).
		VALUES(name, elo.InitialRating, 0, 0, 0, 0).
		ON_CONFLICT(table.Players.Name).DO_NOTHING().
		ExecContext(ctx, tx)
	if err != nil {
		return model.Players{}, err
	}
	return getByName(ctx, tx, name)
}

func getByName(ctx context.Context, db qrm.DB, name string) (model.Players, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.Name.EQ(sqlite.String(name))).
		QueryContext(ctx, db, &player)
	return player, err
}

func (s *Storage) ListMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	stmt := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.Date.DESC(), table.Matches.ID.DESC())
	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit))
	}
	var matches []model.Matches
	err := stmt.QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return convertMatches(matches, convertPlayersToMap(players)), nil
}

func (s *Storage) RatingHistory(ctx context.Context) ([]domain.RatingSnapshot, error) {
	var rows []struct {
		model.PlayerRatingsHistory
		Players model.Players
	}
	err := table.PlayerRatingsHistory.
		SELECT(table.PlayerRatingsHistory.AllColumns, table.Players.AllColumns).
		FROM(table.PlayerRatingsHistory.
			INNER_JOIN(table.Players, table.Players.ID.EQ(table.PlayerRatingsHistory.PlayerID))).
		ORDER_BY(table.PlayerRatingsHistory.CreatedAt.ASC(), table.PlayerRatingsHistory.ID.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	snapshots := make([]domain.RatingSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, domain.RatingSnapshot{
			ID:         int64(row.PlayerRatingsHistory.ID),
			PlayerID:   int64(row.PlayerID),
			PlayerName: row.Players.Name,
			MatchID:    int64(row.MatchID),
			Rating:     int(row.Rating),
			CreatedAt:  row.CreatedAt,
		})
	}
	return snapshots, nil
}

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		return zero, errors.Join(err, tx.Rollback())
	}
	return value, tx.Commit()
}
