package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"docshare/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTeamPostgres_Create(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	team := &model.Team{ID: "team1", Name: "Acme", CreatedAt: now}

	t.Run("inserts team and membership in one tx", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewTeamPostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO teams").
			WithArgs("team1", "Acme", now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow("team1", "Acme", now))
		mock.ExpectExec("INSERT INTO team_users").
			WithArgs("team1", "user1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repo.Create(context.Background(), team, "user1")

		assert.NoError(t, err)
		assert.Equal(t, "team1", got.ID)
		assert.Equal(t, "Acme", got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("membership failure rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewTeamPostgres(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO teams").
			WithArgs("team1", "Acme", now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow("team1", "Acme", now))
		mock.ExpectExec("INSERT INTO team_users").
			WithArgs("team1", "user1").
			WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		got, err := repo.Create(context.Background(), team, "user1")

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewTeamPostgres(db)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		got, err := repo.Create(context.Background(), team, "user1")

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestTeamPostgres_ListByUser(t *testing.T) {
	t.Run("returns memberships newest first", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewTeamPostgres(db)

		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM teams").
			WithArgs("user1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow("team2", "Globex", now).
				AddRow("team1", "Acme", now.Add(-time.Hour)))

		teams, err := repo.ListByUser(context.Background(), "user1")

		assert.NoError(t, err)
		assert.Len(t, teams, 2)
		assert.Equal(t, "Globex", teams[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no memberships yields empty slice", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewTeamPostgres(db)

		mock.ExpectQuery("SELECT (.+) FROM teams").
			WithArgs("user1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

		teams, err := repo.ListByUser(context.Background(), "user1")

		assert.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})
}
