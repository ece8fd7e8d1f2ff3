package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"docshare/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docColumns = []string{"id", "name", "file", "type", "storage_type", "team_id", "size", "num_pages", "created_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDocumentPostgres(db)

	now := time.Now().UTC().Truncate(time.Second)
	doc := &model.Document{
		ID:          "doc1",
		Name:        "report.pdf",
		File:        "team1/1-abc.pdf",
		Type:        "pdf",
		StorageType: model.StorageTypeObjectKey,
		TeamID:      "team1",
		Size:        2048,
		NumPages:    3,
		CreatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Name, doc.File, doc.Type, "object-store-key", doc.TeamID, doc.Size, doc.NumPages, doc.CreatedAt).
		WillReturnRows(sqlmock.NewRows(docColumns).
			AddRow(doc.ID, doc.Name, doc.File, doc.Type, "object-store-key", doc.TeamID, doc.Size, doc.NumPages, now))

	got, err := repo.Create(context.Background(), doc)

	assert.NoError(t, err)
	assert.Equal(t, "doc1", got.ID)
	assert.Equal(t, model.StorageTypeObjectKey, got.StorageType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows(docColumns).
				AddRow("doc1", "report.pdf", "https://cdn/x.pdf", "pdf", "inline-blob", "team1", int64(2048), 3, now))

		got, err := repo.FindByID(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Equal(t, model.StorageTypeInlineBlob, got.StorageType)
		assert.Equal(t, "https://cdn/x.pdf", got.File)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectQuery("SELECT (.+) FROM documents").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(context.Background(), "nope")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestDocumentPostgres_FindAccess(t *testing.T) {
	t.Run("members and links collected", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectQuery("SELECT team_id FROM documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows([]string{"team_id"}).AddRow("team1"))
		mock.ExpectQuery("SELECT user_id FROM team_users").
			WithArgs("team1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user1").AddRow("user2"))
		mock.ExpectQuery("SELECT link_id FROM link_documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows([]string{"link_id"}).AddRow("link1"))

		access, err := repo.FindAccess(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Equal(t, "team1", access.TeamID)
		assert.Equal(t, []string{"user1", "user2"}, access.MemberIDs)
		assert.Equal(t, []string{"link1"}, access.LinkIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("document without members or links", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectQuery("SELECT team_id FROM documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows([]string{"team_id"}).AddRow("team1"))
		mock.ExpectQuery("SELECT user_id FROM team_users").
			WithArgs("team1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
		mock.ExpectQuery("SELECT link_id FROM link_documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows([]string{"link_id"}))

		access, err := repo.FindAccess(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Empty(t, access.MemberIDs)
		assert.Empty(t, access.LinkIDs)
	})

	t.Run("missing document", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectQuery("SELECT team_id FROM documents").
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		access, err := repo.FindAccess(context.Background(), "nope")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, access)
	})

	t.Run("member query failure", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectQuery("SELECT team_id FROM documents").
			WithArgs("doc1").
			WillReturnRows(sqlmock.NewRows([]string{"team_id"}).AddRow("team1"))
		mock.ExpectQuery("SELECT user_id FROM team_users").
			WithArgs("team1").
			WillReturnError(errors.New("connection reset"))

		access, err := repo.FindAccess(context.Background(), "doc1")

		assert.Error(t, err)
		assert.Nil(t, access)
	})
}

func TestDocumentPostgres_UpdateFile(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDocumentPostgres(db)

	mock.ExpectExec("UPDATE documents SET file").
		WithArgs("doc1", "team1/2-def.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFile(context.Background(), "doc1", "team1/2-def.pdf")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Delete(t *testing.T) {
	t.Run("deletes existing row", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectExec("DELETE FROM documents").
			WithArgs("doc1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "doc1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row is not an error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewDocumentPostgres(db)

		mock.ExpectExec("DELETE FROM documents").
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(context.Background(), "nope"))
	})
}
