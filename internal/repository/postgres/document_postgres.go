package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, name, file, type, storage_type, team_id, size, num_pages, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, file, type, storage_type, team_id, size, num_pages, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Name,
		doc.File,
		doc.Type,
		string(doc.StorageType),
		doc.TeamID,
		doc.Size,
		doc.NumPages,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT id, name, file, type, storage_type, team_id, size, num_pages, created_at
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindAccess loads the owning team's member ids and the document's associated
// link ids. Returns sql.ErrNoRows when the document is missing.
func (r *DocumentPostgres) FindAccess(ctx context.Context, id string) (*repository.DocumentAccess, error) {
	const qDoc = `SELECT team_id FROM documents WHERE id = $1`
	access := &repository.DocumentAccess{DocumentID: id}
	if err := r.db.QueryRowContext(ctx, qDoc, id).Scan(&access.TeamID); err != nil {
		return nil, err
	}

	const qMembers = `SELECT user_id FROM team_users WHERE team_id = $1`
	members, err := queryStrings(ctx, r.db, qMembers, access.TeamID)
	if err != nil {
		return nil, err
	}
	access.MemberIDs = members

	const qLinks = `SELECT link_id FROM link_documents WHERE document_id = $1`
	links, err := queryStrings(ctx, r.db, qLinks, id)
	if err != nil {
		return nil, err
	}
	access.LinkIDs = links

	return access, nil
}

// UpdateFile replaces the stored-file reference on a re-upload.
func (r *DocumentPostgres) UpdateFile(ctx context.Context, id, file string) error {
	const q = `UPDATE documents SET file = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, file)
	return err
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanDocument(row *sql.Row) (*model.Document, error) {
	var d model.Document
	var st string
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&d.File,
		&d.Type,
		&st,
		&d.TeamID,
		&d.Size,
		&d.NumPages,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.StorageType = model.StorageType(st)
	return &d, nil
}

func queryStrings(ctx context.Context, db *sql.DB, q string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
