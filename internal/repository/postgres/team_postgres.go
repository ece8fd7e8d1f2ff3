package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// TeamPostgres is a PostgreSQL implementation of repository.TeamRepository.
type TeamPostgres struct {
	db *sql.DB
}

// NewTeamPostgres creates a new TeamPostgres repository.
func NewTeamPostgres(db *sql.DB) *TeamPostgres {
	return &TeamPostgres{db: db}
}

var _ repository.TeamRepository = (*TeamPostgres)(nil)

// Create inserts a team and its creator membership in one transaction.
func (r *TeamPostgres) Create(ctx context.Context, team *model.Team, creatorID string) (*model.Team, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const qTeam = `
		INSERT INTO teams (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`
	var out model.Team
	if err := tx.QueryRowContext(ctx, qTeam, team.ID, team.Name, team.CreatedAt).
		Scan(&out.ID, &out.Name, &out.CreatedAt); err != nil {
		return nil, err
	}

	const qMember = `INSERT INTO team_users (team_id, user_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, qMember, out.ID, creatorID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &out, nil
}

// ListByUser returns the teams the user is a member of, newest first.
func (r *TeamPostgres) ListByUser(ctx context.Context, userID string) ([]model.Team, error) {
	const q = `
		SELECT t.id, t.name, t.created_at
		FROM teams t
		JOIN team_users tu ON tu.team_id = t.id
		WHERE tu.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
