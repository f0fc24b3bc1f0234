package repository

import (
	"context"

	"tap_legends/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.EarnTask, error) {
	rows, err := r.db.Query(ctx, `SELECT id, link, category, reward FROM earn_tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.EarnTask
	for rows.Next() {
		var t domain.EarnTask
		if err := rows.Scan(&t.ID, &t.Link, &t.Category, &t.Reward); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.EarnTask, error) {
	var t domain.EarnTask
	err := r.db.QueryRow(ctx,
		`SELECT id, link, category, reward FROM earn_tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.Link, &t.Category, &t.Reward)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM earn_tasks`).Scan(&n)
	return n, err
}

// InsertAll seeds the catalog.
func (r *TaskRepository) InsertAll(ctx context.Context, tasks []domain.EarnTask) error {
	for _, t := range tasks {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO earn_tasks (id, link, category, reward) VALUES ($1, $2, $3, $4)`,
			t.ID, t.Link, t.Category, t.Reward,
		); err != nil {
			return err
		}
	}
	return nil
}
