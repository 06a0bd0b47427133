package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// IRequestRepository defines the interface for request board database operations
type IRequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id int64) (*models.RequestWithUser, error)
	GetAll(ctx context.Context) ([]*models.RequestWithUser, error)
	GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.RequestWithUser, error)
	Search(ctx context.Context, query string) ([]*models.RequestWithUser, error)
	Update(ctx context.Context, id int64, skillName string, topic, description *string) error
	UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error
	Delete(ctx context.Context, id int64) error
}

const requestWithUserColumns = `r.id, r.learner_id, r.skill_name, r.topic, r.description, r.status, r.created_at,
		u.full_name, u.email`

// RequestRepository handles database operations for learning requests
type RequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new request with status OPEN
func (r *RequestRepository) Create(ctx context.Context, request *models.Request) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO requests (learner_id, skill_name, topic, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		request.LearnerID, request.SkillName, request.Topic, request.Description, models.RequestStatusOpen).
		Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	request.Status = models.RequestStatusOpen
	return nil
}

// GetByID retrieves a request with its requester's identity
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.RequestWithUser, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+requestWithUserColumns+`
		FROM requests r
		JOIN users u ON u.id = r.learner_id
		WHERE r.id = $1`, id)

	request := &models.RequestWithUser{}
	if err := scanRequestWithUser(row, request); err != nil {
		return nil, err
	}
	return request, nil
}

// GetAll retrieves all requests newest first
func (r *RequestRepository) GetAll(ctx context.Context) ([]*models.RequestWithUser, error) {
	return r.queryRequests(ctx, `
		SELECT `+requestWithUserColumns+`
		FROM requests r
		JOIN users u ON u.id = r.learner_id
		ORDER BY r.created_at DESC`)
}

// GetByLearnerID retrieves a learner's own requests newest first
func (r *RequestRepository) GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.RequestWithUser, error) {
	return r.queryRequests(ctx, `
		SELECT `+requestWithUserColumns+`
		FROM requests r
		JOIN users u ON u.id = r.learner_id
		WHERE r.learner_id = $1
		ORDER BY r.created_at DESC`, learnerID)
}

// Search retrieves requests matching the query across skill, topic, description
// and requester name
func (r *RequestRepository) Search(ctx context.Context, query string) ([]*models.RequestWithUser, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"
	builder := r.sb.
		Select("r.id", "r.learner_id", "r.skill_name", "r.topic", "r.description", "r.status", "r.created_at",
			"u.full_name", "u.email").
		From("requests r").
		Join("users u ON u.id = r.learner_id").
		Where(squirrel.Or{
			squirrel.ILike{"r.skill_name": pattern},
			squirrel.ILike{"r.topic": pattern},
			squirrel.ILike{"r.description": pattern},
			squirrel.ILike{"u.full_name": pattern},
		}).
		OrderBy("r.created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building request search query: %w", err)
	}

	return r.queryRequests(ctx, sql, args...)
}

// Update changes the editable fields of a request, leaving status untouched
func (r *RequestRepository) Update(ctx context.Context, id int64, skillName string, topic, description *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET skill_name = $1, topic = $2, description = $3
		WHERE id = $4`,
		skillName, topic, description, id)

	if err != nil {
		return fmt.Errorf("error updating request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// UpdateStatus sets the request's lifecycle status
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests SET status = $1 WHERE id = $2`, status, id)

	if err != nil {
		return fmt.Errorf("error updating request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// Delete removes a request; acceptances and sessions cascade
func (r *RequestRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, sql string, args ...any) ([]*models.RequestWithUser, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.RequestWithUser
	for rows.Next() {
		request := &models.RequestWithUser{}
		if err := scanRequestWithUser(rows, request); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

func scanRequestWithUser(row pgx.Row, request *models.RequestWithUser) error {
	err := row.Scan(
		&request.ID, &request.LearnerID, &request.SkillName, &request.Topic,
		&request.Description, &request.Status, &request.CreatedAt,
		&request.RequesterName, &request.RequesterEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRequestNotFound
		}
		return fmt.Errorf("error scanning request: %w", err)
	}
	return nil
}
