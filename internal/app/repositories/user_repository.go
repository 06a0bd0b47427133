package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/db"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	"github.com/skilllink/skilllink/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Search(ctx context.Context, query string) ([]*models.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.User, error)
	MarkEmailVerified(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, userID int64, fullName string, bio, location *string) error
	UpdateProfilePicture(ctx context.Context, userID int64, path *string) error
	SetTeachMode(ctx context.Context, userID int64, ready bool, role *models.Role) error
	SetActive(ctx context.Context, userID int64, active bool) error
	SetRole(ctx context.Context, userID int64, role models.Role) error
	Delete(ctx context.Context, id int64) error
}

const userColumns = `id, full_name, email, password_hash, role, bio, location, profile_picture,
		is_active, ready_to_teach, email_verified, email_verification_token, email_verification_expires, created_at`

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new user and returns its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password_hash, role, profile_picture,
			is_active, ready_to_teach, email_verified, email_verification_token, email_verification_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		user.FullName, user.Email, user.PasswordHash, user.Role, user.ProfilePicture,
		user.IsActive, user.ReadyToTeach, user.EmailVerified, user.VerifyToken, user.VerifyExpires).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)

	return scanUser(row)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email)

	return scanUser(row)
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// Search returns users whose name or email matches the query.
// An empty query returns all users.
func (r *UserRepository) Search(ctx context.Context, query string) ([]*models.User, error) {
	builder := r.sb.
		Select("id", "full_name", "email", "password_hash", "role", "bio", "location", "profile_picture",
			"is_active", "ready_to_teach", "email_verified", "email_verification_token", "email_verification_expires", "created_at").
		From("users").
		OrderBy("created_at DESC")

	if query != "" {
		pattern := "%" + likeEscaper.Replace(query) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByVerificationToken retrieves a user by email verification token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email_verification_token = $1`, token)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidEmailToken
		}
		return nil, err
	}
	return user, nil
}

// MarkEmailVerified marks the user's email verified and clears the token
func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET email_verified = TRUE, email_verification_token = NULL, email_verification_expires = NULL
		WHERE id = $1`, userID)

	if err != nil {
		return fmt.Errorf("error marking email verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfile updates the user's profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, fullName string, bio, location *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET full_name = $1, bio = $2, location = $3
		WHERE id = $4`,
		fullName, bio, location, userID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfilePicture sets or clears the user's profile picture path
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, userID int64, path *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET profile_picture = $1 WHERE id = $2`, path, userID)

	if err != nil {
		return fmt.Errorf("error updating profile picture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetTeachMode toggles the user's tutor availability flag and, when a role is
// given, switches the role in the same transaction.
func (r *UserRepository) SetTeachMode(ctx context.Context, userID int64, ready bool, role *models.Role) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users SET ready_to_teach = $1 WHERE id = $2`, ready, userID)

		if err != nil {
			return fmt.Errorf("error updating teach mode: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		if role != nil {
			if _, err := tx.Exec(ctx, `
				UPDATE users SET role = $1 WHERE id = $2`, *role, userID); err != nil {
				return fmt.Errorf("error updating role: %w", err)
			}
		}
		return nil
	})
}

// SetActive enables or disables the user's account
func (r *UserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)

	if err != nil {
		return fmt.Errorf("error updating active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetRole changes the user's role
func (r *UserRepository) SetRole(ctx context.Context, userID int64, role models.Role) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET role = $1 WHERE id = $2`, role, userID)

	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user account
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// scanUser scans a user row into a model
func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Role,
		&user.Bio, &user.Location, &user.ProfilePicture,
		&user.IsActive, &user.ReadyToTeach, &user.EmailVerified,
		&user.VerifyToken, &user.VerifyExpires, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}
