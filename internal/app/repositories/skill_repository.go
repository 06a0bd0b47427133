package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	"github.com/skilllink/skilllink/internal/pkg/dberrors"
)

// likeEscaper neutralizes LIKE wildcards in user-supplied prefixes
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ISkillRepository defines the interface for skill catalog database operations
type ISkillRepository interface {
	GetOrCreateSkill(ctx context.Context, name string) (*models.Skill, error)
	UpsertUserSkill(ctx context.Context, userID, skillID int64, level models.SkillLevel) (*models.UserSkill, error)
	GetUserSkills(ctx context.Context, userID int64) ([]*models.UserSkill, error)
	DeleteUserSkill(ctx context.Context, userID, skillID int64) error
	SuggestSkills(ctx context.Context, prefix string, limit int) ([]string, error)
	GetTutorsBySkill(ctx context.Context, prefix string, limit int) ([]*models.TutorMatch, error)
}

// SkillRepository handles database operations for the skill catalog
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// GetOrCreateSkill finds a skill by name or inserts it as user-defined.
// Names are matched case-insensitively so "guitar" and "Guitar" stay one skill.
func (r *SkillRepository) GetOrCreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	skill := &models.Skill{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, is_predefined
		FROM skills
		WHERE LOWER(name) = LOWER($1)`,
		name).Scan(&skill.ID, &skill.Name, &skill.IsPredefined)

	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error looking up skill: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO skills (name, is_predefined)
		VALUES ($1, FALSE)
		RETURNING id, name, is_predefined`,
		name).Scan(&skill.ID, &skill.Name, &skill.IsPredefined)

	if err != nil {
		// Lost a concurrent first-add, the row now exists under some casing.
		if dberrors.IsUniqueViolation(err) {
			err = r.db.QueryRow(ctx, `
				SELECT id, name, is_predefined
				FROM skills
				WHERE LOWER(name) = LOWER($1)`,
				name).Scan(&skill.ID, &skill.Name, &skill.IsPredefined)
			if err != nil {
				return nil, fmt.Errorf("error looking up skill: %w", err)
			}
			return skill, nil
		}
		return nil, fmt.Errorf("error creating skill: %w", err)
	}

	return skill, nil
}

// UpsertUserSkill links a user to a skill, updating the level on re-add
func (r *SkillRepository) UpsertUserSkill(ctx context.Context, userID, skillID int64, level models.SkillLevel) (*models.UserSkill, error) {
	userSkill := &models.UserSkill{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_skills (user_id, skill_id, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, skill_id) DO UPDATE SET level = EXCLUDED.level
		RETURNING id, user_id, skill_id, level`,
		userID, skillID, level).Scan(&userSkill.ID, &userSkill.UserID, &userSkill.SkillID, &userSkill.Level)

	if err != nil {
		return nil, fmt.Errorf("error upserting user skill: %w", err)
	}

	return userSkill, nil
}

// GetUserSkills retrieves all skills of a user with the catalog entry joined
func (r *SkillRepository) GetUserSkills(ctx context.Context, userID int64) ([]*models.UserSkill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT us.id, us.user_id, us.skill_id, us.level, s.id, s.name, s.is_predefined
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.name`,
		userID)

	if err != nil {
		return nil, fmt.Errorf("error retrieving user skills: %w", err)
	}
	defer rows.Close()

	var userSkills []*models.UserSkill
	for rows.Next() {
		userSkill := &models.UserSkill{Skill: &models.Skill{}}
		if err := rows.Scan(
			&userSkill.ID, &userSkill.UserID, &userSkill.SkillID, &userSkill.Level,
			&userSkill.Skill.ID, &userSkill.Skill.Name, &userSkill.Skill.IsPredefined,
		); err != nil {
			return nil, fmt.Errorf("error scanning user skill: %w", err)
		}
		userSkills = append(userSkills, userSkill)
	}

	return userSkills, rows.Err()
}

// DeleteUserSkill removes a skill from a user's profile
func (r *SkillRepository) DeleteUserSkill(ctx context.Context, userID, skillID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID)

	if err != nil {
		return fmt.Errorf("error deleting user skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserSkillNotFound
	}
	return nil
}

// SuggestSkills returns catalog names starting with the given prefix
func (r *SkillRepository) SuggestSkills(ctx context.Context, prefix string, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name
		FROM skills
		WHERE name ILIKE $1 || '%'
		ORDER BY name
		LIMIT $2`,
		likeEscaper.Replace(prefix), limit)

	if err != nil {
		return nil, fmt.Errorf("error suggesting skills: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning skill name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// GetTutorsBySkill returns teaching-ready users holding a skill matching the prefix.
// Single join query, one row per (user, skill) match.
func (r *SkillRepository) GetTutorsBySkill(ctx context.Context, prefix string, limit int) ([]*models.TutorMatch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.full_name, u.email, u.profile_picture, s.name, us.level
		FROM users u
		JOIN user_skills us ON us.user_id = u.id
		JOIN skills s ON s.id = us.skill_id
		WHERE u.ready_to_teach = TRUE
		  AND u.is_active = TRUE
		  AND s.name ILIKE $1 || '%'
		ORDER BY u.full_name
		LIMIT $2`,
		likeEscaper.Replace(prefix), limit)

	if err != nil {
		return nil, fmt.Errorf("error filtering tutors by skill: %w", err)
	}
	defer rows.Close()

	var matches []*models.TutorMatch
	for rows.Next() {
		match := &models.TutorMatch{}
		if err := rows.Scan(
			&match.UserID, &match.FullName, &match.Email, &match.ProfilePicture,
			&match.SkillName, &match.Level,
		); err != nil {
			return nil, fmt.Errorf("error scanning tutor match: %w", err)
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}
