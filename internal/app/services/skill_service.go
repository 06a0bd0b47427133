package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// suggestLimit caps autocomplete and tutor filter result sizes
const suggestLimit = 10

// ISkillService defines the interface for skill catalog operations
type ISkillService interface {
	AddSkill(ctx context.Context, userID int64, skillName string, level string) (*models.UserSkill, error)
	GetUserSkills(ctx context.Context, userID int64) ([]*models.UserSkill, error)
	DeleteUserSkill(ctx context.Context, userID, skillID int64) error
	SuggestSkills(ctx context.Context, prefix string) ([]string, error)
	GetTutorsBySkill(ctx context.Context, prefix string) ([]*models.TutorMatch, error)
}

// SkillService handles the skill catalog
type SkillService struct {
	skillRepo repositories.ISkillRepository
	logger    zerolog.Logger
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repositories.ISkillRepository, logger zerolog.Logger) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		logger:    logger,
	}
}

// AddSkill attaches a skill to the user's profile. Unknown names enter the
// catalog as user-defined; re-adding an existing skill updates its level.
func (s *SkillService) AddSkill(ctx context.Context, userID int64, skillName string, level string) (*models.UserSkill, error) {
	name := strings.TrimSpace(skillName)
	if name == "" {
		return nil, apperrors.NewBadRequestError("skill name cannot be empty")
	}

	skillLevel := models.SkillLevel(level)
	if !skillLevel.IsValid() {
		return nil, apperrors.ErrInvalidSkillLevel
	}

	skill, err := s.skillRepo.GetOrCreateSkill(ctx, name)
	if err != nil {
		return nil, err
	}

	userSkill, err := s.skillRepo.UpsertUserSkill(ctx, userID, skill.ID, skillLevel)
	if err != nil {
		return nil, err
	}
	userSkill.Skill = skill

	s.logger.Debug().Int64("userId", userID).Str("skill", skill.Name).Msg("Skill added to profile")
	return userSkill, nil
}

// GetUserSkills lists the user's skills
func (s *SkillService) GetUserSkills(ctx context.Context, userID int64) ([]*models.UserSkill, error) {
	return s.skillRepo.GetUserSkills(ctx, userID)
}

// DeleteUserSkill removes a skill from the user's profile
func (s *SkillService) DeleteUserSkill(ctx context.Context, userID, skillID int64) error {
	return s.skillRepo.DeleteUserSkill(ctx, userID, skillID)
}

// SuggestSkills returns up to ten catalog names matching the prefix.
// An empty prefix returns nothing rather than the whole catalog.
func (s *SkillService) SuggestSkills(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	return s.skillRepo.SuggestSkills(ctx, prefix, suggestLimit)
}

// GetTutorsBySkill returns up to ten teaching-ready users matching the prefix
func (s *SkillService) GetTutorsBySkill(ctx context.Context, prefix string) ([]*models.TutorMatch, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []*models.TutorMatch{}, nil
	}
	return s.skillRepo.GetTutorsBySkill(ctx, prefix, suggestLimit)
}
