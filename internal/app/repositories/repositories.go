package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	SkillRepository           *SkillRepository
	RequestRepository         *RequestRepository
	AcceptedRequestRepository *AcceptedRequestRepository
	SessionRepository         *SessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		SkillRepository:           NewSkillRepository(db),
		RequestRepository:         NewRequestRepository(db),
		AcceptedRequestRepository: NewAcceptedRequestRepository(db),
		SessionRepository:         NewSessionRepository(db),
	}
}
