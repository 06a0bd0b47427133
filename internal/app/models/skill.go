package models

// Skill defines a globally deduplicated skill name
type Skill struct {
	ID           int64  `json:"skillId" db:"id" example:"1"`
	Name         string `json:"name" db:"name" example:"Guitar"`
	IsPredefined bool   `json:"isPredefined" db:"is_predefined" example:"true"`
}

// UserSkill associates a user with a skill at a proficiency level
type UserSkill struct {
	ID      int64      `json:"userSkillId" db:"id"`
	UserID  int64      `json:"userId" db:"user_id"`
	SkillID int64      `json:"skillId" db:"skill_id"`
	Level   SkillLevel `json:"level" db:"level" example:"Intermediate"`
	Skill   *Skill     `json:"skill,omitempty"` // Relation, no db tag
}

// TutorMatch is the projection returned by the skill filter:
// a teaching-ready user together with the matching skill
type TutorMatch struct {
	UserID         int64      `json:"userId"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	SkillName      string     `json:"skillName"`
	Level          SkillLevel `json:"level"`
}
