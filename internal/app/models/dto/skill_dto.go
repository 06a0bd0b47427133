package dto

// AddSkillRequest associates a skill with the current user. Unknown skill
// names are added to the catalog on first use.
type AddSkillRequest struct {
	SkillName string `json:"skillName" binding:"required"`
	Level     string `json:"level" binding:"required"`
}
