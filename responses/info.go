package responses

// SkillInfoResponse describes the skill to the dialog manager.
type SkillInfoResponse struct {
	SkillID          string   `json:"skillId"`
	SkillVersion     string   `json:"skillVersion"`
	SupportedLocales []string `json:"supportedLocales"`
	SPIVersion       string   `json:"spiVersion"`
}
