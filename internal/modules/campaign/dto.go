package campaign

import "time"

type CreateCampaignRequest struct {
	Name    string `json:"name" binding:"required"`
	Channel string `json:"channel" binding:"required,oneof=email social"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type UpdateCampaignRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

type CreateSocialPostRequest struct {
	Network     string     `json:"network" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}
