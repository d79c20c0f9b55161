package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignChannel string

const (
	ChannelEmail  CampaignChannel = "email"
	ChannelSocial CampaignChannel = "social"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignPublished CampaignStatus = "published"
	CampaignArchived  CampaignStatus = "archived"
)

type Campaign struct {
	ID       uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID       `json:"tenant_id" gorm:"type:uuid;index"`
	Name     string          `json:"name" gorm:"not null"`
	Channel  CampaignChannel `json:"channel" gorm:"not null"`
	Status   CampaignStatus  `json:"status" gorm:"not null;default:'draft'"`
	Subject  string          `json:"subject"`
	Body     string          `json:"body" gorm:"type:text"`

	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	SocialPosts []SocialPost `json:"social_posts,omitempty" gorm:"foreignKey:CampaignID"`
}

func (Campaign) TableName() string { return "campaigns" }

func (c *Campaign) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type SocialPost struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
	CampaignID uuid.UUID `json:"campaign_id" gorm:"type:uuid;index"`
	Network    string    `json:"network" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text"`
	Status     string    `json:"status" gorm:"not null;default:'draft'"`

	ScheduledAt *time.Time     `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (SocialPost) TableName() string { return "social_posts" }

func (p *SocialPost) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
