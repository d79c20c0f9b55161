package widget

import "github.com/google/uuid"

type CreateWidgetRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=booking lead_form listing"`
	Name   string `json:"name" binding:"required"`
	Config string `json:"config"`
}

type UpdateWidgetRequest struct {
	Name   *string `json:"name"`
	Config *string `json:"config"`
	Active *bool   `json:"active"`
}

type CreateFormRequest struct {
	Name   string `json:"name" binding:"required"`
	Schema string `json:"schema" binding:"required"`
}

// SubmitRequest is the public payload an embedded widget posts. It lands as
// a lead with source "widget".
type SubmitRequest struct {
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email" binding:"omitempty,email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	PropertyID *uuid.UUID `json:"property_id"`
	UnitID     *uuid.UUID `json:"unit_id"`
}
