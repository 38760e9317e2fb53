package dto

import "encoding/json"

type CreateAwardTypeRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// AwardRequest is the body for creating and updating an award. The type id
// is accepted as a JSON number or a numeric string.
type AwardRequest struct {
	AwardTypeID json.Number `json:"award_type_id" binding:"required"`
	AwardDate   string      `json:"award_date" binding:"required,max=64"`
}
