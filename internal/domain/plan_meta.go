package domain

import "time"

// Plan is the stored metadata of a saved production plan.
// The tree itself lives in the document store under the same ID.
type Plan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Product     string          `json:"product"`
	Amount      float64         `json:"amount"`
	Overrides   RecipeOverrides `json:"overrides,omitempty"`
	IsPublic    bool            `json:"is_public"`
	Creator     string          `json:"creator"`
	Views       int             `json:"views"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemTotal is the aggregated rate and number of occurrences of an item in a tree
type ItemTotal struct {
	Amount      float64 `json:"amount"`
	Occurrences int     `json:"occurrences"`
}
