package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resolution errors
	ErrMsgUnknownItem         = "unknown item"
	ErrMsgUnknownRecipe       = "unknown recipe"
	ErrMsgRecipeMismatch      = "recipe does not produce item"
	ErrMsgInvalidAmount       = "invalid amount"
	ErrMsgInvalidRecipeChoice = "invalid recipe choice"
	ErrMsgPathNotFound        = "path not found"
	ErrMsgMaxDepthExceeded    = "maximum plan depth exceeded"

	// Plan document errors
	ErrMsgInvalidPlan  = "invalid plan"
	ErrMsgPlanNotFound = "plan not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Resolution errors
	ErrUnknownItem         = errors.New(ErrMsgUnknownItem)
	ErrUnknownRecipe       = errors.New(ErrMsgUnknownRecipe)
	ErrRecipeMismatch      = errors.New(ErrMsgRecipeMismatch)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrInvalidRecipeChoice = errors.New(ErrMsgInvalidRecipeChoice)
	ErrPathNotFound        = errors.New(ErrMsgPathNotFound)
	ErrMaxDepthExceeded    = errors.New(ErrMsgMaxDepthExceeded)

	// Plan document errors
	ErrInvalidPlan  = errors.New(ErrMsgInvalidPlan)
	ErrPlanNotFound = errors.New(ErrMsgPlanNotFound)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
