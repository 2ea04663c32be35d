package app

import "errors"

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description must be at most 255 characters")
	ErrInvalidPriority     = errors.New("priority must be LOW, MEDIUM or HIGH")
	ErrInvalidStatus       = errors.New("status must be TODO, DONE or ARCHIVED")
	ErrTaskNotFound        = errors.New("task not found")

	ErrNameRequired     = errors.New("name is required")
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not valid")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")

	ErrPetNameRequired = errors.New("pet name is required")
	ErrPetNameTooLong  = errors.New("pet name must be at most 50 characters")
	ErrNoPet           = errors.New("no pet created yet")

	ErrNotEnoughPoints = errors.New("not enough points")
	ErrStatAtMax       = errors.New("stat is already at maximum")
)
