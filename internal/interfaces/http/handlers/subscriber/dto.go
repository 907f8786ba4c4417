package subscriber

import (
	"fmt"

	"shop/internal/application/subscriber/usecases"
	"shop/internal/shared/constants"
	"shop/internal/shared/utils"
)

var (
	firstNameLengthMessage = fmt.Sprintf("First name must be between %d and %d characters", constants.NameMinLength, constants.NameMaxLength)
	lastNameLengthMessage  = fmt.Sprintf("Last name must be between %d and %d characters", constants.NameMinLength, constants.NameMaxLength)
)

// SubscriberRequest is the body of subscriber add and update requests.
type SubscriberRequest struct {
	FirstName *string `json:"firstName" validate:"required,min=3,max=15" example:"John"`
	LastName  *string `json:"lastName" validate:"required,min=3,max=15" example:"Doe"`
}

func (r *SubscriberRequest) Sanitize() {
	r.FirstName = sanitized(r.FirstName)
	r.LastName = sanitized(r.LastName)
}

func sanitized(s *string) *string {
	if s == nil {
		return nil
	}
	clean := utils.SanitizeText(*s)
	return &clean
}

func (r *SubscriberRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"firstName.required": "First name cannot be null",
		"firstName.min":      firstNameLengthMessage,
		"firstName.max":      firstNameLengthMessage,
		"lastName.required":  "Last name cannot be null",
		"lastName.min":       lastNameLengthMessage,
		"lastName.max":       lastNameLengthMessage,
	}
}

func (r *SubscriberRequest) ToAddCommand() usecases.AddSubscriberCommand {
	return usecases.AddSubscriberCommand{
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
	}
}

func (r *SubscriberRequest) ToUpdateCommand(id uint) usecases.UpdateSubscriberCommand {
	return usecases.UpdateSubscriberCommand{
		ID:        id,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
	}
}
