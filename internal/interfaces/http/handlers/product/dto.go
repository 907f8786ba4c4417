package product

import (
	"fmt"

	"shop/internal/application/product/usecases"
	"shop/internal/shared/constants"
	"shop/internal/shared/utils"
)

var nameLengthMessage = fmt.Sprintf("Name must be between %d and %d characters", constants.NameMinLength, constants.NameMaxLength)

// ProductRequest is the body of product add and update requests.
// Pointer fields tell a missing value apart from an empty one.
type ProductRequest struct {
	Name      *string `json:"name" validate:"required,min=3,max=15" example:"Widget"`
	UnderSale *bool   `json:"underSale" validate:"required" example:"true"`
}

func (r *ProductRequest) Sanitize() {
	if r.Name != nil {
		name := utils.SanitizeText(*r.Name)
		r.Name = &name
	}
}

func (r *ProductRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name.required":      "Name cannot be null",
		"name.min":           nameLengthMessage,
		"name.max":           nameLengthMessage,
		"underSale.required": "Sale status is required",
	}
}

func (r *ProductRequest) ToAddCommand() usecases.AddProductCommand {
	return usecases.AddProductCommand{
		Name:      *r.Name,
		UnderSale: *r.UnderSale,
	}
}

func (r *ProductRequest) ToUpdateCommand(id uint) usecases.UpdateProductCommand {
	return usecases.UpdateProductCommand{
		ID:        id,
		Name:      *r.Name,
		UnderSale: *r.UnderSale,
	}
}
