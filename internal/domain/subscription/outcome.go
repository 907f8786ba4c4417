package subscription

import (
	"fmt"

	"shop/internal/domain/product"
	"shop/internal/domain/subscriber"
)

// Outcome is the result kind of a link attempt.
type Outcome string

const (
	OutcomeLinked             Outcome = "linked"
	OutcomeSubscriberNotFound Outcome = "subscriber_not_found"
	OutcomeProductNotFound    Outcome = "product_not_found"
	OutcomeProductNotOnSale   Outcome = "product_not_on_sale"
	OutcomeAlreadyLinked      Outcome = "already_linked"
)

// IsRejection reports whether the outcome left the association unchanged.
func (o Outcome) IsRejection() bool {
	return o != OutcomeLinked
}

// AlreadyLinkedMessage returns the rejection text for a duplicate link.
func AlreadyLinkedMessage(productName, firstName, lastName string) string {
	return fmt.Sprintf("Product %s is already assigned to Subscriber %s %s.", productName, firstName, lastName)
}

// Rejection describes why a link was refused.
type Rejection struct {
	Outcome Outcome
	Message string
}

// CheckOnSale refuses a product that is not under sale.
func CheckOnSale(prod *product.Product) *Rejection {
	if !prod.IsUnderSale() {
		return &Rejection{
			Outcome: OutcomeProductNotOnSale,
			Message: product.NotOnSaleMessage(prod.Name()),
		}
	}
	return nil
}

// CheckDuplicate refuses a pair that is already associated, either in the
// subscriber's loaded collection or per the existence query (alreadyLinked).
func CheckDuplicate(sub *subscriber.Subscriber, prod *product.Product, alreadyLinked bool) *Rejection {
	if alreadyLinked || sub.HasProduct(prod.ID()) {
		return &Rejection{
			Outcome: OutcomeAlreadyLinked,
			Message: AlreadyLinkedMessage(prod.Name(), sub.FirstName(), sub.LastName()),
		}
	}
	return nil
}

// CheckEligibility applies the sale rule, then the duplicate rule.
// A nil result means the link may be created.
func CheckEligibility(sub *subscriber.Subscriber, prod *product.Product, alreadyLinked bool) *Rejection {
	if rejection := CheckOnSale(prod); rejection != nil {
		return rejection
	}
	return CheckDuplicate(sub, prod, alreadyLinked)
}
