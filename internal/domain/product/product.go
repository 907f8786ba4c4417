package product

import (
	"fmt"
	"time"
	"unicode/utf8"

	"shop/internal/shared/biztime"
	"shop/internal/shared/constants"
)

// SubscriberRef is the summary of a subscriber linked to a product.
type SubscriberRef struct {
	ID         uint
	FirstName  string
	LastName   string
	JoinedDate time.Time
}

// Product is an item subscribers can be linked to while it is under sale.
type Product struct {
	id           uint
	name         string
	creationDate time.Time
	underSale    bool
	subscribers  []SubscriberRef
}

// NewProduct creates a product stamped with the current UTC time and no subscribers.
func NewProduct(name string, underSale bool) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Product{
		name:         name,
		creationDate: biztime.NowUTC(),
		underSale:    underSale,
		subscribers:  []SubscriberRef{},
	}, nil
}

// ReconstructProduct rebuilds a product from persistence.
func ReconstructProduct(id uint, name string, creationDate time.Time, underSale bool, subscribers []SubscriberRef) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if subscribers == nil {
		subscribers = []SubscriberRef{}
	}

	return &Product{
		id:           id,
		name:         name,
		creationDate: creationDate,
		underSale:    underSale,
		subscribers:  subscribers,
	}, nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < constants.NameMinLength || n > constants.NameMaxLength {
		return fmt.Errorf("%w: must be between %d and %d characters", ErrInvalidName, constants.NameMinLength, constants.NameMaxLength)
	}
	return nil
}

func (p *Product) ID() uint {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) CreationDate() time.Time {
	return p.creationDate
}

func (p *Product) IsUnderSale() bool {
	return p.underSale
}

// Subscribers returns a copy of the linked subscriber summaries.
func (p *Product) Subscribers() []SubscriberRef {
	out := make([]SubscriberRef, len(p.subscribers))
	copy(out, p.subscribers)
	return out
}

func (p *Product) SubscriberCount() int {
	return len(p.subscribers)
}

// HasSubscribers reports whether the product has been sold at least once.
func (p *Product) HasSubscribers() bool {
	return len(p.subscribers) > 0
}

// SetID sets the product ID after persistence
func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update replaces the mutable fields. creationDate and subscribers are left untouched.
func (p *Product) Update(name string, underSale bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.name = name
	p.underSale = underSale
	return nil
}
