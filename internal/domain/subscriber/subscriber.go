package subscriber

import (
	"fmt"
	"time"
	"unicode/utf8"

	"shop/internal/shared/biztime"
	"shop/internal/shared/constants"
)

// ProductRef is the summary of a product a subscriber is linked to.
type ProductRef struct {
	ID           uint
	Name         string
	CreationDate time.Time
	UnderSale    bool
}

type Subscriber struct {
	id         uint
	firstName  string
	lastName   string
	joinedDate time.Time
	products   []ProductRef
}

// NewSubscriber creates a subscriber joined now with no products.
func NewSubscriber(firstName, lastName string) (*Subscriber, error) {
	if err := validateNames(firstName, lastName); err != nil {
		return nil, err
	}

	return &Subscriber{
		firstName:  firstName,
		lastName:   lastName,
		joinedDate: biztime.NowUTC(),
		products:   []ProductRef{},
	}, nil
}

// ReconstructSubscriber rebuilds a subscriber from persistence.
func ReconstructSubscriber(id uint, firstName, lastName string, joinedDate time.Time, products []ProductRef) (*Subscriber, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscriber ID cannot be zero")
	}
	if products == nil {
		products = []ProductRef{}
	}

	return &Subscriber{
		id:         id,
		firstName:  firstName,
		lastName:   lastName,
		joinedDate: joinedDate,
		products:   products,
	}, nil
}

func validateNames(firstName, lastName string) error {
	if !validLength(firstName) {
		return fmt.Errorf("%w: must be between %d and %d characters", ErrInvalidFirstName, constants.NameMinLength, constants.NameMaxLength)
	}
	if !validLength(lastName) {
		return fmt.Errorf("%w: must be between %d and %d characters", ErrInvalidLastName, constants.NameMinLength, constants.NameMaxLength)
	}
	return nil
}

func validLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= constants.NameMinLength && n <= constants.NameMaxLength
}

func (s *Subscriber) ID() uint {
	return s.id
}

func (s *Subscriber) FirstName() string {
	return s.firstName
}

func (s *Subscriber) LastName() string {
	return s.lastName
}

// FullName returns "first last".
func (s *Subscriber) FullName() string {
	return s.firstName + " " + s.lastName
}

func (s *Subscriber) JoinedDate() time.Time {
	return s.joinedDate
}

// Products returns a copy of the linked product summaries.
func (s *Subscriber) Products() []ProductRef {
	out := make([]ProductRef, len(s.products))
	copy(out, s.products)
	return out
}

// HasProduct reports whether productID is already in the subscriber's collection.
func (s *Subscriber) HasProduct(productID uint) bool {
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// SetID sets the subscriber ID after persistence
func (s *Subscriber) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscriber ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscriber ID cannot be zero")
	}
	s.id = id
	return nil
}

// Rename replaces both names. joinedDate and products are left untouched.
func (s *Subscriber) Rename(firstName, lastName string) error {
	if err := validateNames(firstName, lastName); err != nil {
		return err
	}
	s.firstName = firstName
	s.lastName = lastName
	return nil
}
