package usecases

import (
	"context"
	"time"

	"shop/internal/domain/product"
	"shop/internal/domain/subscriber"
	"shop/internal/domain/subscription"

	"github.com/stretchr/testify/mock"
)

type mockSubscriberRepo struct {
	mock.Mock
}

func (m *mockSubscriberRepo) Create(ctx context.Context, s *subscriber.Subscriber) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		_ = s.SetID(1)
	}
	return args.Error(0)
}

func (m *mockSubscriberRepo) GetByID(ctx context.Context, id uint) (*subscriber.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriber.Subscriber), args.Error(1)
}

func (m *mockSubscriberRepo) List(ctx context.Context) ([]*subscriber.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriber.Subscriber), args.Error(1)
}

func (m *mockSubscriberRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriberRepo) Update(ctx context.Context, s *subscriber.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *mockProductRepo) Count(ctx context.Context, filter product.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockLinkRepo struct {
	mock.Mock
}

func (m *mockLinkRepo) Exists(ctx context.Context, subscriberID, productID uint) (bool, error) {
	args := m.Called(ctx, subscriberID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLinkRepo) Create(ctx context.Context, link *subscription.Link) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockLinkRepo) DeleteByProductID(ctx context.Context, productID uint) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *mockLinkRepo) DeleteBySubscriberID(ctx context.Context, subscriberID uint) error {
	return m.Called(ctx, subscriberID).Error(0)
}

// recordingTx runs the callback directly and records whether it asked for a rollback.
type recordingTx struct {
	calls      int
	rolledBack bool
}

func (tx *recordingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	err := fn(ctx)
	tx.rolledBack = err != nil
	return err
}

var (
	joinedAt  = time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	createdAt = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
)

func newJohnDoe(products ...subscriber.ProductRef) *subscriber.Subscriber {
	s, err := subscriber.ReconstructSubscriber(1, "John", "Doe", joinedAt, products)
	if err != nil {
		panic(err)
	}
	return s
}

func newWidget(underSale bool) *product.Product {
	p, err := product.ReconstructProduct(2, "Widget", createdAt, underSale, nil)
	if err != nil {
		panic(err)
	}
	return p
}

func widgetRef() subscriber.ProductRef {
	return subscriber.ProductRef{ID: 2, Name: "Widget", CreationDate: createdAt, UnderSale: true}
}
