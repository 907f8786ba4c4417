package usecases

import (
	"context"
	"time"

	"shop/internal/domain/product"
	"shop/internal/domain/subscription"

	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		_ = p.SetID(1)
	}
	return args.Error(0)
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
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLinkRepo struct {
	mock.Mock
}

func (m *mockLinkRepo) Exists(ctx context.Context, subscriberID, productID uint) (bool, error) {
	args := m.Called(ctx, subscriberID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLinkRepo) Create(ctx context.Context, link *subscription.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *mockLinkRepo) DeleteByProductID(ctx context.Context, productID uint) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *mockLinkRepo) DeleteBySubscriberID(ctx context.Context, subscriberID uint) error {
	args := m.Called(ctx, subscriberID)
	return args.Error(0)
}

// inlineTx runs the callback directly and counts invocations.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

var fixedDate = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestProduct(id uint, name string, underSale bool, subs ...product.SubscriberRef) *product.Product {
	p, err := product.ReconstructProduct(id, name, fixedDate, underSale, subs)
	if err != nil {
		panic(err)
	}
	return p
}
