package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"shop/internal/domain/subscription"
	"shop/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type linkFixture struct {
	subscribers *mockSubscriberRepo
	products    *mockProductRepo
	links       *mockLinkRepo
	tx          *recordingTx
	uc          *LinkProductUseCase
}

func newLinkFixture() *linkFixture {
	f := &linkFixture{
		subscribers: new(mockSubscriberRepo),
		products:    new(mockProductRepo),
		links:       new(mockLinkRepo),
		tx:          &recordingTx{},
	}
	f.uc = NewLinkProductUseCase(f.subscribers, f.products, f.links, f.tx, logger.Nop())
	return f
}

func TestLinkProductUseCase_Execute_Linked(t *testing.T) {
	f := newLinkFixture()
	f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil).Once()
	f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(true), nil)
	f.links.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)
	f.links.On("Create", mock.Anything, mock.MatchedBy(func(l *subscription.Link) bool {
		return l.SubscriberID() == 1 && l.ProductID() == 2
	})).Return(nil)
	f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(widgetRef()), nil).Once()

	result, err := f.uc.Execute(context.Background(), LinkProductCommand{SubscriberID: 1, ProductID: 2})

	require.NoError(t, err)
	assert.Equal(t, subscription.OutcomeLinked, result.Outcome)
	assert.Empty(t, result.Message)
	require.NotNil(t, result.Subscriber)
	require.Len(t, result.Subscriber.Products, 1)
	assert.Equal(t, "Widget", result.Subscriber.Products[0].Name)
	assert.Equal(t, 1, f.tx.calls)
	assert.False(t, f.tx.rolledBack)
	f.links.AssertExpectations(t)
}

func TestLinkProductUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *linkFixture)
		outcome subscription.Outcome
		message string
	}{
		{
			name: "subscriber not found",
			setup: func(f *linkFixture) {
				f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(nil, nil)
			},
			outcome: subscription.OutcomeSubscriberNotFound,
			message: "Subscriber with id 1 not found.",
		},
		{
			name: "product not found",
			setup: func(f *linkFixture) {
				f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil)
				f.products.On("GetByID", mock.Anything, uint(2)).Return(nil, nil)
			},
			outcome: subscription.OutcomeProductNotFound,
			message: "Product with id 2 not found.",
		},
		{
			name: "product not on sale",
			setup: func(f *linkFixture) {
				f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil)
				f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(false), nil)
			},
			outcome: subscription.OutcomeProductNotOnSale,
			message: "Product Widget is not under sale.",
		},
		{
			name: "already linked",
			setup: func(f *linkFixture) {
				f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil)
				f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(true), nil)
				f.links.On("Exists", mock.Anything, uint(1), uint(2)).Return(true, nil)
			},
			outcome: subscription.OutcomeAlreadyLinked,
			message: "Product Widget is already assigned to Subscriber John Doe.",
		},
		{
			name: "concurrent duplicate insert",
			setup: func(f *linkFixture) {
				f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil)
				f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(true), nil)
				f.links.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)
				f.links.On("Create", mock.Anything, mock.Anything).
					Return(fmt.Errorf("failed to create link: %w", subscription.ErrLinkExists))
			},
			outcome: subscription.OutcomeAlreadyLinked,
			message: "Product Widget is already assigned to Subscriber John Doe.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLinkFixture()
			tt.setup(f)

			result, err := f.uc.Execute(context.Background(), LinkProductCommand{SubscriberID: 1, ProductID: 2})

			require.NoError(t, err)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.True(t, result.Outcome.IsRejection())
			assert.Equal(t, tt.message, result.Message)
			assert.Nil(t, result.Subscriber)
			assert.True(t, f.tx.rolledBack)
		})
	}
}

func TestLinkProductUseCase_Execute_AlreadyInCollection(t *testing.T) {
	f := newLinkFixture()
	f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(widgetRef()), nil)
	f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(true), nil)
	f.links.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)

	result, err := f.uc.Execute(context.Background(), LinkProductCommand{SubscriberID: 1, ProductID: 2})

	require.NoError(t, err)
	assert.Equal(t, subscription.OutcomeAlreadyLinked, result.Outcome)
	f.links.AssertCalled(t, "Exists", mock.Anything, uint(1), uint(2))
	f.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLinkProductUseCase_Execute_Fault(t *testing.T) {
	f := newLinkFixture()
	f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(), nil)
	f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(true), nil)
	f.links.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)
	f.links.On("Create", mock.Anything, mock.Anything).Return(stderrors.New("disk full"))

	result, err := f.uc.Execute(context.Background(), LinkProductCommand{SubscriberID: 1, ProductID: 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to create link")
	assert.True(t, f.tx.rolledBack)
}

func TestLinkProductUseCase_Execute_NotOnSaleSkipsExistenceQuery(t *testing.T) {
	f := newLinkFixture()
	f.subscribers.On("GetByID", mock.Anything, uint(1)).Return(newJohnDoe(widgetRef()), nil)
	f.products.On("GetByID", mock.Anything, uint(2)).Return(newWidget(false), nil)

	result, err := f.uc.Execute(context.Background(), LinkProductCommand{SubscriberID: 1, ProductID: 2})

	require.NoError(t, err)
	assert.Equal(t, subscription.OutcomeProductNotOnSale, result.Outcome)
	f.links.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	f.links.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
