package subscriber

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/application/subscriber/dto"
	"shop/internal/application/subscriber/usecases"
	"shop/internal/domain/subscription"
	"shop/internal/interfaces/http/handlers/testutil"
	"shop/internal/shared/biztime"
	"shop/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockAddSubscriberUC struct {
	result *dto.SubscriberDTO
	err    error
	cmd    usecases.AddSubscriberCommand
	called bool
}

func (m *mockAddSubscriberUC) Execute(ctx context.Context, cmd usecases.AddSubscriberCommand) (*dto.SubscriberDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockGetSubscriberUC struct {
	result *dto.SubscriberDTO
	err    error
}

func (m *mockGetSubscriberUC) Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockListSubscribersUC struct {
	result []*dto.SubscriberDTO
	err    error
}

func (m *mockListSubscribersUC) Execute(ctx context.Context) ([]*dto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockCountSubscribersUC struct {
	count int64
	err   error
}

func (m *mockCountSubscribersUC) Execute(ctx context.Context) (int64, error) {
	return m.count, m.err
}

type mockUpdateSubscriberUC struct {
	result *dto.SubscriberDTO
	err    error
	cmd    usecases.UpdateSubscriberCommand
}

func (m *mockUpdateSubscriberUC) Execute(ctx context.Context, cmd usecases.UpdateSubscriberCommand) (*dto.SubscriberDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteSubscriberUC struct {
	result *dto.SubscriberDTO
	err    error
}

func (m *mockDeleteSubscriberUC) Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error) {
	return m.result, m.err
}

type mockLinkProductUC struct {
	result *usecases.LinkResult
	err    error
	called bool
}

func (m *mockLinkProductUC) Execute(ctx context.Context, cmd usecases.LinkProductCommand) (*usecases.LinkResult, error) {
	m.called = true
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type handlerMocks struct {
	add    *mockAddSubscriberUC
	get    *mockGetSubscriberUC
	list   *mockListSubscribersUC
	count  *mockCountSubscribersUC
	update *mockUpdateSubscriberUC
	del    *mockDeleteSubscriberUC
	link   *mockLinkProductUC
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		add:    &mockAddSubscriberUC{result: createTestSubscriberDTO()},
		get:    &mockGetSubscriberUC{result: createTestSubscriberDTO()},
		list:   &mockListSubscribersUC{result: []*dto.SubscriberDTO{}},
		count:  &mockCountSubscribersUC{},
		update: &mockUpdateSubscriberUC{result: createTestSubscriberDTO()},
		del:    &mockDeleteSubscriberUC{result: createTestSubscriberDTO()},
		link:   &mockLinkProductUC{},
	}
	h := NewHandler(m.add, m.get, m.list, m.count, m.update, m.del, m.link, testutil.NewMockLogger())
	return h, m
}

func createTestSubscriberDTO() *dto.SubscriberDTO {
	return &dto.SubscriberDTO{
		ID:         1,
		FirstName:  "John",
		LastName:   "Doe",
		JoinedDate: biztime.NewDate(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
		Products:   []*dto.SubscriberProductDTO{},
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestHandler_AddSubscriber(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers", map[string]string{
			"firstName": " John ",
			"lastName":  "Doe",
		})

		h.AddSubscriber(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, usecases.AddSubscriberCommand{FirstName: "John", LastName: "Doe"}, m.add.cmd)
		assert.Contains(t, w.Body.String(), `"joinedDate":"2024-05-02"`)
		assert.Contains(t, w.Body.String(), `"products":[]`)
	})

	tests := []struct {
		name string
		body interface{}
		want map[string]string
	}{
		{
			name: "both names missing",
			body: map[string]string{},
			want: map[string]string{
				"firstName": "First name cannot be null",
				"lastName":  "Last name cannot be null",
			},
		},
		{
			name: "first name too short",
			body: map[string]string{"firstName": "Jo", "lastName": "Doe"},
			want: map[string]string{"firstName": "First name must be between 3 and 15 characters"},
		},
		{
			name: "last name too long",
			body: map[string]string{"firstName": "John", "lastName": "Doedoedoedoedoedoe"},
			want: map[string]string{"lastName": "Last name must be between 3 and 15 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers", tt.body)

			h.AddSubscriber(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			fields, err := testutil.ParseFieldErrors(w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields)
			assert.False(t, m.add.called)
		})
	}
}

func TestHandler_GetSubscriber(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers/1", nil)
	testutil.SetURLParam(c, "id", "1")
	h.GetSubscriber(c)
	assert.Equal(t, http.StatusOK, w.Code)

	m.get.result = nil
	m.get.err = errors.NewNotFoundError("Subscriber with id 2 not found.")
	c, w = testutil.NewTestContext(http.MethodGet, "/api/subscribers/2", nil)
	testutil.SetURLParam(c, "id", "2")
	h.GetSubscriber(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Subscriber with id 2 not found.", w.Body.String())

	c, w = testutil.NewTestContext(http.MethodGet, "/api/subscribers/me", nil)
	testutil.SetURLParam(c, "id", "me")
	h.GetSubscriber(c)
	assert.Equal(t, "Subscriber with id me not found.", w.Body.String())
}

func TestHandler_ListAndCount(t *testing.T) {
	h, m := newTestHandler()
	m.count.count = 3

	c, w := testutil.NewTestContext(http.MethodGet, "/api/subscribers", nil)
	h.ListSubscribers(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	c, w = testutil.NewTestContext(http.MethodGet, "/api/subscribers/total", nil)
	h.CountSubscribers(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3 subscribers in the database.", w.Body.String())
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/api/subscribers/1", map[string]string{
		"firstName": "Jane",
		"lastName":  "Roe",
	})
	testutil.SetURLParam(c, "id", "1")
	h.UpdateSubscriber(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.UpdateSubscriberCommand{ID: 1, FirstName: "Jane", LastName: "Roe"}, m.update.cmd)

	c, w = testutil.NewTestContext(http.MethodDelete, "/api/subscribers/1", nil)
	testutil.SetURLParam(c, "id", "1")
	h.DeleteSubscriber(c)
	assert.Equal(t, http.StatusOK, w.Code)

	m.del.result = nil
	m.del.err = errors.NewNotFoundError("Subscriber with id 1 not found.")
	c, w = testutil.NewTestContext(http.MethodDelete, "/api/subscribers/1", nil)
	testutil.SetURLParam(c, "id", "1")
	h.DeleteSubscriber(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_LinkProduct(t *testing.T) {
	t.Run("linked returns subscriber", func(t *testing.T) {
		h, m := newTestHandler()
		linked := createTestSubscriberDTO()
		linked.Products = []*dto.SubscriberProductDTO{{
			Name:         "Widget",
			CreationDate: biztime.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			UnderSale:    true,
		}}
		m.link.result = &usecases.LinkResult{Outcome: subscription.OutcomeLinked, Subscriber: linked}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/1/products/2", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "productId", "2")
		h.LinkProduct(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body dto.SubscriberDTO
		require.NoError(t, testutil.ParseResponse(w, &body))
		require.Len(t, body.Products, 1)
		assert.Equal(t, "Widget", body.Products[0].Name)
	})

	t.Run("rejection keeps 201 with text", func(t *testing.T) {
		h, m := newTestHandler()
		m.link.result = &usecases.LinkResult{
			Outcome: subscription.OutcomeProductNotOnSale,
			Message: "Product Widget is not under sale.",
		}

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/1/products/2", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "productId", "2")
		h.LinkProduct(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Product Widget is not under sale.", w.Body.String())
	})

	t.Run("non numeric ids", func(t *testing.T) {
		h, m := newTestHandler()

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/x/products/2", nil)
		testutil.SetURLParam(c, "id", "x")
		testutil.SetURLParam(c, "productId", "2")
		h.LinkProduct(c)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Subscriber with id x not found.", w.Body.String())

		c, w = testutil.NewTestContext(http.MethodPost, "/api/subscribers/1/products/y", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "productId", "y")
		h.LinkProduct(c)
		assert.Equal(t, "Product with id y not found.", w.Body.String())
		assert.False(t, m.link.called)
	})

	t.Run("fault", func(t *testing.T) {
		h, m := newTestHandler()
		m.link.err = errors.NewInternalError("boom")

		c, w := testutil.NewTestContext(http.MethodPost, "/api/subscribers/1/products/2", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "productId", "2")
		h.LinkProduct(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var fault testutil.FaultResponse
		require.NoError(t, testutil.ParseResponse(w, &fault))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", fault.Status)
	})
}
