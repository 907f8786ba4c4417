package product

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/application/product/dto"
	"shop/internal/application/product/usecases"
	"shop/internal/interfaces/http/handlers/testutil"
	"shop/internal/shared/biztime"
	"shop/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockAddProductUC struct {
	result *dto.ProductDTO
	err    error
	cmd    usecases.AddProductCommand
	called bool
}

func (m *mockAddProductUC) Execute(ctx context.Context, cmd usecases.AddProductCommand) (*dto.ProductDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockGetProductUC struct {
	result *dto.ProductDTO
	err    error
}

func (m *mockGetProductUC) Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error) {
	return m.result, m.err
}

type mockListProductsUC struct {
	result []*dto.ProductDTO
	err    error
	scope  usecases.Scope
}

func (m *mockListProductsUC) Execute(ctx context.Context, scope usecases.Scope) ([]*dto.ProductDTO, error) {
	m.scope = scope
	return m.result, m.err
}

type mockCreatedBetweenUC struct {
	result []*dto.ProductDTO
	err    error
	query  usecases.CreatedBetweenQuery
}

func (m *mockCreatedBetweenUC) Execute(ctx context.Context, query usecases.CreatedBetweenQuery) ([]*dto.ProductDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockCountProductsUC struct {
	counts map[usecases.Scope]int64
	err    error
}

func (m *mockCountProductsUC) Execute(ctx context.Context, scope usecases.Scope) (int64, error) {
	return m.counts[scope], m.err
}

type mockUpdateProductUC struct {
	result *dto.ProductDTO
	err    error
	cmd    usecases.UpdateProductCommand
}

func (m *mockUpdateProductUC) Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*dto.ProductDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteProductUC struct {
	result *dto.ProductDTO
	err    error
}

func (m *mockDeleteProductUC) Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

type handlerMocks struct {
	add            *mockAddProductUC
	get            *mockGetProductUC
	list           *mockListProductsUC
	createdBetween *mockCreatedBetweenUC
	count          *mockCountProductsUC
	update         *mockUpdateProductUC
	del            *mockDeleteProductUC
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		add:            &mockAddProductUC{result: createTestProductDTO()},
		get:            &mockGetProductUC{result: createTestProductDTO()},
		list:           &mockListProductsUC{result: []*dto.ProductDTO{createTestProductDTO()}},
		createdBetween: &mockCreatedBetweenUC{result: []*dto.ProductDTO{}},
		count:          &mockCountProductsUC{counts: map[usecases.Scope]int64{}},
		update:         &mockUpdateProductUC{result: createTestProductDTO()},
		del:            &mockDeleteProductUC{result: createTestProductDTO()},
	}
	h := NewHandler(m.add, m.get, m.list, m.createdBetween, m.count, m.update, m.del, testutil.NewMockLogger())
	return h, m
}

func createTestProductDTO() *dto.ProductDTO {
	return &dto.ProductDTO{
		ID:           1,
		Name:         "Widget",
		CreationDate: biztime.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		UnderSale:    true,
		Subscribers:  []*dto.ProductSubscriberDTO{},
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestHandler_AddProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/products", map[string]interface{}{
			"name":      "<b>Widget</b>",
			"underSale": true,
		})

		h.AddProduct(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Widget", m.add.cmd.Name)
		assert.True(t, m.add.cmd.UnderSale)

		var body dto.ProductDTO
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "Widget", body.Name)
		assert.Contains(t, w.Body.String(), `"creationDate":"2024-05-01"`)
	})

	tests := []struct {
		name string
		body interface{}
		want map[string]string
	}{
		{
			name: "missing fields",
			body: map[string]interface{}{},
			want: map[string]string{
				"name":      "Name cannot be null",
				"underSale": "Sale status is required",
			},
		},
		{
			name: "short name",
			body: map[string]interface{}{"name": "ab", "underSale": false},
			want: map[string]string{"name": "Name must be between 3 and 15 characters"},
		},
		{
			name: "long name",
			body: map[string]interface{}{"name": "abcdefghijklmnop", "underSale": false},
			want: map[string]string{"name": "Name must be between 3 and 15 characters"},
		},
		{
			name: "markup only name",
			body: map[string]interface{}{"name": "<i></i>", "underSale": true},
			want: map[string]string{"name": "Name must be between 3 and 15 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			c, w := testutil.NewTestContext(http.MethodPost, "/api/products", tt.body)

			h.AddProduct(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			fields, err := testutil.ParseFieldErrors(w)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields)
			assert.False(t, m.add.called)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/products", `{"name": "Widget",`)

		h.AddProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields, err := testutil.ParseFieldErrors(w)
		require.NoError(t, err)
		assert.Contains(t, fields, "body")
		assert.False(t, m.add.called)
	})
}

func TestHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, _ := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/1", nil)
		testutil.SetURLParam(c, "id", "1")

		h.GetProduct(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found is 400 plain text", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.result = nil
		m.get.err = errors.NewNotFoundError("Product with id 9 not found.")
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/9", nil)
		testutil.SetURLParam(c, "id", "9")

		h.GetProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Product with id 9 not found.", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("non numeric id echoes raw value", func(t *testing.T) {
		h, _ := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/abc", nil)
		testutil.SetURLParam(c, "id", "abc")

		h.GetProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Product with id abc not found.", w.Body.String())
	})

	t.Run("fault is 500 with timestamp", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.result = nil
		m.get.err = stderrors.New("connection refused")
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/1", nil)
		testutil.SetURLParam(c, "id", "1")

		h.GetProduct(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var fault testutil.FaultResponse
		require.NoError(t, testutil.ParseResponse(w, &fault))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", fault.Status)
		assert.NotContains(t, fault.Message, "connection refused")
		assert.Regexp(t, `^\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}$`, fault.Timestamp)
	})
}

func TestHandler_Lists(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/products", nil)
	h.ListProducts(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ScopeAll, m.list.scope)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/products/total/popular", nil)
	h.ListPopularProducts(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ScopePopular, m.list.scope)

	var body []dto.ProductDTO
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Len(t, body, 1)
}

func TestHandler_Counts(t *testing.T) {
	h, m := newTestHandler()
	m.count.counts = map[usecases.Scope]int64{
		usecases.ScopeAll:    4,
		usecases.ScopeSold:   2,
		usecases.ScopeActive: 3,
	}

	tests := []struct {
		name    string
		handler func(c *gin.Context)
		want    string
	}{
		{name: "total", handler: h.CountProducts, want: "4 products in the database."},
		{name: "sold", handler: h.CountSoldProducts, want: "2 sold products."},
		{name: "active", handler: h.CountActiveProducts, want: "3 active products."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/api/products/total", nil)
			tt.handler(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestHandler_ListProductsCreatedBetween(t *testing.T) {
	t.Run("date only bounds cover whole days", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/date-range", nil)
		testutil.SetQueryParams(c, map[string]string{"startDate": "2024-01-01", "endDate": "2024-01-31"})

		h.ListProductsCreatedBetween(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), m.createdBetween.query.Start.UTC())
		assert.Equal(t, 31, m.createdBetween.query.End.UTC().Day())
		assert.Equal(t, 23, m.createdBetween.query.End.UTC().Hour())
	})

	t.Run("date time bounds", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/date-range", nil)
		testutil.SetQueryParams(c, map[string]string{"startDate": "2024-01-01T08:00:00", "endDate": "2024-01-01T09:30:00Z"})

		h.ListProductsCreatedBetween(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 30, m.createdBetween.query.End.Minute())
	})

	t.Run("missing and invalid bounds", func(t *testing.T) {
		h, _ := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/products/date-range", nil)
		testutil.SetQueryParams(c, map[string]string{"endDate": "yesterday"})

		h.ListProductsCreatedBetween(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields, err := testutil.ParseFieldErrors(w)
		require.NoError(t, err)
		assert.Equal(t, "startDate is required", fields["startDate"])
		assert.Equal(t, "endDate must be a date or date-time", fields["endDate"])
	})
}

func TestHandler_UpdateProduct(t *testing.T) {
	t.Run("updated returns 201", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/api/products/1", map[string]interface{}{
			"name":      "Gadget",
			"underSale": false,
		})
		testutil.SetURLParam(c, "id", "1")

		h.UpdateProduct(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, usecases.UpdateProductCommand{ID: 1, Name: "Gadget", UnderSale: false}, m.update.cmd)
	})

	t.Run("not found", func(t *testing.T) {
		h, m := newTestHandler()
		m.update.result = nil
		m.update.err = errors.NewNotFoundError("Product with id 5 not found.")
		c, w := testutil.NewTestContext(http.MethodPut, "/api/products/5", map[string]interface{}{
			"name":      "Gadget",
			"underSale": true,
		})
		testutil.SetURLParam(c, "id", "5")

		h.UpdateProduct(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Product with id 5 not found.", w.Body.String())
	})
}

func TestHandler_DeleteProduct(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/products/1", nil)
	testutil.SetURLParam(c, "id", "1")

	h.DeleteProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ProductDTO
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, uint(1), body.ID)

	c, w = testutil.NewTestContext(http.MethodDelete, "/api/products/x1", nil)
	testutil.SetURLParam(c, "id", "x1")
	h.DeleteProduct(c)
	assert.Equal(t, "Product with id x1 not found.", w.Body.String())
}
