package dto

import (
	"encoding/json"
	"testing"
	"time"

	"shop/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProductDTO_JSONShape(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	p, err := product.ReconstructProduct(4, "Widget", created, true, []product.SubscriberRef{
		{ID: 1, FirstName: "John", LastName: "Doe", JoinedDate: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	data, err := json.Marshal(ToProductDTO(p))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 4,
		"name": "Widget",
		"creationDate": "2024-05-01",
		"underSale": true,
		"subscribers": [{"firstName": "John", "lastName": "Doe", "joinedDate": "2024-05-02"}]
	}`, string(data))
}

func TestToProductDTO_NoSubscribers(t *testing.T) {
	p, err := product.ReconstructProduct(2, "Gadget", time.Now(), false, nil)
	require.NoError(t, err)

	data, err := json.Marshal(ToProductDTO(p))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"subscribers":[]`)
	assert.Empty(t, ToProductDTOList(nil))
}
