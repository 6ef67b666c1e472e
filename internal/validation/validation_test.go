package validation

import (
	"testing"

	"warehouse-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "8f14e45f-ceea-467a-9af0-1c2b3d4e5f60"

func fields(details []models.ErrorDetail) []string {
	out := make([]string, 0, len(details))
	for _, d := range details {
		out = append(out, d.Field)
	}
	return out
}

func TestCreateProductRejectsEmptySKU(t *testing.T) {
	details := Struct(models.CreateProductRequest{Name: "Widget", CategoryID: validUUID})

	require.Len(t, details, 1)
	assert.Equal(t, "sku", details[0].Field)
	assert.Equal(t, "is required", details[0].Message)
}

func TestCreateProductRejectsBadCategory(t *testing.T) {
	details := Struct(models.CreateProductRequest{Name: "Widget", SKU: "W-1", CategoryID: "nope"})

	require.Len(t, details, 1)
	assert.Equal(t, "category_id", details[0].Field)
	assert.Equal(t, "must be a valid UUID", details[0].Message)
}

func TestCreateProductValid(t *testing.T) {
	assert.Nil(t, Struct(models.CreateProductRequest{Name: "Widget", SKU: "W-1", CategoryID: validUUID}))
}

func TestUpdateProductOptionalFields(t *testing.T) {
	assert.Nil(t, Struct(models.UpdateProductRequest{}))

	empty := ""
	details := Struct(models.UpdateProductRequest{SKU: &empty})
	require.Len(t, details, 1)
	assert.Equal(t, "sku", details[0].Field)
}

func TestStockQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity *int
		wantErr  bool
	}{
		{"missing", nil, true},
		{"negative", models.IntPtr(-1), true},
		{"zero", models.IntPtr(0), false},
		{"positive", models.IntPtr(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := Struct(models.UpdateStockRequest{Quantity: tt.quantity})
			if tt.wantErr {
				assert.Equal(t, []string{"quantity"}, fields(details))
			} else {
				assert.Nil(t, details)
			}
		})
	}
}

func TestCreateStockReportsEveryField(t *testing.T) {
	details := Struct(models.CreateStockRequest{ProductID: "x", Quantity: models.IntPtr(-3)})

	assert.ElementsMatch(t, []string{"product_id", "warehouse_location_id", "quantity"}, fields(details))
}

func TestAuthSchemas(t *testing.T) {
	details := Struct(models.SignupRequest{Email: "not-an-email", Password: "short", FullName: "A"})
	assert.ElementsMatch(t, []string{"email", "password"}, fields(details))

	assert.Nil(t, Struct(models.SigninRequest{Email: "a@b.io", Password: "x"}))

	details = Struct(models.ChangeRoleRequest{Role: "owner"})
	require.Len(t, details, 1)
	assert.Equal(t, "must be one of: super_admin, admin, user", details[0].Message)
}

func TestProductListQuery(t *testing.T) {
	q := models.ProductListRequest{}.WithDefaults()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Nil(t, Struct(q))

	q.Limit = 101
	q.Order = "up"
	assert.ElementsMatch(t, []string{"limit", "order"}, fields(Struct(q)))
}
