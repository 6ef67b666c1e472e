package screen

import (
	"net/url"
	"testing"

	"warehouse-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByName(t *testing.T, fields []Field, name string) Field {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "missing field", "no field %q", name)
	return Field{}
}

func TestDeriveFieldsInfersTypes(t *testing.T) {
	fields := DeriveFields(models.SignupRequest{}, nil)

	require.Len(t, fields, 3)
	assert.Equal(t, FieldEmail, fields[0].Type)
	assert.Equal(t, FieldPassword, fields[1].Type)
	assert.Equal(t, FieldText, fields[2].Type)
	assert.Equal(t, "Full name", fields[2].Label)
	assert.True(t, fields[2].Required)
}

func TestDeriveFieldsEnumFromOneof(t *testing.T) {
	fields := DeriveFields(&models.ChangeRoleRequest{}, nil)

	require.Len(t, fields, 1)
	assert.Equal(t, FieldEnum, fields[0].Type)
	assert.Equal(t, []Option{
		{Value: "super_admin", Label: "Super admin"},
		{Value: "admin", Label: "Admin"},
		{Value: "user", Label: "User"},
	}, fields[0].Options)
}

func TestDeriveFieldsAppliesConfig(t *testing.T) {
	s := NewStockScreen(nil)
	fields := DeriveFields(models.CreateStockRequest{}, s.CreateFields)

	require.Len(t, fields, 3)
	qty := fieldByName(t, fields, "quantity")
	assert.Equal(t, FieldNumber, qty.Type)
	assert.Equal(t, "Enter stock quantity", qty.Placeholder)
	assert.True(t, qty.Required)

	product := fieldByName(t, fields, "product_id")
	assert.Equal(t, "Product ID", product.Label)
	assert.Equal(t, "Unique identifier for the product", product.Description)
}

func TestDeriveFieldsUpdateSchema(t *testing.T) {
	fields := DeriveFields(models.UpdateStockRequest{}, NewStockScreen(nil).UpdateFields)

	require.Len(t, fields, 1)
	assert.Equal(t, "quantity", fields[0].Name)
}

func TestDeriveFieldsNonStruct(t *testing.T) {
	assert.Nil(t, DeriveFields("nope", nil))
	assert.Nil(t, DeriveFields(nil, nil))
}

func TestBindParsesNumbers(t *testing.T) {
	req, errs := Bind[models.CreateStockRequest](url.Values{
		"product_id":            {"p1"},
		"warehouse_location_id": {"w1"},
		"quantity":              {" 12 "},
	})

	require.Nil(t, errs)
	assert.Equal(t, "p1", req.ProductID)
	require.NotNil(t, req.Quantity)
	assert.Equal(t, 12, *req.Quantity)
}

func TestBindRejectsNonNumeric(t *testing.T) {
	_, errs := Bind[models.UpdateStockRequest](url.Values{"quantity": {"ten"}})

	require.Len(t, errs, 1)
	assert.Equal(t, "quantity", errs[0].Field)
}

func TestBindEmptyNumberLeftUnset(t *testing.T) {
	req, errs := Bind[models.UpdateStockRequest](url.Values{"quantity": {""}})

	assert.Nil(t, errs)
	assert.Nil(t, req.Quantity)
}

func TestBindOnlyPresentFields(t *testing.T) {
	req, errs := Bind[models.UpdateProductRequest](url.Values{"name": {"Widget"}, "description": {""}})

	require.Nil(t, errs)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Widget", *req.Name)
	require.NotNil(t, req.Description)
	assert.Equal(t, "", *req.Description)
	assert.Nil(t, req.SKU)
	assert.Nil(t, req.CategoryID)
}

func TestErrorMapKeepsFirst(t *testing.T) {
	m := ErrorMap([]models.ErrorDetail{
		{Field: "sku", Message: "first"},
		{Field: "sku", Message: "second"},
	})
	assert.Equal(t, map[string]string{"sku": "first"}, m)
}
