package screen

import (
	"strconv"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/repository"
)

const descriptionWidth = 48

type (
	ProductScreen  = Resource[models.CreateProductRequest, models.UpdateProductRequest, models.ProductResponse, models.ProductListItem, models.ProductListRequest]
	CategoryScreen = Resource[models.CreateCategoryRequest, models.UpdateCategoryRequest, models.CategoryResponse, models.CategoryListItem, models.PaginationRequest]
	LocationScreen = Resource[models.CreateLocationRequest, models.UpdateLocationRequest, models.LocationResponse, models.LocationListItem, models.PaginationRequest]
	StockScreen    = Resource[models.CreateStockRequest, models.UpdateStockRequest, models.StockResponse, models.StockListItem, models.PaginationRequest]
)

func pageQuery(page, limit int) models.PaginationRequest {
	return models.PaginationRequest{Page: page, Limit: limit}
}

func descriptionCell[T any](get func(T) string) func(T) Cell {
	return func(row T) Cell { return TruncatedCell(get(row), descriptionWidth) }
}

var descriptionField = FieldConfig{
	Type:        FieldTextarea,
	Label:       "Description",
	Placeholder: "Enter description (optional)",
}

func NewProductScreen(backend repository.ProductRepository) *ProductScreen {
	fields := map[string]FieldConfig{
		"name":        {Label: "Name", Placeholder: "Enter product name"},
		"sku":         {Label: "SKU", Placeholder: "Enter product SKU"},
		"category_id": {Label: "Category ID", Placeholder: "Enter category UUID"},
		"description": {Type: FieldTextarea, Label: "Description", Placeholder: "Enter product description (optional)"},
	}
	return &ProductScreen{
		Name:        "products",
		Singular:    "Product",
		Title:       "Products",
		Description: "Manage product entries",
		AddLabel:    "Add Product",
		Columns: []Column[models.ProductListItem]{
			{Header: "Name", Key: "name"},
			{Header: "SKU", Key: "sku"},
			{Header: "Category", Key: "category_name"},
			{Header: "Description", Key: "description", Render: descriptionCell(func(p models.ProductListItem) string { return p.Description })},
			{Header: "Created At", Key: "created_at"},
			{Header: "Updated At", Key: "updated_at"},
		},
		CreateFields: fields,
		UpdateFields: fields,
		EditDefaults: func(p models.ProductListItem) map[string]string {
			return map[string]string{
				"name":        p.Name,
				"sku":         p.SKU,
				"category_id": p.CategoryID,
				"description": p.Description,
			}
		},
		FromDetail: models.ProductListItemFromDetail,
		Merge:      models.MergeProduct,
		Query: func(page, limit int) models.ProductListRequest {
			return models.ProductListRequest{Page: page, Limit: limit}
		},
		Backend: backend,
	}
}

func NewCategoryScreen(backend repository.CategoryRepository) *CategoryScreen {
	fields := map[string]FieldConfig{
		"name":        {Label: "Name", Placeholder: "Enter category name"},
		"description": descriptionField,
	}
	return &CategoryScreen{
		Name:        "categories",
		Singular:    "Category",
		Title:       "Product Categories",
		Description: "Manage product categories",
		AddLabel:    "Add Category",
		Columns: []Column[models.CategoryListItem]{
			{Header: "Name", Key: "name"},
			{Header: "Description", Key: "description", Render: descriptionCell(func(c models.CategoryListItem) string { return c.Description })},
			{Header: "Created At", Key: "created_at"},
			{Header: "Updated At", Key: "updated_at"},
		},
		CreateFields: fields,
		UpdateFields: fields,
		EditDefaults: func(c models.CategoryListItem) map[string]string {
			return map[string]string{"name": c.Name, "description": c.Description}
		},
		FromDetail: models.CategoryListItemFromDetail,
		Merge:      models.MergeCategory,
		Query:      pageQuery,
		Backend:    backend,
	}
}

func NewLocationScreen(backend repository.LocationRepository) *LocationScreen {
	fields := map[string]FieldConfig{
		"name":        {Label: "Name", Placeholder: "Enter warehouse location name"},
		"description": {Type: FieldTextarea, Label: "Description", Placeholder: "Enter location description (optional)"},
	}
	return &LocationScreen{
		Name:        "locations",
		Singular:    "Location",
		Title:       "Warehouse Locations",
		Description: "Manage warehouse location entries",
		AddLabel:    "Add Location",
		Columns: []Column[models.LocationListItem]{
			{Header: "Name", Key: "name"},
			{Header: "Description", Key: "description", Render: descriptionCell(func(l models.LocationListItem) string { return l.Description })},
			{Header: "Created At", Key: "created_at"},
		},
		CreateFields: fields,
		UpdateFields: fields,
		EditDefaults: func(l models.LocationListItem) map[string]string {
			return map[string]string{"name": l.Name, "description": l.Description}
		},
		FromDetail: models.LocationListItemFromDetail,
		Merge:      models.MergeLocation,
		Query:      pageQuery,
		Backend:    backend,
	}
}

func NewStockScreen(backend repository.StockRepository) *StockScreen {
	fields := map[string]FieldConfig{
		"product_id": {
			Label:       "Product ID",
			Placeholder: "Enter product UUID",
			Description: "Unique identifier for the product",
		},
		"warehouse_location_id": {Label: "Warehouse Location ID", Placeholder: "Enter warehouse location UUID"},
		"quantity": {
			Type:        FieldNumber,
			Label:       "Quantity",
			Placeholder: "Enter stock quantity",
			Description: "Quantity of the product in stock",
		},
	}
	return &StockScreen{
		Name:        "stocks",
		Singular:    "Stock",
		Title:       "Product Stocks",
		Description: "Manage product stock entries",
		AddLabel:    "Add Stock",

		DrawerDescription: "Manage product stock details",
		DeletePrompt:      "Are you sure you want to delete this stock entry?",

		Columns: []Column[models.StockListItem]{
			{Header: "Product", Key: "product_name"},
			{Header: "Warehouse", Key: "warehouse_name"},
			{Header: "Quantity", Key: "quantity"},
			{Header: "Status", Key: "status", Render: stockStatusCell},
			{Header: "Updated At", Key: "updated_at"},
		},
		CreateFields: fields,
		UpdateFields: fields,
		EditDefaults: func(s models.StockListItem) map[string]string {
			return map[string]string{"quantity": strconv.Itoa(s.Quantity)}
		},
		FromDetail: models.StockListItemFromDetail,
		Merge:      models.MergeStock,
		Query:      pageQuery,
		Backend:    backend,
	}
}

func stockStatusCell(s models.StockListItem) Cell {
	return Cell{Text: Capitalize(Fallback(s.Status, EmptyCell)), Class: "status-" + s.Status}
}
