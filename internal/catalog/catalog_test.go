package catalog

import (
	"testing"

	"marketplace-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalog(t *testing.T) {
	c := New()

	products := c.Products()
	assert.Len(t, products, 7)

	phone, err := c.ProductByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro Max", phone.Name)
	assert.True(t, phone.HasOptions())
	assert.True(t, phone.OnPromotion())

	generator, err := c.ProductByID("p3")
	require.NoError(t, err)
	assert.False(t, generator.HasOptions())
	assert.False(t, generator.OnPromotion())

	_, err = c.ProductByID("p99")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearch(t *testing.T) {
	c := New()

	electronics := c.Search("", "Eletrónica")
	assert.Len(t, electronics, 3)

	byName := c.Search("iphone", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	assert.Empty(t, c.Search("iphone", "Moda"))
}

func TestProductCRUD(t *testing.T) {
	c := New()

	created := c.AddProduct(models.Product{
		Name:     "Painel Solar 450W",
		Price:    180000,
		Stock:    10,
		SellerID: "u4",
		Category: "Industrial",
	})
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "AOA", created.Currency)

	// New products surface first on the storefront.
	assert.Equal(t, created.ID, c.Products()[0].ID)

	created.Price = 175000
	require.NoError(t, c.UpdateProduct(created))

	got, err := c.ProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(175000), got.Price)

	require.NoError(t, c.DeleteProduct(created.ID))
	_, err = c.ProductByID(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, c.DeleteProduct(created.ID), ErrProductNotFound)
}

func TestProductsBySeller(t *testing.T) {
	c := New()

	techAngola := c.ProductsBySeller("u1")
	assert.Len(t, techAngola, 4)

	assert.Empty(t, c.ProductsBySeller("u99"))
}

func TestRegisterSeller(t *testing.T) {
	c := New()

	created := c.RegisterSeller(models.Seller{
		Name:       "Moda Luanda",
		Email:      "contacto@modaluanda.ao",
		IsVerified: true, // must be ignored
	})

	require.NotEmpty(t, created.ID)
	assert.False(t, created.IsVerified)
	assert.Equal(t, "09:00 - 18:00", created.OpeningHours)

	got, err := c.SellerByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moda Luanda", got.Name)
}

func TestUpdateSellerProfile(t *testing.T) {
	c := New()

	seller, err := c.SellerByID("u1")
	require.NoError(t, err)

	seller.StoreDescription = "Nova descrição"
	require.NoError(t, c.UpdateSellerProfile(*seller))

	got, err := c.SellerByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Nova descrição", got.StoreDescription)

	assert.ErrorIs(t, c.UpdateSellerProfile(models.Seller{ID: "u99"}), ErrSellerNotFound)
}
