package service_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	appErrors "github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	spiderPlant = models.Product{ID: "1", Name: "Spider Plant", Price: "250.000đ", Image: "spider.png", Category: models.CategoryPlant}
	ceramicPot  = models.Product{ID: "2", Name: "Ceramic Pot", Price: "120.000đ", Image: "pot.png", Category: models.CategoryPot}
	bonsai      = models.Product{ID: "3", Name: "Bonsai", Price: "9.000.000.000.000.000.000đ", Image: "bonsai.png", Category: models.CategoryPlant}
	testUser    = &models.User{ID: "u1", Name: "Lan", Email: "lan@example.com", Password: "secret"}
)

// setupCartTest -> a cart store signed in as testUser over a seeded backend
func setupCartTest(t *testing.T) (*testutils.Backend, *service.Cart) {
	t.Helper()

	backend := testutils.NewBackend()
	backend.AddProduct(spiderPlant)
	backend.AddProduct(ceramicPot)

	cart := service.NewCart(backend, backend, 2)
	require.NoError(t, cart.SetUser(context.Background(), testUser))

	return backend, cart
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)

	return appErr.Code
}

func TestSetUser(t *testing.T) {
	t.Run("Success - Creates Cart On First Read", func(t *testing.T) {
		// Arrange
		backend := testutils.NewBackend()
		cart := service.NewCart(backend, backend, 0)

		// Act
		err := cart.SetUser(context.Background(), testUser)

		// Assert
		require.NoError(t, err)
		carts := backend.CartsOf(testUser.ID)
		require.Len(t, carts, 1)
		assert.Equal(t, "0đ", carts[0].Total)
		assert.Empty(t, carts[0].Items)
		assert.Equal(t, carts[0].ID, cart.Snapshot().CartID)
	})

	t.Run("Success - Reuses Existing Cart", func(t *testing.T) {
		// Arrange
		backend := testutils.NewBackend()
		backend.AddProduct(spiderPlant)
		backend.AddCart(models.Cart{ID: "c9", UserID: testUser.ID, Items: []models.CartItem{{ProductID: "1", Quantity: 3, Price: "250.000đ"}}, Total: "750.000đ"})
		cart := service.NewCart(backend, backend, 1)

		// Act
		err := cart.SetUser(context.Background(), testUser)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 0, backend.Calls("CreateCart"))
		snapshot := cart.Snapshot()
		assert.Equal(t, "c9", snapshot.CartID)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "Spider Plant", snapshot.Items[0].Name)
		assert.Equal(t, "Cây trồng", snapshot.Items[0].Category)
		assert.Equal(t, int64(750000), snapshot.Total)
	})

	t.Run("Success - Nil User Empties Store", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(context.Background(), &spiderPlant, 1))

		// Act
		err := cart.SetUser(context.Background(), nil)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, cart.Lines())
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErrorCode(t, cart.Refresh(context.Background())))
	})
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Repeated Adds Merge Into One Line", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)

		// Act
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))

		// Assert
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, int64(500000), cart.Total())

		stored := backend.CartsOf(testUser.ID)
		require.Len(t, stored, 1)
		require.Len(t, stored[0].Items, 1)
		assert.Equal(t, "500.000đ", stored[0].Total)
	})

	t.Run("Success - New Product Appends Line", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 2))
		require.NoError(t, cart.AddToCart(ctx, &ceramicPot, 1))

		// Assert
		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1", lines[0].ProductID)
		assert.Equal(t, "2", lines[1].ProductID)
		assert.Equal(t, int64(2*250000+120000), cart.Total())
		assert.Equal(t, "620.000đ", cart.Snapshot().FormattedTotal)
	})

	t.Run("Success - Non Positive Quantity Adds One", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		err := cart.AddToCart(ctx, &spiderPlant, 0)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Lines(), 1)
		assert.Equal(t, 1, cart.Lines()[0].Quantity)
	})

	t.Run("Success - AddItem Looks Product Up", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		err := cart.AddItem(ctx, "2", 3)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Lines(), 1)
		assert.Equal(t, "Ceramic Pot", cart.Lines()[0].Name)
		assert.Equal(t, int64(360000), cart.Total())
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		err := cart.AddItem(ctx, "missing", 1)

		// Assert
		assert.True(t, appErrors.IsNotFound(err))
		assert.Empty(t, cart.Lines())
	})

	t.Run("Failure - Not Signed In", func(t *testing.T) {
		// Arrange
		backend := testutils.NewBackend()
		cart := service.NewCart(backend, backend, 1)

		// Act
		err := cart.AddToCart(ctx, &spiderPlant, 1)

		// Assert
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErrorCode(t, err))
		assert.Equal(t, 0, backend.Calls("FindCartsByUser"))
	})

	t.Run("Failure - Backend Error Leaves Store Unchanged", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
		backend.SetErr(appErrors.ThirdPartyError("Network request failed"))

		// Act
		err := cart.AddToCart(ctx, &spiderPlant, 1)

		// Assert
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErrorCode(t, err))
		require.Len(t, cart.Lines(), 1)
		assert.Equal(t, 1, cart.Lines()[0].Quantity)
	})

	t.Run("Success - Concurrent Adds Never Duplicate A Line", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)

		// Act
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
			}()
		}
		wg.Wait()

		// Assert
		stored := backend.CartsOf(testUser.ID)
		require.Len(t, stored, 1)
		require.Len(t, stored[0].Items, 1)
		assert.Equal(t, 10, stored[0].Items[0].Quantity)
		assert.Equal(t, int64(2500000), cart.Total())
	})
}

func TestAddToCartLimits(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Quantity Above Limit", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)

		// Act
		err := cart.AddToCart(ctx, &spiderPlant, math.MaxInt)

		// Assert
		assert.Equal(t, appErrors.ErrCodeValidation, appErrorCode(t, err))
		assert.Empty(t, cart.Lines())
		assert.Empty(t, backend.CartsOf(testUser.ID)[0].Items)
	})

	t.Run("Failure - Merge Past Limit Keeps Line", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, models.MaxLineQuantity))

		// Act
		err := cart.AddToCart(ctx, &spiderPlant, 1)

		// Assert
		assert.Equal(t, appErrors.ErrCodeValidation, appErrorCode(t, err))
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, models.MaxLineQuantity, lines[0].Quantity)
		assert.Equal(t, models.MaxLineQuantity, backend.CartsOf(testUser.ID)[0].Items[0].Quantity)
	})

	t.Run("Failure - Total Overflow Is Not Stored", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		backend.AddProduct(bonsai)

		// Act
		err := cart.AddToCart(ctx, &bonsai, 2)

		// Assert
		assert.Equal(t, appErrors.ErrCodeValidation, appErrorCode(t, err))
		assert.Empty(t, backend.CartsOf(testUser.ID)[0].Items)
		assert.Equal(t, int64(0), cart.Total())
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Sets Quantity", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))

		// Act
		err := cart.UpdateQuantity(ctx, "1", 4)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 4, cart.Lines()[0].Quantity)
		assert.Equal(t, "1.000.000đ", backend.CartsOf(testUser.ID)[0].Total)
	})

	t.Run("Success - Zero Removes Line", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 2))
		require.NoError(t, cart.AddToCart(ctx, &ceramicPot, 1))

		// Act
		err := cart.UpdateQuantity(ctx, "1", 0)

		// Assert
		require.NoError(t, err)
		for _, line := range cart.Lines() {
			assert.NotEqual(t, "1", line.ProductID)
		}

		require.NoError(t, cart.Refresh(ctx))
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "2", lines[0].ProductID)
		for _, item := range backend.CartsOf(testUser.ID)[0].Items {
			assert.NotZero(t, item.Quantity)
		}
	})

	t.Run("Failure - Negative Quantity", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))

		// Act
		err := cart.UpdateQuantity(ctx, "1", -1)

		// Assert
		assert.Equal(t, appErrors.ErrCodeValidation, appErrorCode(t, err))
		assert.Equal(t, 1, cart.Lines()[0].Quantity)
	})

	t.Run("Failure - Quantity Above Limit", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))

		// Act
		err := cart.UpdateQuantity(ctx, "1", 40000000000000)

		// Assert
		assert.Equal(t, appErrors.ErrCodeValidation, appErrorCode(t, err))
		assert.Equal(t, 1, cart.Lines()[0].Quantity)
		assert.Equal(t, int64(250000), cart.Total())
		assert.Equal(t, "250.000đ", backend.CartsOf(testUser.ID)[0].Total)
	})

	t.Run("Failure - Line Not In Cart", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		err := cart.UpdateQuantity(ctx, "2", 3)

		// Assert
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
		require.NoError(t, cart.AddToCart(ctx, &ceramicPot, 1))

		// Act
		err := cart.RemoveFromCart(ctx, "2")

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Lines(), 1)
		assert.Equal(t, "250.000đ", backend.CartsOf(testUser.ID)[0].Total)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		_, cart := setupCartTest(t)

		// Act
		err := cart.RemoveFromCart(ctx, "1")

		// Assert
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Refresh After Clear Is Empty", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 2))
		oldID := cart.Snapshot().CartID

		// Act
		err := cart.ClearCart(ctx)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, cart.Lines())
		assert.Empty(t, backend.CartsOf(testUser.ID))

		require.NoError(t, cart.Refresh(ctx))
		assert.Empty(t, cart.Lines())
		assert.Equal(t, int64(0), cart.Total())

		carts := backend.CartsOf(testUser.ID)
		require.Len(t, carts, 1)
		assert.NotEqual(t, oldID, carts[0].ID)
	})

	t.Run("Failure - Backend Error", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		backend.SetErr(errors.New("offline"))

		// Act
		err := cart.ClearCart(ctx)

		// Assert
		assert.Error(t, err)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Drops Lines Whose Product Fails", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
		require.NoError(t, cart.AddToCart(ctx, &ceramicPot, 1))
		backend.FailProduct("2", appErrors.NotFoundError("Resource not found"))

		// Act
		err := cart.Refresh(ctx)

		// Assert
		require.NoError(t, err)
		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "1", lines[0].ProductID)
		assert.Empty(t, cart.Snapshot().Error)
	})

	t.Run("Failure - Network Error Empties Cart And Flags It", func(t *testing.T) {
		// Arrange
		backend, cart := setupCartTest(t)
		require.NoError(t, cart.AddToCart(ctx, &spiderPlant, 1))
		backend.SetErr(appErrors.ThirdPartyError("Network request failed"))

		// Act
		err := cart.Refresh(ctx)

		// Assert
		assert.Error(t, err)
		snapshot := cart.Snapshot()
		assert.Empty(t, snapshot.Items)
		assert.Equal(t, "Network request failed", snapshot.Error)

		backend.SetErr(nil)
		require.NoError(t, cart.Refresh(ctx))
		assert.Empty(t, cart.Snapshot().Error)
		assert.Len(t, cart.Lines(), 1)
	})
}

func TestTotal(t *testing.T) {
	// Arrange
	backend := testutils.NewBackend()
	backend.AddProduct(spiderPlant)
	backend.AddCart(models.Cart{ID: "c1", UserID: testUser.ID, Items: []models.CartItem{{ProductID: "1", Quantity: 2, Price: "250.000đ"}}})
	cart := service.NewCart(backend, backend, 1)

	// Act
	require.NoError(t, cart.SetUser(context.Background(), testUser))

	// Assert
	assert.Equal(t, int64(500000), cart.Total())
}

func TestTotalSaturates(t *testing.T) {
	// Arrange
	backend := testutils.NewBackend()
	backend.AddProduct(bonsai)
	backend.AddProduct(spiderPlant)
	backend.AddCart(models.Cart{ID: "c1", UserID: testUser.ID, Items: []models.CartItem{
		{ProductID: "3", Quantity: 1, Price: bonsai.Price},
		{ProductID: "1", Quantity: 999, Price: bonsai.Price},
	}})
	cart := service.NewCart(backend, backend, 1)

	// Act
	require.NoError(t, cart.SetUser(context.Background(), testUser))

	// Assert
	assert.Len(t, cart.Lines(), 2)
	assert.Equal(t, int64(math.MaxInt64), cart.Total())
	assert.Positive(t, cart.Snapshot().Total)
}
