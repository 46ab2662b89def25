package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agrostock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockStockBatchRepository creates a GormStockBatchRepository with a mocked SQL connection
func newMockStockBatchRepository(t *testing.T) (*GormStockBatchRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStockBatchRepository(gormDB), mock, mockDB
}

func TestGormStockBatchRepository_FindAllocatable(t *testing.T) {
	t.Run("returns active batches ordered oldest-first", func(t *testing.T) {
		repo, mock, mockDB := newMockStockBatchRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()
		olderID := uuid.New()
		newerID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "tenant_id", "product_id", "batch_number",
			"quantity_initial", "quantity_remaining", "unit_cost", "unit_price",
			"status", "replenished_at", "version",
		}).AddRow(
			olderID, tenantID, productID, "B-001",
			decimal.NewFromInt(10), decimal.NewFromInt(3), decimal.NewFromInt(90), decimal.NewFromInt(140),
			"ACTIVE", now.Add(-48*time.Hour), 1,
		).AddRow(
			newerID, tenantID, productID, "B-002",
			decimal.NewFromInt(5), decimal.NewFromInt(5), decimal.NewFromInt(100), decimal.NewFromInt(150),
			"ACTIVE", now.Add(-1*time.Hour), 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "stock_batches" WHERE \(tenant_id = \$1 AND product_id = \$2\) AND \(status = \$3 AND quantity_remaining > 0\) ORDER BY replenished_at ASC, created_at ASC`).
			WithArgs(tenantID, productID, "ACTIVE").
			WillReturnRows(rows)

		batches, err := repo.FindAllocatable(context.Background(), tenantID, productID)

		require.NoError(t, err)
		require.Len(t, batches, 2)
		assert.Equal(t, "B-001", batches[0].BatchNumber)
		assert.Equal(t, "B-002", batches[1].BatchNumber)
		assert.True(t, batches[0].QuantityRemaining.Equal(decimal.NewFromInt(3)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockBatchRepository_DeductQuantity(t *testing.T) {
	t.Run("conditional decrement succeeds", func(t *testing.T) {
		repo, mock, mockDB := newMockStockBatchRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "stock_batches" SET .* WHERE \(tenant_id = \$\d+ AND id = \$\d+\) AND \(status = \$\d+ AND quantity_remaining >= \$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeductQuantity(context.Background(), uuid.New(), uuid.New(), decimal.NewFromInt(3))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty or contended batch fails with insufficient stock", func(t *testing.T) {
		repo, mock, mockDB := newMockStockBatchRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "stock_batches" SET .*`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeductQuantity(context.Background(), uuid.New(), uuid.New(), decimal.NewFromInt(3))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInsufficientStock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockBatchRepository_TotalRemaining(t *testing.T) {
	t.Run("sums active remaining quantity", func(t *testing.T) {
		repo, mock, mockDB := newMockStockBatchRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity_remaining\), 0\) FROM "stock_batches"`).
			WithArgs(tenantID, productID, "ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("15"))

		total, err := repo.TotalRemaining(context.Background(), tenantID, productID)

		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(15)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no batches sums to zero", func(t *testing.T) {
		repo, mock, mockDB := newMockStockBatchRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity_remaining\), 0\) FROM "stock_batches"`).
			WithArgs(tenantID, productID, "ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

		total, err := repo.TotalRemaining(context.Background(), tenantID, productID)

		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
