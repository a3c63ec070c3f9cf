package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewPostgresRepository(db), mock, func() { db.Close() }
}

func TestOrdersInRange_GroupsLineItems(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	createdAt := time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "created_at",
		"meal_id", "name", "category", "dietary_type", "unit_price", "quantity",
	}).
		AddRow(1, 7, createdAt, 100, "Pad Thai", "Thai", "Vegan", 10.0, 1).
		AddRow(1, 7, createdAt, 101, "Green Curry", "Thai", "Regular", 11.5, 2).
		AddRow(2, 8, createdAt.Add(time.Hour), 100, "Pad Thai", "Thai", "Vegan", 10.0, 1)

	mock.ExpectQuery("SELECT o.id, o.customer_id, o.created_at").
		WithArgs(from, to).
		WillReturnRows(rows)

	orders, err := repo.OrdersInRange(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 7, orders[0].CustomerID)
	assert.Len(t, orders[0].Items, 2)
	assert.Equal(t, "Green Curry", orders[0].Items[1].MealName)
	assert.Equal(t, 2, orders[0].Items[1].Quantity)
	assert.Len(t, orders[1].Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrdersInRange_Empty(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT o.id, o.customer_id, o.created_at").
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "created_at",
			"meal_id", "name", "category", "dietary_type", "unit_price", "quantity",
		}))

	orders, err := repo.OrdersInRange(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrdersInRange_QueryError(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT o.id, o.customer_id, o.created_at").
		WillReturnError(errors.New("db connection failed"))

	_, err := repo.OrdersInRange(context.Background(), time.Now().Add(-time.Hour), time.Now())

	assert.Error(t, err)
}

func TestFeedbackInRange(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)
	createdAt := from.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "customer_id", "rating", "comments", "created_at"}).
		AddRow(1, 7, 5, "great food", createdAt).
		AddRow(2, 8, 2, "", createdAt.Add(time.Hour))

	mock.ExpectQuery("SELECT id, customer_id, rating").
		WithArgs(from, to).
		WillReturnRows(rows)

	feedback, err := repo.FeedbackInRange(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, feedback, 2)
	assert.Equal(t, 5, feedback[0].Rating)
	assert.Equal(t, "great food", feedback[0].Comments)
	assert.Equal(t, "", feedback[1].Comments)
}

func TestOrderExists(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.OrderExists(context.Background(), 42)

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestOrderExists_NotFound(t *testing.T) {
	repo, mock, cleanup := newMockRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.OrderExists(context.Background(), 99)

	assert.NoError(t, err)
	assert.False(t, exists)
}
