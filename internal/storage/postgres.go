package storage

import (
	"context"
	"database/sql"
	"time"

	"mealcrate/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// OrdersInRange fetches orders with their line items and denormalized meal
// metadata for the window. Rows come back ordered by creation time so the
// aggregators see orders in first-encounter order.
func (r *PostgresRepository) OrdersInRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.created_at,
		       oi.meal_id, m.name, COALESCE(m.category, ''),
		       COALESCE(m.dietary_type, 'Regular'), oi.unit_price, oi.quantity
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN meals m ON m.id = oi.meal_id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		ORDER BY o.created_at, o.id
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	index := map[int]int{}
	for rows.Next() {
		var (
			orderID    int
			customerID int
			createdAt  time.Time
			item       domain.OrderItem
		)
		if err := rows.Scan(&orderID, &customerID, &createdAt,
			&item.MealID, &item.MealName, &item.Category,
			&item.DietaryType, &item.UnitPrice, &item.Quantity); err != nil {
			continue
		}

		pos, ok := index[orderID]
		if !ok {
			orders = append(orders, domain.Order{
				ID:         orderID,
				CustomerID: customerID,
				CreatedAt:  createdAt,
			})
			pos = len(orders) - 1
			index[orderID] = pos
		}
		orders[pos].Items = append(orders[pos].Items, item)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) FeedbackInRange(ctx context.Context, from, to time.Time) ([]domain.FeedbackRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, customer_id, rating, COALESCE(comments, ''), created_at
		FROM feedback
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at, id
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedback []domain.FeedbackRecord
	for rows.Next() {
		var record domain.FeedbackRecord
		if err := rows.Scan(&record.ID, &record.CustomerID, &record.Rating,
			&record.Comments, &record.CreatedAt); err != nil {
			continue
		}
		feedback = append(feedback, record)
	}
	return feedback, rows.Err()
}

func (r *PostgresRepository) OrderExists(ctx context.Context, orderID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", orderID,
	).Scan(&exists)
	return exists, err
}
