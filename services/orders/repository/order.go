package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// OrderRepo implements the orders.OrderRepo interface backed by PostgreSQL.
// Orders and their line items live in separate tables; items are immutable
// after creation.
type OrderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(cfg *models.Config, db *sqlx.DB) *OrderRepo {
	return &OrderRepo{
		cfg: cfg,
		db:  db,
	}
}

// orderItemRow is the order_items persistence shape
type orderItemRow struct {
	OrderID        uuid.UUID `db:"order_id"`
	Position       int       `db:"position"`
	Name           string    `db:"name"`
	UnitPrice      float64   `db:"unit_price"`
	Quantity       int       `db:"quantity"`
	Customizations string    `db:"customizations"`
}

// CreateOrder inserts the order and its items in one transaction
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, order_number, customer_id, restaurant_id, status,
			delivery_fee, tax, total, payment_method, delivery_address,
			needs_settlement, created_at, updated_at
		) VALUES (
			:id, :order_number, :customer_id, :restaurant_id, :status,
			:delivery_fee, :tax, :total, :payment_method, :delivery_address,
			:needs_settlement, :created_at, :updated_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, order); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, position, name, unit_price, quantity, customizations)
		VALUES (:order_id, :position, :name, :unit_price, :quantity, :customizations)`
	for i, item := range order.Items {
		row := orderItemRow{
			OrderID:        order.ID,
			Position:       i,
			Name:           item.Name,
			UnitPrice:      item.UnitPrice,
			Quantity:       item.Quantity,
			Customizations: strings.Join(item.Customizations, "|"),
		}
		if _, err := tx.NamedExecContext(ctx, itemQuery, row); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetOrder retrieves an order with its items
func (r *OrderRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByRestaurant lists a restaurant's orders, newest first
func (r *OrderRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Order, error) {
	return r.list(ctx, `SELECT * FROM orders WHERE restaurant_id = $1 ORDER BY created_at DESC`, restaurantID)
}

// ListByDriver lists a driver's orders, newest first
func (r *OrderRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Order, error) {
	return r.list(ctx, `SELECT * FROM orders WHERE driver_id = $1 ORDER BY created_at DESC`, driverID)
}

// UpdateStatus moves the order from -> to with a status guard. A zero row
// count with the order present means a concurrent actor moved it first.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2`,
		id, from, to)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 1 {
		return true, nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id); err != nil {
		return false, err
	}
	if !exists {
		return false, apperrors.ErrOrderNotFound
	}
	return false, nil
}

// AssignDriver binds a driver to an order that is still unassigned and in an
// assignable status. The guard makes the binding first-writer-wins.
func (r *OrderRepo) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET driver_id = $2, updated_at = NOW()
		WHERE id = $1
		  AND driver_id IS NULL
		  AND status IN ('preparing', 'ready_for_pickup')`,
		orderID, driverID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ListUnassigned returns the oldest unassigned assignable orders
func (r *OrderRepo) ListUnassigned(ctx context.Context, limit int) ([]models.Order, error) {
	return r.list(ctx, `
		SELECT * FROM orders
		WHERE driver_id IS NULL
		  AND status IN ('preparing', 'ready_for_pickup')
		ORDER BY created_at ASC
		LIMIT $1`, limit)
}

// SetNeedsSettlement flags the order for manual cash reconciliation
func (r *OrderRepo) SetNeedsSettlement(ctx context.Context, orderID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders SET needs_settlement = TRUE, updated_at = NOW() WHERE id = $1`,
		orderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, order *models.Order) error {
	var rows []orderItemRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT order_id, position, name, unit_price, quantity, customizations
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC`, order.ID)
	if err != nil {
		return err
	}
	order.Items = make([]models.OrderItem, 0, len(rows))
	for _, row := range rows {
		item := models.OrderItem{
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
			Quantity:  row.Quantity,
		}
		if row.Customizations != "" {
			item.Customizations = strings.Split(row.Customizations, "|")
		}
		order.Items = append(order.Items, item)
	}
	return nil
}
