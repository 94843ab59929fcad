package order

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func placementLines() []Line {
	return []Line{
		{ProductID: 1, Name: "Product A", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		{ProductID: 2, Name: "Product B", Price: decimal.RequireFromString("5.50"), Quantity: 1},
	}
}

func TestPlaceOrder_CommitsAllSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(42, "25.50", "1 Main St").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}).
			AddRow(7, 42, "25.50", "1 Main St", "pending", created))

	// line 1: item insert, then stock 5 -> 3
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 1, 2, "10.00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("UPDATE products").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(3))

	// line 2: item insert, then stock 3 -> 2
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(7, 2, 1, "5.50").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery("UPDATE products").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(2))

	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	o, err := repo.PlaceOrder(42, "1 Main St", decimal.RequireFromString("25.50"), placementLines())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if o.ID != 7 || o.Status != "pending" || o.TotalAmount != "25.50" {
		t.Fatalf("unexpected order %+v", o)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	lines := []Line{{ProductID: 3, Name: "Product C", Price: decimal.RequireFromString("20.00"), Quantity: 10}}

	// submitting the same over-quantity request twice fails identically both
	// times; the rollback leaves nothing behind for the retry to trip over
	for attempt := 1; attempt <= 2; attempt++ {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}).
				AddRow(7+attempt, 42, "200.00", "x", "pending", time.Now()))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(1, 1))
		// 2 in stock, 10 requested: decrement drives it to -8
		mock.ExpectQuery("UPDATE products").
			WithArgs(10, 3).
			WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(-8))
		mock.ExpectRollback()

		_, err := repo.PlaceOrder(42, "x", decimal.RequireFromString("200.00"), lines)

		stockErr, ok := err.(*InsufficientStockError)
		if !ok {
			t.Fatalf("attempt %d: expected InsufficientStockError, got %v", attempt, err)
		}
		if stockErr.Product != "Product C" {
			t.Fatalf("attempt %d: error names wrong product: %q", attempt, stockErr.Product)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_UnknownProductRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}).
			AddRow(9, 1, "10.00", "x", "pending", time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// no product row matches the decrement
	mock.ExpectQuery("UPDATE products").
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}))
	mock.ExpectRollback()

	lines := []Line{{ProductID: 99, Name: "Ghost", Price: decimal.RequireFromString("10.00"), Quantity: 1}}
	_, err = repo.PlaceOrder(1, "x", decimal.RequireFromString("10.00"), lines)

	if _, ok := err.(*InsufficientStockError); !ok {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByUser_BatchLoadsItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	created := time.Now()
	mock.ExpectQuery("FROM orders").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}).
			AddRow(2, 42, "5.50", "x", "pending", created).
			AddRow(1, 42, "20.00", "x", "completed", created))
	mock.ExpectQuery("FROM order_items").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "price", "name", "description", "image_url"}).
			AddRow(2, 5, 1, "5.50", "Product B", "", "/b.png").
			AddRow(1, 4, 2, "10.00", "Product A", "", "/a.png"))

	orders, err := repo.ListByUser(42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Name != "Product B" {
		t.Fatalf("items not attached to the right order: %+v", orders[0].Items)
	}
	if len(orders[1].Items) != 1 || orders[1].Items[0].ProductID != 4 {
		t.Fatalf("items not attached to the right order: %+v", orders[1].Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByUser_NullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// shipping_address and the optional product columns can hold NULLs
	mock.ExpectQuery("FROM orders").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}).
			AddRow(1, 42, "10.00", nil, "pending", time.Now()))
	mock.ExpectQuery("FROM order_items").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "quantity", "price", "name", "description", "image_url"}).
			AddRow(1, 4, 1, "10.00", "Product A", nil, nil))

	orders, err := repo.ListByUser(42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].ShippingAddress != "" {
		t.Fatalf("expected empty shipping address for NULL, got %+v", orders)
	}
	if orders[0].Items[0].Description != "" || orders[0].Items[0].ImageURL != "" {
		t.Fatalf("expected empty strings for NULL item columns, got %+v", orders[0].Items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_WrongUserIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders").
		WithArgs(7, 99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "shipping_address", "status", "created_at"}))

	_, err = repo.GetByID(99, 7)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
