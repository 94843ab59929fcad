package admin

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListOrders_NullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// shipping_address and the buyer's names can be NULL
	mock.ExpectQuery("JOIN users").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total_amount", "shipping_address", "status", "created_at",
			"first_name", "last_name", "email",
		}).AddRow(1, 2, "10.00", nil, "pending", time.Now(), nil, nil, "a@example.com"))

	orders, err := repo.ListOrders()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ShippingAddress != "" || orders[0].FirstName != "" || orders[0].LastName != "" {
		t.Fatalf("expected empty strings for NULL columns, got %+v", orders[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListUsers_NullNames(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "is_admin", "created_at", "order_count",
		}).AddRow(2, "a@example.com", nil, nil, false, time.Now(), 3))

	users, err := repo.ListUsers()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0].FirstName != "" || users[0].LastName != "" {
		t.Fatalf("expected empty strings for NULL names, got %+v", users)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
