package product

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestList_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("FROM products ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock_quantity", "category",
			"image_url", "created_at", "updated_at",
		}).
			AddRow(2, "B", "", "5.50", 3, "toys", "/b.png", now, now).
			AddRow(1, "A", "", "10.00", 5, "food", "/a.png", now, now))

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 || products[0].ID != 2 {
		t.Fatalf("unexpected products %+v", products)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_NullOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("FROM products ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock_quantity", "category",
			"image_url", "created_at", "updated_at",
		}).AddRow(1, "A", nil, "10.00", 5, nil, nil, now, now))

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Description != "" || products[0].Category != "" || products[0].ImageURL != "" {
		t.Fatalf("expected empty strings for NULL columns, got %+v", products[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("A", "desc", "10.00", 5, "food", "/a.png").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	created, err := repo.Create(Product{
		Name: "A", Description: "desc", Price: "10.00",
		StockQuantity: 5, Category: "food", ImageURL: "/a.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDelete_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("DELETE FROM products").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "stock_quantity", "category",
			"image_url", "created_at", "updated_at",
		}))

	_, err = repo.Delete(99)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
