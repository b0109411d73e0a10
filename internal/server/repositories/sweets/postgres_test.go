package sweets

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"sweetshop/internal/common"
	"sweetshop/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const adjustQuery = `(?s)^UPDATE\s+sweets\s+SET\s+quantity\s*=\s*quantity\s*\+\s*\$2\s+WHERE\s+id\s*=\s*\$1\s+AND\s+quantity\s*\+\s*\$2\s*>=\s*0\s+RETURNING\s+id,\s*name,\s*category,\s*price,\s*quantity,\s*created_at\s*$`

const selectByIDQuery = `(?s)^SELECT\s+id,\s*name,\s*category,\s*price,\s*quantity,\s*created_at\s+FROM\s+sweets\s+WHERE\s+id\s*=\s*\$1\s*$`

func sweetRow(quantity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "category", "price", "quantity", "created_at"}).
		AddRow("s-1", "Rasgulla", "Indian Sweet", 10.0, quantity, time.Now())
}

func TestAdjustQuantity_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(adjustQuery).WithArgs("s-1", -2).WillReturnRows(sweetRow(3))

	got, err := repo.AdjustQuantity(context.Background(), "s-1", -2)
	if err != nil {
		t.Fatalf("AdjustQuantity error: %v", err)
	}
	if got.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", got.Quantity)
	}
}

func TestAdjustQuantity_InsufficientStock(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// guard rejects the write, but the row exists
	mock.ExpectQuery(adjustQuery).WithArgs("s-1", -10).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(selectByIDQuery).WithArgs("s-1").WillReturnRows(sweetRow(3))

	_, err := repo.AdjustQuantity(context.Background(), "s-1", -10)
	if !errors.Is(err, common.ErrorInsufficientStock) {
		t.Fatalf("expected common.ErrorInsufficientStock, got %v", err)
	}
}

func TestAdjustQuantity_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(adjustQuery).WithArgs("missing", -1).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(selectByIDQuery).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.AdjustQuantity(context.Background(), "missing", -1)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_GeneratesIDAndScansCreatedAt(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+sweets\s*\(id,\s*name,\s*category,\s*price,\s*quantity\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at\s*$`

	created := time.Now()
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "Rasgulla", "Indian Sweet", 10.0, 5).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	got, err := repo.Create(context.Background(), &models.Sweet{Name: "Rasgulla", Category: "Indian Sweet", Price: 10.0, Quantity: 5})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected sweet: %+v", got)
	}
}

func TestList_OrderedAndScanned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*category,\s*price,\s*quantity,\s*created_at\s+FROM\s+sweets\s+ORDER\s+BY\s+created_at,\s*id\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "category", "price", "quantity", "created_at"}).
		AddRow("a", "Barfi", "Indian Sweet", 5.0, 10, time.Now()).
		AddRow("b", "Fudge", "Western", 7.5, 2, time.Now())
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestDelete_RowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+sweets\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs("s-1").WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), "s-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+sweets\s+SET\s+name\s*=\s*\$2,\s*category\s*=\s*\$3,\s*price\s*=\s*\$4,\s*quantity\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$1\s+RETURNING\s+created_at\s*$`

	mock.ExpectQuery(q).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.Sweet{ID: "missing", Name: "X", Category: "Y", Price: 1, Quantity: 1})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByIDQuery).WithArgs("s-1").WillReturnError(errors.New("db down"))

	_, err := repo.GetByID(context.Background(), "s-1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
