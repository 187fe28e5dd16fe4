package expense

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type ExpenseRepo interface {
	// Store stores a new Expense to the database
	Store(ctx context.Context, expense Expense) (int, error)
	GetAll(ctx context.Context) ([]Expense, error)
	AmountTotalsByCategory(ctx context.Context) (map[string]float64, error)
	PercentTotalsByCategory(ctx context.Context) (map[string]float64, error)
	AmountTotalForCategory(ctx context.Context, category string) (float64, error)
}

type ExpenseRepoImpl struct {
	db *sql.DB
}

func NewExpenseRepo(db *sql.DB) *ExpenseRepoImpl {
	return &ExpenseRepoImpl{db: db}
}

func (r *ExpenseRepoImpl) Store(ctx context.Context, expense Expense) (int, error) {
	query := `INSERT INTO expense (
                    date,
                    category,
                    amount,
                    note,
                    percent_of_salary
				) VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		expense.Date,
		expense.Category,
		expense.Amount,
		expense.Note,
		expense.PercentOfSalary,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r *ExpenseRepoImpl) GetAll(ctx context.Context) ([]Expense, error) {
	query := `SELECT id, date, category, amount, note, percent_of_salary FROM expense ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	expenses := make([]Expense, 0)
	for rows.Next() {
		var expense Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.Date,
			&expense.Category,
			&expense.Amount,
			&expense.Note,
			&expense.PercentOfSalary,
		); err != nil {
			err := fmt.Errorf("could not scan expense: %w", err)
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return expenses, nil
}

func (r *ExpenseRepoImpl) AmountTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	return r.totalsByCategory(ctx, "SELECT category, SUM(amount) FROM expense GROUP BY category")
}

func (r *ExpenseRepoImpl) PercentTotalsByCategory(ctx context.Context) (map[string]float64, error) {
	return r.totalsByCategory(ctx, "SELECT category, SUM(percent_of_salary) FROM expense GROUP BY category")
}

func (r *ExpenseRepoImpl) totalsByCategory(ctx context.Context, query string) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query category totals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			err := fmt.Errorf("could not scan category total: %w", err)
			log.Error(err)
			return nil, err
		}
		totals[category] = total
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return totals, nil
}

func (r *ExpenseRepoImpl) AmountTotalForCategory(ctx context.Context, category string) (float64, error) {
	query := "SELECT COALESCE(SUM(amount), 0) FROM expense WHERE category = ?"
	row := r.db.QueryRowContext(ctx, query, category)

	var total float64
	if err := row.Scan(&total); err != nil {
		err := fmt.Errorf("could not sum expenses for %s: %w", category, err)
		log.Error(err)
		return 0, err
	}
	return total, nil
}
