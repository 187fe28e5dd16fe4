package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// ReplaceAll replaces the whole limit table with the given rows.
	ReplaceAll(ctx context.Context, budgets []CategoryBudget) error
	GetAll(ctx context.Context) ([]CategoryBudget, error)
	// FindPercentage returns the stored limit percentage for a category and
	// whether such a limit exists.
	FindPercentage(ctx context.Context, category string) (float64, bool, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (bi BudgetRepoImpl) ReplaceAll(ctx context.Context, budgets []CategoryBudget) error {
	tx, err := bi.db.BeginTx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("could not begin transaction: %w", err)
		log.Error(err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM budget_limit"); err != nil {
		err := fmt.Errorf("could not clear budget limits: %w", err)
		log.Error(err)
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO budget_limit (category, percentage) VALUES (?, ?)")
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, budget := range budgets {
		if _, err := stmt.ExecContext(ctx, budget.Category, budget.Percentage); err != nil {
			err := fmt.Errorf("could not store budget limit for %s: %w", budget.Category, err)
			log.Error(err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		err := fmt.Errorf("could not commit transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (bi BudgetRepoImpl) GetAll(ctx context.Context) ([]CategoryBudget, error) {
	query := "SELECT category, percentage FROM budget_limit ORDER BY category"
	rows, err := bi.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query budget limits: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	budgets := make([]CategoryBudget, 0)
	for rows.Next() {
		var budget CategoryBudget
		if err := rows.Scan(&budget.Category, &budget.Percentage); err != nil {
			err := fmt.Errorf("could not scan budget limit: %w", err)
			log.Error(err)
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return budgets, nil
}

func (bi BudgetRepoImpl) FindPercentage(ctx context.Context, category string) (float64, bool, error) {
	query := "SELECT percentage FROM budget_limit WHERE category = ?"
	row := bi.db.QueryRowContext(ctx, query, category)

	var percentage float64
	if err := row.Scan(&percentage); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		err := fmt.Errorf("could not find budget limit: %w", err)
		log.Error(err)
		return 0, false, err
	}
	return percentage, true, nil
}
