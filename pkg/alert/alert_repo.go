package alert

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type AlertRepo interface {
	// Store appends a new BudgetAlert and trims the log to the newest entries.
	Store(ctx context.Context, alert BudgetAlert) (int, error)
	GetAll(ctx context.Context) ([]BudgetAlert, error)
	DeleteAll(ctx context.Context) error
}

type AlertRepoImpl struct {
	db *sql.DB
}

func NewAlertRepo(db *sql.DB) *AlertRepoImpl {
	return &AlertRepoImpl{db: db}
}

func (r AlertRepoImpl) Store(ctx context.Context, alert BudgetAlert) (int, error) {
	query := `INSERT INTO alert (
                    uid,
                    category,
                    date,
                    message,
                    limit_amount,
                    spent,
                    severity
				) VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		alert.Uid,
		alert.Category,
		alert.Date,
		alert.Message,
		alert.Limit,
		alert.Spent,
		string(alert.Severity),
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

	// FIFO retention: keep only the most recently appended entries.
	trim := `DELETE FROM alert WHERE id NOT IN (SELECT id FROM alert ORDER BY id DESC LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, trim, maxStoredAlerts); err != nil {
		err := fmt.Errorf("could not trim alert log: %w", err)
		log.Error(err)
		return 0, err
	}

	return int(lastInsertID), nil
}

func (r AlertRepoImpl) GetAll(ctx context.Context) ([]BudgetAlert, error) {
	query := `SELECT id, uid, category, date, message, limit_amount, spent, severity
				FROM alert ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query alerts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	alerts := make([]BudgetAlert, 0)
	for rows.Next() {
		var alert BudgetAlert
		var severity string
		if err := rows.Scan(
			&alert.ID,
			&alert.Uid,
			&alert.Category,
			&alert.Date,
			&alert.Message,
			&alert.Limit,
			&alert.Spent,
			&severity,
		); err != nil {
			err := fmt.Errorf("could not scan alert: %w", err)
			log.Error(err)
			return nil, err
		}
		alert.Severity = Severity(severity)
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return alerts, nil
}

func (r AlertRepoImpl) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM alert"); err != nil {
		err := fmt.Errorf("could not clear alerts: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
