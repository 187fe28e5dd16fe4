package app

import (
	"database/sql"

	"github.com/saheli/saheli/internal/config"
	"github.com/saheli/saheli/internal/utils"
	"github.com/saheli/saheli/pkg/advisor"
	"github.com/saheli/saheli/pkg/alert"
	"github.com/saheli/saheli/pkg/budget"
	"github.com/saheli/saheli/pkg/expense"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	AdvisorClient  advisor.Client
	AdvisorService advisor.Service
	AdvisorHandler *advisor.Handler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	AlertRepo    alert.AlertRepo
	AlertService *alert.AlertServiceImpl
	AlertHandler *alert.AlertHandler

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService *expense.ExpenseServiceImpl
	ExpenseHandler *expense.ExpenseHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.AdvisorClient = advisor.NewGeminiClient(cfg.Gemini)
	deps.AdvisorService = advisor.NewService(deps.AdvisorClient)
	deps.AdvisorHandler = advisor.NewHandler(deps.AdvisorService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetServiceImpl(
		deps.BudgetRepo,
		deps.ExpenseRepo.AmountTotalsByCategory,
		deps.ExpenseRepo.PercentTotalsByCategory,
		deps.AdvisorClient,
	)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.AlertRepo = alert.NewAlertRepo(db)
	deps.AlertService = alert.NewAlertService(deps.AlertRepo, deps.BudgetService.LimitFor, deps.Clock)
	deps.AlertHandler = alert.NewAlertHandler(deps.AlertService)

	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo, deps.AlertService)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	return deps
}
