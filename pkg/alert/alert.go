package alert

// maxStoredAlerts bounds the alert log; the oldest entries are dropped first.
const maxStoredAlerts = 20

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityHigh    Severity = "high"
)

type BudgetAlert struct {
	ID       int
	Uid      string
	Category string
	Date     string
	Message  string
	Limit    float64
	Spent    float64
	Severity Severity
}

// severityFor maps the overspend ratio to a severity. The mobile app renders
// "high" as Overspent and everything else as Warning.
func severityFor(spent, limit float64) Severity {
	if limit > 0 && spent/limit >= 1.25 {
		return SeverityHigh
	}
	return SeverityWarning
}
