package budget

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed best-practice guidance appended to every analysis.
var generalAdvice = []string{
	"Track your expenses regularly to stay within budget",
	"Prioritize needs over wants",
	"Aim to save at least 20% of your income each month",
	"Review your budget monthly and adjust as needed",
	"Consider automating your savings to ensure consistency",
}

// renderAnalysis formats an allocation as the structured markdown report the
// mobile app renders: per-group breakdowns with absolute amounts, the
// current-vs-recommended comparison, and actionable steps.
func renderAnalysis(income float64, alloc Allocation) string {
	var b strings.Builder

	b.WriteString("# Budget Analysis\n\n")
	if alloc.ColdStart {
		fmt.Fprintf(&b, "Based on the 50-30-20 rule, here's a recommended budget breakdown for your monthly income of ₹%.2f:\n", income)
	} else {
		fmt.Fprintf(&b, "Based on your spending patterns and the 50-30-20 rule, here's a recommended budget breakdown for your monthly income of ₹%.2f:\n", income)
	}

	writeGroup(&b, "Needs", TargetNeeds, NeedsCategories, alloc.Budget, income)
	writeGroup(&b, "Wants", TargetWants, WantsCategories, alloc.Budget, income)
	writeGroup(&b, "Savings", TargetSavings, SavingsCategories, alloc.Budget, income)

	if !alloc.ColdStart {
		b.WriteString("\n## Current vs. Recommended:\n")
		fmt.Fprintf(&b, "- Needs: %.1f%% vs. %.0f%%\n", alloc.CurrentNeeds, TargetNeeds)
		fmt.Fprintf(&b, "- Wants: %.1f%% vs. %.0f%%\n", alloc.CurrentWants, TargetWants)
		fmt.Fprintf(&b, "- Savings: %.1f%% vs. %.0f%%\n", alloc.CurrentSavings, TargetSavings)
	}

	b.WriteString("\n## Actionable Steps:\n")
	if !alloc.ColdStart {
		if alloc.CurrentNeeds > TargetNeeds {
			fmt.Fprintf(&b, "- Reduce spending on needs by %.1f%%\n", alloc.CurrentNeeds-TargetNeeds)
		}
		if alloc.CurrentWants > TargetWants {
			fmt.Fprintf(&b, "- Cut back on wants by %.1f%%\n", alloc.CurrentWants-TargetWants)
		}
		if alloc.CurrentSavings < TargetSavings {
			fmt.Fprintf(&b, "- Increase savings by %.1f%%\n", TargetSavings-alloc.CurrentSavings)
		}
	}
	for _, advice := range generalAdvice {
		fmt.Fprintf(&b, "- %s\n", advice)
	}

	return b.String()
}

func writeGroup(b *strings.Builder, name string, target float64, categories []string, budget map[string]float64, income float64) {
	fmt.Fprintf(b, "\n## %s (%.0f%%): ₹%.2f\n", name, target, income*target/100)
	for _, category := range categories {
		percentage, ok := budget[category]
		if !ok || percentage <= 0 {
			continue
		}
		fmt.Fprintf(b, "- %s: %.4g%% (₹%.2f)\n", category, percentage, income*percentage/100)
	}
}

// advisorInstruction is the strict formatting instruction for the delegated
// narrative mode. The returned text is passed through unmodified.
const advisorInstruction = `You are a financial advisor. Given the user's spending data, generate:

1. A **realistic budget breakdown** while following the **Needs-Wants-Savings** framework:

   Strictly format the budget breakdown like this:

   Food: XX%
   Transport: XX%
   Rent: XX%
   Shopping: XX%
   Savings: XX%
   Others: XX%

2. **Actionable Steps to Stick to This Budget (1-liner points):**
   - **For every category that is being reduced or increased, provide specific, actionable steps for the user to achieve the change.**
   - **Do NOT simply state the adjustment; explain how the user can implement it.**
   - **Ensure total reduction aligns with best financial practices.**

3. **Ensure the total percentage adds up to 100%** while subtly adjusting allocations to fit financial best practices. **Include the 'Others' category in the breakdown.**

4. **Do not add extra information or analysis beyond what is requested.**`

// buildAdvisorPrompt renders the delegated-mode prompt from the user's salary
// and per-category percent-of-salary totals.
func buildAdvisorPrompt(income float64, percentTotals map[string]float64) string {
	categories := make([]string, 0, len(percentTotals))
	for category := range percentTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	expenses := make([]string, 0, len(categories))
	for _, category := range categories {
		expenses = append(expenses, fmt.Sprintf("%s: %.2f%%", category, percentTotals[category]))
	}

	return fmt.Sprintf("%s\n\nUser Salary: ₹%.2f\nExpenses: {%s}", advisorInstruction, income, strings.Join(expenses, ", "))
}
