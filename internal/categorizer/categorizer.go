// Package categorizer assigns a category to a transaction from its
// description text and direction. Categorization is an ordered rule
// table per direction with first-match-wins semantics; the built-in
// tables can be replaced from a YAML rules file, and an optional AI
// client may refine the fallback categories.
package categorizer

import (
	"context"
	"strings"
	"time"

	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
)

// AIClient is the interface for the optional AI categorization
// fallback. Implementations pick one of the offered categories for the
// description, or return an error to leave the fallback in place.
type AIClient interface {
	Categorize(ctx context.Context, description string, categories []string) (string, error)
}

// Categorizer holds the per-direction rule tables.
type Categorizer struct {
	incomeRules  []Rule
	expenseRules []Rule
	ai           AIClient
	aiTimeout    time.Duration
	logger       logging.Logger
}

// Option customizes a Categorizer.
type Option func(*Categorizer)

// WithRules replaces the built-in rule tables.
func WithRules(income, expense []Rule) Option {
	return func(c *Categorizer) {
		if income != nil {
			c.incomeRules = income
		}
		if expense != nil {
			c.expenseRules = expense
		}
	}
}

// WithAIClient enables the AI fallback with the given per-request
// timeout.
func WithAIClient(client AIClient, timeout time.Duration) Option {
	return func(c *Categorizer) {
		c.ai = client
		c.aiTimeout = timeout
	}
}

// New creates a Categorizer with the built-in rule tables.
func New(logger logging.Logger, opts ...Option) *Categorizer {
	c := &Categorizer{
		incomeRules:  DefaultIncomeRules,
		expenseRules: DefaultExpenseRules,
		aiTimeout:    30 * time.Second,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categorize returns the category for a description and direction.
// Deterministic and side-effect free unless the AI fallback is
// enabled; the AI path only runs when every rule falls through.
func (c *Categorizer) Categorize(ctx context.Context, description, txType string) string {
	desc := strings.ToLower(description)

	rules := c.expenseRules
	fallback := models.CategoryOtherExpenses
	if txType == models.TypeIncome {
		rules = c.incomeRules
		fallback = models.CategoryOtherIncome
	}

	for _, rule := range rules {
		if rule.matches(desc) {
			return rule.Category
		}
	}

	if c.ai != nil {
		if category, ok := c.categorizeWithAI(ctx, description, txType); ok {
			return category
		}
	}

	return fallback
}

// categorizeWithAI asks the AI client to pick a category from the
// direction's list. Any failure or unknown answer keeps the rule-table
// fallback; AI never aborts the pipeline.
func (c *Categorizer) categorizeWithAI(ctx context.Context, description, txType string) (string, bool) {
	aiCtx, cancel := context.WithTimeout(ctx, c.aiTimeout)
	defer cancel()

	category, err := c.ai.Categorize(aiCtx, description, models.CategoriesFor(txType))
	if err != nil {
		c.logger.WithError(err).Debug("AI categorization failed, keeping fallback category")
		return "", false
	}

	if !models.ValidCategory(txType, category) {
		c.logger.Debug("AI returned unknown category, keeping fallback",
			logging.Field{Key: logging.FieldCategory, Value: category})
		return "", false
	}

	c.logger.Debug("Transaction categorized by AI fallback",
		logging.Field{Key: logging.FieldCategory, Value: category})
	return category, true
}
