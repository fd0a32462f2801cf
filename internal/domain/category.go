package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// UncategorizedName and UncategorizedColor label amounts without a category
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#6b7280"
)

// Validation constants
const (
	MaxCategoryNameLength = 50
	MaxCategoryIconLength = 10
)

type Category struct {
	ID        uuid.UUID    `json:"id"`
	OwnerID   uuid.UUID    `json:"ownerId"`
	Name      string       `json:"name"`
	Icon      *string      `json:"icon"`
	Color     string       `json:"color"`
	Type      CategoryType `json:"type"`
	IsDefault bool         `json:"isDefault"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CategoryRef is the category projection joined onto transactions and recurring expenses
type CategoryRef struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Icon  *string      `json:"icon"`
	Color string       `json:"color"`
	Type  CategoryType `json:"type"`
}

// CategoryInput is the user-editable part of a category
type CategoryInput struct {
	Name  string `json:"name" validate:"required,max=50"`
	Icon  string `json:"icon" validate:"required,max=10"`
	Color string `json:"color" validate:"required,hexcolor6"`
	Type  string `json:"type" validate:"required,oneof=expense income"`
}

// CategoryGroups splits an owner's categories by type
type CategoryGroups struct {
	Expense []*Category `json:"expense"`
	Income  []*Category `json:"income"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) (*Category, error)
	CreateDefaults(ctx context.Context, ownerID uuid.UUID, categories []Category) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*Category, error)
	// ListByOwner returns categories ordered default-first, then by name
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Category, error)
	Update(ctx context.Context, category *Category) (*Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// CountActiveTransactions counts non-deleted transactions referencing the category
	CountActiveTransactions(ctx context.Context, ownerID, id uuid.UUID) (int64, error)
}

func strPtr(s string) *string {
	return &s
}

// DefaultCategories returns the categories seeded for every new owner
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food & Dining", Icon: strPtr("🍽️"), Color: "#f97316", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Groceries", Icon: strPtr("🛒"), Color: "#22c55e", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Transport", Icon: strPtr("🚌"), Color: "#3b82f6", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Bills & Utilities", Icon: strPtr("💡"), Color: "#eab308", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Rent", Icon: strPtr("🏠"), Color: "#8b5cf6", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Shopping", Icon: strPtr("🛍️"), Color: "#ec4899", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Health", Icon: strPtr("💊"), Color: "#ef4444", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Entertainment", Icon: strPtr("🎬"), Color: "#14b8a6", Type: CategoryTypeExpense, IsDefault: true},
		{Name: "Salary", Icon: strPtr("💼"), Color: "#3b82f6", Type: CategoryTypeIncome, IsDefault: true},
		{Name: "Freelance", Icon: strPtr("💻"), Color: "#8b5cf6", Type: CategoryTypeIncome, IsDefault: true},
		{Name: "Other Income", Icon: strPtr("💰"), Color: "#10b981", Type: CategoryTypeIncome, IsDefault: true},
	}
}
