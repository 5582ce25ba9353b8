package taxonomy

import "github.com/centavo-dev/centavo/internal/model"

// DefaultCategories returns the starter category tree for a new data dir.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Sueldo", Type: model.TypeIncome, Color: "#22c55e", Icon: "payments"},
		{ID: 2, Name: "Otros ingresos", Type: model.TypeIncome, Color: "#10b981", Icon: "savings"},
		{ID: 3, Name: "Alimentación", Type: model.TypeExpense, Color: "#ef4444", Icon: "restaurant"},
		{ID: 4, Name: "Servicios", Type: model.TypeExpense, Color: "#f97316", Icon: "home"},
		{ID: 5, Name: "Agua", Type: model.TypeExpense, Color: "#06b6d4", Icon: "water_drop", ParentID: 4},
		{ID: 6, Name: "Luz", Type: model.TypeExpense, Color: "#f59e0b", Icon: "bolt", ParentID: 4},
		{ID: 7, Name: "Transporte", Type: model.TypeExpense, Color: "#3b82f6", Icon: "directions_bus"},
		{ID: 8, Name: "Salud", Type: model.TypeExpense, Color: "#ec4899", Icon: "medical_services"},
		{ID: 9, Name: "Entretenimiento", Type: model.TypeExpense, Color: "#8b5cf6", Icon: "movie"},
		{ID: 10, Name: "Otros gastos", Type: model.TypeExpense, Color: "#64748b", Icon: "category"},
	}
}

// DefaultTags returns the starter tag set for a new data dir.
func DefaultTags() []model.Tag {
	return []model.Tag{
		{ID: 1, Name: "Supermercado", Color: "#ef4444", Icon: "shopping_cart"},
		{ID: 2, Name: "Delivery", Color: "#f97316", Icon: "takeout_dining"},
		{ID: 3, Name: "Suscripciones", Color: "#6366f1", Icon: "subscriptions"},
		{ID: 4, Name: "Viajes", Color: "#0ea5e9", Icon: "flight"},
	}
}
