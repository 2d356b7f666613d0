package transaction

type Category string

const (
	CategoryIncome     Category = "Entrada"
	CategoryExpense    Category = "Saida"
	CategoryInvestment Category = "Investimento"
)

var KnownCategories = []Category{CategoryIncome, CategoryExpense, CategoryInvestment}

func (c Category) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

func KnownCategoryNames() []string {
	names := make([]string, 0, len(KnownCategories))
	for _, c := range KnownCategories {
		names = append(names, string(c))
	}
	return names
}
