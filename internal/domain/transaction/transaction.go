package transaction

import (
	"strings"
	"time"

	appErrors "Caixa/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

func init() {
	// Valores monetários trafegam como número JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

type Transaction struct {
	Id         ulid.ULID       `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Category   Category        `json:"category"`
	TelegramId string          `json:"telegram_id"`
	NameUser   string          `json:"name_user"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Validate confere a transação antes da escrita. Com strict, a categoria
// precisa pertencer ao vocabulário conhecido.
func (t *Transaction) Validate(strict bool) error {
	var fieldErrors []map[string]string

	if strings.TrimSpace(t.Title) == "" {
		fieldErrors = append(fieldErrors, map[string]string{"field": "título", "message": "título é obrigatório"})
	}

	switch {
	case strings.TrimSpace(string(t.Category)) == "":
		fieldErrors = append(fieldErrors, map[string]string{"field": "categoria", "message": "categoria é obrigatória"})
	case strict && !t.Category.IsKnown():
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   "categoria",
			"message": "categoria deve ser um dos valores: " + strings.Join(KnownCategoryNames(), " "),
		})
	}

	if len(fieldErrors) > 0 {
		return appErrors.NewFieldsValidationError(fieldErrors)
	}
	return nil
}
