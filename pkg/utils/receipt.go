package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReceiptNo generates a short reference printed on sale receipts
func GenerateReceiptNo() string {
	return "OR-" + strings.ToUpper(uuid.New().String()[:8])
}
