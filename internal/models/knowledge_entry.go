package models

import (
	"time"

	"github.com/google/uuid"
)

type Product string

const (
	ProductPremiumTax   Product = "Premium"
	ProductMunicipalTax Product = "Municipal"
	ProductFormsPlus    Product = "FormsPlus"
	ProductAllocator    Product = "Allocator"
	ProductGFA          Product = "GFA"
	ProductCalendar     Product = "Calendar"
)

// KnowledgeEntry is a dynamically loaded question/answer record. Entries are
// created by the ingestion collaborator and read-only to the query engine.
type KnowledgeEntry struct {
	ID        uuid.UUID `db:"id"`
	Product   Product   `db:"product"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	Keywords  []string  `db:"keywords"`
	CreatedAt time.Time `db:"created_at"`
}
