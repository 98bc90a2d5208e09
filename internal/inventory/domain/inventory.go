package domain

import "time"

// InventoryRecord is the persisted stock row. ProductID references a product
// owned by the products service; the reference is enforced at write time by a
// directory verification call, not by a database constraint.
type InventoryRecord struct {
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockLevel is the write result returned to callers.
type StockLevel struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// MergedInventory is the read-only composition of a stock row with the live
// product attributes fetched from the products service. It is built fresh on
// every read and never persisted.
type MergedInventory struct {
	ProductID  int64
	Quantity   int64
	Attributes map[string]any
}

// Flatten renders the merged view as a single attribute map: productId and
// quantity plus every directory attribute.
func (m MergedInventory) Flatten() map[string]any {
	out := make(map[string]any, len(m.Attributes)+2)
	for k, v := range m.Attributes {
		out[k] = v
	}
	out["productId"] = m.ProductID
	out["quantity"] = m.Quantity
	return out
}
