package domain

// ExportDataset bundles the current field definitions with every stored entry
// so an export client can build a spreadsheet without extra round trips.
type ExportDataset struct {
	Fields  []*FieldConfig `json:"fields"`
	Entries []*SalesEntry  `json:"entries"`
}
