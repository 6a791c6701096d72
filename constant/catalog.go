package constant

// Segment classifies stores' catalog entries (products and categories).
type Segment string

const (
	SegmentResidential Segment = "Residencial"
	SegmentCommercial  Segment = "Comercial"
)

// RecordStatus is shared by stores, categories and products.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)
