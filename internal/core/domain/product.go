package domain

// ProductVariant is one variant entry on a created product, priced in
// minor currency units.
type ProductVariant struct {
	ID        int   `json:"id"`
	Price     int64 `json:"price"`
	IsEnabled bool  `json:"is_enabled"`
}

// PrintArea positions uploaded artwork on a product.
type PrintArea struct {
	VariantIDs   []int              `json:"variant_ids"`
	Placeholders []PrintPlaceholder `json:"placeholders"`
}

// PrintPlaceholder is a named print position (front, back, ...) with its images.
type PrintPlaceholder struct {
	Position string       `json:"position"`
	Images   []PrintImage `json:"images"`
}

// PrintImage references an uploaded image by upstream ID.
type PrintImage struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
	Angle float64 `json:"angle"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	BlueprintID     int              `json:"blueprint_id"`
	PrintProviderID int              `json:"print_provider_id"`
	Variants        []ProductVariant `json:"variants"`
	PrintAreas      []PrintArea      `json:"print_areas"`
}

// Product is the upstream representation of a created product.
type Product struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	BlueprintID     int              `json:"blueprint_id"`
	PrintProviderID int              `json:"print_provider_id"`
	Variants        []ProductVariant `json:"variants"`
}

// ImageUpload is the payload for uploading artwork. Exactly one of URL or
// Contents (base64) must be set.
type ImageUpload struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Contents string `json:"contents,omitempty"`
}

// UploadedImage is the upstream record of an uploaded image.
type UploadedImage struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int    `json:"size"`
}
