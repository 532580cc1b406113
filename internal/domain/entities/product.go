package entities

// Product is a catalog candidate for the parts-used autocomplete.
type Product struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	SKU    string  `json:"sku,omitempty"`
	Precio float64 `json:"precio"`
	Imagen string  `json:"imagen,omitempty"`
}
