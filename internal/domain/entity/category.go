package entity

// Category agrupa productos. No puede eliminarse mientras algún producto la referencie.
type Category struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"nombre"`
}
