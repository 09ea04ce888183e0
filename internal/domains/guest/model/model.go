package model

const (
	ResourceName = "persona"
	EntityName   = "guest"

	FieldID       = "id"
	FieldFullName = "nombre_completo"
	FieldDocument = "nr_documento"
	FieldEmail    = "correo"
	FieldPhone    = "telefono"
)

type Guest struct {
	ID       int64  `json:"id,omitempty"`
	FullName string `json:"nombre_completo"`
	Document string `json:"nr_documento"`
	Email    string `json:"correo"`
	Phone    string `json:"telefono"`
}
