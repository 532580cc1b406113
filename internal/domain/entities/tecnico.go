package entities

// Tecnico is a shop account that can be assigned to orders. Accounts are
// provisioned by the auth gateway; this side only reads the directory.
type Tecnico struct {
	UID    string `json:"uid"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}
