package response

import (
	"sieeg_orders/internal/domain/entities"
)

type TecnicoResponse struct {
	UID    string `json:"uid"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

func FromTecnicos(tecnicos []entities.Tecnico) []TecnicoResponse {
	out := make([]TecnicoResponse, 0, len(tecnicos))
	for _, t := range tecnicos {
		out = append(out, TecnicoResponse{
			UID:    t.UID,
			Nombre: t.Nombre,
			Email:  t.Email,
			Rol:    t.Rol,
			Activo: t.Activo,
		})
	}
	return out
}
