package dto

import (
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ListJornadasParams defines query parameters for listing jornadas.
type ListJornadasParams struct {
	Estado string `form:"estado"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// JornadaResponse defines the data returned for a jornada. Totals are the snapshot frozen
// at close and stay zero while the jornada is open.
type JornadaResponse struct {
	ID                 string               `json:"id"`
	Fecha              string               `json:"fecha" example:"2026-03-10"`
	Estado             domain.EstadoJornada `json:"estado"`
	OpenedAt           time.Time            `json:"opened_at"`
	ClosedAt           *time.Time           `json:"closed_at"`
	CreatedAt          time.Time            `json:"created_at"`
	TotalPedidos       int                  `json:"total_pedidos"`
	TotalRecaudado     decimal.Decimal      `json:"total_recaudado" swaggertype:"number"`
	TotalEfectivo      decimal.Decimal      `json:"total_efectivo" swaggertype:"number"`
	TotalTransferencia decimal.Decimal      `json:"total_transferencia" swaggertype:"number"`
	CanceladosAlCierre int                  `json:"cancelados_al_cierre"`
}

// DashboardResponse is the live rollup of a jornada.
type DashboardResponse struct {
	JornadaID      string          `json:"jornada_id"`
	TotalPedidos   int             `json:"total_pedidos"`
	TotalRecaudado decimal.Decimal `json:"total_recaudado" swaggertype:"number"`
	Pendientes     int             `json:"pendientes"`
	Entregados     int             `json:"entregados"`
	Cancelados     int             `json:"cancelados"`
}

func ToJornadaResponse(j *domain.Jornada) JornadaResponse {
	return JornadaResponse{
		ID:                 j.ID,
		Fecha:              j.Fecha.Format(dateLayout),
		Estado:             j.Estado,
		OpenedAt:           j.OpenedAt,
		ClosedAt:           j.ClosedAt,
		CreatedAt:          j.CreatedAt,
		TotalPedidos:       j.TotalPedidos,
		TotalRecaudado:     j.TotalRecaudado,
		TotalEfectivo:      j.TotalEfectivo,
		TotalTransferencia: j.TotalTransferencia,
		CanceladosAlCierre: j.CanceladosAlCierre,
	}
}

func ToListJornadaResponse(jornadas []domain.Jornada) []JornadaResponse {
	res := make([]JornadaResponse, len(jornadas))
	for i := range jornadas {
		res[i] = ToJornadaResponse(&jornadas[i])
	}
	return res
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		JornadaID:      d.JornadaID,
		TotalPedidos:   d.TotalPedidos,
		TotalRecaudado: d.TotalRecaudado,
		Pendientes:     d.Pendientes,
		Entregados:     d.Entregados,
		Cancelados:     d.Cancelados,
	}
}
