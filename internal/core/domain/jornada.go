package domain

import (
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EstadoJornada is the lifecycle state of a business day. CERRADA is terminal.
type EstadoJornada string

const (
	JornadaAbierta EstadoJornada = "ABIERTA"
	JornadaCerrada EstadoJornada = "CERRADA"
)

var (
	ErrJornadaNoExiste       = apperrors.NotFound("Jornada no existe")
	ErrNoHayJornadaActiva    = apperrors.NotFound("No hay jornada activa. Abra una jornada primero.")
	ErrJornadaHoyCerrada     = apperrors.InvalidState("La jornada de hoy ya fue cerrada.")
	ErrJornadaYaCerrada      = apperrors.InvalidState("La jornada ya está cerrada")
	ErrEstadoJornadaInvalido = apperrors.Validation("Estado inválido")
)

// ParseEstadoJornada validates a jornada state coming from the outside.
func ParseEstadoJornada(s string) (EstadoJornada, error) {
	switch e := EstadoJornada(s); e {
	case JornadaAbierta, JornadaCerrada:
		return e, nil
	}
	return "", ErrEstadoJornadaInvalido
}

// Cierre is the financial snapshot frozen when a jornada closes.
type Cierre struct {
	TotalPedidos       int             `json:"totalPedidos"`
	TotalRecaudado     decimal.Decimal `json:"totalRecaudado"`
	TotalEfectivo      decimal.Decimal `json:"totalEfectivo"`
	TotalTransferencia decimal.Decimal `json:"totalTransferencia"`
	CanceladosAlCierre int             `json:"canceladosAlCierre"`
}

// Jornada is a business-day session. Fecha is a calendar date (midnight UTC).
type Jornada struct {
	ID        string        `json:"id"`
	Fecha     time.Time     `json:"fecha"`
	Estado    EstadoJornada `json:"estado"`
	OpenedAt  time.Time     `json:"openedAt"`
	ClosedAt  *time.Time    `json:"closedAt,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	Cierre
}

// NewJornada builds an open jornada for the given business date.
func NewJornada(id string, fecha, now time.Time) Jornada {
	return Jornada{
		ID:        id,
		Fecha:     fecha,
		Estado:    JornadaAbierta,
		OpenedAt:  now,
		CreatedAt: now,
		Cierre: Cierre{
			TotalRecaudado:     decimal.Zero,
			TotalEfectivo:      decimal.Zero,
			TotalTransferencia: decimal.Zero,
		},
	}
}

func (j *Jornada) IsAbierta() bool {
	return j.Estado == JornadaAbierta
}

// Close freezes the snapshot. It fails if the jornada is already closed.
func (j *Jornada) Close(c Cierre, at time.Time) error {
	if !j.IsAbierta() {
		return ErrJornadaYaCerrada
	}
	j.Estado = JornadaCerrada
	j.ClosedAt = &at
	j.Cierre = c
	return nil
}

// ForceClose marks a stale jornada as closed without computing a snapshot.
func (j *Jornada) ForceClose() {
	j.Estado = JornadaCerrada
}

// PedidoResumen is the slice of a pedido the closing snapshot needs.
type PedidoResumen struct {
	Estado     EstadoPedido
	MetodoPago MetodoPago
	Total      decimal.Decimal
}

// ComputeCierre derives the closing snapshot from a jornada's live pedidos as they stand
// right before close. Pending pedidos are the ones close cancels.
func ComputeCierre(pedidos []PedidoResumen) Cierre {
	c := Cierre{
		TotalPedidos:       len(pedidos),
		TotalRecaudado:     decimal.Zero,
		TotalEfectivo:      decimal.Zero,
		TotalTransferencia: decimal.Zero,
	}
	for _, p := range pedidos {
		switch p.Estado {
		case PedidoPendiente:
			c.CanceladosAlCierre++
		case PedidoEntregado:
			c.TotalRecaudado = c.TotalRecaudado.Add(p.Total)
			switch p.MetodoPago {
			case MetodoEfectivo:
				c.TotalEfectivo = c.TotalEfectivo.Add(p.Total)
			case MetodoTransferencia:
				c.TotalTransferencia = c.TotalTransferencia.Add(p.Total)
			}
		}
	}
	return c
}

// Dashboard is the live rollup of a jornada's non-deleted pedidos.
type Dashboard struct {
	JornadaID      string          `json:"jornadaId"`
	TotalPedidos   int             `json:"totalPedidos"`
	TotalRecaudado decimal.Decimal `json:"totalRecaudado"`
	Pendientes     int             `json:"pendientes"`
	Entregados     int             `json:"entregados"`
	Cancelados     int             `json:"cancelados"`
}
