package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MetodoPago is how the customer pays.
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "EFECTIVO"
	MetodoTransferencia MetodoPago = "TRANSFERENCIA"
)

// EstadoPedido is the delivery state of an order.
type EstadoPedido string

const (
	PedidoPendiente EstadoPedido = "PENDIENTE"
	PedidoEntregado EstadoPedido = "ENTREGADO"
	PedidoCancelado EstadoPedido = "CANCELADO"
)

var (
	ErrPedidoNoExiste               = apperrors.NotFound("Pedido no existe")
	ErrMetodoPagoInvalido           = apperrors.Validation("MetodoPago inválido")
	ErrEstadoPedidoInvalido         = apperrors.Validation("Estado inválido")
	ErrDescripcionEspecialRequerida = apperrors.Validation("Descripcion especial es requerida cuando el pedido es especial")
	ErrClientRequestIDRequerido     = apperrors.Validation("client_request_id es requerido")
	ErrClientRequestIDReutilizado   = apperrors.Conflict("client_request_id ya fue usado con un pedido distinto")
)

func ParseMetodoPago(s string) (MetodoPago, error) {
	switch m := MetodoPago(s); m {
	case MetodoEfectivo, MetodoTransferencia:
		return m, nil
	}
	return "", ErrMetodoPagoInvalido
}

func ParseEstadoPedido(s string) (EstadoPedido, error) {
	switch e := EstadoPedido(s); e {
	case PedidoPendiente, PedidoEntregado, PedidoCancelado:
		return e, nil
	}
	return "", ErrEstadoPedidoInvalido
}

// Pedido is a customer order for one product and quantity inside a jornada.
type Pedido struct {
	ID                  string          `json:"id"`
	JornadaID           string          `json:"jornadaId"`
	ClientID            *string         `json:"clientId,omitempty"`
	ClientRequestID     string          `json:"clientRequestId"` // idempotency key, unique
	RequestHash         string          `json:"-"`
	Cliente             string          `json:"cliente"`
	TipoSopaCodigo      string          `json:"tipoSopaCodigo"`
	MetodoPago          MetodoPago      `json:"metodoPago"`
	Estado              EstadoPedido    `json:"estado"`
	Cantidad            int             `json:"cantidad"`
	Direccion           string          `json:"direccion"`
	PagoConMontoExacto  bool            `json:"pagoConMontoExacto"`
	MontoPagado         decimal.Decimal `json:"montoPagado"`
	Total               decimal.Decimal `json:"total"`
	Vuelto              decimal.Decimal `json:"vuelto"`
	EsEspecial          bool            `json:"esEspecial"`
	DescripcionEspecial string          `json:"descripcionEspecial"`
	IsDeleted           bool            `json:"isDeleted"`
	DeletedAt           *time.Time      `json:"deletedAt,omitempty"`
	Timestamps
}

// NuevoPedido is the payload for creating an order.
type NuevoPedido struct {
	ClientRequestID     string
	ClientID            *string
	Cliente             string
	TipoSopaCodigo      string
	MetodoPago          string
	Cantidad            int
	Direccion           string
	PagoConMontoExacto  bool
	MontoPagado         decimal.Decimal
	EsEspecial          bool
	DescripcionEspecial string
}

// Normalize validates the payload and clears the special description of regular orders.
func (n *NuevoPedido) Normalize() error {
	if _, err := ParseMetodoPago(n.MetodoPago); err != nil {
		return err
	}
	if n.Cantidad <= 0 {
		return ErrCantidadInvalida
	}
	desc, err := normalizeEspecial(n.EsEspecial, n.DescripcionEspecial)
	if err != nil {
		return err
	}
	n.DescripcionEspecial = desc
	if strings.TrimSpace(n.ClientRequestID) == "" {
		return ErrClientRequestIDRequerido
	}
	return nil
}

// Fingerprint identifies the payload so a replayed request can be told apart from a reused key.
func (n NuevoPedido) Fingerprint() string {
	clientID := ""
	if n.ClientID != nil {
		clientID = *n.ClientID
	}
	fields := []string{
		n.ClientRequestID,
		clientID,
		n.Cliente,
		n.TipoSopaCodigo,
		n.MetodoPago,
		strconv.Itoa(n.Cantidad),
		n.Direccion,
		strconv.FormatBool(n.PagoConMontoExacto),
		n.MontoPagado.String(),
		strconv.FormatBool(n.EsEspecial),
		n.DescripcionEspecial,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// NewPedido builds a pending order from a normalized payload and its settlement.
func NewPedido(id, jornadaID string, n NuevoPedido, s Settlement, now time.Time) Pedido {
	return Pedido{
		ID:                  id,
		JornadaID:           jornadaID,
		ClientID:            n.ClientID,
		ClientRequestID:     n.ClientRequestID,
		RequestHash:         n.Fingerprint(),
		Cliente:             n.Cliente,
		TipoSopaCodigo:      n.TipoSopaCodigo,
		MetodoPago:          MetodoPago(n.MetodoPago),
		Estado:              PedidoPendiente,
		Cantidad:            n.Cantidad,
		Direccion:           n.Direccion,
		PagoConMontoExacto:  n.PagoConMontoExacto,
		MontoPagado:         s.MontoPagado,
		Total:               s.Total,
		Vuelto:              s.Vuelto,
		EsEspecial:          n.EsEspecial,
		DescripcionEspecial: n.DescripcionEspecial,
		Timestamps:          Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

// PedidoPatch is a partial update. Nil fields are left untouched.
type PedidoPatch struct {
	Cliente             *string
	Direccion           *string
	Estado              *string
	MetodoPago          *string
	TipoSopaCodigo      *string
	Cantidad            *int
	PagoConMontoExacto  *bool
	MontoPagado         *decimal.Decimal
	EsEspecial          *bool
	DescripcionEspecial *string
}

// Validate checks the supplied enum and quantity fields.
func (p PedidoPatch) Validate() error {
	if p.MetodoPago != nil {
		if _, err := ParseMetodoPago(*p.MetodoPago); err != nil {
			return err
		}
	}
	if p.Estado != nil {
		if _, err := ParseEstadoPedido(*p.Estado); err != nil {
			return err
		}
	}
	if p.Cantidad != nil && *p.Cantidad <= 0 {
		return ErrCantidadInvalida
	}
	return nil
}

// TouchesSettlement reports whether the patch changes an input of Settle.
func (p PedidoPatch) TouchesSettlement() bool {
	return p.TipoSopaCodigo != nil || p.Cantidad != nil || p.PagoConMontoExacto != nil || p.MontoPagado != nil
}

// Apply validates the patch against the order's effective post-update values and applies it.
// The order is left untouched on error. Settlement is recomputed by the caller.
func (pd *Pedido) Apply(p PedidoPatch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	esEspecial := pd.EsEspecial
	if p.EsEspecial != nil {
		esEspecial = *p.EsEspecial
	}
	desc := pd.DescripcionEspecial
	if p.DescripcionEspecial != nil {
		desc = *p.DescripcionEspecial
	}
	desc, err := normalizeEspecial(esEspecial, desc)
	if err != nil {
		return err
	}

	if p.Cliente != nil {
		pd.Cliente = *p.Cliente
	}
	if p.Direccion != nil {
		pd.Direccion = *p.Direccion
	}
	if p.Estado != nil {
		pd.Estado = EstadoPedido(*p.Estado)
	}
	if p.MetodoPago != nil {
		pd.MetodoPago = MetodoPago(*p.MetodoPago)
	}
	if p.TipoSopaCodigo != nil {
		pd.TipoSopaCodigo = *p.TipoSopaCodigo
	}
	if p.Cantidad != nil {
		pd.Cantidad = *p.Cantidad
	}
	if p.PagoConMontoExacto != nil {
		pd.PagoConMontoExacto = *p.PagoConMontoExacto
	}
	if p.MontoPagado != nil {
		pd.MontoPagado = *p.MontoPagado
	}
	pd.EsEspecial = esEspecial
	pd.DescripcionEspecial = desc
	return nil
}

func (pd *Pedido) ApplySettlement(s Settlement) {
	pd.Total = s.Total
	pd.Vuelto = s.Vuelto
	pd.MontoPagado = s.MontoPagado
}

func normalizeEspecial(esEspecial bool, desc string) (string, error) {
	if !esEspecial {
		return "", nil
	}
	if strings.TrimSpace(desc) == "" {
		return "", ErrDescripcionEspecialRequerida
	}
	return desc, nil
}
