package dto

import (
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePedidoRequest defines the data needed to create a pedido.
// Cantidad defaults to 1 and pago_con_monto_exacto to true when omitted.
type CreatePedidoRequest struct {
	ClientRequestID     string          `json:"client_request_id" binding:"required,max=100"`
	ClientID            *string         `json:"client_id" binding:"omitempty,max=100"`
	Cliente             string          `json:"cliente" binding:"max=200"`
	TipoSopaCodigo      string          `json:"tipo_sopa_codigo" binding:"required,max=50"`
	MetodoPago          string          `json:"metodo_pago" binding:"required"`
	Cantidad            *int            `json:"cantidad"`
	Direccion           string          `json:"direccion" binding:"max=300"`
	PagoConMontoExacto  *bool           `json:"pago_con_monto_exacto"`
	MontoPagado         decimal.Decimal `json:"monto_pagado" binding:"gte=0" swaggertype:"number"`
	EsEspecial          bool            `json:"es_especial"`
	DescripcionEspecial *string         `json:"descripcion_especial"`
}

// UpdatePedidoRequest defines the data allowed for updating a pedido.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePedidoRequest struct {
	Cliente             *string          `json:"cliente" binding:"omitempty,max=200"`
	Direccion           *string          `json:"direccion" binding:"omitempty,max=300"`
	Estado              *string          `json:"estado"`
	MetodoPago          *string          `json:"metodo_pago"`
	TipoSopaCodigo      *string          `json:"tipo_sopa_codigo" binding:"omitempty,max=50"`
	Cantidad            *int             `json:"cantidad"`
	PagoConMontoExacto  *bool            `json:"pago_con_monto_exacto"`
	MontoPagado         *decimal.Decimal `json:"monto_pagado" binding:"omitempty,gte=0" swaggertype:"number"`
	EsEspecial          *bool            `json:"es_especial"`
	DescripcionEspecial *string          `json:"descripcion_especial"`
}

// ListPedidosParams defines query parameters for listing pedidos.
type ListPedidosParams struct {
	JornadaID string `form:"jornada_id"`
	Estado    string `form:"estado"`
}

// PedidoResponse defines the data returned for a pedido.
type PedidoResponse struct {
	ID                  string              `json:"id"`
	JornadaID           string              `json:"jornada_id"`
	ClientID            *string             `json:"client_id"`
	ClientRequestID     string              `json:"client_request_id"`
	Cliente             string              `json:"cliente"`
	TipoSopaCodigo      string              `json:"tipo_sopa_codigo"`
	MetodoPago          domain.MetodoPago   `json:"metodo_pago"`
	Estado              domain.EstadoPedido `json:"estado"`
	Cantidad            int                 `json:"cantidad"`
	Direccion           string              `json:"direccion"`
	PagoConMontoExacto  bool                `json:"pago_con_monto_exacto"`
	MontoPagado         decimal.Decimal     `json:"monto_pagado" swaggertype:"number"`
	Total               decimal.Decimal     `json:"total" swaggertype:"number"`
	Vuelto              decimal.Decimal     `json:"vuelto" swaggertype:"number"`
	EsEspecial          bool                `json:"es_especial"`
	DescripcionEspecial *string             `json:"descripcion_especial"`
	IsDeleted           bool                `json:"is_deleted"`
	DeletedAt           *time.Time          `json:"deleted_at"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// ToNuevoPedido converts the request into the domain payload, applying defaults.
func (r CreatePedidoRequest) ToNuevoPedido() domain.NuevoPedido {
	n := domain.NuevoPedido{
		ClientRequestID:    r.ClientRequestID,
		ClientID:           r.ClientID,
		Cliente:            r.Cliente,
		TipoSopaCodigo:     r.TipoSopaCodigo,
		MetodoPago:         r.MetodoPago,
		Cantidad:           1,
		Direccion:          r.Direccion,
		PagoConMontoExacto: true,
		MontoPagado:        r.MontoPagado,
		EsEspecial:         r.EsEspecial,
	}
	if r.Cantidad != nil {
		n.Cantidad = *r.Cantidad
	}
	if r.PagoConMontoExacto != nil {
		n.PagoConMontoExacto = *r.PagoConMontoExacto
	}
	if r.DescripcionEspecial != nil {
		n.DescripcionEspecial = *r.DescripcionEspecial
	}
	return n
}

func (r UpdatePedidoRequest) ToPatch() domain.PedidoPatch {
	return domain.PedidoPatch{
		Cliente:             r.Cliente,
		Direccion:           r.Direccion,
		Estado:              r.Estado,
		MetodoPago:          r.MetodoPago,
		TipoSopaCodigo:      r.TipoSopaCodigo,
		Cantidad:            r.Cantidad,
		PagoConMontoExacto:  r.PagoConMontoExacto,
		MontoPagado:         r.MontoPagado,
		EsEspecial:          r.EsEspecial,
		DescripcionEspecial: r.DescripcionEspecial,
	}
}

// ToPedidoResponse converts a domain.Pedido to PedidoResponse DTO.
// descripcion_especial is null for regular pedidos.
func ToPedidoResponse(p *domain.Pedido) PedidoResponse {
	res := PedidoResponse{
		ID:                 p.ID,
		JornadaID:          p.JornadaID,
		ClientID:           p.ClientID,
		ClientRequestID:    p.ClientRequestID,
		Cliente:            p.Cliente,
		TipoSopaCodigo:     p.TipoSopaCodigo,
		MetodoPago:         p.MetodoPago,
		Estado:             p.Estado,
		Cantidad:           p.Cantidad,
		Direccion:          p.Direccion,
		PagoConMontoExacto: p.PagoConMontoExacto,
		MontoPagado:        p.MontoPagado,
		Total:              p.Total,
		Vuelto:             p.Vuelto,
		EsEspecial:         p.EsEspecial,
		IsDeleted:          p.IsDeleted,
		DeletedAt:          p.DeletedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.EsEspecial {
		desc := p.DescripcionEspecial
		res.DescripcionEspecial = &desc
	}
	return res
}

func ToListPedidoResponse(pedidos []domain.Pedido) []PedidoResponse {
	res := make([]PedidoResponse, len(pedidos))
	for i := range pedidos {
		res[i] = ToPedidoResponse(&pedidos[i])
	}
	return res
}
