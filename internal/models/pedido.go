package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido is a row of the pedidos table.
type Pedido struct {
	ID                  string          `db:"id"`
	JornadaID           string          `db:"jornada_id"`
	ClientID            *string         `db:"client_id"` // Nullable
	ClientRequestID     string          `db:"client_request_id"`
	RequestHash         string          `db:"request_hash"`
	Cliente             string          `db:"cliente"`
	TipoSopaCodigo      string          `db:"tipo_sopa_codigo"`
	MetodoPago          string          `db:"metodo_pago"`
	Estado              string          `db:"estado"`
	Cantidad            int             `db:"cantidad"`
	Direccion           string          `db:"direccion"`
	PagoConMontoExacto  bool            `db:"pago_con_monto_exacto"`
	MontoPagado         decimal.Decimal `db:"monto_pagado"`
	Total               decimal.Decimal `db:"total"`
	Vuelto              decimal.Decimal `db:"vuelto"`
	EsEspecial          bool            `db:"es_especial"`
	DescripcionEspecial string          `db:"descripcion_especial"`
	IsDeleted           bool            `db:"is_deleted"`
	DeletedAt           *time.Time      `db:"deleted_at"` // Nullable
	Timestamps
}
