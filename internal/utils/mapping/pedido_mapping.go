package mapping

import (
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	"github.com/SscSPs/sopas_backend/internal/models"
)

// ToModelPedido converts a domain Pedido to a model Pedido
func ToModelPedido(d domain.Pedido) models.Pedido {
	return models.Pedido{
		ID:                  d.ID,
		JornadaID:           d.JornadaID,
		ClientID:            d.ClientID,
		ClientRequestID:     d.ClientRequestID,
		RequestHash:         d.RequestHash,
		Cliente:             d.Cliente,
		TipoSopaCodigo:      d.TipoSopaCodigo,
		MetodoPago:          string(d.MetodoPago),
		Estado:              string(d.Estado),
		Cantidad:            d.Cantidad,
		Direccion:           d.Direccion,
		PagoConMontoExacto:  d.PagoConMontoExacto,
		MontoPagado:         d.MontoPagado,
		Total:               d.Total,
		Vuelto:              d.Vuelto,
		EsEspecial:          d.EsEspecial,
		DescripcionEspecial: d.DescripcionEspecial,
		IsDeleted:           d.IsDeleted,
		DeletedAt:           d.DeletedAt,
		Timestamps:          ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainPedido converts a model Pedido to a domain Pedido
func ToDomainPedido(m models.Pedido) domain.Pedido {
	return domain.Pedido{
		ID:                  m.ID,
		JornadaID:           m.JornadaID,
		ClientID:            m.ClientID,
		ClientRequestID:     m.ClientRequestID,
		RequestHash:         m.RequestHash,
		Cliente:             m.Cliente,
		TipoSopaCodigo:      m.TipoSopaCodigo,
		MetodoPago:          domain.MetodoPago(m.MetodoPago),
		Estado:              domain.EstadoPedido(m.Estado),
		Cantidad:            m.Cantidad,
		Direccion:           m.Direccion,
		PagoConMontoExacto:  m.PagoConMontoExacto,
		MontoPagado:         m.MontoPagado,
		Total:               m.Total,
		Vuelto:              m.Vuelto,
		EsEspecial:          m.EsEspecial,
		DescripcionEspecial: m.DescripcionEspecial,
		IsDeleted:           m.IsDeleted,
		DeletedAt:           m.DeletedAt,
		Timestamps:          ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainPedidoSlice converts a slice of model Pedidos to a slice of domain Pedidos
func ToDomainPedidoSlice(ms []models.Pedido) []domain.Pedido {
	ds := make([]domain.Pedido, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPedido(m)
	}
	return ds
}
