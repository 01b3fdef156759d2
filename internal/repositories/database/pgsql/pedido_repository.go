package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sopas_backend/internal/apperrors"
	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sopas_backend/internal/models"
	"github.com/SscSPs/sopas_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pedidoColumns = `id, jornada_id, client_id, client_request_id, request_hash, cliente,
	tipo_sopa_codigo, metodo_pago, estado, cantidad, direccion, pago_con_monto_exacto,
	monto_pagado, total, vuelto, es_especial, descripcion_especial, is_deleted, deleted_at,
	created_at, updated_at`

const clientRequestIDConstraint = "pedidos_client_request_id_key"

type PgxPedidoRepository struct {
	BaseRepository
}

// newPgxPedidoRepository creates a new repository for pedido data.
func newPgxPedidoRepository(pool *pgxpool.Pool) portsrepo.PedidoRepositoryWithTx {
	return &PgxPedidoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PedidoRepositoryWithTx = (*PgxPedidoRepository)(nil)

func scanPedido(row pgx.Row) (models.Pedido, error) {
	var m models.Pedido
	err := row.Scan(
		&m.ID,
		&m.JornadaID,
		&m.ClientID,
		&m.ClientRequestID,
		&m.RequestHash,
		&m.Cliente,
		&m.TipoSopaCodigo,
		&m.MetodoPago,
		&m.Estado,
		&m.Cantidad,
		&m.Direccion,
		&m.PagoConMontoExacto,
		&m.MontoPagado,
		&m.Total,
		&m.Vuelto,
		&m.EsEspecial,
		&m.DescripcionEspecial,
		&m.IsDeleted,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SavePedido inserts a pedido. The jornada row is held FOR SHARE so a concurrent close
// either sees this pedido in its snapshot or runs first and makes this insert fail.
func (r *PgxPedidoRepository) SavePedido(ctx context.Context, pedido domain.Pedido) error {
	m := mapping.ToModelPedido(pedido)

	return r.runInTx(ctx, func(tx pgx.Tx) error {
		var estado string
		err := tx.QueryRow(ctx, `SELECT estado FROM jornadas WHERE id = $1 FOR SHARE;`, m.JornadaID).Scan(&estado)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrJornadaNoExiste
			}
			return fmt.Errorf("failed to lock jornada %s: %w", m.JornadaID, err)
		}
		if domain.EstadoJornada(estado) != domain.JornadaAbierta {
			return domain.ErrJornadaYaCerrada
		}

		query := `
			INSERT INTO pedidos (` + pedidoColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
		`
		_, err = tx.Exec(ctx, query,
			m.ID,
			m.JornadaID,
			m.ClientID,
			m.ClientRequestID,
			m.RequestHash,
			m.Cliente,
			m.TipoSopaCodigo,
			m.MetodoPago,
			m.Estado,
			m.Cantidad,
			m.Direccion,
			m.PagoConMontoExacto,
			m.MontoPagado,
			m.Total,
			m.Vuelto,
			m.EsEspecial,
			m.DescripcionEspecial,
			m.IsDeleted,
			m.DeletedAt,
			m.CreatedAt,
			m.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err, clientRequestIDConstraint) {
				return fmt.Errorf("client_request_id %s: %w", m.ClientRequestID, apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert pedido: %w", err)
		}
		return nil
	})
}

// FindPedidoByID retrieves a live pedido.
func (r *PgxPedidoRepository) FindPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1 AND NOT is_deleted;`

	m, err := scanPedido(r.Pool.QueryRow(ctx, query, pedidoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPedidoNoExiste
		}
		return nil, fmt.Errorf("failed to find pedido %s: %w", pedidoID, err)
	}

	d := mapping.ToDomainPedido(m)
	return &d, nil
}

// FindPedidoByClientRequestID retrieves a pedido by its idempotency key, including deleted ones.
func (r *PgxPedidoRepository) FindPedidoByClientRequestID(ctx context.Context, clientRequestID string) (*domain.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE client_request_id = $1;`

	m, err := scanPedido(r.Pool.QueryRow(ctx, query, clientRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pedido by client_request_id %s: %w", clientRequestID, err)
	}

	d := mapping.ToDomainPedido(m)
	return &d, nil
}

// ListPedidos retrieves live pedidos newest first.
func (r *PgxPedidoRepository) ListPedidos(ctx context.Context, params portsrepo.ListPedidosParams) ([]domain.Pedido, error) {
	conditions := []string{"NOT is_deleted"}
	args := []any{}
	if params.JornadaID != "" {
		args = append(args, params.JornadaID)
		conditions = append(conditions, fmt.Sprintf("jornada_id = $%d", len(args)))
	}
	if params.Estado != nil {
		args = append(args, string(*params.Estado))
		conditions = append(conditions, fmt.Sprintf("estado = $%d", len(args)))
	}
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY created_at DESC, id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pedidos: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Pedido, error) {
		return scanPedido(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pedidos: %w", err)
	}

	return mapping.ToDomainPedidoSlice(ms), nil
}

// UpdatePedido locks a live pedido, lets mutate edit it and writes every mutable column back.
func (r *PgxPedidoRepository) UpdatePedido(ctx context.Context, pedidoID string, now time.Time, mutate portsrepo.PedidoMutator) (*domain.Pedido, error) {
	var result domain.Pedido

	err := r.runInTx(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1 AND NOT is_deleted FOR UPDATE;`
		m, err := scanPedido(tx.QueryRow(ctx, lockQuery, pedidoID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrPedidoNoExiste
			}
			return fmt.Errorf("failed to lock pedido %s: %w", pedidoID, err)
		}

		p := mapping.ToDomainPedido(m)
		if err := mutate(&p); err != nil {
			return err
		}
		p.UpdatedAt = now
		m = mapping.ToModelPedido(p)

		update := `
			UPDATE pedidos
			SET cliente = $2, direccion = $3, estado = $4, metodo_pago = $5, tipo_sopa_codigo = $6,
				cantidad = $7, pago_con_monto_exacto = $8, monto_pagado = $9, total = $10, vuelto = $11,
				es_especial = $12, descripcion_especial = $13, updated_at = $14
			WHERE id = $1;
		`
		_, err = tx.Exec(ctx, update,
			m.ID,
			m.Cliente,
			m.Direccion,
			m.Estado,
			m.MetodoPago,
			m.TipoSopaCodigo,
			m.Cantidad,
			m.PagoConMontoExacto,
			m.MontoPagado,
			m.Total,
			m.Vuelto,
			m.EsEspecial,
			m.DescripcionEspecial,
			m.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to update pedido %s: %w", pedidoID, err)
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SoftDeletePedido marks a live pedido as deleted.
func (r *PgxPedidoRepository) SoftDeletePedido(ctx context.Context, pedidoID string, now time.Time) error {
	query := `
		UPDATE pedidos
		SET is_deleted = TRUE, deleted_at = $2, updated_at = $2
		WHERE id = $1 AND NOT is_deleted;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, pedidoID, now)
	if err != nil {
		return fmt.Errorf("failed to delete pedido %s: %w", pedidoID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrPedidoNoExiste
	}
	return nil
}
