package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sopas_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/sopas_backend/internal/core/ports/repositories"
	"github.com/SscSPs/sopas_backend/internal/models"
	"github.com/SscSPs/sopas_backend/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jornadaColumns = `id, fecha, estado, opened_at, closed_at, total_pedidos, total_recaudado,
	total_efectivo, total_transferencia, cancelados_al_cierre, created_at`

type PgxJornadaRepository struct {
	BaseRepository
}

// newPgxJornadaRepository creates a new repository for jornada data.
func newPgxJornadaRepository(pool *pgxpool.Pool) portsrepo.JornadaRepositoryWithTx {
	return &PgxJornadaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.JornadaRepositoryWithTx = (*PgxJornadaRepository)(nil)

func scanJornada(row pgx.Row) (models.Jornada, error) {
	var m models.Jornada
	err := row.Scan(
		&m.ID,
		&m.Fecha,
		&m.Estado,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.TotalPedidos,
		&m.TotalRecaudado,
		&m.TotalEfectivo,
		&m.TotalTransferencia,
		&m.CanceladosAlCierre,
		&m.CreatedAt,
	)
	return m, err
}

// FindJornadaByID retrieves a jornada by ID.
func (r *PgxJornadaRepository) FindJornadaByID(ctx context.Context, jornadaID string) (*domain.Jornada, error) {
	query := `SELECT ` + jornadaColumns + ` FROM jornadas WHERE id = $1;`

	m, err := scanJornada(r.Pool.QueryRow(ctx, query, jornadaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJornadaNoExiste
		}
		return nil, fmt.Errorf("failed to find jornada %s: %w", jornadaID, err)
	}

	d := mapping.ToDomainJornada(m)
	return &d, nil
}

// FindJornadaAbierta retrieves the open jornada.
func (r *PgxJornadaRepository) FindJornadaAbierta(ctx context.Context) (*domain.Jornada, error) {
	query := `SELECT ` + jornadaColumns + ` FROM jornadas WHERE estado = $1;`

	m, err := scanJornada(r.Pool.QueryRow(ctx, query, string(domain.JornadaAbierta)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoHayJornadaActiva
		}
		return nil, fmt.Errorf("failed to find open jornada: %w", err)
	}

	d := mapping.ToDomainJornada(m)
	return &d, nil
}

// ListJornadas retrieves jornadas newest first, optionally filtered by state.
func (r *PgxJornadaRepository) ListJornadas(ctx context.Context, params portsrepo.ListJornadasParams) ([]domain.Jornada, error) {
	query := `SELECT ` + jornadaColumns + ` FROM jornadas`
	args := []any{}
	if params.Estado != nil {
		args = append(args, string(*params.Estado))
		query += ` WHERE estado = $1`
	}
	args = append(args, params.Limit, params.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jornadas: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Jornada, error) {
		return scanJornada(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jornadas: %w", err)
	}

	return mapping.ToDomainJornadaSlice(ms), nil
}

// GetDashboard aggregates the live pedidos of a jornada.
func (r *PgxJornadaRepository) GetDashboard(ctx context.Context, jornadaID string) (*domain.Dashboard, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total) FILTER (WHERE estado = 'ENTREGADO'), 0),
			COUNT(*) FILTER (WHERE estado = 'PENDIENTE'),
			COUNT(*) FILTER (WHERE estado = 'ENTREGADO'),
			COUNT(*) FILTER (WHERE estado = 'CANCELADO')
		FROM pedidos
		WHERE jornada_id = $1 AND NOT is_deleted;
	`

	d := domain.Dashboard{JornadaID: jornadaID}
	err := r.Pool.QueryRow(ctx, query, jornadaID).Scan(
		&d.TotalPedidos,
		&d.TotalRecaudado,
		&d.Pendientes,
		&d.Entregados,
		&d.Cancelados,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard for jornada %s: %w", jornadaID, err)
	}
	return &d, nil
}

// OpenJornada returns the jornada of fecha, creating it when missing. Any other open
// jornada is force-closed in the same transaction. Two callers racing on the same date
// collide on the unique constraints; the loser re-reads the winner's row.
func (r *PgxJornadaRepository) OpenJornada(ctx context.Context, fecha, now time.Time) (*domain.Jornada, error) {
	var (
		j   *domain.Jornada
		err error
	)
	for attempt := 0; attempt < 2; attempt++ {
		j, err = r.openJornadaOnce(ctx, fecha, now)
		if !isUniqueViolation(err, "") {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *PgxJornadaRepository) openJornadaOnce(ctx context.Context, fecha, now time.Time) (*domain.Jornada, error) {
	var result domain.Jornada

	err := r.runInTx(ctx, func(tx pgx.Tx) error {
		selectQuery := `SELECT ` + jornadaColumns + ` FROM jornadas WHERE fecha = $1 FOR UPDATE;`
		m, err := scanJornada(tx.QueryRow(ctx, selectQuery, fecha))
		switch {
		case err == nil:
			existing := mapping.ToDomainJornada(m)
			if !existing.IsAbierta() {
				return domain.ErrJornadaHoyCerrada
			}
			result = existing
			return nil
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("failed to look up jornada for %s: %w", fecha.Format(time.DateOnly), err)
		}

		// Recovery path: a jornada from a previous date was never closed.
		staleQuery := `SELECT ` + jornadaColumns + ` FROM jornadas WHERE estado = $1 FOR UPDATE;`
		sm, err := scanJornada(tx.QueryRow(ctx, staleQuery, string(domain.JornadaAbierta)))
		switch {
		case err == nil:
			stale := mapping.ToDomainJornada(sm)
			stale.ForceClose()
			if _, err := tx.Exec(ctx, `UPDATE jornadas SET estado = $2 WHERE id = $1;`, stale.ID, string(stale.Estado)); err != nil {
				return fmt.Errorf("failed to force-close stale jornada %s: %w", stale.ID, err)
			}
		case !errors.Is(err, pgx.ErrNoRows):
			return fmt.Errorf("failed to look up stale open jornada: %w", err)
		}

		j := domain.NewJornada(uuid.NewString(), fecha, now)
		mj := mapping.ToModelJornada(j)
		insert := `
			INSERT INTO jornadas (id, fecha, estado, opened_at, created_at)
			VALUES ($1, $2, $3, $4, $5);
		`
		if _, err := tx.Exec(ctx, insert, mj.ID, mj.Fecha, mj.Estado, mj.OpenedAt, mj.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert jornada: %w", err)
		}
		result = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CloseJornada cancels the jornada's pending pedidos and freezes its snapshot atomically.
// The FOR UPDATE lock on the jornada row serializes close against pedido creation,
// which holds FOR SHARE on the same row.
func (r *PgxJornadaRepository) CloseJornada(ctx context.Context, jornadaID string, now time.Time) (*domain.Jornada, error) {
	var result domain.Jornada

	err := r.runInTx(ctx, func(tx pgx.Tx) error {
		lockQuery := `SELECT ` + jornadaColumns + ` FROM jornadas WHERE id = $1 FOR UPDATE;`
		m, err := scanJornada(tx.QueryRow(ctx, lockQuery, jornadaID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrJornadaNoExiste
			}
			return fmt.Errorf("failed to lock jornada %s: %w", jornadaID, err)
		}
		j := mapping.ToDomainJornada(m)
		if !j.IsAbierta() {
			return domain.ErrJornadaYaCerrada
		}

		rows, err := tx.Query(ctx, `
			SELECT estado, metodo_pago, total
			FROM pedidos
			WHERE jornada_id = $1 AND NOT is_deleted
			FOR UPDATE;
		`, jornadaID)
		if err != nil {
			return fmt.Errorf("failed to query pedidos of jornada %s: %w", jornadaID, err)
		}
		resumen, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PedidoResumen, error) {
			var estado, metodo string
			var p domain.PedidoResumen
			if err := row.Scan(&estado, &metodo, &p.Total); err != nil {
				return p, err
			}
			p.Estado = domain.EstadoPedido(estado)
			p.MetodoPago = domain.MetodoPago(metodo)
			return p, nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan pedidos of jornada %s: %w", jornadaID, err)
		}

		cierre := domain.ComputeCierre(resumen)

		cancel := `
			UPDATE pedidos SET estado = $2, updated_at = $3
			WHERE jornada_id = $1 AND estado = $4 AND NOT is_deleted;
		`
		tag, err := tx.Exec(ctx, cancel, jornadaID, string(domain.PedidoCancelado), now, string(domain.PedidoPendiente))
		if err != nil {
			return fmt.Errorf("failed to cancel pending pedidos of jornada %s: %w", jornadaID, err)
		}
		if int(tag.RowsAffected()) != cierre.CanceladosAlCierre {
			return fmt.Errorf("cancelled %d pedidos of jornada %s, expected %d", tag.RowsAffected(), jornadaID, cierre.CanceladosAlCierre)
		}

		if err := j.Close(cierre, now); err != nil {
			return err
		}
		mj := mapping.ToModelJornada(j)
		update := `
			UPDATE jornadas
			SET estado = $2, closed_at = $3, total_pedidos = $4, total_recaudado = $5,
				total_efectivo = $6, total_transferencia = $7, cancelados_al_cierre = $8
			WHERE id = $1;
		`
		_, err = tx.Exec(ctx, update,
			mj.ID,
			mj.Estado,
			mj.ClosedAt,
			mj.TotalPedidos,
			mj.TotalRecaudado,
			mj.TotalEfectivo,
			mj.TotalTransferencia,
			mj.CanceladosAlCierre,
		)
		if err != nil {
			return fmt.Errorf("failed to write snapshot of jornada %s: %w", jornadaID, err)
		}

		result = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
