package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gpstudio/billing-api/internal/domain/entity"
	"github.com/gpstudio/billing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación pgx de repository.InvoiceRepository.
//
// Esquema:
//
//	CREATE TABLE invoices (
//	    id           TEXT PRIMARY KEY,      -- número de factura (GPddmmyy-nnn)
//	    client_name  TEXT NOT NULL,
//	    client_phone TEXT NOT NULL,
//	    event_date   DATE,
//	    date_issued  DATE,
//	    advance      NUMERIC NOT NULL DEFAULT 0,
//	    events       JSONB NOT NULL,
//	    subtotal     NUMERIC NOT NULL,
//	    total        NUMERIC NOT NULL,
//	    created_at   TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX idx_invoices_created_at ON invoices (created_at DESC);
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Put persiste la factura keyed por su número. Idempotente: repetir la
// exportación del mismo registro (doble descarga) no duplica ni falla; el
// primer registro de un número gana.
func (r *InvoiceRepo) Put(ctx context.Context, record *entity.Invoice) error {
	eventsJSON, err := json.Marshal(record.Events)
	if err != nil {
		return fmt.Errorf("serializar eventos: %w", err)
	}
	query := `
		INSERT INTO invoices (id, client_name, client_phone, event_date, date_issued, advance, events, subtotal, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`
	_, err = r.q.Exec(ctx, query,
		record.ID, record.Client.Name, record.Client.Phone,
		record.Client.EventDate, record.Client.DateIssued, record.Client.Advance,
		eventsJSON, record.Subtotal, record.Total, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID devuelve la factura o nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, client_name, client_phone, event_date, date_issued, advance, events, subtotal, total, created_at
		FROM invoices WHERE id = $1`
	rec, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return rec, nil
}

// CountCreatedOnOrAfter cuenta facturas con created_at >= t (secuencia del día).
func (r *InvoiceRepo) CountCreatedOnOrAfter(ctx context.Context, t time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE created_at >= $1`, t,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// List devuelve el historial más reciente primero, filtrado por nombre de
// cliente o número de factura (substring, case-insensitive).
func (r *InvoiceRepo) List(ctx context.Context, search string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, client_name, client_phone, event_date, date_issued, advance, events, subtotal, total, created_at
		FROM invoices
		WHERE $1 = '' OR client_name ILIKE '%' || $1 || '%' OR id ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		rec, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var rec entity.Invoice
	var eventsJSON []byte
	err := row.Scan(
		&rec.ID, &rec.Client.Name, &rec.Client.Phone,
		&rec.Client.EventDate, &rec.Client.DateIssued, &rec.Client.Advance,
		&eventsJSON, &rec.Subtotal, &rec.Total, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(eventsJSON, &rec.Events); err != nil {
		return nil, fmt.Errorf("deserializar eventos: %w", err)
	}
	rec.Mode = entity.ModeInvoice // solo se persisten facturas
	return &rec, nil
}
