package billing

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// Draft es el estado mutable de un flujo de creación en curso: cliente
// parcial y eventos seleccionados. Vive solo lo que dura el flujo y se
// descarta al iniciar uno nuevo.
type Draft struct {
	Client entity.ClientInfo
	Events []entity.EventBlock
}

// ClientPatch campos de cliente a fusionar sobre el borrador. Los punteros
// nulos dejan el campo como está; Advance nulo vuelve a 0 (igual que la app
// original: cada envío del formulario fija el anticipo o lo resetea).
type ClientPatch struct {
	Name       *string
	Phone      *string
	EventDate  *time.Time
	DateIssued *time.Time
	Advance    *decimal.Decimal
}

// Session es la única sesión de autoría viva en el proceso. Un solo
// escritor (la pantalla actual del flujo); el mutex solo protege contra los
// handlers HTTP concurrentes, no hay colaboración multiusuario.
//
// Aquí no se validan reglas de negocio: la sesión solo garantiza forma
// (ids presentes, copias profundas para que nadie comparta estado interno).
type Session struct {
	mu        sync.Mutex
	draft     *Draft
	finalized *entity.Invoice
}

// NewSession crea la sesión sin borrador activo.
func NewSession() *Session {
	return &Session{}
}

// Start descarta cualquier borrador existente y crea uno nuevo con eventos
// vacíos y cliente en cero.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &Draft{
		Client: entity.ClientInfo{Advance: decimal.Zero},
		Events: []entity.EventBlock{},
	}
	s.finalized = nil
}

// SetEvents reemplaza la lista de eventos al completo. Los eventos que el
// llamador devuelve sin tocar conservan su ID, así las ediciones de líneas
// sobreviven la navegación hacia atrás. A eventos y líneas sin ID se les
// acuña uno.
func (s *Session) SetEvents(events []entity.EventBlock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		s.draft = &Draft{Client: entity.ClientInfo{Advance: decimal.Zero}}
	}
	s.draft.Events = copyEvents(events, true)
}

// SetClient fusiona los campos presentes del patch sobre el cliente del
// borrador. Advance omitido se fija en 0.
func (s *Session) SetClient(patch ClientPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		s.draft = &Draft{Client: entity.ClientInfo{Advance: decimal.Zero}, Events: []entity.EventBlock{}}
	}
	c := &s.draft.Client
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.EventDate != nil {
		d := *patch.EventDate
		c.EventDate = &d
	}
	if patch.DateIssued != nil {
		d := *patch.DateIssued
		c.DateIssued = &d
	}
	if patch.Advance != nil {
		c.Advance = *patch.Advance
	} else {
		c.Advance = decimal.Zero
	}
}

// Snapshot devuelve una copia profunda del borrador actual, o false si no
// hay flujo activo.
func (s *Session) Snapshot() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return Draft{}, false
	}
	return Draft{
		Client: copyClient(s.draft.Client),
		Events: copyEvents(s.draft.Events, false),
	}, true
}

// adoptFinalized guarda el registro terminal en la sesión. En modo factura
// el registro pasa a ser además el snapshot autoritativo del borrador, de
// modo que un paso de edición posterior arranca desde él.
func (s *Session) adoptFinalized(record *entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized = record
	if record.Mode == entity.ModeInvoice {
		s.draft = &Draft{
			Client: copyClient(record.Client),
			Events: copyEvents(record.Events, false),
		}
	}
}

// Finalized devuelve el último registro terminal del flujo, o nil si aún no
// se finalizó nada.
func (s *Session) Finalized() *entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}

// ── copias profundas ──────────────────────────────────────────────────────────

func copyClient(c entity.ClientInfo) entity.ClientInfo {
	out := c
	if c.EventDate != nil {
		d := *c.EventDate
		out.EventDate = &d
	}
	if c.DateIssued != nil {
		d := *c.DateIssued
		out.DateIssued = &d
	}
	return out
}

func copyEvents(events []entity.EventBlock, mintIDs bool) []entity.EventBlock {
	out := make([]entity.EventBlock, 0, len(events))
	for _, ev := range events {
		cp := ev
		if mintIDs && cp.ID == "" {
			cp.ID = uuid.New().String()
		}
		cp.Services = make([]entity.ServiceLine, 0, len(ev.Services))
		for _, sl := range ev.Services {
			if mintIDs && sl.ID == "" {
				sl.ID = uuid.New().String()
			}
			cp.Services = append(cp.Services, sl)
		}
		out = append(out, cp)
	}
	return out
}
