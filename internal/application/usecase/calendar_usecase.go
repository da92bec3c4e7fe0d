package usecase

import (
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/internal/domain/calendar"
	"github.com/serviagenda/agenda-api/internal/domain/repository"
)

// CalendarUseCase arma los tableros de calendario: días visibles de la
// vista más las entradas abiertas con sus asignaciones agrupadas por día.
type CalendarUseCase struct {
	services   repository.ServiceEntryRepository
	quotes     repository.QuoteEntryRepository
	resources  repository.ResourceRepository
	assigns    repository.AssignmentRepository
	quoteAsgns repository.QuoteAssignmentRepository
}

// NewCalendarUseCase construye el caso de uso del tablero.
func NewCalendarUseCase(
	services repository.ServiceEntryRepository,
	quotes repository.QuoteEntryRepository,
	resources repository.ResourceRepository,
	assigns repository.AssignmentRepository,
	quoteAsgns repository.QuoteAssignmentRepository,
) *CalendarUseCase {
	return &CalendarUseCase{
		services:   services,
		quotes:     quotes,
		resources:  resources,
		assigns:    assigns,
		quoteAsgns: quoteAsgns,
	}
}

var estadoAbiertoFilter = "abierto"

// ServiceBoard devuelve el tablero de servicios para la vista y fecha ancla:
// entradas abiertas de la sede con sus asignaciones (recurso resuelto)
// agrupadas por día visible.
func (uc *CalendarUseCase) ServiceBoard(mode calendar.ViewMode, anchor calendar.Date, sedeID *string) (*dto.ServiceBoardResponse, error) {
	days := calendar.VisibleDays(mode, anchor)
	visible := daySet(days)

	entries, err := uc.services.List(sedeID, &estadoAbiertoFilter)
	if err != nil {
		return nil, err
	}

	from, to := days[0], days[len(days)-1]
	assigns, err := uc.assigns.List(repository.AssignmentFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	resources, err := uc.resources.List(sedeID, nil)
	if err != nil {
		return nil, err
	}
	resourceByID := make(map[string]*dto.ResourceResponse, len(resources))
	for _, r := range resources {
		resourceByID[r.ID] = toResourceResponse(r)
	}

	// asignaciones por entrada, agrupadas por día visible
	cellsByEntry := make(map[string]map[string][]dto.BoardAssignment)
	for _, a := range assigns {
		day := a.Date.String()
		if !visible[day] {
			continue // domingo dentro del rango de la vista mensual
		}
		cells := cellsByEntry[a.ServiceEntryID]
		if cells == nil {
			cells = make(map[string][]dto.BoardAssignment)
			cellsByEntry[a.ServiceEntryID] = cells
		}
		cells[day] = append(cells[day], dto.BoardAssignment{
			AssignmentID: a.ID,
			Resource:     resourceByID[a.ResourceID],
		})
	}

	board := &dto.ServiceBoardResponse{
		View:    mode,
		Days:    days,
		Entries: make([]dto.ServiceBoardEntry, 0, len(entries)),
	}
	for _, e := range entries {
		cells := cellsByEntry[e.ID]
		if cells == nil {
			cells = map[string][]dto.BoardAssignment{}
		}
		board.Entries = append(board.Entries, dto.ServiceBoardEntry{
			Entry: *toServiceEntryResponse(e),
			Cells: cells,
		})
	}
	return board, nil
}

// QuoteBoard devuelve el tablero de cotizaciones: cotizaciones abiertas con
// a lo sumo una asignación (y su status) por día visible.
func (uc *CalendarUseCase) QuoteBoard(mode calendar.ViewMode, anchor calendar.Date, sedeID *string) (*dto.QuoteBoardResponse, error) {
	days := calendar.VisibleDays(mode, anchor)
	visible := daySet(days)

	entries, err := uc.quotes.List(sedeID, &estadoAbiertoFilter)
	if err != nil {
		return nil, err
	}

	from, to := days[0], days[len(days)-1]
	assigns, err := uc.quoteAsgns.List(repository.QuoteAssignmentFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	cellsByEntry := make(map[string]map[string]dto.QuoteAssignmentResponse)
	for _, a := range assigns {
		day := a.Date.String()
		if !visible[day] {
			continue
		}
		cells := cellsByEntry[a.QuoteEntryID]
		if cells == nil {
			cells = make(map[string]dto.QuoteAssignmentResponse)
			cellsByEntry[a.QuoteEntryID] = cells
		}
		cells[day] = *toQuoteAssignmentResponse(a)
	}

	board := &dto.QuoteBoardResponse{
		View:    mode,
		Days:    days,
		Entries: make([]dto.QuoteBoardEntry, 0, len(entries)),
	}
	for _, q := range entries {
		cells := cellsByEntry[q.ID]
		if cells == nil {
			cells = map[string]dto.QuoteAssignmentResponse{}
		}
		board.Entries = append(board.Entries, dto.QuoteBoardEntry{
			Entry: *toQuoteEntryResponse(q),
			Cells: cells,
		})
	}
	return board, nil
}

func daySet(days []calendar.Date) map[string]bool {
	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d.String()] = true
	}
	return set
}
