package lead

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/glassdash/crm-backend-go/internal/domain/lead"
	"github.com/glassdash/crm-backend-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeadServiceImpl struct {
	leadRepo lead.Repository
}

func NewLeadService(leadRepo lead.Repository) lead.Service {
	return &LeadServiceImpl{leadRepo: leadRepo}
}

func (s *LeadServiceImpl) List(ctx context.Context) ([]lead.Lead, error) {
	return s.leadRepo.List(ctx)
}

func (s *LeadServiceImpl) Create(ctx context.Context, req lead.CreateLeadRequest) (lead.Lead, error) {
	if err := req.Validate(); err != nil {
		return lead.Lead{}, err
	}

	status := lead.Status(req.Status)
	if req.Status == "" {
		status = lead.StatusNew
	}

	newLead := lead.Lead{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Value:  req.Value,
		Status: status,
	}

	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return lead.Lead{}, err
	}
	if err := s.leadRepo.Save(ctx, append(leads, newLead)); err != nil {
		return lead.Lead{}, err
	}
	return newLead, nil
}

func (s *LeadServiceImpl) UpdateStatus(ctx context.Context, id string, req lead.UpdateLeadStatusRequest) (lead.Lead, error) {
	if err := req.Validate(); err != nil {
		return lead.Lead{}, err
	}

	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return lead.Lead{}, err
	}

	for i, l := range leads {
		if l.ID != id {
			continue
		}
		l.Status = lead.Status(req.Status)
		leads[i] = l
		if err := s.leadRepo.Save(ctx, leads); err != nil {
			return lead.Lead{}, err
		}
		return l, nil
	}
	return lead.Lead{}, lead.ErrLeadNotFound
}

func (s *LeadServiceImpl) Delete(ctx context.Context, id string) error {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := leads[:0]
	found := false
	for _, l := range leads {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return lead.ErrLeadNotFound
	}
	return s.leadRepo.Save(ctx, kept)
}

func mapRow(row spreadsheet.Row) lead.Lead {
	name := row.Get("Name", "name")
	if name == "" {
		name = "Unknown Lead"
	}

	value, err := decimal.NewFromString(strings.TrimSpace(row.Get("Value", "value")))
	if err != nil {
		value = decimal.Zero
	}

	// Status must name a pipeline column exactly, otherwise the lead
	// enters at the top of the board.
	status := lead.StatusNew
	if raw := row.Get("Status"); lead.IsValidStage(raw) {
		status = lead.Status(raw)
	}

	return lead.Lead{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  row.Get("Email", "email"),
		Value:  value,
		Status: status,
	}
}

func (s *LeadServiceImpl) Import(ctx context.Context, r io.Reader) (spreadsheet.ImportResult, error) {
	rows, err := spreadsheet.Parse(r)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}

	added := make([]lead.Lead, 0, len(rows))
	for _, row := range rows {
		added = append(added, mapRow(row))
	}

	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return spreadsheet.ImportResult{}, err
	}
	if err := s.leadRepo.Save(ctx, append(leads, added...)); err != nil {
		return spreadsheet.ImportResult{}, err
	}

	return spreadsheet.ImportResult{
		Accepted: len(added),
		Rejected: len(rows) - len(added),
		Message:  fmt.Sprintf("Imported %d leads", len(added)),
	}, nil
}
