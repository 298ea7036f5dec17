package kv

import (
	"context"

	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
)

type attendanceRepository struct {
	store kvstore.Store
}

func NewAttendanceRepository(store kvstore.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Ledger(ctx context.Context) (attendance.Ledger, error) {
	ledger := attendance.Ledger{}
	if _, err := kvstore.GetJSON(ctx, r.store, KeyAttendance, &ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *attendanceRepository) Save(ctx context.Context, ledger attendance.Ledger) error {
	return kvstore.SetJSON(ctx, r.store, KeyAttendance, ledger)
}
