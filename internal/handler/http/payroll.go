package http

import (
	"net/http"
	"time"

	"github.com/glassdash/crm-backend-go/internal/domain/payroll"
	"github.com/glassdash/crm-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Derive(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Derive returns the payroll projection for ?period=YYYY-MM, defaulting
// to the current month.
func (h *payrollHandlerImpl) Derive(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}

	result, err := h.payrollService.Derive(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
