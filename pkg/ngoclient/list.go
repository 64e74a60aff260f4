package ngoclient

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EmptyReportsMessage is shown when an NGO has no reports to display.
const EmptyReportsMessage = "No reports submitted yet."

type reportLister interface {
	ListFundReports(ctx context.Context, ngoID string) ([]FundReport, error)
}

// ReportList keeps the last fetched reports of one NGO.
type ReportList struct {
	client reportLister
	ngoID  string
	logger *zap.Logger

	mu      sync.RWMutex
	reports []FundReport
}

// NewReportList builds an empty list.
func NewReportList(client reportLister, ngoID string, logger *zap.Logger) *ReportList {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportList{client: client, ngoID: ngoID, logger: logger, reports: []FundReport{}}
}

// Refresh refetches the reports. A failed fetch is logged and leaves the list empty.
func (l *ReportList) Refresh(ctx context.Context) {
	reports, err := l.client.ListFundReports(ctx, l.ngoID)
	if err != nil {
		l.logger.Warn("failed to load fund reports", zap.String("ngo_id", l.ngoID), zap.Error(err))
		reports = []FundReport{}
	}
	l.mu.Lock()
	l.reports = reports
	l.mu.Unlock()
}

// Reports returns a copy of the current reports.
func (l *ReportList) Reports() []FundReport {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]FundReport{}, l.reports...)
}

// EmptyState reports whether there is nothing to show, with the message to show instead.
func (l *ReportList) EmptyState() (bool, string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.reports) == 0 {
		return true, EmptyReportsMessage
	}
	return false, ""
}
