package ngoclient

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists the required fields left empty. No request is sent when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill in all fields: " + strings.Join(e.Fields, ", ")
}

type reportSubmitter interface {
	SubmitFundReport(ctx context.Context, creds Credentials, ngoID string, in FundReportInput) (*FundReport, error)
}

var formValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}()

// ReportForm holds the four report fields and submits them for one NGO.
type ReportForm struct {
	client    reportSubmitter
	creds     Credentials
	ngoID     string
	onCreated func(*FundReport)

	mu     sync.Mutex
	fields FundReportInput
}

// NewReportForm builds an empty form. onCreated runs once per successful submission.
func NewReportForm(client reportSubmitter, creds Credentials, ngoID string, onCreated func(*FundReport)) *ReportForm {
	return &ReportForm{client: client, creds: creds, ngoID: ngoID, onCreated: onCreated}
}

// Set replaces the field values.
func (f *ReportForm) Set(in FundReportInput) {
	f.mu.Lock()
	f.fields = in
	f.mu.Unlock()
}

// Fields returns the current field values.
func (f *ReportForm) Fields() FundReportInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit sends the form. Empty fields block the submission locally. On success the fields
// are cleared and onCreated is called; on failure the fields are kept so the user can retry.
func (f *ReportForm) Submit(ctx context.Context) (*FundReport, error) {
	in := f.Fields()
	trimmed := FundReportInput{
		ReportDate:         strings.TrimSpace(in.ReportDate),
		TotalFundsReceived: strings.TrimSpace(in.TotalFundsReceived),
		TotalFundsSpent:    strings.TrimSpace(in.TotalFundsSpent),
		Breakdown:          strings.TrimSpace(in.Breakdown),
	}
	if err := formValidator.Struct(trimmed); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			return nil, &ValidationError{Fields: missing}
		}
		return nil, fmt.Errorf("validate report: %w", err)
	}

	report, err := f.client.SubmitFundReport(ctx, f.creds, f.ngoID, trimmed)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.fields = FundReportInput{}
	f.mu.Unlock()
	if f.onCreated != nil {
		f.onCreated(report)
	}
	return report, nil
}
