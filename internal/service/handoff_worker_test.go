package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/internal/repository"
	"github.com/ngoconnect/ngo-connect-api/pkg/jobs"
)

type applicationStoreStub struct {
	created  []models.VolunteerApplication
	reserved []bool
	err      error
}

func (s *applicationStoreStub) Create(_ context.Context, app *models.VolunteerApplication, reserveSeat bool) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *app)
	s.reserved = append(s.reserved, reserveSeat)
	return nil
}

type contactStoreStub struct {
	created []models.ContactMessage
	err     error
}

func (s *contactStoreStub) Create(_ context.Context, msg *models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *msg)
	return nil
}

type invalidatorStub struct{ calls int }

func (i *invalidatorStub) Invalidate(context.Context) { i.calls++ }

func applicationJob(id string) jobs.Job {
	return jobs.Job{
		ID:   id,
		Type: JobTypeVolunteerApplication,
		Payload: ApplicationHandoff{
			Opportunity: models.Opportunity{ID: "1", Title: "Beach Cleanup Drive"},
			Application: models.VolunteerApplication{ID: id, OpportunityID: "1"},
		},
	}
}

func TestHandoffWorkerRecordsApplication(t *testing.T) {
	apps := &applicationStoreStub{}
	listings := &invalidatorStub{}
	w := NewHandoffWorker(apps, &contactStoreStub{}, listings, true, NewMetricsService(), nil)

	require.NoError(t, w.HandleApplication(context.Background(), applicationJob("a1")))
	require.Len(t, apps.created, 1)
	assert.Equal(t, "a1", apps.created[0].ID)
	assert.Equal(t, []bool{true}, apps.reserved)
	assert.Equal(t, 1, listings.calls)
}

func TestHandoffWorkerSkipsInvalidationWithoutReservation(t *testing.T) {
	apps := &applicationStoreStub{}
	listings := &invalidatorStub{}
	w := NewHandoffWorker(apps, &contactStoreStub{}, listings, false, nil, nil)

	require.NoError(t, w.HandleApplication(context.Background(), applicationJob("a1")))
	assert.Equal(t, []bool{false}, apps.reserved)
	assert.Zero(t, listings.calls)
}

func TestHandoffWorkerPermanentRejections(t *testing.T) {
	for _, sentinel := range []error{repository.ErrDuplicateApplication, repository.ErrOpportunityFull} {
		w := NewHandoffWorker(&applicationStoreStub{err: sentinel}, nil, nil, true, nil, nil)
		err := w.HandleApplication(context.Background(), applicationJob("a1"))
		assert.True(t, jobs.IsPermanent(err), sentinel.Error())
		assert.True(t, errors.Is(err, sentinel))
	}

	w := NewHandoffWorker(&applicationStoreStub{err: errors.New("timeout")}, nil, nil, true, nil, nil)
	err := w.HandleApplication(context.Background(), applicationJob("a1"))
	require.Error(t, err)
	assert.False(t, jobs.IsPermanent(err))

	err = w.HandleApplication(context.Background(), jobs.Job{Type: JobTypeVolunteerApplication, Payload: "junk"})
	assert.True(t, jobs.IsPermanent(err))
}

func TestHandoffWorkerContactMessages(t *testing.T) {
	contacts := &contactStoreStub{}
	w := NewHandoffWorker(&applicationStoreStub{}, contacts, nil, false, nil, nil)
	mux := jobs.NewMux()
	w.Register(mux)

	msg := models.ContactMessage{ID: "m1", Name: "Ravi", Subject: "Partnering"}
	require.NoError(t, mux.Dispatch(context.Background(), jobs.Job{Type: JobTypeContactMessage, Payload: msg}))
	require.Len(t, contacts.created, 1)
	assert.Equal(t, "Partnering", contacts.created[0].Subject)

	contacts.err = errors.New("insert failed")
	err := mux.Dispatch(context.Background(), jobs.Job{Type: JobTypeContactMessage, Payload: msg})
	require.Error(t, err)
	assert.False(t, jobs.IsPermanent(err))
}
