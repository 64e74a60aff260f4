package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ngoconnect/ngo-connect-api/internal/dto"
	"github.com/ngoconnect/ngo-connect-api/internal/models"
	appErrors "github.com/ngoconnect/ngo-connect-api/pkg/errors"
)

const opportunityCacheKey = "opportunities:all"

// OpportunityStore supplies the full candidate list.
type OpportunityStore interface {
	Load(ctx context.Context) ([]models.Opportunity, error)
}

// OpportunityService loads opportunities and serves filtered views of them.
type OpportunityService struct {
	store    OpportunityStore
	filter   *OpportunityFilter
	cache    *CacheService
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewOpportunityService constructs the service. cache and metrics may be nil.
func NewOpportunityService(store OpportunityStore, filter *OpportunityFilter, cache *CacheService, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *OpportunityService {
	if filter == nil {
		filter = NewOpportunityFilter(false)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpportunityService{store: store, filter: filter, cache: cache, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// Load returns the full opportunity list. A store failure is logged and reported through
// the second return value with an empty list; it is never surfaced as an error.
func (s *OpportunityService) Load(ctx context.Context) ([]models.Opportunity, bool) {
	var cached []models.Opportunity
	if hit, _ := s.cache.Get(ctx, opportunityCacheKey, &cached); hit {
		return cached, false
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load opportunities", zap.Error(err))
		s.metrics.RecordStoreFailure()
		return []models.Opportunity{}, true
	}
	if items == nil {
		items = []models.Opportunity{}
	}
	_ = s.cache.Set(ctx, opportunityCacheKey, items, s.cacheTTL)
	return items, false
}

// List applies filter to the loaded opportunities.
func (s *OpportunityService) List(ctx context.Context, filter dto.OpportunityFilter) dto.OpportunityListing {
	all, failed := s.Load(ctx)
	visible := s.filter.Apply(all, filter)
	s.metrics.ObserveListing(len(visible))
	if !failed {
		s.logger.Debug("opportunity listing",
			zap.Strings("stages", s.filter.ActiveStages(filter)),
			zap.Int("total", len(all)),
			zap.Int("matched", len(visible)))
	}
	return newListing(all, visible, filter, failed)
}

// Available lists the opportunities that still accept volunteers.
func (s *OpportunityService) Available(ctx context.Context) dto.OpportunityListing {
	all, failed := s.Load(ctx)
	open := make([]models.Opportunity, 0, len(all))
	for _, o := range all {
		if o.CanApply() {
			open = append(open, o)
		}
	}
	return newListing(all, open, dto.OpportunityFilter{}, failed)
}

// Find returns the opportunity with id.
func (s *OpportunityService) Find(ctx context.Context, id string) (*models.Opportunity, error) {
	all, failed := s.Load(ctx)
	if failed {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "opportunities are unavailable right now")
	}
	for i := range all {
		if all[i].ID == id {
			found := all[i]
			return &found, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "opportunity not found")
}

// Get returns the card view of the opportunity with id.
func (s *OpportunityService) Get(ctx context.Context, id string) (*dto.OpportunityView, error) {
	o, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	view := dto.NewOpportunityView(*o)
	return &view, nil
}

// FilterOptions lists the distinct selector values across all opportunities, sorted.
func (s *OpportunityService) FilterOptions(ctx context.Context) dto.FilterOptions {
	all, _ := s.Load(ctx)
	causes := map[string]struct{}{}
	locations := map[string]struct{}{}
	times := map[string]struct{}{}
	workTypes := map[string]struct{}{}
	urgencies := map[string]struct{}{}
	for _, o := range all {
		addOption(causes, o.Cause)
		addOption(locations, o.Location)
		addOption(times, o.TimeCommitment)
		addOption(workTypes, o.WorkType)
		addOption(urgencies, string(o.Urgency))
	}
	return dto.FilterOptions{
		Causes:          sortedOptions(causes),
		Locations:       sortedOptions(locations),
		TimeCommitments: sortedOptions(times),
		WorkTypes:       sortedOptions(workTypes),
		Urgencies:       sortedOptions(urgencies),
	}
}

// Invalidate drops the cached list so the next load reads the store.
func (s *OpportunityService) Invalidate(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, opportunityCacheKey)
}

func newListing(all, visible []models.Opportunity, filter dto.OpportunityFilter, failed bool) dto.OpportunityListing {
	views := make([]dto.OpportunityView, len(visible))
	for i, o := range visible {
		views[i] = dto.NewOpportunityView(o)
	}
	return dto.OpportunityListing{
		Items:      views,
		Total:      len(all),
		Matched:    len(visible),
		Filter:     filter,
		LoadFailed: failed,
	}
}

func addOption(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sortedOptions(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
