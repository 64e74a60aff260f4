package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

const opportunityColumns = `id, title, ngo_name AS ngo, cause, location, time_commitment, work_type, description,
start_date, end_date, volunteers_needed, volunteers_applied, urgency, COALESCE(image_url, '') AS image`

// OpportunityRepository reads published opportunities from PostgreSQL.
type OpportunityRepository struct {
	db *sqlx.DB
}

// NewOpportunityRepository constructs the repository.
func NewOpportunityRepository(db *sqlx.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

// Load returns every active opportunity ordered by id, requirements included.
func (r *OpportunityRepository) Load(ctx context.Context) ([]models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE active = TRUE ORDER BY id`
	var items []models.Opportunity
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	if err := r.attachRequirements(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns an active opportunity. sql.ErrNoRows is wrapped when absent.
func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*models.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1 AND active = TRUE`
	var item models.Opportunity
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	items := []models.Opportunity{item}
	if err := r.attachRequirements(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

type requirementRow struct {
	OpportunityID string `db:"opportunity_id"`
	Requirement   string `db:"requirement"`
}

func (r *OpportunityRepository) attachRequirements(ctx context.Context, items []models.Opportunity) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	index := make(map[string]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].Requirements = []string{}
	}

	const query = `SELECT opportunity_id, requirement FROM opportunity_requirements
WHERE opportunity_id = ANY($1) ORDER BY opportunity_id, position`
	var rows []requirementRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("list opportunity requirements: %w", err)
	}
	for _, row := range rows {
		if i, ok := index[row.OpportunityID]; ok {
			items[i].Requirements = append(items[i].Requirements, row.Requirement)
		}
	}
	return nil
}
