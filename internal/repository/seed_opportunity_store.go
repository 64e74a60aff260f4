package repository

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
)

// SeedOpportunityStore serves a fixed opportunity list held in memory.
type SeedOpportunityStore struct {
	items []models.Opportunity
}

// NewSeedOpportunityStore returns a store over items, or the built-in list when items is nil.
func NewSeedOpportunityStore(items []models.Opportunity) *SeedOpportunityStore {
	if items == nil {
		items = DefaultOpportunities()
	}
	return &SeedOpportunityStore{items: cloneOpportunities(items)}
}

type seedFile struct {
	Opportunities []models.Opportunity `yaml:"opportunities"`
}

// LoadSeedFile reads a YAML document with a top-level "opportunities" list.
func LoadSeedFile(path string) (*SeedOpportunityStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes a YAML seed document. Ids must be present and unique.
func ParseSeed(raw []byte) (*SeedOpportunityStore, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Opportunities))
	for i, item := range doc.Opportunities {
		if item.ID == "" {
			return nil, fmt.Errorf("seed opportunity %d: missing id", i)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("seed opportunity %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.Requirements == nil {
			doc.Opportunities[i].Requirements = []string{}
		}
	}
	if doc.Opportunities == nil {
		doc.Opportunities = []models.Opportunity{}
	}
	return &SeedOpportunityStore{items: doc.Opportunities}, nil
}

// Load returns a copy of the seed list.
func (s *SeedOpportunityStore) Load(ctx context.Context) ([]models.Opportunity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneOpportunities(s.items), nil
}

func cloneOpportunities(items []models.Opportunity) []models.Opportunity {
	out := make([]models.Opportunity, len(items))
	for i, item := range items {
		item.Requirements = append([]string{}, item.Requirements...)
		out[i] = item
	}
	return out
}

// DefaultOpportunities is the built-in seed list.
func DefaultOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{
			ID:                "1",
			Title:             "Beach Cleanup Drive",
			NGO:               "Green Earth Foundation",
			Cause:             models.CauseEnvironment,
			Location:          "Mumbai",
			TimeCommitment:    "4 hours",
			WorkType:          "Physical Work",
			Description:       "Join us in cleaning Juhu Beach and sorting the collected waste for recycling.",
			Requirements:      []string{"Comfortable outdoors", "Bring a water bottle", "Age 16+"},
			StartDate:         models.MustParseDate("2024-02-15"),
			EndDate:           models.MustParseDate("2024-02-15"),
			VolunteersNeeded:  20,
			VolunteersApplied: 15,
			Urgency:           models.UrgencyHigh,
			Image:             "https://images.unsplash.com/photo-1618477461853-cf6ed80faba5?w=400",
		},
		{
			ID:                "2",
			Title:             "Teaching Assistant",
			NGO:               "Education for All",
			Cause:             models.CauseEducation,
			Location:          "Delhi",
			TimeCommitment:    "2 hours/week",
			WorkType:          "Teaching",
			Description:       "Help children from underprivileged communities with reading and basic mathematics.",
			Requirements:      []string{"Graduate degree", "Patience with children", "Hindi or English"},
			StartDate:         models.MustParseDate("2024-02-01"),
			EndDate:           models.MustParseDate("2024-05-31"),
			VolunteersNeeded:  10,
			VolunteersApplied: 8,
			Urgency:           models.UrgencyMedium,
			Image:             "https://images.unsplash.com/photo-1497486751825-1233686d5d80?w=400",
		},
		{
			ID:                "3",
			Title:             "Medical Camp Support",
			NGO:               "Health First",
			Cause:             models.CauseHealthcare,
			Location:          "Bangalore",
			TimeCommitment:    "8 hours",
			WorkType:          "Support Work",
			Description:       "Assist doctors with registration and crowd management at a free medical camp.",
			Requirements:      []string{"Basic first aid", "Good communication skills"},
			StartDate:         models.MustParseDate("2024-02-20"),
			EndDate:           models.MustParseDate("2024-02-20"),
			VolunteersNeeded:  25,
			VolunteersApplied: 25,
			Urgency:           models.UrgencyHigh,
			Image:             "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=400",
		},
		{
			ID:                "4",
			Title:             "Women Skills Workshop",
			NGO:               "Empower Her",
			Cause:             models.CauseWomenEmpowerment,
			Location:          "Chennai",
			TimeCommitment:    "3 hours/week",
			WorkType:          "Facilitation",
			Description:       "Run tailoring and digital literacy sessions for women starting small businesses.",
			Requirements:      []string{"Tailoring or computer skills", "Tamil preferred"},
			StartDate:         models.MustParseDate("2024-03-01"),
			EndDate:           models.MustParseDate("2024-06-30"),
			VolunteersNeeded:  12,
			VolunteersApplied: 5,
			Urgency:           models.UrgencyLow,
			Image:             "https://images.unsplash.com/photo-1573164713988-8665fc963095?w=400",
		},
	}
}
