package partnerRepo

import (
	"context"

	"spordate/models"
)

// MemoryPartnerRepo serves the demo venue catalog in fallback mode.
type MemoryPartnerRepo struct {
	partners []models.Partner
}

// NewMemoryPartnerRepo returns a repository preloaded with the demo venues
// the app ships when no database is configured.
func NewMemoryPartnerRepo() *MemoryPartnerRepo {
	return &MemoryPartnerRepo{partners: demoPartners()}
}

func demoPartners() []models.Partner {
	return []models.Partner{
		{
			ID:         "prt-001",
			Name:       "Le Five Paris 13",
			Address:    "12 Rue du Chevaleret",
			City:       "Paris",
			Type:       models.PartnerSalle,
			Email:      "contact@lefive-paris13.fr",
			ReferralID: "FIVE13",
			Active:     true,
		},
		{
			ID:         "prt-002",
			Name:       "Studio Pilates Bastille",
			Address:    "4 Boulevard Richard Lenoir",
			City:       "Paris",
			Type:       models.PartnerStudio,
			Email:      "hello@pilates-bastille.fr",
			ReferralID: "PILBAS",
			Active:     true,
		},
		{
			ID:         "prt-003",
			Name:       "Club Escalade Lyon",
			Address:    "28 Quai Saint-Vincent",
			City:       "Lyon",
			Type:       models.PartnerClub,
			Email:      "club@escalade-lyon.fr",
			ReferralID: "ESCLYO",
			Active:     true,
		},
		{
			ID:         "prt-004",
			Name:       "Association Running Nantes",
			Address:    "7 Rue de Strasbourg",
			City:       "Nantes",
			Type:       models.PartnerAssociation,
			ReferralID: "RUNNAN",
			Active:     false,
		},
	}
}

func (r *MemoryPartnerRepo) GetByID(_ context.Context, id string) (*models.Partner, error) {
	for i := range r.partners {
		if r.partners[i].ID == id {
			partner := r.partners[i]
			return &partner, nil
		}
	}
	return nil, ErrPartnerNotFound
}

func (r *MemoryPartnerRepo) ListActive(_ context.Context) ([]models.Partner, error) {
	var active []models.Partner
	for _, p := range r.partners {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}
