package auth

import (
	"github.com/ensigotrace/ensigotrace-backend/pkg/enums"
	"github.com/ensigotrace/ensigotrace-backend/pkg/models"
)

// DefaultUsers is the demo account list. All accounts share the demo
// password; users are never created at runtime.
func DefaultUsers() []models.SeedUser {
	return []models.SeedUser{
		{
			User: models.User{
				ID:    "USR-001",
				Email: "admin@ensigotrace.org",
				Name:  "Amina Kintu",
				Role:  enums.RoleAdmin,
			},
			Password: "demo123",
		},
		{
			User: models.User{
				ID:     "USR-002",
				Email:  "collector@ensigotrace.org",
				Name:   "John Okello",
				Role:   enums.RoleCollector,
				Region: "West Nile - Arua",
			},
			Password: "demo123",
		},
		{
			User: models.User{
				ID:     "USR-003",
				Email:  "nursery@ensigotrace.org",
				Name:   "Sarah Namuli",
				Role:   enums.RoleNursery,
				Region: "West Nile - Arua",
			},
			Password: "demo123",
		},
		{
			User: models.User{
				ID:    "USR-004",
				Email: "partner@ensigotrace.org",
				Name:  "Green Earth Initiative",
				Role:  enums.RolePartner,
			},
			Password: "demo123",
		},
	}
}
