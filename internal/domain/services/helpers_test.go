package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
	"github.com/NotMomex/my-store-crm/internal/infrastructure/sheetstore"
)

var fixedNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// newTestStore returns a store whose sheets all carry their header row
func newTestStore() (*sheetstore.Store, *sheetstore.MemoryClient) {
	client := sheetstore.NewMemoryClient()
	for _, c := range SheetCollections() {
		client.Seed(c.Name, c.Headers)
	}
	return sheetstore.NewStore(client), client
}

func newTestAuthService(store *sheetstore.Store) *AuthService {
	jwtService := NewJWTService(&config.Config{JWTSecretKey: "test-secret", JWTExpiryHours: 12})
	return &AuthService{
		Store: store,
		JWT:   jwtService,
		cost:  bcrypt.MinCost,
		now:   fixedClock,
	}
}

func strPtr(s string) *string { return &s }
