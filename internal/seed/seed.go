// Package seed loads the canonical development fixtures: an administrator,
// a standard user, and a handful of clients and products owned by the
// administrator. It wipes the three collections first.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	mongodb "github.com/savir-sistemas/backoffice-api/internal/infrastructure/db/mongo"
)

// Run wipes users, clients, and products and inserts the fixture data.
// Destructive: intended for development databases only.
func Run(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	for _, name := range []string{"users", "clients", "products"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("wipe %s: %w", name, err)
		}
	}
	log.Info().Msg("collections wiped")

	users := mongodb.NewUserRepository(db)
	clients := mongodb.NewClientRepository(db)
	products := mongodb.NewProductRepository(db)

	now := time.Now().UTC()

	admin, err := users.Insert(ctx, &domain.User{
		Name:      "Administrador Principal",
		Email:     "admin@savir.com.br",
		Login:     "admin",
		Profile:   domain.ProfileAdministrator,
		Password:  "123",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if _, err := users.Insert(ctx, &domain.User{
		Name:      "João da Silva",
		Email:     "joao.silva@example.com",
		Login:     "joao",
		Profile:   domain.ProfileStandardUser,
		Password:  "123",
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	fixtureClients := []domain.Client{
		{Name: "Empresa Alfa", Email: "contato@alfa.com.br", Phone: "+55 11 98765-4321", Address: "Av. Paulista, 1000 - São Paulo"},
		{Name: "Comércio Beta", Email: "vendas@beta.com.br", Phone: "+55 21 91234-5678", Address: "Rua das Flores, 250 - Rio de Janeiro"},
	}
	for i := range fixtureClients {
		fixtureClients[i].CreatedBy = admin.ID
		fixtureClients[i].CreatedAt = now
		fixtureClients[i].UpdatedAt = now
		if _, err := clients.Insert(ctx, &fixtureClients[i]); err != nil {
			return fmt.Errorf("seed client %q: %w", fixtureClients[i].Name, err)
		}
	}

	fixtureProducts := []domain.Product{
		{Name: "Notebook Pro 15", Description: "Notebook 15 polegadas, 16GB RAM", Price: 4999.90, Stock: 12},
		{Name: "Mouse Sem Fio", Description: "Mouse óptico sem fio", Price: 89.90, Stock: 150},
		{Name: "Monitor 27\"", Description: "Monitor IPS 27 polegadas", Price: 1299.00, Stock: 35},
	}
	for i := range fixtureProducts {
		fixtureProducts[i].CreatedBy = admin.ID
		fixtureProducts[i].CreatedAt = now
		fixtureProducts[i].UpdatedAt = now
		if _, err := products.Insert(ctx, &fixtureProducts[i]); err != nil {
			return fmt.Errorf("seed product %q: %w", fixtureProducts[i].Name, err)
		}
	}

	log.Info().
		Str("admin_id", admin.ID).
		Int("clients", len(fixtureClients)).
		Int("products", len(fixtureProducts)).
		Msg("fixtures loaded")
	return nil
}
