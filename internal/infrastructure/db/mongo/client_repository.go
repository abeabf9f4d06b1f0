package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
)

const collectionClients = "clients"

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

type clientDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Address   string             `bson:"address,omitempty"`
	CreatedBy string             `bson:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d clientDoc) toDomain() domain.Client {
	return domain.Client{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	defer cur.Close(ctx)

	var docs []clientDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}

	clients := make([]domain.Client, 0, len(docs))
	for _, d := range docs {
		clients = append(clients, d.toDomain())
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d clientDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	c := d.toDomain()
	return &c, nil
}

func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clientDoc{
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		CreatedBy: client.CreatedBy,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	created := *client
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// Update replaces the mutable fields only; created_by and created_at are
// never part of the $set.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	oid, err := primitive.ObjectIDFromHex(client.ID)
	if err != nil {
		return domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":       client.Name,
		"email":      client.Email,
		"phone":      client.Phone,
		"address":    client.Address,
		"updated_at": client.UpdatedAt,
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup index on created_by.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_by", Value: 1}},
	})
	return err
}
