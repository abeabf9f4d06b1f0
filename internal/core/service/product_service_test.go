package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

type stubProductRepo struct {
	seq      int
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.seq++
	created := cloneProduct(product)
	created.ID = fmt.Sprintf("p%d", r.seq)
	r.products[created.ID] = cloneProduct(created)
	return created, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	stored, ok := r.products[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	clone := cloneProduct(product)
	clone.CreatedBy = stored.CreatedBy
	clone.CreatedAt = stored.CreatedAt
	r.products[product.ID] = clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func floatptr(f float64) *float64 { return &f }

func intptr(n int) *int { return &n }

func TestProductService_Create_SetsOwnership(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, err := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{
		Name: "Teclado", Price: 199.90, Stock: 12,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.CreatedBy != "u1" {
		t.Fatalf("createdBy = %q, want u1", created.CreatedBy)
	}
}

func TestProductService_Create_RejectsNegativeValues(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	cases := []struct {
		name  string
		input ports.CreateProductInput
	}{
		{"negative price", ports.CreateProductInput{Name: "X", Price: -1}},
		{"negative stock", ports.CreateProductInput{Name: "X", Stock: -5}},
		{"empty name", ports.CreateProductInput{Price: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), standardActor("u1"), tc.input); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestProductService_Create_ZeroPriceAndStockAllowed(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	created, err := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{Name: "Amostra"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Price != 0 || created.Stock != 0 {
		t.Fatalf("zero values altered: %+v", created)
	}
}

func TestProductService_Update_PartialPatch(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{
		Name: "Teclado", Description: "ABNT2", Price: 199.90, Stock: 12,
	})

	updated, err := svc.Update(context.Background(), standardActor("u1"), created.ID, ports.UpdateProductInput{
		Stock: intptr(7),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Stock != 7 {
		t.Fatalf("stock = %d, want 7", updated.Stock)
	}
	if updated.Name != "Teclado" || updated.Price != 199.90 || updated.Description != "ABNT2" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestProductService_Update_RejectsNegativePatch(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{Name: "X", Price: 10})

	if _, err := svc.Update(context.Background(), standardActor("u1"), created.ID, ports.UpdateProductInput{
		Price: floatptr(-0.01),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative price, got %v", err)
	}
	if _, err := svc.Update(context.Background(), standardActor("u1"), created.ID, ports.UpdateProductInput{
		Stock: intptr(-1),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative stock, got %v", err)
	}
}

func TestProductService_Update_OwnershipEnforced(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{Name: "X"})

	if _, err := svc.Update(context.Background(), standardActor("u2"), created.ID, ports.UpdateProductInput{
		Name: strptr("Y"),
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), adminActor("a1"), created.ID, ports.UpdateProductInput{
		Name: strptr("Y"),
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.CreatedBy != "u1" {
		t.Fatalf("createdBy changed to %q", updated.CreatedBy)
	}
}

func TestProductService_Delete_ReturnsRemovedRecord(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), standardActor("u1"), ports.CreateProductInput{Name: "X"})

	deleted, err := svc.Delete(context.Background(), standardActor("u1"), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.Name != "X" {
		t.Fatalf("deleted record = %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductService_Delete_NotFoundBeforeForbidden(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	if _, err := svc.Delete(context.Background(), standardActor("u2"), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
