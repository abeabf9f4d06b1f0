package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/savir-sistemas/backoffice-api/internal/core/domain"
	"github.com/savir-sistemas/backoffice-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login == login {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, login, password string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Login == login && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubActorCache records invalidations; Get always misses.
type stubActorCache struct {
	invalidated []string
}

func (c *stubActorCache) Get(_ context.Context, _ string) (*domain.User, error) { return nil, nil }

func (c *stubActorCache) Set(_ context.Context, _ *domain.User) error { return nil }
func (c *stubActorCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var anonymous = domain.Actor{}

func adminActor(id string) domain.Actor {
	return domain.Actor{ID: id, Profile: domain.ProfileAdministrator}
}

func standardActor(id string) domain.Actor {
	return domain.Actor{ID: id, Profile: domain.ProfileStandardUser}
}

func newUserService(repo *stubUserRepo) (*UserService, *stubActorCache) {
	cache := &stubActorCache{}
	return NewUserService(repo, cache, discardLogger), cache
}

func seedUser(t *testing.T, repo *stubUserRepo, login, profile string) *domain.User {
	t.Helper()
	u, err := repo.Insert(context.Background(), &domain.User{
		Name:     login,
		Email:    login + "@example.com",
		Login:    login,
		Profile:  profile,
		Password: "123",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUserService_Register_ForcesStandardUser(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)

	created, err := svc.Create(context.Background(), anonymous, ports.CreateUserInput{
		Name:     "Eve",
		Email:    "eve@example.com",
		Login:    "eve",
		Password: "pw",
		Profile:  domain.ProfileAdministrator, // must be ignored
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Profile != domain.ProfileStandardUser {
		t.Fatalf("registration profile = %q, want StandardUser", created.Profile)
	}
	if created.ID == "" || created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("server-assigned fields missing: %+v", created)
	}
}

func TestUserService_Create_AdminSetsProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)

	created, err := svc.Create(context.Background(), adminActor(admin.ID), ports.CreateUserInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Login:    "ana",
		Password: "pw",
		Profile:  domain.ProfileAdministrator,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Profile != domain.ProfileAdministrator {
		t.Fatalf("profile = %q, want Administrator", created.Profile)
	}

	// Empty profile defaults to StandardUser.
	defaulted, err := svc.Create(context.Background(), adminActor(admin.ID), ports.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Login:    "bob",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if defaulted.Profile != domain.ProfileStandardUser {
		t.Fatalf("default profile = %q, want StandardUser", defaulted.Profile)
	}
}

func TestUserService_Create_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	_, err := svc.Create(context.Background(), standardActor(user.ID), ports.CreateUserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Login:    "mallory",
		Password: "pw",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)

	_, err := svc.Create(context.Background(), anonymous, ports.CreateUserInput{
		Email: "x@example.com", Login: "x", Password: "pw",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing name, got %v", err)
	}
}

func TestUserService_Create_DuplicateLoginAndEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	seedUser(t, repo, "joao", domain.ProfileStandardUser)

	_, err := svc.Create(context.Background(), anonymous, ports.CreateUserInput{
		Name: "Dup", Email: "dup@example.com", Login: "joao", Password: "pw",
	})
	if !errors.Is(err, domain.ErrLoginTaken) {
		t.Fatalf("expected ErrLoginTaken, got %v", err)
	}

	_, err = svc.Create(context.Background(), anonymous, ports.CreateUserInput{
		Name: "Dup", Email: "joao@example.com", Login: "dup", Password: "pw",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("store mutated on conflict: %d users", len(repo.users))
	}
}

func TestUserService_Create_ThenGetRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)

	created, err := svc.Create(context.Background(), anonymous, ports.CreateUserInput{
		Name: "Carla", Email: "carla@example.com", Login: "carla", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != created.Name || got.Email != created.Email || got.Login != created.Login || got.Profile != created.Profile {
		t.Fatalf("roundtrip mismatch: created %+v, got %+v", created, got)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestUserService_Update_SelfCannotChangeProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	updated, err := svc.Update(context.Background(), standardActor(user.ID), user.ID, ports.UpdateUserInput{
		Name:    strptr("João Atualizado"),
		Profile: strptr(domain.ProfileAdministrator),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "João Atualizado" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Profile != domain.ProfileStandardUser {
		t.Fatalf("self-edit escalated profile to %q", updated.Profile)
	}
}

func TestUserService_Update_AdminChangesProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	updated, err := svc.Update(context.Background(), adminActor(admin.ID), user.ID, ports.UpdateUserInput{
		Profile: strptr(domain.ProfileAdministrator),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Profile != domain.ProfileAdministrator {
		t.Fatalf("profile = %q, want Administrator", updated.Profile)
	}
}

func TestUserService_Update_OtherUserForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)
	other := seedUser(t, repo, "maria", domain.ProfileStandardUser)

	_, err := svc.Update(context.Background(), standardActor(other.ID), user.ID, ports.UpdateUserInput{
		Name: strptr("X"),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Update_EmptyPatchIsNoop(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	updated, err := svc.Update(context.Background(), standardActor(user.ID), user.ID, ports.UpdateUserInput{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != user.Name || updated.Email != user.Email || updated.Login != user.Login || updated.Profile != user.Profile {
		t.Fatalf("empty patch changed fields: %+v", updated)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)

	_, err := svc.Update(context.Background(), adminActor(admin.ID), "missing", ports.UpdateUserInput{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_DuplicateLoginConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	_, err := svc.Update(context.Background(), adminActor(admin.ID), user.ID, ports.UpdateUserInput{
		Login: strptr("admin"),
	})
	if !errors.Is(err, domain.ErrLoginTaken) {
		t.Fatalf("expected ErrLoginTaken, got %v", err)
	}
}

func TestUserService_Update_InvalidatesActorCache(t *testing.T) {
	repo := newStubUserRepo()
	svc, cache := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	if _, err := svc.Update(context.Background(), standardActor(user.ID), user.ID, ports.UpdateUserInput{
		Name: strptr("João"),
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != user.ID {
		t.Fatalf("cache not invalidated: %v", cache.invalidated)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestUserService_Delete_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)
	victim := seedUser(t, repo, "maria", domain.ProfileStandardUser)

	_, err := svc.Delete(context.Background(), standardActor(user.ID), victim.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete_ThenGetNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)
	user := seedUser(t, repo, "joao", domain.ProfileStandardUser)

	deleted, err := svc.Delete(context.Background(), adminActor(admin.ID), user.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != user.ID {
		t.Fatalf("deleted wrong record: %q", deleted.ID)
	}

	if _, err := svc.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserService_Delete_AdminSelfAllowed(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newUserService(repo)
	admin := seedUser(t, repo, "admin", domain.ProfileAdministrator)

	// Not guarded in the source system; preserved here.
	if _, err := svc.Delete(context.Background(), adminActor(admin.ID), admin.ID); err != nil {
		t.Fatalf("admin self-delete failed: %v", err)
	}
}
