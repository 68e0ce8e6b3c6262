package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

func testClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func testSession(role string) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          "sess_1",
		ContextID:   "ctx1",
		PrincipalID: role + "_1",
		Email:       role + "@x.com",
		Role:        role,
		DisplayName: "Test",
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
	if role == domain.RoleWorker {
		s.Designation = "plumber"
	}
	return s
}

func TestSessionStore_RoundTrip(t *testing.T) {
	client, _ := testClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	want := testSession(domain.RoleUser)
	if err := store.Put(ctx, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "ctx1", domain.PrincipalSlot)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Email != want.Email || got.Role != want.Role || got.ID != want.ID {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestSessionStore_Get_Empty(t *testing.T) {
	client, _ := testClient(t)
	store := NewSessionStore(client)

	got, err := store.Get(context.Background(), "ctx1", domain.AdminSlot)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestSessionStore_Get_CorruptedSelfHeals(t *testing.T) {
	client, mr := testClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	mr.Set("admin_session:ctx1", "{not json")

	_, err := store.Get(ctx, "ctx1", domain.AdminSlot)
	if err == nil {
		t.Fatalf("expected corruption error")
	}
	if !mrKeyAbsent(mr, "admin_session:ctx1") {
		t.Fatalf("corrupted key should have been deleted")
	}

	// A second read sees a clean, empty slot.
	got, err := store.Get(ctx, "ctx1", domain.AdminSlot)
	if err != nil || got != nil {
		t.Fatalf("expected empty slot after self-heal, got %+v err %v", got, err)
	}
}

func TestSessionStore_Put_SetsTTL(t *testing.T) {
	client, mr := testClient(t)
	store := NewSessionStore(client)

	session := testSession(domain.RoleWorker)
	if err := store.Put(context.Background(), session); err != nil {
		t.Fatalf("put: %v", err)
	}

	ttl := mr.TTL("user_session:ctx1")
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected ttl %v", ttl)
	}
}

func TestSessionStore_Put_Expired(t *testing.T) {
	client, _ := testClient(t)
	store := NewSessionStore(client)

	session := testSession(domain.RoleUser)
	session.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if err := store.Put(context.Background(), session); err == nil {
		t.Fatalf("expected error for already-expired session")
	}
}

func TestSessionStore_Clear_RemovesBothSlots(t *testing.T) {
	client, mr := testClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	admin := testSession(domain.RoleAdmin)
	user := testSession(domain.RoleUser)
	if err := store.Put(ctx, admin); err != nil {
		t.Fatalf("put admin: %v", err)
	}
	if err := store.Put(ctx, user); err != nil {
		t.Fatalf("put user: %v", err)
	}

	if err := store.Clear(ctx, "ctx1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !mrKeyAbsent(mr, "admin_session:ctx1") || !mrKeyAbsent(mr, "user_session:ctx1") {
		t.Fatalf("both slots should be gone")
	}

	// Idempotent.
	if err := store.Clear(ctx, "ctx1"); err != nil {
		t.Fatalf("repeated clear: %v", err)
	}
}

func TestSessionStore_SharedSlotOverwrite(t *testing.T) {
	client, _ := testClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	user := testSession(domain.RoleUser)
	worker := testSession(domain.RoleWorker)
	worker.ID = "sess_2"

	if err := store.Put(ctx, user); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := store.Put(ctx, worker); err != nil {
		t.Fatalf("put worker: %v", err)
	}

	got, err := store.Get(ctx, "ctx1", domain.PrincipalSlot)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Role != domain.RoleWorker || got.ID != "sess_2" {
		t.Fatalf("expected worker session to overwrite user session, got %+v", got)
	}
}

func mrKeyAbsent(mr *miniredis.Miniredis, key string) bool {
	return !mr.Exists(key)
}
