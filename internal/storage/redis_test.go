package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func startMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr
}

func TestRedisStoreContract(t *testing.T) {
	mr := startMiniredis(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })

	runStoreContract(t, store)
}

func TestRedisKeysLayout(t *testing.T) {
	mr := startMiniredis(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer store.Close()

	runID, err := store.SaveScore(context.Background(), "devil", 250, 3)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	members, err := mr.ZMembers("platformer:board:devil")
	if err != nil {
		t.Fatalf("board missing: %v", err)
	}
	if len(members) != 1 || members[0] != runID {
		t.Errorf("board members = %v, expected [%s]", members, runID)
	}
	if got := mr.HGet("platformer:run:"+runID, "level"); got != "3" {
		t.Errorf("run level = %q, expected 3", got)
	}
}

func TestOpenSelectsRedisForURLs(t *testing.T) {
	mr := startMiniredis(t)

	store, err := Open(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*RedisStore); !ok {
		t.Errorf("Open() returned %T, expected *RedisStore", store)
	}
}

func TestOpenRedisUnreachable(t *testing.T) {
	mr := startMiniredis(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := OpenRedis(context.Background(), "redis://"+addr); err == nil {
		t.Error("OpenRedis() should fail when the server is down")
	}
}
