package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/mmynk/splitlite/internal/models"
)

// Ensure CachedStore implements Store
var _ Store = (*CachedStore)(nil)

// CachedStore serves group snapshots from memory for a short TTL.
// Any write through the store drops the affected group's entry, so readers
// of this process never see their own writes late. A read that overlaps a
// write is returned to its caller but not cached.
type CachedStore struct {
	Store

	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
	gens    map[string]uint64 // bumped by Invalidate
	epoch   uint64            // bumped by InvalidateAll
}

type cacheEntry struct {
	snap    *models.Snapshot
	expires time.Time
}

// NewCachedStore wraps store. A ttl <= 0 disables caching.
func NewCachedStore(store Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store:   store,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
		gens:    make(map[string]uint64),
	}
}

// LoadSnapshot returns the cached snapshot of a group or reads a fresh one.
func (c *CachedStore) LoadSnapshot(ctx context.Context, groupID string) (*models.Snapshot, error) {
	if c.ttl <= 0 {
		return c.Store.LoadSnapshot(ctx, groupID)
	}

	c.mu.Lock()
	entry, ok := c.entries[groupID]
	gen, epoch := c.gens[groupID], c.epoch
	c.mu.Unlock()
	if ok && c.now().Before(entry.expires) {
		return cloneSnapshot(entry.snap), nil
	}

	snap, err := c.Store.LoadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gens[groupID] == gen && c.epoch == epoch {
		c.entries[groupID] = cacheEntry{snap: snap, expires: c.now().Add(c.ttl)}
	}
	c.mu.Unlock()

	return cloneSnapshot(snap), nil
}

// LoadMembers reads through the snapshot cache.
func (c *CachedStore) LoadMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	snap, err := c.LoadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return snap.Members, nil
}

// LoadExpenses reads through the snapshot cache.
func (c *CachedStore) LoadExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	snap, err := c.LoadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return snap.Expenses, nil
}

// LoadSplits reads through the snapshot cache.
func (c *CachedStore) LoadSplits(ctx context.Context, groupID string) ([]models.Split, error) {
	snap, err := c.LoadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return snap.Splits, nil
}

// AddMember writes through and invalidates the member's group.
func (c *CachedStore) AddMember(ctx context.Context, member *models.Member) error {
	defer c.Invalidate(member.GroupID)
	return c.Store.AddMember(ctx, member)
}

// RemoveMember writes through and invalidates every group.
func (c *CachedStore) RemoveMember(ctx context.Context, memberID string) error {
	defer c.InvalidateAll()
	return c.Store.RemoveMember(ctx, memberID)
}

// CreateExpenseWithSplits writes through and invalidates the expense's group.
func (c *CachedStore) CreateExpenseWithSplits(ctx context.Context, expense *models.Expense, splits []models.Split) (string, error) {
	defer c.Invalidate(expense.GroupID)
	return c.Store.CreateExpenseWithSplits(ctx, expense, splits)
}

// DeleteExpenseCascade writes through and invalidates every group.
func (c *CachedStore) DeleteExpenseCascade(ctx context.Context, expenseID string) error {
	defer c.InvalidateAll()
	return c.Store.DeleteExpenseCascade(ctx, expenseID)
}

// Invalidate drops the cached snapshot of one group.
func (c *CachedStore) Invalidate(groupID string) {
	c.mu.Lock()
	delete(c.entries, groupID)
	c.gens[groupID]++
	c.mu.Unlock()
}

// InvalidateAll drops every cached snapshot.
func (c *CachedStore) InvalidateAll() {
	c.mu.Lock()
	clear(c.entries)
	clear(c.gens)
	c.epoch++
	c.mu.Unlock()
}

func cloneSnapshot(s *models.Snapshot) *models.Snapshot {
	return &models.Snapshot{
		GroupID:  s.GroupID,
		Members:  slices.Clone(s.Members),
		Expenses: slices.Clone(s.Expenses),
		Splits:   slices.Clone(s.Splits),
	}
}
