package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

var errBoom = errors.New("boom")

// fakeClock hands out strictly increasing timestamps.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) next() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fakeUsers struct {
	mu     sync.Mutex
	clock  fakeClock
	nextID int64
	byID   map[int64]*models.User

	getErr    error
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int64]*models.User{}, clock: fakeClock{t: time.Unix(1_700_000_000, 0)}}
}

func (f *fakeUsers) Create(_ context.Context, email, hash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return nil, apperr.ErrConflict
		}
	}
	f.nextID++
	u := &models.User{ID: f.nextID, Email: email, PasswordHash: &hash, CreatedAt: f.clock.next()}
	f.byID[u.ID] = u
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) delete(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

type fakeFeedback struct {
	mu     sync.Mutex
	clock  fakeClock
	nextID int64
	rows   map[int64]*models.Feedback

	err       error
	lastLimit int
}

func newFakeFeedback() *fakeFeedback {
	return &fakeFeedback{rows: map[int64]*models.Feedback{}, clock: fakeClock{t: time.Unix(1_700_000_000, 0)}}
}

func (f *fakeFeedback) Create(_ context.Context, userID int64, content string) (*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	row := &models.Feedback{ID: f.nextID, UserID: userID, Content: content, CreatedAt: f.clock.next()}
	f.rows[row.ID] = row
	cp := *row
	return &cp, nil
}

func (f *fakeFeedback) ListByOwner(_ context.Context, userID int64, skip, limit int) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit

	out := []models.Feedback{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if skip >= len(out) {
		return []models.Feedback{}, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeFeedback) GetByOwner(_ context.Context, id, userID int64) (*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeFeedback) UpdateByOwner(_ context.Context, id, userID int64, content *string) (*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, apperr.ErrNotFound
	}
	if content != nil {
		r.Content = *content
	}
	now := f.clock.next()
	r.UpdatedAt = &now
	cp := *r
	return &cp, nil
}

func (f *fakeFeedback) DeleteByOwner(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return apperr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}
