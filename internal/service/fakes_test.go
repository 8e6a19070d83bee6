package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errStoreDown = errors.New("connection refused")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type fakeUsers struct {
	mu        sync.Mutex
	byID      map[string]*model.User
	err       error
	updateErr error
}

func newFakeUsers(users ...*model.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*model.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	return nil
}

type fakePosts struct {
	mu           sync.Mutex
	bySlug       map[string]*model.BlogPost
	err          error
	incrementErr error
	increments   int
}

func newFakePosts() *fakePosts {
	return &fakePosts{bySlug: map[string]*model.BlogPost{}}
}

func (f *fakePosts) ListPublished(context.Context) ([]model.BlogPostSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []model.BlogPostSummary{}
	for _, p := range f.bySlug {
		if p.Published {
			out = append(out, p.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakePosts) GetBySlug(_ context.Context, slug string) (*model.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePosts) GetDetailBySlug(ctx context.Context, slug string) (*model.BlogPostDetail, error) {
	p, err := f.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &model.BlogPostDetail{BlogPost: *p, User: model.Author{ID: p.UserID, Name: "Author"}}, nil
}

func (f *fakePosts) Create(_ context.Context, p *model.BlogPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.bySlug[p.Slug]; ok {
		return repository.ErrDuplicate
	}
	cp := *p
	f.bySlug[p.Slug] = &cp
	return nil
}

func (f *fakePosts) Update(_ context.Context, slug string, patch model.BlogPostPatch) (*model.BlogPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.bySlug[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.ReadTime != nil {
		p.ReadTime = *patch.ReadTime
	}
	cp := *p
	return &cp, nil
}

func (f *fakePosts) Delete(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.bySlug[slug]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bySlug, slug)
	return nil
}

func (f *fakePosts) IncrementViews(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrementErr != nil {
		return f.incrementErr
	}
	p, ok := f.bySlug[slug]
	if !ok {
		return repository.ErrNotFound
	}
	p.Views++
	f.increments++
	return nil
}

type fakeProjects struct {
	mu      sync.Mutex
	created []*model.Project
	list    []model.Project
	err     error
}

func (f *fakeProjects) ListPublished(context.Context) ([]model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeProjects) Create(_ context.Context, p *model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, p)
	return nil
}

type fakeMessages struct {
	mu     sync.Mutex
	stored []model.Message
	err    error
	limit  int
}

func (f *fakeMessages) Create(_ context.Context, m *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, *m)
	return nil
}

func (f *fakeMessages) ListRecent(_ context.Context, limit int) ([]model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Message, 0, len(f.stored))
	for i := len(f.stored) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.stored[i])
	}
	return out, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	got  []model.Message
	fail error
}

func (n *recordingNotifier) MessageReceived(_ context.Context, m model.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, m)
	return n.fail
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
