package tui

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/listing"
)

// memRepo serves a fixed collection; create is optional
type memRepo[T domain.ListItem, D any] struct {
	mu      sync.Mutex
	items   []T
	listErr error
	create  func(D) (T, error)
	createN atomic.Int32
}

func (r *memRepo[T, D]) List(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]T(nil), r.items...), nil
}

func (r *memRepo[T, D]) Get(ctx context.Context, id domain.ID) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

func (r *memRepo[T, D]) Create(ctx context.Context, draft D) (T, error) {
	r.createN.Add(1)
	return r.create(draft)
}

func (r *memRepo[T, D]) setListErr(err error) {
	r.mu.Lock()
	r.listErr = err
	r.mu.Unlock()
}

func testJobs() *memRepo[*domain.Job, domain.JobDraft] {
	return &memRepo[*domain.Job, domain.JobDraft]{
		items: []*domain.Job{
			{ID: "1", Title: "Backend Engineer", Company: "Acme", Location: "Remote"},
			{ID: "2", Title: "Product Designer", Company: "Globex", Location: "Berlin"},
		},
		create: func(d domain.JobDraft) (*domain.Job, error) {
			return &domain.Job{ID: "3", Title: d.Title, Company: d.Company, Location: d.Location, Description: d.Description}, nil
		},
	}
}

func testSpecialists() *memRepo[*domain.Specialist, domain.SpecialistDraft] {
	return &memRepo[*domain.Specialist, domain.SpecialistDraft]{
		items: []*domain.Specialist{
			{ID: "7", FullName: "Ada Lovelace", Profession: "Developer"},
		},
	}
}

func newTestModel(t *testing.T, jobs domain.JobRepository, specialists domain.SpecialistRepository) *Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewModel(context.Background(), Repositories{Jobs: jobs, Specialists: specialists}, Options{Theme: "light"}, logger)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	mp := &m
	t.Cleanup(func() { mp.shutdown() })
	return mp
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update must return a Model")
	return nm, cmd
}

// settle waits for background requests and delivers the state signal
func settle(t *testing.T, m Model) Model {
	t.Helper()
	m.view.Wait()
	m, _ = update(t, m, stateChangedMsg{})
	return m
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	m.view.Load(context.Background())
	return settle(t, m)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_StartsIdleWithoutRequests(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())

	assert.Equal(t, TabJobs, m.Tab)
	assert.Equal(t, listing.PhaseIdle, m.state.Phase)
	assert.Equal(t, 0, m.List.Len())
}

func TestModel_LoadShowsItems(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())
	*m = load(t, *m)

	assert.Equal(t, listing.PhaseReady, m.state.Phase)
	assert.Equal(t, 2, m.List.Len())

	view := m.View()
	assert.Contains(t, view, "Backend Engineer")
	assert.Contains(t, view, "Product Designer")
	assert.Contains(t, view, "2/2")
}

func TestModel_LoadFailureOffersRetry(t *testing.T) {
	jobs := testJobs()
	jobs.setListErr(&domain.ServerError{Status: 500, Message: "database unavailable"})
	m := newTestModel(t, jobs, testSpecialists())
	*m = load(t, *m)

	assert.Equal(t, listing.PhaseFailed, m.state.Phase)
	view := m.View()
	assert.Contains(t, view, "database unavailable")
	assert.Contains(t, view, "r to retry")

	jobs.setListErr(nil)
	var cmd tea.Cmd
	*m, cmd = update(t, *m, runes("r"))
	require.NotNil(t, cmd)
	cmd()
	*m = settle(t, *m)

	assert.Equal(t, listing.PhaseReady, m.state.Phase)
	assert.Equal(t, 2, m.List.Len())
}

func TestModel_FilterAsYouType(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())
	*m = load(t, *m)

	*m, _ = update(t, *m, runes("/"))
	require.True(t, m.Filtering)

	*m, _ = update(t, *m, runes("eng"))
	assert.Equal(t, 1, m.List.Len())
	assert.Equal(t, "eng", m.state.Query)
	assert.Contains(t, m.View(), "1/2")

	// enter keeps the filter, esc afterwards clears it
	*m, _ = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Filtering)
	assert.Equal(t, 1, m.List.Len())

	*m, _ = update(t, *m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 2, m.List.Len())
	assert.Empty(t, m.state.Query)
}

func TestModel_EmptyFilterSuggestsTitles(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())
	*m = load(t, *m)

	*m, _ = update(t, *m, runes("/"))
	*m, _ = update(t, *m, runes("enginer"))

	assert.Equal(t, 0, m.List.Len())
	view := m.View()
	assert.Contains(t, view, "Did you mean:")
	assert.Contains(t, view, "Backend Engineer")
}

func TestModel_CreateValidationErrorIsInline(t *testing.T) {
	jobs := testJobs()
	m := newTestModel(t, jobs, testSpecialists())
	*m = load(t, *m)

	*m, _ = update(t, *m, runes("n"))
	require.True(t, m.Form.IsVisible())

	var cmd tea.Cmd
	*m, cmd = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.Form.IsVisible())
	assert.False(t, m.Form.Submitting())
	assert.Contains(t, m.View(), "title is required")
	assert.Zero(t, jobs.createN.Load(), "invalid drafts never reach the network")
}

func TestModel_CreateSuccessClosesForm(t *testing.T) {
	jobs := testJobs()
	m := newTestModel(t, jobs, testSpecialists())
	*m = load(t, *m)

	*m, _ = update(t, *m, runes("n"))
	m.Form.SetValue("title", "Go Developer")
	m.Form.SetValue("company", "Initech")
	m.Form.SetValue("location", "Tashkent")
	m.Form.SetValue("description", "Build services")

	var cmd tea.Cmd
	*m, cmd = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Form.Submitting())

	done, ok := cmd().(CreateDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)

	*m, _ = update(t, *m, done)
	*m = settle(t, *m)

	assert.False(t, m.Form.IsVisible())
	assert.Equal(t, `Created "Go Developer"`, m.StatusMsg)
	assert.Equal(t, 3, m.List.Len())
	assert.EqualValues(t, 1, jobs.createN.Load())
}

func TestModel_CreateServerErrorKeepsForm(t *testing.T) {
	jobs := testJobs()
	jobs.create = func(domain.JobDraft) (*domain.Job, error) {
		return nil, &domain.ServerError{Status: 400, Message: "title already posted"}
	}
	m := newTestModel(t, jobs, testSpecialists())
	*m = load(t, *m)

	*m, _ = update(t, *m, runes("n"))
	for field, value := range map[string]string{
		"title": "Go Developer", "company": "Initech", "location": "Remote", "description": "Build services",
	} {
		m.Form.SetValue(field, value)
	}

	var cmd tea.Cmd
	*m, cmd = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	*m, _ = update(t, *m, cmd())
	*m = settle(t, *m)

	assert.True(t, m.Form.IsVisible())
	assert.Contains(t, m.View(), "title already posted")
	assert.Equal(t, 2, m.List.Len())
	assert.Equal(t, listing.PhaseReady, m.state.Phase)

	// Closing the form surfaces the transient error until dismissed
	*m, _ = update(t, *m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "x to dismiss")
	*m, _ = update(t, *m, runes("x"))
	assert.NotContains(t, m.View(), "x to dismiss")
}

func TestModel_SwitchTabRemounts(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())
	*m = load(t, *m)
	oldView := m.view

	var cmd tea.Cmd
	*m, cmd = update(t, *m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, TabSpecialists, m.Tab)
	assert.NotSame(t, oldView, m.view)
	assert.Equal(t, listing.PhaseIdle, m.state.Phase, "a fresh view starts empty")

	cmd()
	*m = settle(t, *m)
	assert.Equal(t, 1, m.List.Len())
	assert.Contains(t, m.View(), "Ada Lovelace")

	// Results addressed to the unmounted view are ignored
	*m, _ = update(t, *m, CreateDoneMsg{Tab: TabJobs, Title: "late", Err: nil})
	assert.Empty(t, m.StatusMsg)
}

func TestModel_DetailIgnoresStaleResponses(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())
	*m = load(t, *m)

	var cmd tea.Cmd
	*m, cmd = update(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.Detail.IsVisible())
	assert.Equal(t, domain.ID("1"), m.Detail.ItemID())

	stale := DetailLoadedMsg{Tab: TabJobs, ID: "2", Item: &domain.Job{ID: "2", Title: "Product Designer"}}
	*m, _ = update(t, *m, stale)
	assert.Equal(t, domain.ID("1"), m.Detail.ItemID())

	*m, _ = update(t, *m, cmd())
	assert.Contains(t, m.View(), "Backend Engineer")

	*m, _ = update(t, *m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Detail.IsVisible())
}

func TestModel_ThemeToggle(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())

	*m, _ = update(t, *m, runes("t"))
	assert.Equal(t, "dark", m.Theme)
	assert.Equal(t, "dark", m.Styles.Palette.Name)

	*m, _ = update(t, *m, runes("t"))
	assert.Equal(t, "light", m.Theme)
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())

	_, cmd := update(t, *m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_StatusClearsOnlyLatest(t *testing.T) {
	m := newTestModel(t, testJobs(), testSpecialists())

	*m, _ = update(t, *m, StatusMsg{Message: "first"})
	*m, _ = update(t, *m, StatusMsg{Message: "second"})
	*m, _ = update(t, *m, ClearStatusMsg{Seq: 1})
	assert.Equal(t, "second", m.StatusMsg)

	*m, _ = update(t, *m, ClearStatusMsg{Seq: 2})
	assert.Empty(t, m.StatusMsg)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, splitList(" Go, ,SQL ,"))
	assert.Nil(t, splitList("  "))
}
