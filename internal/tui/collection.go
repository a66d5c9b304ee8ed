package tui

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/jobboard/internal/domain"
	"github.com/mmcdole/jobboard/internal/listing"
	"github.com/mmcdole/jobboard/internal/tui/components"
)

// Tab identifies a listing view
type Tab int

const (
	TabJobs Tab = iota
	TabSpecialists
)

func (t Tab) String() string {
	if t == TabSpecialists {
		return "Specialists"
	}
	return "Jobs"
}

// Next returns the other tab
func (t Tab) Next() Tab {
	if t == TabJobs {
		return TabSpecialists
	}
	return TabJobs
}

// Repositories are the remote collections the views list
type Repositories struct {
	Jobs        domain.JobRepository
	Specialists domain.SpecialistRepository
}

// viewState is the listing snapshot with items widened to domain.ListItem
type viewState struct {
	All        []domain.ListItem
	Visible    []domain.ListItem
	Phase      listing.Phase
	ErrMsg     string
	Submitting bool
	CreateErr  string
	Query      string
}

// collectionView is one mounted listing controller, independent of its item type
type collectionView interface {
	Tab() Tab
	Load(ctx context.Context)
	State() viewState
	ApplyFilter(f listing.Filter)
	Create(ctx context.Context, values map[string]string) (tea.Cmd, error)
	Get(ctx context.Context, id domain.ID) (domain.ListItem, error)
	DismissError()
	Fields() []components.FieldSpec
	Close()
	Wait()
}

type resourceView[T domain.ListItem, D any] struct {
	tab         Tab
	ctrl        *listing.Controller[T, D]
	repo        domain.CollectionRepository[T, D]
	fields      []components.FieldSpec
	draft       func(values map[string]string) D
	unsubscribe func()
}

func mountView[T domain.ListItem, D any](
	tab Tab,
	repo domain.CollectionRepository[T, D],
	fields []components.FieldSpec,
	draft func(map[string]string) D,
	obs *ChannelObserver,
	logger *slog.Logger,
) *resourceView[T, D] {
	ctrl := listing.New(repo, logger.With("view", tab.String()))
	unsubscribe := ctrl.Subscribe(func(listing.State[T]) { obs.Notify() })
	return &resourceView[T, D]{
		tab:         tab,
		ctrl:        ctrl,
		repo:        repo,
		fields:      fields,
		draft:       draft,
		unsubscribe: unsubscribe,
	}
}

// mount creates the view for tab
func mount(tab Tab, repos Repositories, obs *ChannelObserver, logger *slog.Logger) collectionView {
	if tab == TabSpecialists {
		return mountView(tab, repos.Specialists, specialistFields, specialistDraft, obs, logger)
	}
	return mountView(tab, repos.Jobs, jobFields, jobDraft, obs, logger)
}

func (v *resourceView[T, D]) Tab() Tab { return v.tab }

func (v *resourceView[T, D]) Load(ctx context.Context) { v.ctrl.Load(ctx) }

func (v *resourceView[T, D]) State() viewState {
	s := v.ctrl.Snapshot()
	return viewState{
		All:        widen(s.All),
		Visible:    widen(s.Visible),
		Phase:      s.Phase,
		ErrMsg:     s.ErrorMessage(),
		Submitting: s.Submitting,
		CreateErr:  s.CreateErrorMessage(),
		Query:      s.Query,
	}
}

func (v *resourceView[T, D]) ApplyFilter(f listing.Filter) { v.ctrl.ApplyFilter(f) }

func (v *resourceView[T, D]) Create(ctx context.Context, values map[string]string) (tea.Cmd, error) {
	result, err := v.ctrl.Create(ctx, v.draft(values))
	if err != nil {
		return nil, err
	}
	return AwaitCreateCmd(v.tab, values[v.fields[0].Key], result), nil
}

func (v *resourceView[T, D]) Get(ctx context.Context, id domain.ID) (domain.ListItem, error) {
	item, err := v.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (v *resourceView[T, D]) DismissError() { v.ctrl.DismissError() }

func (v *resourceView[T, D]) Fields() []components.FieldSpec { return v.fields }

func (v *resourceView[T, D]) Close() {
	v.unsubscribe()
	v.ctrl.Close()
}

func (v *resourceView[T, D]) Wait() { v.ctrl.Wait() }

func widen[T domain.ListItem](items []T) []domain.ListItem {
	out := make([]domain.ListItem, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// === Create form fields ===

var jobFields = []components.FieldSpec{
	{Key: "title", Label: "Title", Placeholder: "Backend Engineer", Required: true},
	{Key: "company", Label: "Company", Placeholder: "Acme", Required: true},
	{Key: "location", Label: "Location", Placeholder: "Remote", Required: true},
	{Key: "job_type", Label: "Type", Placeholder: strings.Join(domain.JobTypes, ", ")},
	{Key: "tags", Label: "Tags", Placeholder: "Go, SQL"},
	{Key: "description", Label: "Description", Placeholder: "What the role involves", Required: true},
}

func jobDraft(values map[string]string) domain.JobDraft {
	return domain.JobDraft{
		Title:       strings.TrimSpace(values["title"]),
		Company:     strings.TrimSpace(values["company"]),
		Location:    strings.TrimSpace(values["location"]),
		Description: strings.TrimSpace(values["description"]),
		JobType:     strings.TrimSpace(values["job_type"]),
		Tags:        splitList(values["tags"]),
	}
}

var specialistFields = []components.FieldSpec{
	{Key: "full_name", Label: "Full name", Placeholder: "Ada Lovelace", Required: true},
	{Key: "email", Label: "Email", Placeholder: "ada@example.com", Required: true},
	{Key: "profession", Label: "Profession", Placeholder: "Developer"},
	{Key: "location", Label: "Location", Placeholder: "Tashkent"},
	{Key: "skills", Label: "Skills", Placeholder: "Go, SQL"},
	{Key: "bio", Label: "Bio", Placeholder: "A line about yourself"},
}

func specialistDraft(values map[string]string) domain.SpecialistDraft {
	return domain.SpecialistDraft{
		FullName:   strings.TrimSpace(values["full_name"]),
		Email:      strings.TrimSpace(values["email"]),
		Profession: strings.TrimSpace(values["profession"]),
		Location:   strings.TrimSpace(values["location"]),
		Skills:     splitList(values["skills"]),
		Bio:        strings.TrimSpace(values["bio"]),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
