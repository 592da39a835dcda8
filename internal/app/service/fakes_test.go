package service

import (
	"context"
	"sort"
	"time"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

// In-memory fakes backing the service tests. They keep the repositories'
// observable contracts (soft-delete filtering, date-sorted config listings,
// upsert keyed by date) without a database.

type fakeUow struct{}

func (fakeUow) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type notified struct {
	ProjectID uint64
	Target    string
	Action    domain.NotificationAction
}

type fakeNotifier struct {
	events []notified
}

func (n *fakeNotifier) Notify(projectID, actorID uint64, target string, action domain.NotificationAction) {
	n.events = append(n.events, notified{ProjectID: projectID, Target: target, Action: action})
}

type fakeTaskRepo struct {
	tasks   map[uint64]*domain.Task
	deleted map[uint64]bool
	nextID  uint64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uint64]*domain.Task{}, deleted: map[uint64]bool{}, nextID: 1}
}

func (r *fakeTaskRepo) add(task domain.Task) uint64 {
	id := r.nextID
	r.nextID++
	task.ID = id
	r.tasks[id] = &task
	return id
}

func (r *fakeTaskRepo) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		PlanningID:       input.PlanningID,
		ParentID:         input.ParentID,
		Name:             input.Name,
		TaskType:         input.TaskType,
		Status:           input.Status,
		DurationType:     input.DurationType,
		OriginalDuration: input.OriginalDuration,
		CalendarID:       input.CalendarID,
		Start:            input.Start,
		Finish:           input.Finish,
		PlannedStart:     input.Start,
		PlannedFinish:    input.Finish,
	}
	id := r.add(task)
	return *r.tasks[id], nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || r.deleted[id] {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return *task, nil
}

func (r *fakeTaskRepo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Task, error) {
	var out []domain.Task
	for _, id := range ids {
		if task, ok := r.tasks[id]; ok && !r.deleted[id] {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Task, error) {
	var out []domain.Task
	for id, task := range r.tasks {
		if task.PlanningID == planningID && !r.deleted[id] {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListStandardDuration(ctx context.Context, planningID uint64, taskID *uint64) ([]domain.Task, error) {
	var out []domain.Task
	for id, task := range r.tasks {
		if r.deleted[id] || task.PlanningID != planningID {
			continue
		}
		if task.DurationType != domain.DurationTypeStandard || task.Start == nil {
			continue
		}
		if taskID != nil && id != *taskID {
			continue
		}
		out = append(out, *task)
	}
	return out, nil
}

func (r *fakeTaskRepo) ListStandardDurationWithoutCalendar(ctx context.Context, planningID uint64) ([]domain.Task, error) {
	tasks, _ := r.ListStandardDuration(ctx, planningID, nil)
	var out []domain.Task
	for _, task := range tasks {
		if task.CalendarID == nil {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListChildIDs(ctx context.Context, parentIDs []uint64) ([]uint64, error) {
	parents := map[uint64]bool{}
	for _, id := range parentIDs {
		parents[id] = true
	}
	var out []uint64
	for id, task := range r.tasks {
		if r.deleted[id] || task.ParentID == nil {
			continue
		}
		if parents[*task.ParentID] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Save(ctx context.Context, task domain.Task, updatedBy uint64) error {
	if _, ok := r.tasks[task.ID]; !ok || r.deleted[task.ID] {
		return domain.ErrTaskNotFound
	}
	copied := task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) SetCalendar(ctx context.Context, taskID uint64, calendarID *uint64, updatedBy uint64) error {
	task, ok := r.tasks[taskID]
	if !ok || r.deleted[taskID] {
		return domain.ErrTaskNotFound
	}
	task.CalendarID = calendarID
	return nil
}

func (r *fakeTaskRepo) SoftDeleteByIDs(ctx context.Context, ids []uint64, deletedBy uint64) error {
	for _, id := range ids {
		r.deleted[id] = true
	}
	return nil
}

func (r *fakeTaskRepo) CountByStatus(ctx context.Context, planningID uint64) (map[domain.TaskStatus]int, error) {
	counts := map[domain.TaskStatus]int{}
	for id, task := range r.tasks {
		if task.PlanningID == planningID && !r.deleted[id] {
			counts[task.Status]++
		}
	}
	return counts, nil
}

var _ ports.TaskRepository = (*fakeTaskRepo)(nil)

type fakePlanningRepo struct {
	plannings map[uint64]*domain.Planning
	nextID    uint64
}

func newFakePlanningRepo() *fakePlanningRepo {
	return &fakePlanningRepo{plannings: map[uint64]*domain.Planning{}, nextID: 1}
}

func (r *fakePlanningRepo) add(planning domain.Planning) uint64 {
	id := r.nextID
	r.nextID++
	planning.ID = id
	if planning.Status == "" {
		planning.Status = domain.PlanningStatusPlanned
	}
	r.plannings[id] = &planning
	return id
}

func (r *fakePlanningRepo) Create(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error) {
	id := r.add(domain.Planning{
		ProjectID:    input.ProjectID,
		Name:         input.Name,
		DataDate:     input.DataDate,
		ProjectStart: input.ProjectStart,
	})
	return *r.plannings[id], nil
}

func (r *fakePlanningRepo) GetByID(ctx context.Context, id uint64) (domain.Planning, error) {
	planning, ok := r.plannings[id]
	if !ok {
		return domain.Planning{}, domain.ErrPlanningNotFound
	}
	return *planning, nil
}

func (r *fakePlanningRepo) ListByProject(ctx context.Context, projectID uint64) ([]domain.Planning, error) {
	var out []domain.Planning
	for _, planning := range r.plannings {
		if planning.ProjectID == projectID {
			out = append(out, *planning)
		}
	}
	return out, nil
}

func (r *fakePlanningRepo) SetStatus(ctx context.Context, id uint64, status domain.PlanningStatus) error {
	planning, ok := r.plannings[id]
	if !ok {
		return domain.ErrPlanningNotFound
	}
	planning.Status = status
	return nil
}

var _ ports.PlanningRepository = (*fakePlanningRepo)(nil)

type fakeLinkRepo struct {
	links  map[uint64]domain.Link
	nextID uint64
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[uint64]domain.Link{}, nextID: 1}
}

func (r *fakeLinkRepo) Create(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error) {
	link := domain.Link{
		ID:         r.nextID,
		PlanningID: planningID,
		SourceID:   input.SourceID,
		TargetID:   input.TargetID,
		Type:       input.Type,
		Lag:        input.Lag,
	}
	r.links[link.ID] = link
	r.nextID++
	return link, nil
}

func (r *fakeLinkRepo) BulkCreate(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error) {
	var out []domain.Link
	for _, input := range inputs {
		link, _ := r.Create(ctx, planningID, input)
		out = append(out, link)
	}
	return out, nil
}

func (r *fakeLinkRepo) GetByID(ctx context.Context, planningID, linkID uint64) (domain.Link, error) {
	link, ok := r.links[linkID]
	if !ok || link.PlanningID != planningID {
		return domain.Link{}, domain.ErrLinkNotFound
	}
	return link, nil
}

func (r *fakeLinkRepo) ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Link, error) {
	var out []domain.Link
	for _, link := range r.links {
		if link.PlanningID == planningID {
			out = append(out, link)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLinkRepo) Exists(ctx context.Context, planningID, sourceID, targetID uint64, linkType domain.LinkType) (bool, error) {
	for _, link := range r.links {
		if link.PlanningID == planningID && link.SourceID == sourceID &&
			link.TargetID == targetID && link.Type == linkType {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLinkRepo) Update(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error) {
	link, err := r.GetByID(ctx, planningID, linkID)
	if err != nil {
		return domain.Link{}, err
	}
	if input.Type != nil {
		link.Type = *input.Type
	}
	if input.Lag != nil {
		link.Lag = *input.Lag
	}
	r.links[linkID] = link
	return link, nil
}

func (r *fakeLinkRepo) DeleteByIDs(ctx context.Context, planningID uint64, linkIDs []uint64) error {
	for _, id := range linkIDs {
		if link, ok := r.links[id]; ok && link.PlanningID == planningID {
			delete(r.links, id)
		}
	}
	return nil
}

var _ ports.LinkRepository = (*fakeLinkRepo)(nil)

type fakeCalendarRepo struct {
	calendars map[uint64]*domain.Calendar
	deleted   map[uint64]bool
	nextID    uint64
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{calendars: map[uint64]*domain.Calendar{}, deleted: map[uint64]bool{}, nextID: 1}
}

func (r *fakeCalendarRepo) add(calendar domain.Calendar) uint64 {
	id := r.nextID
	r.nextID++
	calendar.ID = id
	r.calendars[id] = &calendar
	return id
}

func (r *fakeCalendarRepo) Create(ctx context.Context, input domain.CreateCalendarInput) (domain.Calendar, error) {
	id := r.add(domain.Calendar{ProjectID: input.ProjectID, Name: input.Name, IsDefault: input.IsDefault})
	return *r.calendars[id], nil
}

func (r *fakeCalendarRepo) GetByID(ctx context.Context, id uint64) (domain.Calendar, error) {
	calendar, ok := r.calendars[id]
	if !ok || r.deleted[id] {
		return domain.Calendar{}, domain.ErrCalendarNotFound
	}
	return *calendar, nil
}

func (r *fakeCalendarRepo) ListByProject(ctx context.Context, projectID uint64) ([]domain.Calendar, error) {
	var out []domain.Calendar
	for id, calendar := range r.calendars {
		if calendar.ProjectID == projectID && !r.deleted[id] {
			out = append(out, *calendar)
		}
	}
	return out, nil
}

func (r *fakeCalendarRepo) ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error) {
	for id, calendar := range r.calendars {
		if r.deleted[id] || calendar.ProjectID != projectID || calendar.Name != name {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeCalendarRepo) Rename(ctx context.Context, id uint64, name string, updatedBy uint64) error {
	if calendar, ok := r.calendars[id]; ok {
		calendar.Name = name
	}
	return nil
}

func (r *fakeCalendarRepo) UnsetDefault(ctx context.Context, projectID uint64, updatedBy uint64) error {
	for id, calendar := range r.calendars {
		if calendar.ProjectID == projectID && !r.deleted[id] {
			calendar.IsDefault = false
		}
	}
	return nil
}

func (r *fakeCalendarRepo) SetDefault(ctx context.Context, id uint64, updatedBy uint64) error {
	if calendar, ok := r.calendars[id]; ok {
		calendar.IsDefault = true
	}
	return nil
}

func (r *fakeCalendarRepo) GetDefaultByProject(ctx context.Context, projectID uint64) (domain.Calendar, error) {
	for id, calendar := range r.calendars {
		if calendar.ProjectID == projectID && calendar.IsDefault && !r.deleted[id] {
			return *calendar, nil
		}
	}
	return domain.Calendar{}, domain.ErrCalendarNotFound
}

func (r *fakeCalendarRepo) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	r.deleted[id] = true
	return nil
}

var _ ports.CalendarRepository = (*fakeCalendarRepo)(nil)

type fakeConfigRepo struct {
	// keyed calendarID -> dateKey string -> config
	rows map[uint64]map[string]domain.CalendarConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{rows: map[uint64]map[string]domain.CalendarConfig{}}
}

func (r *fakeConfigRepo) UpsertWorkingDates(ctx context.Context, calendarID uint64, dates []time.Time, workingDayTypeID *uint64, linkKey *string, actorID uint64) error {
	if r.rows[calendarID] == nil {
		r.rows[calendarID] = map[string]domain.CalendarConfig{}
	}
	for _, date := range dates {
		key := date.Format("2006-01-02")
		r.rows[calendarID][key] = domain.CalendarConfig{
			CalendarID:       calendarID,
			Date:             date,
			DayType:          domain.CalendarDayTypeWorking,
			WorkingDayTypeID: workingDayTypeID,
			LinkKey:          linkKey,
		}
	}
	return nil
}

func (r *fakeConfigRepo) SoftDeleteDates(ctx context.Context, calendarID uint64, dates []time.Time, deletedBy uint64) error {
	for _, date := range dates {
		delete(r.rows[calendarID], date.Format("2006-01-02"))
	}
	return nil
}

func (r *fakeConfigRepo) SoftDeleteByCalendar(ctx context.Context, calendarID uint64, deletedBy uint64) error {
	delete(r.rows, calendarID)
	return nil
}

func (r *fakeConfigRepo) ListByCalendar(ctx context.Context, calendarID uint64) ([]domain.CalendarConfig, error) {
	var out []domain.CalendarConfig
	for _, config := range r.rows[calendarID] {
		out = append(out, config)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeConfigRepo) ListDates(ctx context.Context, calendarID uint64) ([]time.Time, error) {
	configs, _ := r.ListByCalendar(ctx, calendarID)
	dates := make([]time.Time, 0, len(configs))
	for _, config := range configs {
		dates = append(dates, config.Date)
	}
	return dates, nil
}

var _ ports.CalendarConfigRepository = (*fakeConfigRepo)(nil)

type fakeDayTypeRepo struct {
	dayTypes map[uint64]*domain.DayType
	deleted  map[uint64]bool
	nextID   uint64
}

func newFakeDayTypeRepo() *fakeDayTypeRepo {
	return &fakeDayTypeRepo{dayTypes: map[uint64]*domain.DayType{}, deleted: map[uint64]bool{}, nextID: 1}
}

func (r *fakeDayTypeRepo) Create(ctx context.Context, input domain.CreateDayTypeInput) (domain.DayType, error) {
	dayType := domain.DayType{ID: r.nextID, ProjectID: input.ProjectID, Name: input.Name, TimeBlocks: input.TimeBlocks}
	r.dayTypes[dayType.ID] = &dayType
	r.nextID++
	return dayType, nil
}

func (r *fakeDayTypeRepo) GetByID(ctx context.Context, id uint64) (domain.DayType, error) {
	dayType, ok := r.dayTypes[id]
	if !ok || r.deleted[id] {
		return domain.DayType{}, domain.ErrDayTypeNotFound
	}
	return *dayType, nil
}

func (r *fakeDayTypeRepo) ListByProject(ctx context.Context, projectID uint64) ([]domain.DayType, error) {
	var out []domain.DayType
	for id, dayType := range r.dayTypes {
		if dayType.ProjectID == projectID && !r.deleted[id] {
			out = append(out, *dayType)
		}
	}
	return out, nil
}

func (r *fakeDayTypeRepo) ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error) {
	for id, dayType := range r.dayTypes {
		if r.deleted[id] || dayType.ProjectID != projectID || dayType.Name != name {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeDayTypeRepo) Update(ctx context.Context, id uint64, input domain.UpdateDayTypeInput) (domain.DayType, error) {
	dayType, ok := r.dayTypes[id]
	if !ok || r.deleted[id] {
		return domain.DayType{}, domain.ErrDayTypeNotFound
	}
	if input.Name != nil {
		dayType.Name = *input.Name
	}
	if input.TimeBlocks != nil {
		dayType.TimeBlocks = input.TimeBlocks
	}
	return *dayType, nil
}

func (r *fakeDayTypeRepo) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	r.deleted[id] = true
	return nil
}

var _ ports.DayTypeRepository = (*fakeDayTypeRepo)(nil)
