package services

import (
	"sort"
	"strings"
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"gorm.io/gorm"
)

// In-memory stores backing the service tests. They mirror the repository
// contract, including gorm.ErrRecordNotFound for misses and
// gorm.ErrDuplicatedKey for unique violations.

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(user models.User) error {
	if _, ok := s.users[user.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindByEmail(email string) (models.User, error) {
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByEmailAndRole(email string, role models.Role) (models.User, error) {
	u, err := s.FindByEmail(email)
	if err != nil || u.Role != role {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByID(id string) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByIDAndRole(id string, role models.Role) (models.User, error) {
	u, err := s.FindByID(id)
	if err != nil || u.Role != role {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindAll() ([]models.User, error) {
	var users []models.User
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *fakeUserStore) FindByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *fakeUserStore) EmailTakenByOther(email, userID string) (bool, error) {
	email = strings.ToLower(email)
	for _, u := range s.users {
		if u.Email == email && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UpdateProfile(id string, fields map[string]interface{}) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	if name, ok := fields["name"]; ok {
		u.Name = name.(string)
	}
	if email, ok := fields["email"]; ok {
		u.Email = email.(string)
	}
	s.users[id] = u
	return u, nil
}

func (s *fakeUserStore) UpdatePassword(id, digest string) error {
	u, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = digest
	s.users[id] = u
	return nil
}

type fakeBugStore struct {
	bugs   map[int]models.Bug
	nextID int
}

func newFakeBugStore(bugs ...models.Bug) *fakeBugStore {
	s := &fakeBugStore{bugs: map[int]models.Bug{}}
	for _, b := range bugs {
		s.bugs[b.ID] = b
		if b.ID > s.nextID {
			s.nextID = b.ID
		}
	}
	return s
}

func (s *fakeBugStore) Create(bug models.Bug) (models.Bug, error) {
	s.nextID++
	bug.ID = s.nextID
	s.bugs[bug.ID] = bug
	return bug, nil
}

func (s *fakeBugStore) FindByID(id int) (models.Bug, error) {
	b, ok := s.bugs[id]
	if !ok {
		return models.Bug{}, gorm.ErrRecordNotFound
	}
	return b, nil
}

func matchesFilter(b models.Bug, filter dto.BugFilter) bool {
	if filter.ProjectID != 0 && b.ProjectID != filter.ProjectID {
		return false
	}
	if filter.Status != "" && filter.Status != "all" && string(b.Status) != filter.Status {
		return false
	}
	if filter.ReportedBy != "" && b.ReportedBy != filter.ReportedBy {
		return false
	}
	if filter.AssignedTo != "" && (b.AssignedTo == nil || *b.AssignedTo != filter.AssignedTo) {
		return false
	}
	return true
}

func (s *fakeBugStore) Find(filter dto.BugFilter) ([]models.Bug, error) {
	var bugs []models.Bug
	for _, b := range s.bugs {
		if matchesFilter(b, filter) {
			bugs = append(bugs, b)
		}
	}
	sort.Slice(bugs, func(i, j int) bool { return bugs[i].ID < bugs[j].ID })
	return bugs, nil
}

func (s *fakeBugStore) Stats(filter dto.BugFilter) (dto.BugStats, error) {
	var stats dto.BugStats
	for _, b := range s.bugs {
		if !matchesFilter(b, filter) {
			continue
		}
		stats.Total++
		switch b.Status {
		case models.StatusOpen:
			stats.Open++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusClosed:
			stats.Closed++
		}
	}
	return stats, nil
}

func applyBugFields(b *models.Bug, fields map[string]interface{}) {
	if v, ok := fields["status"]; ok {
		b.Status = v.(models.Status)
	}
	if v, ok := fields["priority"]; ok {
		b.Priority = v.(models.Priority)
	}
	if v, ok := fields["assigned_to"]; ok {
		if v == nil {
			b.AssignedTo = nil
		} else {
			assignee := v.(string)
			b.AssignedTo = &assignee
		}
	}
	if v, ok := fields["updated_at"]; ok {
		b.UpdatedAt = v.(time.Time)
	}
}

func (s *fakeBugStore) UpdateFields(id int, fields map[string]interface{}) (models.Bug, error) {
	b, ok := s.bugs[id]
	if !ok {
		return models.Bug{}, gorm.ErrRecordNotFound
	}
	applyBugFields(&b, fields)
	s.bugs[id] = b
	return b, nil
}

func (s *fakeBugStore) UpdateFieldsForAssignee(id int, assignee string, fields map[string]interface{}) (models.Bug, error) {
	b, ok := s.bugs[id]
	if !ok || b.AssignedTo == nil || *b.AssignedTo != assignee {
		return models.Bug{}, gorm.ErrRecordNotFound
	}
	applyBugFields(&b, fields)
	s.bugs[id] = b
	return b, nil
}

func (s *fakeBugStore) Delete(id int) error {
	if _, ok := s.bugs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.bugs, id)
	return nil
}

func (s *fakeBugStore) CountByProject(projectID int) (int64, error) {
	var count int64
	for _, b := range s.bugs {
		if b.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

func (s *fakeBugStore) CountReportedBy(userID string) (int64, error) {
	var count int64
	for _, b := range s.bugs {
		if b.ReportedBy == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeBugStore) CountAssignedTo(userID string) (int64, error) {
	var count int64
	for _, b := range s.bugs {
		if b.AssignedTo != nil && *b.AssignedTo == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeBugStore) ProjectIDsForAssignee(assignee string) ([]int, error) {
	seen := map[int]bool{}
	for _, b := range s.bugs {
		if b.AssignedTo != nil && *b.AssignedTo == assignee {
			seen[b.ProjectID] = true
		}
	}
	var ids []int
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *fakeBugStore) RecentForUser(userID string, limit int) ([]models.Bug, error) {
	var bugs []models.Bug
	for _, b := range s.bugs {
		if b.ReportedBy == userID || (b.AssignedTo != nil && *b.AssignedTo == userID) {
			bugs = append(bugs, b)
		}
	}
	sort.Slice(bugs, func(i, j int) bool { return bugs[i].UpdatedAt.After(bugs[j].UpdatedAt) })
	if len(bugs) > limit {
		bugs = bugs[:limit]
	}
	return bugs, nil
}

type fakeProjectStore struct {
	projects map[int]models.Project
	nextID   int
}

func newFakeProjectStore(projects ...models.Project) *fakeProjectStore {
	s := &fakeProjectStore{projects: map[int]models.Project{}}
	for _, p := range projects {
		s.projects[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *fakeProjectStore) Create(project models.Project) (models.Project, error) {
	for _, p := range s.projects {
		if p.Name == project.Name {
			return models.Project{}, gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	project.ID = s.nextID
	s.projects[project.ID] = project
	return project, nil
}

func (s *fakeProjectStore) FindAll() ([]models.Project, error) {
	var projects []models.Project
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (s *fakeProjectStore) FindByID(id int) (models.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *fakeProjectStore) FindByName(name string) (models.Project, error) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Project{}, gorm.ErrRecordNotFound
}

func (s *fakeProjectStore) FindByIDs(ids []int) ([]models.Project, error) {
	var projects []models.Project
	for _, id := range ids {
		if p, ok := s.projects[id]; ok {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (s *fakeProjectStore) Delete(id int) error {
	if _, ok := s.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.projects, id)
	return nil
}
