package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/model"
)

// ── Mock InternRepository ──

type mockInternRepo struct {
	interns map[string]*model.Intern
	// 级联删除需要触达模板数据，与真实仓储的事务行为对齐
	templates *mockTemplateRepo
	listErr   error
	seq       int
}

func newMockInternRepo(templates *mockTemplateRepo) *mockInternRepo {
	return &mockInternRepo{
		interns:   make(map[string]*model.Intern),
		templates: templates,
	}
}

func (m *mockInternRepo) Create(_ context.Context, intern *model.Intern) error {
	for _, existing := range m.interns {
		if strings.EqualFold(existing.Name, intern.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	if intern.InternID == "" {
		m.seq++
		intern.InternID = fmt.Sprintf("intern-%03d", m.seq)
	}
	m.interns[intern.InternID] = intern
	return nil
}

func (m *mockInternRepo) GetByID(_ context.Context, id string) (*model.Intern, error) {
	if i, ok := m.interns[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternRepo) GetByName(_ context.Context, name string) (*model.Intern, error) {
	for _, i := range m.interns {
		if strings.EqualFold(i.Name, name) {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternRepo) List(_ context.Context) ([]model.Intern, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Intern, 0, len(m.interns))
	for _, i := range m.interns {
		result = append(result, *i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result, nil
}

func (m *mockInternRepo) DeleteWithCascade(_ context.Context, id string) error {
	if _, ok := m.interns[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, tpl := range m.templates.tpls {
		kept := make(pq.StringArray, 0, len(tpl.InternIDs))
		for _, internID := range tpl.InternIDs {
			if internID != id {
				kept = append(kept, internID)
			}
		}
		tpl.InternIDs = kept
	}
	delete(m.interns, id)
	return nil
}

// ── Mock MasterTemplateRepository ──

var dayOrder = map[string]int{
	"Monday": 1, "Tuesday": 2, "Wednesday": 3, "Thursday": 4, "Friday": 5,
}

type mockTemplateRepo struct {
	tpls    map[string]*model.MasterTemplate
	listErr error
	// forceDuplicate 模拟查找与插入之间的并发创建：Create 直接报唯一键冲突
	forceDuplicate bool
	seq            int
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{tpls: make(map[string]*model.MasterTemplate)}
}

func (m *mockTemplateRepo) Create(_ context.Context, tpl *model.MasterTemplate) error {
	if m.forceDuplicate {
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range m.tpls {
		if existing.DayOfWeek == tpl.DayOfWeek && existing.TimeSlot == tpl.TimeSlot {
			return gorm.ErrDuplicatedKey
		}
	}
	if tpl.InternIDs == nil {
		tpl.InternIDs = pq.StringArray{}
	}
	if tpl.TemplateID == "" {
		m.seq++
		tpl.TemplateID = fmt.Sprintf("tpl-%03d", m.seq)
	}
	m.tpls[tpl.TemplateID] = tpl
	return nil
}

func (m *mockTemplateRepo) GetByDayAndSlot(_ context.Context, dayOfWeek, timeSlot string) (*model.MasterTemplate, error) {
	for _, tpl := range m.tpls {
		if tpl.DayOfWeek == dayOfWeek && tpl.TimeSlot == timeSlot {
			return tpl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) List(_ context.Context) ([]model.MasterTemplate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.MasterTemplate, 0, len(m.tpls))
	for _, tpl := range m.tpls {
		result = append(result, *tpl)
	}
	sort.Slice(result, func(a, b int) bool {
		if dayOrder[result[a].DayOfWeek] != dayOrder[result[b].DayOfWeek] {
			return dayOrder[result[a].DayOfWeek] < dayOrder[result[b].DayOfWeek]
		}
		return result[a].TimeSlot < result[b].TimeSlot
	})
	return result, nil
}

func (m *mockTemplateRepo) UpdateInternIDs(_ context.Context, templateID string, internIDs []string) (*model.MasterTemplate, error) {
	tpl, ok := m.tpls[templateID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	tpl.InternIDs = pq.StringArray(internIDs)
	return tpl, nil
}
