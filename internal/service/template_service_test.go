package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/dto"
	"github.com/thenotsotalentedcoder/csit-intern-calendar/internal/repository"
)

// ── 测试辅助 ──

func setupTestTemplateService() (TemplateService, *mockTemplateRepo) {
	tplRepo := newMockTemplateRepo()
	repo := &repository.Repository{
		Intern:   newMockInternRepo(tplRepo),
		Template: tplRepo,
	}
	svc := NewTemplateService(repo, zap.NewNop())
	return svc, tplRepo
}

// ── Upsert 测试 ──

func TestTemplateService_Upsert_CreatesThenReplaces(t *testing.T) {
	svc, tplRepo := setupTestTemplateService()

	first := &dto.UpsertTemplateRequest{
		DayOfWeek: "Monday",
		TimeSlot:  "09:00-09:30",
		InternIDs: []string{"a", "b"},
	}
	result, created, err := svc.Upsert(context.Background(), first)
	if err != nil {
		t.Fatalf("首次 Upsert 应成功: %v", err)
	}
	if !created {
		t.Error("首次 Upsert 应为创建")
	}
	if len(result.InternIDs) != 2 {
		t.Errorf("期望2个ID，实际%d", len(result.InternIDs))
	}

	// 同一复合键再次 Upsert：整体替换，不合并
	second := &dto.UpsertTemplateRequest{
		DayOfWeek: "Monday",
		TimeSlot:  "09:00-09:30",
		InternIDs: []string{"c"},
	}
	result, created, err = svc.Upsert(context.Background(), second)
	if err != nil {
		t.Fatalf("再次 Upsert 应成功: %v", err)
	}
	if created {
		t.Error("再次 Upsert 应为更新")
	}
	if len(result.InternIDs) != 1 || result.InternIDs[0] != "c" {
		t.Errorf("internIds 应被整体替换为[c]，实际%v", result.InternIDs)
	}
	if len(tplRepo.tpls) != 1 {
		t.Errorf("同一复合键应只有一条记录，实际%d条", len(tplRepo.tpls))
	}
}

func TestTemplateService_Upsert_NilInternIDsDefaultsEmpty(t *testing.T) {
	svc, _ := setupTestTemplateService()

	req := &dto.UpsertTemplateRequest{DayOfWeek: "Tuesday", TimeSlot: "10:00-10:30"}
	result, created, err := svc.Upsert(context.Background(), req)
	if err != nil {
		t.Fatalf("Upsert 应成功: %v", err)
	}
	if !created {
		t.Error("应为创建")
	}
	if result.InternIDs == nil || len(result.InternIDs) != 0 {
		t.Errorf("缺省 internIds 应为空列表，实际%v", result.InternIDs)
	}
}

func TestTemplateService_Upsert_ValidationErrors(t *testing.T) {
	svc, _ := setupTestTemplateService()

	tests := []struct {
		name string
		req  *dto.UpsertTemplateRequest
	}{
		{"非法工作日", &dto.UpsertTemplateRequest{DayOfWeek: "Sunday", TimeSlot: "09:00-09:30"}},
		{"60分钟时段", &dto.UpsertTemplateRequest{DayOfWeek: "Monday", TimeSlot: "09:00-10:00"}},
		{"早于营业时间", &dto.UpsertTemplateRequest{DayOfWeek: "Monday", TimeSlot: "07:00-07:30"}},
		{"格式错误", &dto.UpsertTemplateRequest{DayOfWeek: "Monday", TimeSlot: "9:00-9:30"}},
	}
	for _, tt := range tests {
		_, _, err := svc.Upsert(context.Background(), tt.req)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: 期望 ValidationError，实际 %v", tt.name, err)
		}
	}
}

func TestTemplateService_Upsert_BoundarySlots(t *testing.T) {
	svc, _ := setupTestTemplateService()

	// 营业窗口首尾两个时段均合法
	for _, slot := range []string{"08:30-09:00", "16:00-16:30"} {
		req := &dto.UpsertTemplateRequest{DayOfWeek: "Wednesday", TimeSlot: slot}
		if _, _, err := svc.Upsert(context.Background(), req); err != nil {
			t.Errorf("边界时段 %s 应合法: %v", slot, err)
		}
	}
}

func TestTemplateService_Upsert_ConcurrentCreateConflict(t *testing.T) {
	svc, tplRepo := setupTestTemplateService()

	// 模拟查找未命中、插入时另一请求已抢先创建同键记录
	tplRepo.forceDuplicate = true

	req := &dto.UpsertTemplateRequest{DayOfWeek: "Thursday", TimeSlot: "13:00-13:30"}
	_, _, err := svc.Upsert(context.Background(), req)
	if !errors.Is(err, ErrTemplateConflict) {
		t.Errorf("期望 ErrTemplateConflict，实际: %v", err)
	}
}

// ── List 测试 ──

func TestTemplateService_List_SemanticDayOrder(t *testing.T) {
	svc, _ := setupTestTemplateService()

	// 乱序插入，Friday 在字母序中先于 Monday，借此区分语义序
	seed := []struct{ day, slot string }{
		{"Friday", "09:00-09:30"},
		{"Monday", "14:00-14:30"},
		{"Monday", "09:00-09:30"},
		{"Wednesday", "10:00-10:30"},
	}
	for _, s := range seed {
		req := &dto.UpsertTemplateRequest{DayOfWeek: s.day, TimeSlot: s.slot}
		if _, _, err := svc.Upsert(context.Background(), req); err != nil {
			t.Fatalf("Upsert %s %s 失败: %v", s.day, s.slot, err)
		}
	}

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	want := []struct{ day, slot string }{
		{"Monday", "09:00-09:30"},
		{"Monday", "14:00-14:30"},
		{"Wednesday", "10:00-10:30"},
		{"Friday", "09:00-09:30"},
	}
	if len(result) != len(want) {
		t.Fatalf("期望%d条，实际%d条", len(want), len(result))
	}
	for i, w := range want {
		if result[i].DayOfWeek != w.day || result[i].TimeSlot != w.slot {
			t.Errorf("第%d条期望(%s, %s)，实际(%s, %s)",
				i, w.day, w.slot, result[i].DayOfWeek, result[i].TimeSlot)
		}
	}
}
