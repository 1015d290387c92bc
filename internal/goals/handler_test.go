package goals

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupGoalsTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewInMemoryRepository())
	r.GET("/goals", handler.GetGoals)
	r.PUT("/goals", handler.UpsertGoals)

	return r
}

func putGoals(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req, _ := http.NewRequest("PUT", "/goals", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGoals_UpsertAndGet(t *testing.T) {
	router := setupGoalsTestRouter()
	userID := uuid.New()

	w := putGoals(t, router, gin.H{
		"user_id":     userID,
		"weekly_goal": 12.5,
		"yearly_goal": 500,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req, _ := http.NewRequest("GET", "/goals?user_id="+userID.String(), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var goal UserGoal
	if err := json.Unmarshal(w.Body.Bytes(), &goal); err != nil {
		t.Fatal(err)
	}

	if goal.WeeklyGoal != 12.5 || goal.YearlyGoal != 500 {
		t.Fatalf("unexpected goal values: %+v", goal)
	}
	if goal.MonthlyGoal != 0 {
		t.Fatalf("expected default monthly goal, got %v", goal.MonthlyGoal)
	}
}

func TestGoals_PartialUpdateKeepsOtherFields(t *testing.T) {
	router := setupGoalsTestRouter()
	userID := uuid.New()

	putGoals(t, router, gin.H{"user_id": userID, "weekly_goal": 10, "monthly_goal": 40})

	w := putGoals(t, router, gin.H{"user_id": userID, "weekly_goal": 8})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var goal UserGoal
	if err := json.Unmarshal(w.Body.Bytes(), &goal); err != nil {
		t.Fatal(err)
	}

	if goal.WeeklyGoal != 8 {
		t.Fatalf("expected weekly goal updated to 8, got %v", goal.WeeklyGoal)
	}
	if goal.MonthlyGoal != 40 {
		t.Fatalf("expected monthly goal kept at 40, got %v", goal.MonthlyGoal)
	}
}

func TestGoals_GetWithoutGoals(t *testing.T) {
	router := setupGoalsTestRouter()

	req, _ := http.NewRequest("GET", "/goals?user_id="+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGoals_MissingUserID(t *testing.T) {
	router := setupGoalsTestRouter()

	req, _ := http.NewRequest("GET", "/goals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
