package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitValidator()
	utils.InitJWT()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// memStore is an in-memory usecase.UserStore for handler tests.
type memStore struct {
	users map[string]*model.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*model.User)}
}

func (s *memStore) FindByID(_ context.Context, userID string) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(_ context.Context, user *model.User) error {
	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

func (s *memStore) Replace(_ context.Context, user *model.User) error {
	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

// ledgerRouter mounts the ledger routes with a stub identity middleware in
// place of JWT auth; the auth middleware has its own tests.
func ledgerRouter(store *memStore, identity string) *gin.Engine {
	ledger := &usecase.LedgerService{Users: store}
	userService := &usecase.UserService{Users: store}

	router := gin.New()
	group := router.Group("/api/users/:id")
	group.Use(func(c *gin.Context) {
		c.Set("user_id", identity)
		c.Next()
	})
	group.GET("", func(c *gin.Context) { GetUserHandler(c, userService) })
	group.POST("/activities", func(c *gin.Context) { AddActivityHandler(c, ledger) })
	group.PUT("/activities/:activityId", func(c *gin.Context) { EditActivityHandler(c, ledger) })
	group.DELETE("/activities/:activityId", func(c *gin.Context) { DeleteActivityHandler(c, ledger) })
	group.GET("/history", func(c *gin.Context) { HistoryHandler(c, ledger) })
	group.PUT("/meals", func(c *gin.Context) { SetMealHandler(c, ledger) })
	return router
}

func seedUser(store *memStore) {
	store.users["user-1"] = &model.User{
		UserID:     "user-1",
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "x$y",
		Activities: []model.Activity{},
		DayRecords: []model.DayRecord{},
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddActivityHandler(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			"valid activity",
			`{"date":"2024-01-15","name":"Correr","duration_minutes":30,"calories_burned":300}`,
			http.StatusCreated,
		},
		{
			"zero duration rejected",
			`{"date":"2024-01-15","name":"Correr","duration_minutes":0,"calories_burned":300}`,
			http.StatusBadRequest,
		},
		{
			"missing name",
			`{"date":"2024-01-15","duration_minutes":30,"calories_burned":300}`,
			http.StatusBadRequest,
		},
		{
			"bad date format",
			`{"date":"15/01/2024","name":"Correr","duration_minutes":30,"calories_burned":300}`,
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/users/user-1/activities", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}

	stored := store.users["user-1"]
	if len(stored.Activities) != 1 {
		t.Fatalf("stored activities = %d, want 1", len(stored.Activities))
	}
	want := model.DayStats{ActivityMinutes: 30, CaloriesBurned: 300}
	if stored.DayRecords[0].Stats != want {
		t.Errorf("stored day stats = %+v, want %+v", stored.DayRecords[0].Stats, want)
	}
}

func TestAddActivityUnknownUser(t *testing.T) {
	store := newMemStore()
	router := ledgerRouter(store, "user-9")

	w := doJSON(router, http.MethodPost, "/api/users/user-9/activities",
		`{"date":"2024-01-15","name":"Correr","duration_minutes":30,"calories_burned":300}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestEditActivityHandlerMovesDate(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodPost, "/api/users/user-1/activities",
		`{"date":"2024-01-15","name":"Correr","duration_minutes":30,"calories_burned":300}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d (body %s)", w.Code, w.Body.String())
	}
	activityID := store.users["user-1"].Activities[0].ActivityID

	w = doJSON(router, http.MethodPut, "/api/users/user-1/activities/"+activityID,
		`{"date":"2024-01-16"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("edit status = %d (body %s)", w.Code, w.Body.String())
	}

	stored := store.users["user-1"]
	history := usecase.HistoryForDate(stored, "2024-01-15")
	if history.Stats != (model.DayStats{}) {
		t.Errorf("old day stats = %+v, want zeroes", history.Stats)
	}
	history = usecase.HistoryForDate(stored, "2024-01-16")
	want := model.DayStats{ActivityMinutes: 30, CaloriesBurned: 300}
	if history.Stats != want {
		t.Errorf("new day stats = %+v, want %+v", history.Stats, want)
	}
}

func TestEditActivityHandlerNotFound(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodPut, "/api/users/user-1/activities/missing", `{"name":"Nadar"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 (body %s)", w.Code, w.Body.String())
	}
}

func TestDeleteActivityHandler(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	doJSON(router, http.MethodPost, "/api/users/user-1/activities",
		`{"date":"2024-01-15","name":"Correr","duration_minutes":30,"calories_burned":300}`)
	activityID := store.users["user-1"].Activities[0].ActivityID

	w := doJSON(router, http.MethodDelete, "/api/users/user-1/activities/"+activityID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d (body %s)", w.Code, w.Body.String())
	}

	stored := store.users["user-1"]
	if len(stored.Activities) != 0 {
		t.Errorf("stored activities = %d, want 0", len(stored.Activities))
	}
	if stored.DayRecords[0].Stats != (model.DayStats{}) {
		t.Errorf("day stats = %+v, want zeroes", stored.DayRecords[0].Stats)
	}
}

func TestSetMealHandlerOverwriteDelta(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodPut, "/api/users/user-1/meals",
		`{"date":"2024-01-15","slot":"breakfast","meal":{"name":"Oatmeal","calories":250}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first meal status = %d (body %s)", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodPut, "/api/users/user-1/meals",
		`{"date":"2024-01-15","slot":"breakfast","meal":{"name":"Eggs","calories":400}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second meal status = %d (body %s)", w.Code, w.Body.String())
	}

	stored := store.users["user-1"]
	if got := stored.DayRecords[0].Stats.CaloriesConsumed; got != 400 {
		t.Errorf("calories consumed = %d, want 400", got)
	}
	if stored.CurrentMeals.Breakfast == nil || stored.CurrentMeals.Breakfast.Name != "Eggs" {
		t.Errorf("current breakfast = %+v, want Eggs", stored.CurrentMeals.Breakfast)
	}
}

func TestSetMealHandlerRejectsUnknownSlot(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodPut, "/api/users/user-1/meals",
		`{"date":"2024-01-15","slot":"brunch","meal":{"name":"Toast","calories":100}}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
	}
}

func TestHistoryHandler(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	doJSON(router, http.MethodPost, "/api/users/user-1/activities",
		`{"date":"2024-01-15","name":"Correr","duration_minutes":30,"calories_burned":300}`)

	w := doJSON(router, http.MethodGet, "/api/users/user-1/history?date=2024-01-15", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data usecase.DayHistory `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Date != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", resp.Data.Date)
	}
	if len(resp.Data.Activities) != 1 {
		t.Errorf("activities = %d, want 1", len(resp.Data.Activities))
	}
	want := model.DayStats{ActivityMinutes: 30, CaloriesBurned: 300}
	if resp.Data.Stats != want {
		t.Errorf("stats = %+v, want %+v", resp.Data.Stats, want)
	}
}

func TestHistoryHandlerUntouchedDate(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodGet, "/api/users/user-1/history?date=2024-02-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var resp struct {
		Data usecase.DayHistory `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Activities) != 0 || resp.Data.Stats != (model.DayStats{}) {
		t.Errorf("untouched date should be empty: %+v", resp.Data)
	}
	// The read must not create a stored day record.
	if len(store.users["user-1"].DayRecords) != 0 {
		t.Error("history query must not persist a day record")
	}
}

func TestHistoryHandlerRequiresDate(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodGet, "/api/users/user-1/history", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetUserHandlerOmitsSecret(t *testing.T) {
	store := newMemStore()
	seedUser(store)
	router := ledgerRouter(store, "user-1")

	w := doJSON(router, http.MethodGet, "/api/users/user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "x$y") {
		t.Errorf("response leaks credential material: %s", w.Body.String())
	}
}
