package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vehireview/internal/api/controllers"
	"vehireview/internal/config"
	"vehireview/internal/infra/infratest"
	"vehireview/internal/repositories"
	"vehireview/internal/review"
	"vehireview/internal/services"
	mem "vehireview/pkg/memcache"
	"vehireview/pkg/middleware"
)

type envelope struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	TraceID string              `json:"trace_id"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := infratest.NewDB(t)
	cfg := &config.Config{
		JWTSecret:    "router-secret",
		JWTTTL:       time.Hour,
		AdminEmails:  []string{"root@example.com"},
		HomePageSize: 3,
		ListPageSize: 5,
	}
	log := zap.NewNop()
	revoked := mem.NewRevokedTokens()

	reviewRepo := repositories.NewReviewRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	accountRepo := repositories.NewAccountRepository(db)

	messages := review.MessagesFor("en")
	presenter := services.NewPresenter(messages, time.UTC)
	sizes := services.PageSizes{Home: cfg.HomePageSize, List: cfg.ListPageSize}
	validator := review.NewValidator(reviewRepo, messages, time.UTC)

	reviewSvc := services.NewReviewService(reviewRepo, vehicleRepo, likeRepo, validator, presenter, sizes, log)
	likeSvc := services.NewLikeService(likeRepo, reviewRepo, presenter, sizes, log)
	vehicleSvc := services.NewVehicleService(vehicleRepo, presenter, log)
	accountSvc := services.NewAccountService(accountRepo, likeSvc, revoked, presenter, cfg, log)

	router := NewRouter(RouterParams{
		Config:   cfg,
		Log:      log,
		Revoked:  revoked,
		Limiter:  middleware.NewRateLimiter(1000, 1000),
		Accounts: controllers.NewAccountController(accountSvc, reviewSvc),
		Reviews:  controllers.NewReviewController(reviewSvc, likeSvc),
		Vehicles: controllers.NewVehicleController(vehicleSvc),
		Health:   controllers.NewHealthController(db, log),
	})
	return &testServer{t: t, db: db, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env
}

func (s *testServer) signup(name, email string) string {
	s.t.Helper()
	if code, env := s.do(http.MethodPost, "/accounts/register", "", map[string]string{
		"display_name": name, "email": email, "password": "secret123",
	}); code != http.StatusCreated {
		s.t.Fatalf("register %s: %d %s", email, code, env.Message)
	}

	code, env := s.do(http.MethodPost, "/accounts/login", "", map[string]string{"email": email, "password": "secret123"})
	if code != http.StatusOK {
		s.t.Fatalf("login %s: %d %s", email, code, env.Message)
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(s.t, env.Data, &login)
	return login.Token
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
}

func TestReviewFlow(t *testing.T) {
	s := newTestServer(t)

	root := s.signup("root", "root@example.com")
	alice := s.signup("alice", "alice@example.com")
	bob := s.signup("bob", "bob@example.com")

	if code, _ := s.do(http.MethodPost, "/makers", alice, map[string]string{"name": "honda"}); code != http.StatusForbidden {
		t.Fatalf("non-admin create maker = %d", code)
	}
	_, env := s.do(http.MethodPost, "/makers", root, map[string]string{"name": "honda", "display_order": "1"})
	var maker struct{ ID string }
	decode(t, env.Data, &maker)

	code, env := s.do(http.MethodPost, "/vehicles", root, map[string]string{"name": "cb400", "maker_id": maker.ID})
	if code != http.StatusCreated {
		t.Fatalf("create vehicle = %d %s", code, env.Message)
	}
	var vehicle struct{ ID string }
	decode(t, env.Data, &vehicle)

	// Publishing needs a title and a body.
	code, env = s.do(http.MethodPost, "/reviews", alice, map[string]interface{}{
		"vehicle_id": vehicle.ID, "status": "publish", "body": "lovely",
	})
	if code != http.StatusUnprocessableEntity || len(env.Errors["title"]) == 0 {
		t.Fatalf("blank title publish = %d %v", code, env.Errors)
	}

	code, env = s.do(http.MethodPost, "/reviews", alice, map[string]interface{}{
		"vehicle_id": vehicle.ID, "title": "touring is great", "body": "smooth engine", "uses": []string{"touring"},
	})
	if code != http.StatusCreated {
		t.Fatalf("create review = %d %s %v", code, env.Message, env.Errors)
	}
	var created struct {
		ID        string `json:"id"`
		UsesLabel string `json:"uses_label"`
	}
	decode(t, env.Data, &created)
	if created.UsesLabel != "Touring" {
		t.Errorf("uses_label = %q", created.UsesLabel)
	}

	code, env = s.do(http.MethodPost, "/reviews", alice, map[string]interface{}{
		"vehicle_id": vehicle.ID, "title": "again", "body": "again",
	})
	if code != http.StatusUnprocessableEntity || len(env.Errors["base"]) != 1 || !strings.HasPrefix(env.Errors["base"][0], review.MessagesFor("en").Duplicate) {
		t.Fatalf("duplicate = %d %v", code, env.Errors)
	}

	code, env = s.do(http.MethodGet, "/reviews/duplicate?vehicle_id="+vehicle.ID, alice, nil)
	var dup struct{ Duplicate bool }
	decode(t, env.Data, &dup)
	if code != http.StatusOK || !dup.Duplicate {
		t.Errorf("duplicate check = %d %+v", code, dup)
	}

	code, env = s.do(http.MethodGet, "/reviews?search=touring&vehicle_id="+vehicle.ID, "", nil)
	var page struct {
		Items []struct{ ID string } `json:"items"`
		Total int64                 `json:"total"`
	}
	decode(t, env.Data, &page)
	if code != http.StatusOK || page.Total != 1 || page.Items[0].ID != created.ID {
		t.Fatalf("search = %d %+v", code, page)
	}

	if code, _ := s.do(http.MethodPost, "/reviews/"+created.ID+"/like", bob, nil); code != http.StatusCreated {
		t.Fatalf("like = %d", code)
	}
	_, env = s.do(http.MethodGet, "/reviews/"+created.ID, bob, nil)
	var detail struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}
	decode(t, env.Data, &detail)
	if !detail.Liked || detail.LikeCount != 1 {
		t.Errorf("detail = %+v", detail)
	}
	_, env = s.do(http.MethodGet, "/reviews/"+created.ID, "", nil)
	decode(t, env.Data, &detail)
	if detail.Liked {
		t.Error("anonymous viewer should not see liked")
	}

	if code, _ := s.do(http.MethodDelete, "/vehicles/"+vehicle.ID, root, nil); code != http.StatusConflict {
		t.Errorf("delete vehicle in use = %d", code)
	}
	if code, _ := s.do(http.MethodDelete, "/reviews/"+created.ID, bob, nil); code != http.StatusForbidden {
		t.Errorf("stranger delete = %d", code)
	}
	if code, _ := s.do(http.MethodDelete, "/reviews/"+created.ID, alice, nil); code != http.StatusOK {
		t.Errorf("author delete = %d", code)
	}
	if code, _ := s.do(http.MethodDelete, "/vehicles/"+vehicle.ID, root, nil); code != http.StatusOK {
		t.Errorf("delete unused vehicle = %d", code)
	}
}

func TestListReviews_MalformedQueryGivesEmptyPage(t *testing.T) {
	s := newTestServer(t)
	author := infratest.CreateUser(t, s.db, "alice")
	infratest.CreateReview(t, s.db, author, infratest.CreateVehicle(t, s.db, "cb400"), "touring is great", "comfortable ride", time.Now())

	type page struct {
		Items []struct{ ID string } `json:"items"`
		Total int64                 `json:"total"`
	}

	code, env := s.do(http.MethodGet, "/reviews", "", nil)
	var all page
	decode(t, env.Data, &all)
	if code != http.StatusOK || len(all.Items) != 1 {
		t.Fatalf("unfiltered = %d %+v", code, all)
	}

	for _, path := range []string{
		"/reviews?page=abc",
		"/reviews?page=99999999999999999999",
		"/reviews?page=-3",
		"/reviews?page=2",
		"/reviews?vehicle_id=nope",
		"/reviews?vehicle_id=nope&search=touring",
	} {
		code, env := s.do(http.MethodGet, path, "", nil)
		if code != http.StatusOK {
			t.Errorf("%s: status = %d %s", path, code, env.Message)
			continue
		}
		var got page
		decode(t, env.Data, &got)
		if len(got.Items) != 0 {
			t.Errorf("%s: items = %+v, want none", path, got.Items)
		}
	}

	code, env = s.do(http.MethodGet, "/reviews?listing=bogus&page=", "", nil)
	var lenient page
	decode(t, env.Data, &lenient)
	if code != http.StatusOK || len(lenient.Items) != 1 {
		t.Errorf("unknown listing = %d %+v", code, lenient)
	}
}

func TestAccountsFlow(t *testing.T) {
	s := newTestServer(t)
	alice := s.signup("alice", "alice@example.com")
	root := s.signup("root", "root@example.com")

	if code, _ := s.do(http.MethodPost, "/accounts/register", "", map[string]string{
		"display_name": "alice", "email": "alice@example.com", "password": "secret123",
	}); code != http.StatusConflict {
		t.Errorf("duplicate register = %d", code)
	}
	if code, _ := s.do(http.MethodPost, "/accounts/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-one",
	}); code != http.StatusUnauthorized {
		t.Errorf("bad password = %d", code)
	}

	code, env := s.do(http.MethodGet, "/accounts/me", alice, nil)
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decode(t, env.Data, &me)
	if code != http.StatusOK || me.Email != "alice@example.com" {
		t.Fatalf("me = %d %+v", code, me)
	}
	if env.TraceID == "" {
		t.Error("response should carry a trace id")
	}

	if code, _ := s.do(http.MethodGet, "/accounts/"+me.ID, root, nil); code != http.StatusOK {
		t.Errorf("profile = %d", code)
	}
	if code, _ := s.do(http.MethodGet, "/accounts", alice, nil); code != http.StatusForbidden {
		t.Errorf("non-admin list = %d", code)
	}
	if code, _ := s.do(http.MethodGet, "/accounts", root, nil); code != http.StatusOK {
		t.Errorf("admin list = %d", code)
	}
	if code, _ := s.do(http.MethodGet, "/accounts/me/reviews", alice, nil); code != http.StatusOK {
		t.Errorf("own reviews = %d", code)
	}

	if code, _ := s.do(http.MethodPost, "/accounts/logout", alice, nil); code != http.StatusOK {
		t.Fatalf("logout = %d", code)
	}
	if code, _ := s.do(http.MethodGet, "/accounts/me", alice, nil); code != http.StatusUnauthorized {
		t.Errorf("me after logout = %d", code)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	if code, env := s.do(http.MethodGet, "/healthz", "", nil); code != http.StatusOK || env.Status != "success" {
		t.Errorf("healthz = %d %+v", code, env)
	}
}
