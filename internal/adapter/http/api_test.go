package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"loanflow/internal/adapter/cache"
	"loanflow/internal/adapter/middleware"
	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/notify"
	"loanflow/internal/testutil/notifymock"
	"loanflow/internal/testutil/testdb"
	"loanflow/internal/usecase/eligibility"
	loanuc "loanflow/internal/usecase/loan"
	plafonduc "loanflow/internal/usecase/plafond"
	"loanflow/internal/usecase/workflow"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

type api struct {
	e   *echo.Echo
	db  *gorm.DB
	rec *notifymock.Recorder
}

// newAPI serves every route over a fresh SQLite database without idempotency.
func newAPI(t *testing.T) *api {
	t.Helper()
	return newAPIWith(t, nil)
}

func newAPIWith(t *testing.T, idem echo.MiddlewareFunc) *api {
	t.Helper()
	db := testdb.Open(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := &notifymock.Recorder{}
	d := notify.NewDispatcher(rec, log, time.Second)

	repos := mysql.NewRepos(db)
	plafonds := plafonduc.NewUsecase(repos.Plafonds, cache.Nop{}, log)
	engine := eligibility.NewEngine(plafonds)

	e := newEchoWithValidator()
	RegisterRoutes(e, Handlers{
		Health:      NewHandler(),
		Loans:       NewLoanHandler(loanuc.NewUsecase(repos, mysql.NewCustomerRepository(db), engine, d)),
		Workflow:    NewWorkflowHandler(workflow.NewUsecase(mysql.NewGormUoW(db), d, log)),
		Simulations: NewSimulationHandler(engine),
		Plafonds:    NewPlafondHandler(plafonds, engine),
	}, idem)
	return &api{e: e, db: db, rec: rec}
}

// do sends a request; actor 0 leaves X-Actor-Id unset.
func (a *api) do(t *testing.T, method, path string, body any, actor uint64) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = mustJSON(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if actor != 0 {
		req.Header.Set(middleware.HeaderActorID, strconv.FormatUint(actor, 10))
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *api) seedCustomer(t *testing.T, income string) uint64 {
	t.Helper()
	c := &customer.Customer{FullName: "Siti", MonthlyIncome: decimal.RequireFromString(income)}
	if err := a.db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c.ID
}

// seedPlafond creates a plafond through the API and returns its id.
func (a *api) seedPlafond(t *testing.T, minIncome, maxAmount string, tenor int, rate string) uint64 {
	t.Helper()
	rec := a.do(t, stdhttp.MethodPost, "/plafonds", map[string]any{
		"min_income":    minIncome,
		"max_amount":    maxAmount,
		"tenor_month":   tenor,
		"interest_rate": rate,
	}, 1)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("create plafond: status %d body %s", rec.Code, rec.Body.String())
	}
	var out struct {
		ID uint64 `json:"id"`
	}
	decode(t, rec, &out)
	return out.ID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, status, rec.Body.String())
	}
	var er ErrorResponse
	decode(t, rec, &er)
	if er.Code != code {
		t.Fatalf("code = %q, want %q (error %q)", er.Code, code, er.Error)
	}
	return er
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
