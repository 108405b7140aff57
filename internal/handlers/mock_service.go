package handlers

import (
	"context"

	"newsboard/internal/models"
	"newsboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	loginToken  string
	loginErr    error
	parseID     int
	parseErr    error
	user        *models.User
	userErr     error

	visitToken    string
	visitIssueErr error
	visitCount    int
	visitParseErr error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastParseToken string
	lastVisitIssue int
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (int, error) {
	m.lastRegister = in
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, _ string) (string, error) {
	m.lastLoginEmail = email
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) UserByID(_ context.Context, _ int) (*models.User, error) {
	return m.user, m.userErr
}

func (m *mockAuth) IssueVisitCount(count int) (string, error) {
	m.lastVisitIssue = count
	return m.visitToken, m.visitIssueErr
}

func (m *mockAuth) ParseVisitCount(string) (int, error) {
	return m.visitCount, m.visitParseErr
}

type mockNews struct {
	listResp  []models.News
	listErr   error
	getResp   *models.News
	getErr    error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	lastViewerID    int
	lastOwnerID     int
	lastNewsID      int
	lastInput       service.NewsInput
	deleteCalls     int
	lastDeleteID    int
	lastDeleteOwner int
}

func (m *mockNews) List(_ context.Context, viewerID int) ([]models.News, error) {
	m.lastViewerID = viewerID
	return m.listResp, m.listErr
}

func (m *mockNews) Get(_ context.Context, id, ownerID int) (*models.News, error) {
	m.lastNewsID = id
	m.lastOwnerID = ownerID
	return m.getResp, m.getErr
}

func (m *mockNews) Create(_ context.Context, ownerID int, in service.NewsInput) (int, error) {
	m.lastOwnerID = ownerID
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockNews) Update(_ context.Context, id, ownerID int, in service.NewsInput) error {
	m.lastNewsID = id
	m.lastOwnerID = ownerID
	m.lastInput = in
	return m.updateErr
}

func (m *mockNews) Delete(_ context.Context, id, ownerID int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	m.lastDeleteOwner = ownerID
	return m.deleteErr
}

type mockWeather struct {
	report   service.WeatherReport
	err      error
	lastCity string
}

func (m *mockWeather) Current(_ context.Context, city string) (service.WeatherReport, error) {
	m.lastCity = city
	return m.report, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, cfg Config) *gin.Engine {
	h := NewHandler(s, nil, cfg)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
