package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"team-portal-service/internal/request"
	"team-portal-service/internal/response"
	"team-portal-service/pkg/config"

	"team-portal-service/internal/handler"
	"team-portal-service/internal/jwt"
	"team-portal-service/internal/repository"
	"team-portal-service/internal/router"
	"team-portal-service/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	pool      *pgxpool.Pool
	server    *httptest.Server
	jwtSecret string
}

func setupE2ETest(t *testing.T) *E2ETestSuite {
	ctx := context.Background()

	cfg, err := config.Load(".env.tests")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := config.MustInitDB(ctx, *cfg)
	require.NoError(t, err)

	cleanupDB(t, pool)

	teamRepo := repository.NewTeamRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	validate := validator.New()

	authService := service.NewAuthService(cfg.JWTSecret)
	teamService := service.NewTeamService(teamRepo, eventRepo)
	scoreService := service.NewScoreService(teamRepo, eventRepo, attendanceRepo)

	teamHandler := handler.NewTeamHandler(teamService, validate)
	leaderboardHandler := handler.NewLeaderboardHandler(scoreService)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRouter(
		teamHandler,
		leaderboardHandler,
		healthHandler,
		authService,
	)

	server := httptest.NewServer(r)

	return &E2ETestSuite{
		pool:      pool,
		server:    server,
		jwtSecret: cfg.JWTSecret,
	}
}

func (s *E2ETestSuite) teardown() {
	cleanupDB(nil, s.pool)
	s.server.Close()
	s.pool.Close()
}

func cleanupDB(t testing.TB, pool *pgxpool.Pool) {
	ctx := context.Background()
	queries := []string{
		"TRUNCATE TABLE team_members CASCADE",
		"TRUNCATE TABLE teams CASCADE",
		"TRUNCATE TABLE attendance CASCADE",
		"TRUNCATE TABLE events CASCADE",
	}

	for _, query := range queries {
		_, err := pool.Exec(ctx, query)
		if t != nil {
			require.NoError(t, err)
		}
	}
}

func (s *E2ETestSuite) seedEvent(t *testing.T, eventID string, start time.Time, maxTeamSize, maxPoints int) {
	t.Helper()
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO events (event_id, start_time, end_time, max_team_size, max_points)
         VALUES ($1, $2, $3, $4, $5)`,
		eventID, start, start.Add(3*time.Hour), maxTeamSize, maxPoints)
	require.NoError(t, err)
}

func (s *E2ETestSuite) seedAttendance(t *testing.T, eventID, studentID, status string, points int) {
	t.Helper()
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO attendance (event_id, student_id, status, points_given)
         VALUES ($1, $2, $3, $4)`,
		eventID, studentID, status, points)
	require.NoError(t, err)
}

func (s *E2ETestSuite) token(t *testing.T, studentID string) string {
	t.Helper()
	token, err := jwt.GenerateToken(studentID, s.jwtSecret)
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) do(t *testing.T, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		require.NoError(t, json.NewEncoder(reqBody).Encode(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func errorCode(t *testing.T, raw map[string]interface{}) string {
	t.Helper()
	errObj, ok := raw["error"].(map[string]interface{})
	require.True(t, ok, "expected error payload, got %v", raw)
	code, _ := errObj["code"].(string)
	return code
}

func TestE2E_TeamFormationFlow(t *testing.T) {
	suite := setupE2ETest(t)
	defer suite.teardown()

	suite.seedEvent(t, "e1", time.Now().Add(time.Hour), 3, 100)

	// A creates "Rockets".
	var created response.TeamResponse
	status := suite.do(t, http.MethodPost, "/team/create", suite.token(t, "A"),
		request.CreateTeamRequest{EventID: "e1", TeamName: "Rockets"}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, created.Team.Members, 1)
	code := created.Team.JoinCode
	require.NotEmpty(t, code)

	// B and C join with the code.
	for _, student := range []string{"B", "C"} {
		var joined response.TeamResponse
		status = suite.do(t, http.MethodPost, "/team/join", suite.token(t, student),
			request.JoinTeamRequest{EventID: "e1", JoinCode: code}, &joined)
		require.Equal(t, http.StatusOK, status)
	}

	// D bounces off the full team.
	var failed map[string]interface{}
	status = suite.do(t, http.MethodPost, "/team/join", suite.token(t, "D"),
		request.JoinTeamRequest{EventID: "e1", JoinCode: code}, &failed)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "TEAM_FULL", errorCode(t, failed))

	// A kicks B; B is free to form a new team.
	var kicked response.TeamResponse
	status = suite.do(t, http.MethodPost, "/team/kick", suite.token(t, "A"),
		request.KickMemberRequest{TeamID: created.Team.TeamID, StudentID: "B"}, &kicked)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, kicked.Team.Members, 2)

	var second response.TeamResponse
	status = suite.do(t, http.MethodPost, "/team/create", suite.token(t, "B"),
		request.CreateTeamRequest{EventID: "e1", TeamName: "Boosters"}, &second)
	require.Equal(t, http.StatusCreated, status)
}

func TestE2E_LeaderCannotLeave_MemberCan(t *testing.T) {
	suite := setupE2ETest(t)
	defer suite.teardown()

	suite.seedEvent(t, "e1", time.Now().Add(time.Hour), 3, 100)

	var created response.TeamResponse
	status := suite.do(t, http.MethodPost, "/team/create", suite.token(t, "A"),
		request.CreateTeamRequest{EventID: "e1", TeamName: "Rockets"}, &created)
	require.Equal(t, http.StatusCreated, status)

	var joined response.TeamResponse
	status = suite.do(t, http.MethodPost, "/team/join", suite.token(t, "B"),
		request.JoinTeamRequest{EventID: "e1", JoinCode: created.Team.JoinCode}, &joined)
	require.Equal(t, http.StatusOK, status)

	var failed map[string]interface{}
	status = suite.do(t, http.MethodPost, "/team/leave", suite.token(t, "A"),
		request.LeaveTeamRequest{TeamID: created.Team.TeamID}, &failed)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "LEADER_CANNOT_LEAVE", errorCode(t, failed))

	var left response.TeamResponse
	status = suite.do(t, http.MethodPost, "/team/leave", suite.token(t, "B"),
		request.LeaveTeamRequest{TeamID: created.Team.TeamID}, &left)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, left.Team.Members, 1)
}

func TestE2E_FrozenEvent(t *testing.T) {
	suite := setupE2ETest(t)
	defer suite.teardown()

	// Already started an hour ago.
	suite.seedEvent(t, "started", time.Now().Add(-time.Hour), 3, 100)

	var failed map[string]interface{}
	status := suite.do(t, http.MethodPost, "/team/create", suite.token(t, "A"),
		request.CreateTeamRequest{EventID: "started", TeamName: "Latecomers"}, &failed)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EVENT_STARTED", errorCode(t, failed))
}

func TestE2E_Leaderboard(t *testing.T) {
	suite := setupE2ETest(t)
	defer suite.teardown()

	suite.seedEvent(t, "e1", time.Now().Add(time.Hour), 3, 100)

	var rockets response.TeamResponse
	status := suite.do(t, http.MethodPost, "/team/create", suite.token(t, "A"),
		request.CreateTeamRequest{EventID: "e1", TeamName: "Rockets"}, &rockets)
	require.Equal(t, http.StatusCreated, status)
	for _, student := range []string{"B", "C"} {
		status = suite.do(t, http.MethodPost, "/team/join", suite.token(t, student),
			request.JoinTeamRequest{EventID: "e1", JoinCode: rockets.Team.JoinCode}, nil)
		require.Equal(t, http.StatusOK, status)
	}

	var comets response.TeamResponse
	status = suite.do(t, http.MethodPost, "/team/create", suite.token(t, "X"),
		request.CreateTeamRequest{EventID: "e1", TeamName: "Comets"}, &comets)
	require.Equal(t, http.StatusCreated, status)

	// Rockets: best present member has 40 (not the 65 sum).
	suite.seedAttendance(t, "e1", "A", "present", 40)
	suite.seedAttendance(t, "e1", "B", "absent", 0)
	suite.seedAttendance(t, "e1", "C", "present", 25)
	suite.seedAttendance(t, "e1", "X", "present", 55)

	var leaderboard response.LeaderboardResponse
	status = suite.do(t, http.MethodGet, "/event/leaderboard?event_id=e1", suite.token(t, "A"), nil, &leaderboard)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 2, leaderboard.Count)

	assert.Equal(t, "Comets", leaderboard.Standings[0].TeamName)
	assert.Equal(t, 55, leaderboard.Standings[0].Score)
	assert.Equal(t, "Rockets", leaderboard.Standings[1].TeamName)
	assert.Equal(t, 40, leaderboard.Standings[1].Score)

	var detail response.TeamDetailResponse
	status = suite.do(t, http.MethodGet,
		fmt.Sprintf("/team/get?team_id=%s", rockets.Team.TeamID), suite.token(t, "A"), nil, &detail)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 40, detail.Team.Score)
	require.Len(t, detail.Team.MemberScores, 3)
}

func TestE2E_Unauthorized(t *testing.T) {
	suite := setupE2ETest(t)
	defer suite.teardown()

	status := suite.do(t, http.MethodPost, "/team/create", "",
		request.CreateTeamRequest{EventID: "e1", TeamName: "Rockets"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
