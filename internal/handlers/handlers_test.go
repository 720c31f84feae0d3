package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmoran14/buddies-cup/internal/config"
	"github.com/dmoran14/buddies-cup/internal/models"
)

func loginApp() *fiber.App {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TripPassword:  "trip-pass",
		AdminPassword: "admin-pass",
	}
	app := fiber.New()
	app.Post("/api/v1/auth/login", Login(cfg))
	return app
}

func postLogin(t *testing.T, app *fiber.App, password string) (int, LoginResponse) {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out LoginResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestLogin(t *testing.T) {
	app := loginApp()

	status, out := postLogin(t, app, "admin-pass")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", out.Role)
	assert.NotEmpty(t, out.Token)

	status, out = postLogin(t, app, "trip-pass")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "viewer", out.Role)

	status, _ = postLogin(t, app, "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = postLogin(t, app, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func oddsApp() *fiber.App {
	app := fiber.New()
	app.Get("/odds/matchup", GetMatchupOdds())
	app.Get("/odds/team", GetTeamOdds())
	app.Get("/odds/tease", GetTeaseOdds())
	return app
}

func getJSON(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		_ = json.Unmarshal(raw, out)
	}
	return resp.StatusCode
}

func TestGetMatchupOdds(t *testing.T) {
	app := oddsApp()

	var line LineResponse
	status := getJSON(t, app, "/odds/matchup?hcp_a=4&hcp_b=23", &line)
	require.Equal(t, fiber.StatusOK, status)

	// The 4 is a massive underdog to the 23 under net scoring.
	assert.Less(t, line.AWinPct, 1.0)
	assert.Positive(t, line.AMoneyline)
	assert.Negative(t, line.BMoneyline)
	assert.NotEmpty(t, line.ADisplay)
	assert.Equal(t, byte('+'), line.ADisplay[0])

	// Missing params are rejected.
	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/odds/matchup?hcp_a=4", nil))
}

func TestGetMatchupOddsPickemDisplaysEven(t *testing.T) {
	app := oddsApp()

	var line LineResponse
	status := getJSON(t, app, "/odds/matchup?hcp_a=10&hcp_b=10", &line)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, -105, line.AMoneyline)
	assert.Equal(t, "EVEN", line.ADisplay)
	assert.Equal(t, "EVEN", line.BDisplay)
}

func TestGetTeamOdds(t *testing.T) {
	app := oddsApp()

	var out struct {
		EffectiveA int          `json:"effective_a"`
		EffectiveB int          `json:"effective_b"`
		Line       LineResponse `json:"line"`
	}
	status := getJSON(t, app, "/odds/team?a1=10&a2=20&b1=5&b2=8", &out)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 14, out.EffectiveA) // 10*0.6 + 20*0.4
	assert.Equal(t, 6, out.EffectiveB)  // 5*0.6 + 8*0.4
	// The higher effective handicap side is the favorite.
	assert.Greater(t, out.Line.AWinPct, out.Line.BWinPct)

	assert.Equal(t, fiber.StatusBadRequest, getJSON(t, app, "/odds/team?a1=10&a2=20&b1=5", nil))
}

func TestGetTeaseOddsValidation(t *testing.T) {
	app := oddsApp()

	assert.Equal(t, fiber.StatusOK,
		getJSON(t, app, "/odds/tease?hcp_a=10&hcp_b=12&shift=3&bet_type=front", nil))
	assert.Equal(t, fiber.StatusBadRequest,
		getJSON(t, app, "/odds/tease?hcp_a=10&hcp_b=12&shift=9", nil))
	assert.Equal(t, fiber.StatusBadRequest,
		getJSON(t, app, "/odds/tease?hcp_a=10&hcp_b=12&shift=2&bet_type=sideways", nil))
}

func TestWinnings(t *testing.T) {
	side1 := uuid.New()
	side2 := uuid.New()
	bet := models.Bet{
		Side1PlayerID:  side1,
		Side2PlayerID:  side2,
		Amount:         decimal.NewFromInt(30),
		Side1Moneyline: -150,
		Side2Moneyline: 130,
	}

	// Favorite wins: staked 30 at -150 to win 20.
	bet.WinnerPlayerID = &side1
	assert.True(t, winnings(bet).Equal(decimal.RequireFromString("20")),
		"got %s", winnings(bet))

	// Underdog wins: 30 at +130 pays 39.
	bet.WinnerPlayerID = &side2
	assert.True(t, winnings(bet).Equal(decimal.RequireFromString("39")),
		"got %s", winnings(bet))
}
