package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/lp_wave/internal/domain"
	"github.com/vitos/lp_wave/internal/usecase"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*httptest.Server, *usecase.SessionService) {
	t.Helper()
	require.NoError(t, InitTemplates())

	sessions := usecase.NewSessionService(nil, usecase.SimulatorConfig{
		TickInterval: time.Hour,
		Params:       domain.DefaultParams(),
	}, zap.NewNop())
	srv := NewServer(Options{
		Port:            0,
		BannerText:      "STILL IN DEVELOPMENT",
		DonationAddress: "donate-here",
	}, sessions, zap.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		sessions.CloseAll()
	})
	return ts, sessions
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPages(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "Fees earned"},
		{"/curve", http.StatusOK, "How the curve works"},
		{"/strategies/bid-ask", http.StatusOK, "Coming soon"},
		{"/strategies/moon", http.StatusNotFound, ""},
		{"/nowhere", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.contains != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), tt.contains)
				assert.Contains(t, string(body), "STILL IN DEVELOPMENT")
			}
		})
	}
}

func TestSessionAPI(t *testing.T) {
	ts, sessions := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[sessionResponse](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Welcome LPs", created.Frame.Heading)
	assert.Equal(t, 1, sessions.Count())

	cmdURL := ts.URL + "/api/sessions/" + created.ID + "/commands"

	resp = postJSON(t, cmdURL, `{"op":"bins","value":30}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, cmdURL, `{"op":"mode","mode":"bid"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.ModeBid, decode[sessionResponse](t, resp).Frame.Mode)

	resp = postJSON(t, cmdURL, `{"op":"start"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[sessionResponse](t, resp).Frame.Wave.Animating)

	resp = postJSON(t, cmdURL, `{"op":"amount","value":9000}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, decode[errorResponse](t, resp).Error, "locked")

	resp = postJSON(t, cmdURL, `{"op":"mode","mode":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, cmdURL, `{"op":"jump"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, cmdURL, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	get, err := http.Get(ts.URL + "/api/sessions/" + created.ID)
	require.NoError(t, err)
	defer get.Body.Close()
	require.Equal(t, http.StatusOK, get.StatusCode)
	assert.Equal(t, 19, decode[sessionResponse](t, get).Frame.Wave.Position)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+created.ID, nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)
	assert.Equal(t, 0, sessions.Count())

	missing, err := http.Get(ts.URL + "/api/sessions/" + created.ID)
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestRunsAndDonation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/runs?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]domain.RunRecord](t, resp))

	bad, err := http.Get(ts.URL + "/api/runs?limit=many")
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	don, err := http.Get(ts.URL + "/api/donation")
	require.NoError(t, err)
	defer don.Body.Close()
	assert.Equal(t, "donate-here", decode[map[string]string](t, don)["address"])
}

func readEnvelope(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg envelope
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_RoundTrip(t *testing.T) {
	ts, sessions := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	first := readEnvelope(t, conn)
	require.Equal(t, "frame", first.Type)
	require.NotNil(t, first.Frame)
	assert.Equal(t, domain.ModeNone, first.Frame.Mode)
	assert.Equal(t, 1, sessions.Count())

	require.NoError(t, conn.WriteJSON(domain.Command{Op: domain.OpMode, Mode: "ask"}))
	msg := readEnvelope(t, conn)
	require.Equal(t, "frame", msg.Type)
	assert.Equal(t, domain.ModeAsk, msg.Frame.Mode)
	assert.Equal(t, first.Session, msg.Session)

	require.NoError(t, conn.WriteJSON(domain.Command{Op: "fly"}))
	msg = readEnvelope(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "unknown command")

	// a connection-owned session goes away with the connection
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return sessions.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocket_ExistingSession(t *testing.T) {
	ts, sessions := newTestServer(t)
	sim := sessions.Create()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + sim.ID()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	first := readEnvelope(t, conn)
	assert.Equal(t, sim.ID(), first.Session)

	// changes made elsewhere are pushed too
	require.NoError(t, sim.SetMode(domain.ModeSpots))
	msg := readEnvelope(t, conn)
	assert.Equal(t, domain.ModeSpots, msg.Frame.Mode)

	require.NoError(t, conn.Close())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, sessions.Count())

	_, resp, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(ts.URL, "http")+"/ws?session=missing", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
