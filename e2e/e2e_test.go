package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/anupamd/mudra/internal/actuator"
	"github.com/anupamd/mudra/internal/detector"
	"github.com/anupamd/mudra/internal/dispatch"
	"github.com/anupamd/mudra/internal/gesture"
	"github.com/anupamd/mudra/internal/server"
	"github.com/anupamd/mudra/internal/store"
)

// TestE2E_GestureToCommand walks one frame sequence through the whole
// stack: classification, debounced dispatch, event persistence and the
// HTTP surface.
func TestE2E_GestureToCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "mudra.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	mock := actuator.NewMock()
	mock.Quiet = true

	dispatcher := dispatch.NewDispatcher(mock, dispatch.DefaultMinInterval, map[string]string{
		"five": "lights_on",
		"fist": "stop",
	})

	feed := server.NewGestureFeed()
	dispatcher.OnEmit = func(e dispatch.Emission) {
		feed.Publish(e)
		s.Events().Create(&store.Event{
			Combined:  e.Combined,
			Command:   e.Command,
			CreatedAt: e.At,
		})
	}

	srv := server.New(server.Config{Store: s, Feed: feed})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/feed"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for feed.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("websocket client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	classifier := gesture.NewClassifier(gesture.DefaultThresholds())

	t.Run("ClassifyAndDispatch", func(t *testing.T) {
		now := time.Now()
		frames := []struct {
			hand  detector.HandLandmarks
			delay time.Duration
			reset bool
		}{
			{detector.OpenHandLandmarks(), 0, false},
			{detector.OpenHandLandmarks(), 100 * time.Millisecond, false},
			// Hand left the frame between poses; tracking starts fresh
			{detector.FistLandmarks(), 700 * time.Millisecond, true},
		}

		for _, f := range frames {
			if f.reset {
				classifier.ResetTracking()
			}
			hand := f.hand
			result := classifier.ClassifyWithDirection(&hand)
			if _, err := dispatcher.Offer(result.Combined, now.Add(f.delay)); err != nil {
				t.Fatalf("Offer() error = %v", err)
			}
		}

		sent := mock.Sent()
		if len(sent) != 2 {
			t.Fatalf("expected 2 commands, got %d: %v", len(sent), sent)
		}
		if sent[0] != "lights_on" || sent[1] != "stop" {
			t.Errorf("unexpected commands: %v", sent)
		}
	})

	t.Run("FeedReceivesEmissions", func(t *testing.T) {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))

		var seen []string
		for i := 0; i < 2; i++ {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				t.Fatalf("websocket read error = %v", err)
			}
			var m struct {
				Command string `json:"command"`
			}
			if err := json.Unmarshal(msg, &m); err != nil {
				t.Fatalf("decode feed message: %v", err)
			}
			seen = append(seen, m.Command)
		}

		if seen[0] != "lights_on" || seen[1] != "stop" {
			t.Errorf("unexpected feed messages: %v", seen)
		}
	})

	t.Run("EventsRecorded", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/events")
		if err != nil {
			t.Fatalf("list events error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}

		var listResp struct {
			Events []struct {
				Combined string `json:"combined"`
				Command  string `json:"command"`
			} `json:"events"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			t.Fatalf("decode events: %v", err)
		}

		if len(listResp.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(listResp.Events))
		}
		// Newest first
		if listResp.Events[0].Combined != "fist" {
			t.Errorf("expected fist first, got %s", listResp.Events[0].Combined)
		}
	})

	t.Run("HealthStillOK", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after workflow")
		}
	})
}

// TestE2E_SettingsRoundTrip saves calibration settings through the API
// and reads them back from the store.
func TestE2E_SettingsRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	s, err := store.New(filepath.Join(tmpDir, "mudra.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	srv := server.New(server.Config{Store: s})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/settings/gestures.pinch",
		strings.NewReader(`{"value":"0.045"}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("put setting error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	value, err := s.Settings().Get("gestures.pinch")
	if err != nil {
		t.Fatalf("settings get error = %v", err)
	}
	if value != "0.045" {
		t.Errorf("expected 0.045, got %s", value)
	}
}
