package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/engine"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/event"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/policy"
	radiuspkg "github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/radius"
	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const wiredBody = `{
	"NAS-IP-Address": {"type": "ipaddr", "value": ["10.1.0.1"]},
	"NAS-Port-Id": {"type": "string", "value": ["GigabitEthernet1/0/3"]},
	"Calling-Station-Id": {"type": "string", "value": ["aa-bb-cc-00-00-01"]}
}`

func doRequest(router http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleRadius(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		phase      event.Phase
		decision   *policy.Decision
		opts       radiuspkg.EncodeOptions
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "wired accept",
			path:       "/radius/post-auth",
			phase:      event.PhasePostAuth,
			decision:   policy.AcceptVLAN(10, policy.ReasonKnownDevice),
			wantStatus: http.StatusOK,
			wantBody: map[string]string{
				"reply:Tunnel-Type":             "VLAN",
				"reply:Tunnel-Medium-Type":      "IEEE-802",
				"reply:Tunnel-Private-Group-Id": "10",
			},
		},
		{
			name:       "wireless accept",
			path:       "/radius/authorize",
			phase:      event.PhaseAuthorize,
			decision:   policy.AcceptCredential("0123456789ABCDEF0123456789ABCDEF", policy.ReasonKnownDevice),
			wantStatus: http.StatusOK,
			wantBody: map[string]string{
				"control:NT-Password": "0123456789ABCDEF0123456789ABCDEF",
			},
		},
		{
			name:       "reject",
			path:       "/radius/post-auth",
			phase:      event.PhasePostAuth,
			decision:   policy.Reject(policy.ReasonPortDisabled),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "quarantine accept",
			path:       "/radius/post-auth",
			phase:      event.PhasePostAuth,
			decision:   policy.RejectQuarantine(99, policy.ReasonUnknownDevice),
			opts:       radiuspkg.EncodeOptions{QuarantineOnReject: true},
			wantStatus: http.StatusOK,
			wantBody: map[string]string{
				"reply:Tunnel-Type":             "VLAN",
				"reply:Tunnel-Medium-Type":      "IEEE-802",
				"reply:Tunnel-Private-Group-Id": "99",
			},
		},
		{
			name:       "noop",
			path:       "/radius/authorize",
			phase:      event.PhaseAuthorize,
			decision:   policy.Noop(policy.ReasonPhaseNotHandled),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "accounting",
			path:       "/radius/accounting",
			phase:      event.PhaseAccounting,
			decision:   policy.Noop(policy.ReasonAccountingAcknowledged),
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProc := engine.NewMockProcessor(ctrl)
			mockProc.EXPECT().Process(gomock.Any(), tt.phase, gomock.Any()).Return(tt.decision)

			router := NewRouter(NewHandler(mockProc, tt.opts, nil), nil)
			w := doRequest(router, http.MethodPost, tt.path, wiredBody, nil)

			if w.Code != tt.wantStatus {
				t.Fatalf("Status code = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody == nil {
				return
			}
			var got map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if len(got) != len(tt.wantBody) {
				t.Errorf("body = %v, want %v", got, tt.wantBody)
			}
			for k, v := range tt.wantBody {
				if got[k] != v {
					t.Errorf("body[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestHandleRadius_PassesAttributesAndTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProc := engine.NewMockProcessor(ctrl)
	mockProc.EXPECT().Process(gomock.Any(), event.PhasePostAuth, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.Phase, attrs map[string]string) *policy.Decision {
			if got := logging.TraceID(ctx); got != "trace-abc" {
				t.Errorf("trace id = %q, want %q", got, "trace-abc")
			}
			if attrs[event.AttrNASPortID] != "GigabitEthernet1/0/3" {
				t.Errorf("NAS-Port-Id = %q", attrs[event.AttrNASPortID])
			}
			return policy.Reject(policy.ReasonUnknownDevice)
		})

	router := NewRouter(NewHandler(mockProc, radiuspkg.EncodeOptions{}, nil), nil)
	w := doRequest(router, http.MethodPost, "/radius/post-auth", wiredBody, map[string]string{"X-Trace-ID": "trace-abc"})

	if w.Header().Get("X-Trace-ID") != "trace-abc" {
		t.Errorf("X-Trace-ID = %q, want %q", w.Header().Get("X-Trace-ID"), "trace-abc")
	}
}

func TestHandleRadius_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Processは呼ばれない
	router := NewRouter(NewHandler(engine.NewMockProcessor(ctrl), radiuspkg.EncodeOptions{}, nil), nil)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"invalid json", "/radius/post-auth", `{"User-Name":`, http.StatusBadRequest},
		{"unknown phase", "/radius/session", wiredBody, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, tt.path, tt.body, map[string]string{"X-Trace-ID": "trace-1"})

			if w.Code != tt.wantStatus {
				t.Fatalf("Status code = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != httputil.ContentType {
				t.Errorf("Content-Type = %q, want %q", ct, httputil.ContentType)
			}
			var problem httputil.ProblemDetail
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if problem.Status != tt.wantStatus {
				t.Errorf("problem.Status = %d, want %d", problem.Status, tt.wantStatus)
			}
			if problem.Instance != "trace-1" {
				t.Errorf("problem.Instance = %q, want %q", problem.Instance, "trace-1")
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(NewHandler(engine.NewMockProcessor(ctrl), radiuspkg.EncodeOptions{}, nil), nil)
	w := doRequest(router, http.MethodGet, "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want %d", w.Code, http.StatusOK)
	}
	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want %q", resp.Status, "ok")
	}
}

// pingerFunc はPingerの関数アダプタ
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandleHealth_Directory(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"reachable", nil, http.StatusOK},
		{"unreachable", errors.New("connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := pingerFunc(func(context.Context) error { return tt.pingErr })
			router := NewRouter(NewHandler(engine.NewMockProcessor(ctrl), radiuspkg.EncodeOptions{}, pinger), nil)
			w := doRequest(router, http.MethodGet, "/health", "", nil)

			if w.Code != tt.wantStatus {
				t.Errorf("Status code = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("authsrv_decisions_total 0\n"))
	})
	h := NewHandler(engine.NewMockProcessor(ctrl), radiuspkg.EncodeOptions{}, nil)

	w := doRequest(NewRouter(h, metricsHandler), http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "authsrv_decisions_total") {
		t.Errorf("GET /metrics = %d %q", w.Code, w.Body.String())
	}

	w = doRequest(NewRouter(h, nil), http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /metrics without handler = %d, want %d", w.Code, http.StatusNotFound)
	}
}
