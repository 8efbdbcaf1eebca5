// Package restdir は在庫管理システムのREST APIをディレクトリバックエンドとして利用する。
package restdir

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/config"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/directory"
	"github.com/oyaguma3/portauth-radius-server/apps/auth-server/internal/logging"
	"github.com/oyaguma3/portauth-radius-server/pkg/apperr"
	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
	"github.com/oyaguma3/portauth-radius-server/pkg/model"
)

// Client はdirectory.Storeの上流API実装
type Client struct {
	httpClient *resty.Client
}

// NewClient は新しいClientを生成する。
// 呼び出し期限はdirectory.Adapterがcontextで与えるため、ここでは全体の上限のみ設定する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.DirectoryAPIURL, "/")).
		SetTimeout(cfg.DirectoryTimeout + config.DirectoryAPIConnectTimeout).
		SetHeader(HeaderContentType, ContentTypeJSON)

	return &Client{httpClient: httpClient}
}

// FindNAS はStoreを実装する。
func (c *Client) FindNAS(ctx context.Context, identifier string) (*model.NAS, error) {
	var nas model.NAS
	found, err := c.get(ctx, "/nas/{id}", map[string]string{"id": identifier}, &nas)
	if err != nil || !found {
		return nil, err
	}
	return &nas, nil
}

// FindUser はStoreを実装する。
func (c *Client) FindUser(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	found, err := c.get(ctx, "/users/{name}", map[string]string{"name": name}, &user)
	if err != nil || !found {
		return nil, err
	}
	if user.Name == "" {
		user.Name = name
	}
	return &user, nil
}

// FindInterface はStoreを実装する。
func (c *Client) FindInterface(ctx context.Context, mac string) (*model.Interface, error) {
	var iface model.Interface
	found, err := c.get(ctx, "/interfaces/{mac}", map[string]string{"mac": mac}, &iface)
	if err != nil || !found {
		return nil, err
	}
	if iface.MAC == "" {
		iface.MAC = mac
	}
	return &iface, nil
}

// FindPort はStoreを実装する。policy未設定のポートはNOとして扱う。
func (c *Client) FindPort(ctx context.Context, switchID string, number int) (*model.Port, error) {
	var port model.Port
	found, err := c.get(ctx, "/switches/{id}/ports/{number}",
		map[string]string{"id": switchID, "number": strconv.Itoa(number)}, &port)
	if err != nil || !found {
		return nil, err
	}
	port.SwitchID = switchID
	port.Number = number
	if port.Policy == "" {
		port.Policy = model.PortPolicyNo
	}
	return &port, nil
}

// FindRoomOccupant はStoreを実装する。部屋が無い場合・不在の場合ともに404。
func (c *Client) FindRoomOccupant(ctx context.Context, room string) (*model.User, error) {
	var user model.User
	found, err := c.get(ctx, "/rooms/{room}/occupant", map[string]string{"room": room}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// CreateInterface はStoreを実装する。一意制約違反は409で返される。
func (c *Client) CreateInterface(ctx context.Context, req *directory.RegistrationRequest) (*model.Interface, error) {
	body := &createInterfaceRequest{
		MAC:         req.MAC,
		Owner:       req.Owner,
		PoolHint:    req.PoolHint,
		MaxPerOwner: req.MaxPerOwner,
	}
	resp, err := c.request(ctx).SetBody(body).Post("/interfaces")
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		return decodeInterface(resp.Body())
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", apperr.ErrRegistrationConflict, req.MAC)
	case http.StatusUnprocessableEntity:
		return nil, refusal(resp)
	default:
		return nil, c.apiError(ctx, resp)
	}
}

// AssignIPv4 はStoreを実装する。
func (c *Client) AssignIPv4(ctx context.Context, mac, poolHint string) (*model.Interface, error) {
	resp, err := c.request(ctx).
		SetPathParam("mac", mac).
		SetBody(&assignIPv4Request{PoolHint: poolHint}).
		Post("/interfaces/{mac}/ipv4")
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return decodeInterface(resp.Body())
	case http.StatusNotFound:
		return nil, nil
	case http.StatusUnprocessableEntity:
		return nil, refusal(resp)
	default:
		return nil, c.apiError(ctx, resp)
	}
}

// get はGETリクエストを送信し、200の場合にoutへデコードする。404はfound=false。
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) (bool, error) {
	resp, err := c.request(ctx).SetPathParams(params).Get(path)
	if err != nil {
		return false, &UpstreamError{Cause: err}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return false, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
		}
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, c.apiError(ctx, resp)
	}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.httpClient.R().SetContext(ctx)
	if traceID := logging.TraceID(ctx); traceID != "" {
		req.SetHeader(HeaderTraceID, traceID)
	}
	return req
}

// apiError は想定外のステータスをUpstreamErrorにしてログに記録する。
func (c *Client) apiError(ctx context.Context, resp *resty.Response) *UpstreamError {
	apiErr := &UpstreamError{
		Status:  resp.StatusCode(),
		Problem: httputil.ParseProblemDetail(resp.StatusCode(), resp.Body()),
	}
	slog.Error("directory api error",
		"event_id", "DIRECTORY_API_ERR",
		"trace_id", logging.TraceID(ctx),
		"error", apiErr.Error(),
		"http_status", resp.StatusCode(),
		"latency_ms", resp.Time().Milliseconds(),
	)
	return apiErr
}

// refusal は422応答を登録失敗の種類に変換する。
func refusal(resp *resty.Response) error {
	problem := httputil.ParseProblemDetail(resp.StatusCode(), resp.Body())
	switch problem.Type {
	case ProblemTypePoolExhausted:
		return fmt.Errorf("%w: %s", apperr.ErrPoolExhausted, problem.Detail)
	case ProblemTypeQuotaExceeded:
		return fmt.Errorf("%w: %s", apperr.ErrQuotaExceeded, problem.Detail)
	}
	reason := problem.Detail
	if reason == "" {
		reason = problem.Title
	}
	return &directory.RefusedError{Reason: reason}
}

func decodeInterface(body []byte) (*model.Interface, error) {
	var iface model.Interface
	if err := json.Unmarshal(body, &iface); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return &iface, nil
}

var _ directory.Store = (*Client)(nil)
