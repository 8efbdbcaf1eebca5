package restdir

import (
	"errors"
	"fmt"

	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
)

// ErrInvalidResponse は200応答の本文がJSONとして読めないことを表す
var ErrInvalidResponse = errors.New("directory api: undecodable response body")

// UpstreamError は上流ディレクトリAPI呼び出しの失敗。
// Statusが0なら応答を受け取れていない（接続失敗・タイムアウト）。
type UpstreamError struct {
	Status  int
	Problem *httputil.ProblemDetail
	Cause   error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("directory api: no response: %v", e.Cause)
	case e.Problem != nil && e.Problem.Detail != "":
		return fmt.Sprintf("directory api: %d %s", e.Status, e.Problem.Detail)
	default:
		return fmt.Sprintf("directory api: %d", e.Status)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Cause }
