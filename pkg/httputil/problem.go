// Package httputil はRFC 7807形式のエラー応答をgin上で扱う。
package httputil

import (
	"encoding/json"
	"net/http"
)

// ContentType はproblem+jsonのメディアタイプ
const ContentType = "application/problem+json"

// ProblemDetail はRFC 7807のエラー本文。
// rlm_restへの応答と、上流ディレクトリAPIのエラー本文の解釈に使う。
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"` // トレースID
}

// New はstatusの標準テキストをTitleにしたProblemDetailを返す。
func New(status int, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// BadRequest は400
func BadRequest(detail string) *ProblemDetail { return New(http.StatusBadRequest, detail) }

// NotFound は404
func NotFound(detail string) *ProblemDetail { return New(http.StatusNotFound, detail) }

// InternalServerError は500
func InternalServerError(detail string) *ProblemDetail {
	return New(http.StatusInternalServerError, detail)
}

// ServiceUnavailable は503
func ServiceUnavailable(detail string) *ProblemDetail {
	return New(http.StatusServiceUnavailable, detail)
}

// ParseProblemDetail は上流のエラー本文を読む。
// problem+jsonでなければ本文をDetailに入れて返す。
func ParseProblemDetail(status int, body []byte) *ProblemDetail {
	var p ProblemDetail
	if err := json.Unmarshal(body, &p); err != nil || p.Status == 0 {
		return New(status, string(body))
	}
	return &p
}
