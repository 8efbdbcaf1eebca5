package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidBody はリクエストボディを属性マップとして解釈できない場合のエラー
var ErrInvalidBody = errors.New("request body is not a valid attribute object")

// rlmValue はrlm_restが送る属性値 {"type":"string","value":["..."]}
type rlmValue struct {
	Type  string            `json:"type"`
	Value []json.RawMessage `json:"value"`
}

// ParseAttributes はrlm_rest形式またはフラットなJSONオブジェクトを属性マップに展開する。
// 複数値の属性は先頭の値のみを使う。
func ParseAttributes(body []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: null", ErrInvalidBody)
	}

	attrs := make(map[string]string, len(raw))
	for name, v := range raw {
		s, ok, err := scalar(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBody, name, err)
		}
		if ok {
			attrs[name] = s
			continue
		}

		var rv rlmValue
		if err := json.Unmarshal(v, &rv); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBody, name, err)
		}
		if len(rv.Value) == 0 {
			continue
		}
		s, ok, err = scalar(rv.Value[0])
		if err != nil || !ok {
			return nil, fmt.Errorf("%w: %s: unsupported value", ErrInvalidBody, name)
		}
		attrs[name] = s
	}
	return attrs, nil
}

// scalar は文字列・数値・真偽値を文字列として返す。オブジェクト・配列ならok=false。
func scalar(v json.RawMessage) (string, bool, error) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return "", false, errors.New("empty value")
	}
	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	case '{', '[':
		return "", false, nil
	case 'n':
		return "", true, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return "", false, err
		}
		return strconv.FormatBool(b), true, nil
	default:
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return "", false, err
		}
		return n.String(), true, nil
	}
}
