// Package logging は判定ログで共有する属性とマスキングを提供する。
package logging

import (
	"log/slog"
	"strings"
)

// Masker はMACアドレスとユーザー名をログ用に伏せる。
// nilのMaskerはマスキング無効として振る舞う。
type Masker struct {
	enabled bool
}

// NewMasker はMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

func (m *Masker) on() bool { return m != nil && m.enabled }

// MAC はOUI（先頭3オクテット）だけを残す。aa:bb:cc:dd:ee:ff → aa:bb:cc:**:**:**
// 正規形でない値は先頭8文字を残す。
func (m *Masker) MAC(mac string) string {
	if !m.on() {
		return mac
	}
	octets := strings.Split(mac, ":")
	if len(octets) != 6 {
		return maskMiddle(mac, 8, 0)
	}
	for i := 3; i < 6; i++ {
		octets[i] = strings.Repeat("*", len(octets[i]))
	}
	return strings.Join(octets, ":")
}

// User は先頭2文字と末尾1文字を残す。alice → al**e
func (m *Masker) User(name string) string {
	if !m.on() {
		return name
	}
	return maskMiddle(name, 2, 1)
}

// MACAttr はmac属性を返す
func (m *Masker) MACAttr(mac string) slog.Attr {
	return slog.String(FieldMAC, m.MAC(mac))
}

// UserAttr はuser属性を返す
func (m *Masker) UserAttr(name string) slog.Attr {
	return slog.String(FieldUser, m.User(name))
}

// maskMiddle は先頭head文字と末尾tail文字以外を*に置き換える。
// 文字数がhead+tail以下なら何もしない。
func maskMiddle(s string, head, tail int) string {
	r := []rune(s)
	if len(r) <= head+tail {
		return s
	}
	for i := head; i < len(r)-tail; i++ {
		r[i] = '*'
	}
	return string(r)
}
