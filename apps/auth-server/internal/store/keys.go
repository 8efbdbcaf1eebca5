package store

import "strconv"

// Valkeyキープレフィックス
const (
	KeyPrefixNAS        = "nas:"             // NAS（ハッシュ: kind, name, ipv4, switch_id）
	KeyPrefixNASIPIndex = "idx:nas:ip:"      // IPv4→NAS名索引（文字列）
	KeyPrefixPort       = "port:"            // ポート（ハッシュ: policy, room, vlan_force）
	KeyPrefixRoom       = "room:"            // 部屋（ハッシュ: occupant）
	KeyPrefixUser       = "user:"            // 利用者（ハッシュ: has_access, pwd_ntlm）
	KeyPrefixInterface  = "iface:"           // インターフェース（ハッシュ: mac, owner, ipv4, active, created_at）
	KeyPrefixUserIfaces = "idx:user:ifaces:" // 利用者→MAC索引（セット）
	KeyPrefixPool       = "pool:"            // 空きIPv4（セット）
	KeyPrefixClient     = "client:"          // RADIUSクライアント設定（ハッシュ: secret, name）
)

func nasKey(name string) string         { return KeyPrefixNAS + name }
func nasIPIndexKey(ip string) string    { return KeyPrefixNASIPIndex + ip }
func roomKey(room string) string        { return KeyPrefixRoom + room }
func userKey(name string) string        { return KeyPrefixUser + name }
func ifaceKey(mac string) string        { return KeyPrefixInterface + mac }
func userIfacesKey(owner string) string { return KeyPrefixUserIfaces + owner }
func poolKey(hint string) string        { return KeyPrefixPool + hint }
func clientKey(ip string) string        { return KeyPrefixClient + ip }

func portKey(switchID string, number int) string {
	return KeyPrefixPort + switchID + ":" + strconv.Itoa(number)
}
