package model

// RadiusClient はRADIUSパケットを送ってくるNASの登録レコード。
// Valkeyのハッシュ client:{ip} の secret / name フィールドに対応する。
type RadiusClient struct {
	IP     string `json:"ip"`
	Secret string `json:"secret"`
	// Name はNAS-Identifierと同じ値で登録する
	Name string `json:"name"`
}
