package policy

// Outcome は判定結果の種別。
type Outcome int

const (
	// OutcomeReject は拒否
	OutcomeReject Outcome = iota
	// OutcomeAccept は許可
	OutcomeAccept
	// OutcomeNoop は判定なし（フロントエンドの処理を継続させる）
	OutcomeNoop
)

// String はログ・メトリクス用の名前を返す。
func (o Outcome) String() string {
	switch o {
	case OutcomeAccept:
		return "accept"
	case OutcomeReject:
		return "reject"
	case OutcomeNoop:
		return "noop"
	default:
		return "unknown"
	}
}

// Decision は1リクエストに対する判定。
// VlanIDは有線のAcceptでのみ設定され、Credentialは無線のAcceptでのみ設定される。
type Decision struct {
	Outcome    Outcome
	VlanID     *int
	Credential string
	Reason     string

	// QuarantineVlan は拒否時に隔離VLANとして名指しされたVLAN（ログと隔離応答用）
	QuarantineVlan *int
}

// IsAccept は許可判定かどうかを返す。
func (d *Decision) IsAccept() bool {
	return d.Outcome == OutcomeAccept
}

// Config はポリシーが参照する起動時設定。
type Config struct {
	DefaultOkVlan  int
	DefaultNokVlan int
	MacAutoCapture bool
}

// AcceptVLAN はVLAN付きの許可判定を生成する。
func AcceptVLAN(vlan int, reason string) *Decision {
	return &Decision{Outcome: OutcomeAccept, VlanID: &vlan, Reason: reason}
}

// AcceptCredential は認証情報付きの許可判定を生成する。
func AcceptCredential(credential, reason string) *Decision {
	return &Decision{Outcome: OutcomeAccept, Credential: credential, Reason: reason}
}

// Reject は拒否判定を生成する。
func Reject(reason string) *Decision {
	return &Decision{Outcome: OutcomeReject, Reason: reason}
}

// RejectQuarantine は隔離VLANを名指しする拒否判定を生成する。
func RejectQuarantine(vlan int, reason string) *Decision {
	return &Decision{Outcome: OutcomeReject, QuarantineVlan: &vlan, Reason: reason}
}

// Noop は判定なしを生成する。
func Noop(reason string) *Decision {
	return &Decision{Outcome: OutcomeNoop, Reason: reason}
}
