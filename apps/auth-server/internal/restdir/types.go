package restdir

// HTTPヘッダ名
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// 422応答のProblemDetail.Type。これ以外の422は登録拒否として扱う。
const (
	ProblemTypePoolExhausted = "urn:portauth:pool-exhausted"
	ProblemTypeQuotaExceeded = "urn:portauth:quota-exceeded"
)

// createInterfaceRequest はPOST /interfaces のリクエストボディ
type createInterfaceRequest struct {
	MAC         string `json:"mac"`
	Owner       string `json:"owner"`
	PoolHint    string `json:"pool_hint,omitempty"`
	MaxPerOwner int    `json:"max_per_owner,omitempty"`
}

// assignIPv4Request はPOST /interfaces/{mac}/ipv4 のリクエストボディ
type assignIPv4Request struct {
	PoolHint string `json:"pool_hint"`
}
