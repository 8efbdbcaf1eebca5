package policy

// 判定理由（無線）
const (
	ReasonUnknownUser         = "unknown user"
	ReasonNoAccess            = "member without valid access"
	ReasonForeignMAC          = "MAC registered to another account"
	ReasonInterfaceDisabled   = "interface disabled"
	ReasonKnownDevice         = "known device"
	ReasonIPv4Reassigned      = "known device, ipv4 reassigned"
	ReasonAutoRegistered      = "auto-registered"
	ReasonAutoRegFailed       = "auto-registration failed"
	ReasonAutoCaptureDisabled = "unknown device, auto-capture disabled"
	ReasonNASNotEligible      = "unknown device, NAS not eligible for auto-capture"
)

// 判定理由（有線）
const (
	ReasonNoAuthRequired                = "no auth required"
	ReasonPortDisabled                  = "port disabled"
	ReasonUnknownRoom                   = "unknown room"
	ReasonNoResident                    = "no resident"
	ReasonResidentNoAccess              = "resident without valid access"
	ReasonUnknownDevice                 = "unknown device"
	ReasonUnknownRoomAndDevice          = "unknown room and device"
	ReasonUnknownDeviceNoResident       = "unknown device and no resident"
	ReasonUnknownDeviceResidentNoAccess = "unknown device and resident without valid access"
	ReasonDeviceDisabled                = "device disabled"
	ReasonVlanOverride                  = "explicit vlan override"
	ReasonFailOpen                      = "unknown NAS, fail-open"
	ReasonNotASwitch                    = "NAS is not a switch"
)

// 判定理由（エンジン）
const (
	ReasonMalformed              = "malformed request"
	ReasonDirectoryUnavailable   = "directory unavailable"
	ReasonPhaseNotHandled        = "phase not handled"
	ReasonAccountingAcknowledged = "accounting acknowledged"
)

// ReasonInvalidPolicy はポートのポリシー値が解釈できない場合の理由
const ReasonInvalidPolicy = "invalid port policy"
