package radius

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/subtle"
	"errors"

	"layeh.com/radius"
	"layeh.com/radius/rfc2869"
)

// CheckMessageAuthenticatorの結果
var (
	ErrMissingMessageAuthenticator = errors.New("radius: Message-Authenticator required but absent")
	ErrInvalidMessageAuthenticator = errors.New("radius: Message-Authenticator mismatch")
)

// CheckMessageAuthenticator はMessage-Authenticator属性を確認する。
// 属性が無い場合、requiredならErrMissingMessageAuthenticator、そうでなければnil。
func CheckMessageAuthenticator(packet *radius.Packet, secret []byte, required bool) error {
	if _, err := rfc2869.MessageAuthenticator_Lookup(packet); err != nil {
		if required {
			return ErrMissingMessageAuthenticator
		}
		return nil
	}
	if !VerifyMessageAuthenticator(packet, secret) {
		return ErrInvalidMessageAuthenticator
	}
	return nil
}

// VerifyMessageAuthenticator はMessage-Authenticator属性を検証する（RFC 3579）。
// 属性値をゼロに置換したパケット全体のHMAC-MD5と比較する。
func VerifyMessageAuthenticator(packet *radius.Packet, secret []byte) bool {
	origMA, err := rfc2869.MessageAuthenticator_Lookup(packet)
	if err != nil || len(origMA) != md5.Size {
		return false
	}

	_ = rfc2869.MessageAuthenticator_Set(packet, make([]byte, md5.Size))
	data, err := packet.MarshalBinary()
	// 元の値を復元
	_ = rfc2869.MessageAuthenticator_Set(packet, origMA)
	if err != nil {
		return false
	}

	mac := hmac.New(md5.New, secret)
	mac.Write(data)
	return hmac.Equal(mac.Sum(nil), origMA)
}

// SetMessageAuthenticator は応答パケットにMessage-Authenticator属性を付与する。
// 計算にはリクエストのAuthenticatorを使用する（RFC 3579 3.2）。
func SetMessageAuthenticator(packet *radius.Packet, secret []byte, requestAuth [16]byte) {
	_ = rfc2869.MessageAuthenticator_Set(packet, make([]byte, md5.Size))

	savedAuth := packet.Authenticator
	packet.Authenticator = requestAuth
	data, err := packet.MarshalBinary()
	packet.Authenticator = savedAuth
	if err != nil {
		return
	}

	mac := hmac.New(md5.New, secret)
	mac.Write(data)
	_ = rfc2869.MessageAuthenticator_Set(packet, mac.Sum(nil))
}

// VerifyAccountingAuthenticator はAccounting-RequestのRequest Authenticatorを検証する（RFC 2866）。
// Authenticator = MD5(Code + ID + Length + 16 zero octets + Attributes + Secret)
func VerifyAccountingAuthenticator(packet *radius.Packet, secret []byte) bool {
	data, err := packet.MarshalBinary()
	if err != nil || len(data) < 20 {
		return false
	}

	var origAuth [16]byte
	copy(origAuth[:], data[4:20])
	copy(data[4:20], make([]byte, 16))

	h := md5.New()
	h.Write(data)
	h.Write(secret)
	return subtle.ConstantTimeCompare(origAuth[:], h.Sum(nil)) == 1
}
