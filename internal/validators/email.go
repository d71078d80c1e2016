package validators

import (
	"net"
	"strings"
)

// HasEmailShape é a checagem sintática mínima: algo antes e depois do @.
// O formato fino já é validado pelo binding "email" do gin.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// IsEmailDomainValid confere no DNS se o domínio do e-mail existe mesmo
// (MX, ou A/AAAA como fallback). Usado só no cadastro do barbeiro, para
// barrar typo de domínio na conta que vai receber notificações.
func IsEmailDomainValid(email string) bool {
	if !HasEmailShape(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
