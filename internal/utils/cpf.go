package utils

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// CPFDigits strips formatting characters from a CPF, leaving only its digits.
// "111.111.111-11" and "11111111111" normalize to the same key.
func CPFDigits(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// ValidCPFLength reports whether a CPF holds exactly 11 digits once
// formatting is stripped.
func ValidCPFLength(cpf string) bool {
	return len(CPFDigits(cpf)) == 11
}
