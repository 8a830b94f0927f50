package handlers

import "strconv"

// string -> int with a fallback when the value is empty or malformed
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
