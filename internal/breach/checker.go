// Package breach implements the local breach-exposure check.
//
// This is deliberately an offline check against an embedded list of the most
// commonly breached passwords. No network lookup is performed; the count is a
// coarse, order-of-magnitude exposure figure rather than a live database hit.
package breach

import "strings"

// Result describes the outcome of a local breach check.
type Result struct {
	Breached bool   `json:"breached"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// commonPasswords maps frequently breached passwords to approximate
// exposure counts, descending from the perennial worst offenders.
var commonPasswords = map[string]int{
	"123456":      37359195,
	"password":    9545824,
	"123456789":   16629796,
	"12345678":    5206267,
	"12345":       2447886,
	"qwerty":      10713794,
	"abc123":      4503968,
	"111111":      4947560,
	"password1":   2413945,
	"iloveyou":    2330807,
	"1234567":     3752262,
	"123123":      3711748,
	"admin":       1936856,
	"welcome":     1333265,
	"monkey":      1124157,
	"login":       971372,
	"dragon":      1053602,
	"letmein":     926602,
	"football":    872511,
	"princess":    847574,
	"sunshine":    827575,
	"master":      822716,
	"shadow":      791097,
	"superman":    653512,
	"qwerty123":   645133,
	"baseball":    612562,
	"trustno1":    558209,
	"hello":       541779,
	"freedom":     530913,
	"whatever":    513537,
	"qazwsx":      504259,
	"passw0rd":    498062,
	"starwars":    483562,
	"charlie":     478153,
	"donald":      471965,
	"zaq1zaq1":    465098,
	"1q2w3e4r":    452066,
	"batman":      421424,
	"pokemon":     410559,
	"summer":      403852,
	"michael":     401217,
	"000000":      1693642,
	"654321":      966572,
	"696969":      545130,
	"123321":      995321,
	"666666":      810729,
	"121212":      622547,
	"google":      333561,
	"computer":    331979,
	"hunter2":     21093,
	"p@ssw0rd":    76425,
	"changeme":    118652,
	"secret":      209614,
	"access":      201613,
	"root":        159636,
	"guest":       152773,
	"default":     127226,
	"temp123":     43581,
	"welcome1":    339483,
	"password123": 370976,
}

// Check performs the local breach lookup. Matching is case-insensitive,
// mirroring how credential dumps are normalized.
func Check(candidate string) Result {
	count, ok := commonPasswords[strings.ToLower(candidate)]
	if !ok || count == 0 {
		return Result{Breached: false, Count: 0, Message: "not found in local breach corpus"}
	}
	return Result{Breached: true, Count: count, Message: "found in local breach corpus"}
}
