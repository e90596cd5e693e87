package random

import (
	"crypto/rand"
	"math/big"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// caseIDLength keeps case IDs short enough to read aloud from a log line.
const caseIDLength = 8

// Letters returns n letters picked uniformly from the ASCII alphabet.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	alphabetSize := big.NewInt(int64(len(allowedLetters)))
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// CaseID identifies one exploration run in the logs.
func CaseID() (string, error) {
	return Letters(caseIDLength)
}
