package models

// UnknownSuspect is reported as the most likely suspect while no suspect has been recorded.
const UnknownSuspect = "Desconhecido"

// Suspect is a snapshot of one suspect in the index together with the clues that point to them.
// Clues are ordered newest first.
type Suspect struct {
	Name  string
	Clues []string
}

// Lead is the answer to "who has the most clues against them?".
type Lead struct {
	Name  string
	Count int
}

// Association ties a clue text to a suspect.
type Association struct {
	Suspect string
	Clue    string
}

// Discovery is what a trigger room reveals when it is entered. Clue goes to the clue ledger.
// Associations go to the suspect index and may use a different wording than Clue.
type Discovery struct {
	Clue         string
	Associations []Association
}
