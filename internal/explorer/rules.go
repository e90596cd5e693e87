package explorer

import (
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
)

// Rules maps trigger room names to what is found there.
type Rules map[string]models.Discovery

var adventurerRules = Rules{
	mansion.Library:      {Clue: "Um livro rasgado menciona um segredo da família."},
	mansion.Kitchen:      {Clue: "Há uma faca suja de algo suspeito na pia."},
	mansion.Attic:        {Clue: "Pegadas de lama levam até uma janela aberta."},
	mansion.WinterGarden: {Clue: "Uma luva caída perto das flores."},
}

var masterRules = Rules{
	mansion.Library: {
		Clue: "Livro antigo com anotações sobre Blackwood.",
		Associations: []models.Association{
			{Suspect: "Sr. Blackwood", Clue: "Livro antigo com anotações sobre Blackwood."},
		},
	},
	mansion.Kitchen: {
		Clue: "Faca suja com iniciais M.W.",
		Associations: []models.Association{
			{Suspect: "Mary White", Clue: "Faca suja com iniciais M.W."},
			{Suspect: "Mary White", Clue: "Manchas suspeitas na pia."},
		},
	},
	mansion.Attic: {
		Clue: "Pegadas de lama levando à janela do sótão.",
		Associations: []models.Association{
			{Suspect: "Empregada", Clue: "Pegadas de lama no sótão."},
		},
	},
	mansion.WinterGarden: {
		Clue: "Luvas de seda pertencentes à Sra. Green.",
		Associations: []models.Association{
			{Suspect: "Sra. Green", Clue: "Luvas de seda encontradas no jardim."},
		},
	},
}

// RulesFor returns the trigger rooms of level. Novices find nothing.
func RulesFor(level Level) Rules {
	switch level {
	case Adventurer:
		return adventurerRules
	case Master:
		return masterRules
	default:
		return Rules{}
	}
}
