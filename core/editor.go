package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
)

// yesNo is the interpretation of a yes/no answer.
type yesNo int

const (
	answerInvalid yesNo = iota
	answerYes
	answerNo
)

// Editor keywords, compared case-insensitively.
const (
	doneKeyword   = "done"
	cancelKeyword = "cancel"
)

// parseYesNo accepts yes/y and no/n in any case.
func parseYesNo(s string) yesNo {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return answerYes
	case "no", "n":
		return answerNo
	default:
		return answerInvalid
	}
}

// PromptAdditionalCriteria asks whether the user wants to extend the index and,
// if so, appends the categories and criteria they enter. The index is updated
// in place and returned. An invalid answer repeats the whole question.
func PromptAdditionalCriteria(p contract.Prompter, index *schema.CriteriaIndex) (*schema.CriteriaIndex, error) {
	for {
		p.Say("\nWould you like to add any additional criteria? (yes/no)")
		answer, err := p.Ask("")
		if err != nil {
			return index, err
		}

		switch parseYesNo(answer) {
		case answerYes:
			return index, addCriteria(p, index)
		case answerNo:
			p.Say("No additional criteria added.")
			return index, nil
		default:
			p.Say("Invalid input. Please enter 'yes' or 'no'.")
		}
	}
}

// addCriteria reads category/criterion pairs until the user types done or
// declines to continue after a cancel.
func addCriteria(p contract.Prompter, index *schema.CriteriaIndex) error {
	for {
		category, err := p.Ask("Enter the category (or type 'done' to finish): ")
		if err != nil {
			return err
		}
		if strings.EqualFold(category, doneKeyword) {
			p.Say("Finished adding criteria.")
			return nil
		}
		if category == "" {
			p.Say("Name cannot be empty.")
			continue
		}

		criterion, err := p.Ask(fmt.Sprintf("Enter the criterion for '%s': ", category))
		if err != nil {
			return err
		}
		if strings.EqualFold(criterion, cancelKeyword) {
			p.Say("Cancelled adding criteria.")
			response, err := p.Ask("Would you like to add more criteria? (yes/no): ")
			if err != nil {
				return err
			}
			if parseYesNo(response) == answerYes {
				continue
			}
			p.Say("Exiting criteria addition.")
			return nil
		}
		if criterion == "" {
			p.Say("Name cannot be empty.")
			continue
		}

		index.Append(category, criterion)
		p.Sayf("Added '%s' to '%s' category.\n", criterion, category)
	}
}
