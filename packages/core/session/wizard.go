package session

import (
	"errors"

	"core/models"
)

type WizardState string

const (
	WizardIdle         WizardState = "idle"
	WizardTypeChosen   WizardState = "type_chosen"
	WizardResultChosen WizardState = "result_chosen"
	WizardPlayerChosen WizardState = "player_chosen"
)

// ErrWizardOrder is returned when a selection arrives out of sequence.
var ErrWizardOrder = errors.New("shot selections must be made in order: type, result, player")

// Wizard is the strict linear shot-entry flow. Confirmation is reachable only
// once type, result and player are all set; there are no shortcuts.
type Wizard struct {
	state    WizardState
	shotType models.ShotType
	result   models.ShotResult
	player   string
}

func NewWizard() *Wizard {
	return &Wizard{state: WizardIdle}
}

func (w *Wizard) State() WizardState {
	if w.state == "" {
		return WizardIdle
	}
	return w.state
}

// Selection returns whatever has been chosen so far. Zero values mean the
// step has not been reached.
func (w *Wizard) Selection() (models.ShotType, models.ShotResult, string) {
	return w.shotType, w.result, w.player
}

func (w *Wizard) ChooseType(t models.ShotType) error {
	if w.State() != WizardIdle {
		return ErrWizardOrder
	}
	if !t.Valid() {
		return errors.New("unknown shot type")
	}

	w.state = WizardTypeChosen
	w.shotType = t
	return nil
}

func (w *Wizard) ChooseResult(r models.ShotResult) error {
	if w.State() != WizardTypeChosen {
		return ErrWizardOrder
	}
	if !r.Valid() {
		return errors.New("unknown shot result")
	}

	w.state = WizardResultChosen
	w.result = r
	return nil
}

func (w *Wizard) ChoosePlayer(name string) error {
	if w.State() != WizardResultChosen {
		return ErrWizardOrder
	}
	if name == "" {
		return errors.New("player name is required")
	}

	w.state = WizardPlayerChosen
	w.player = name
	return nil
}

// Back discards the most recent choice: ResultChosen returns to TypeChosen,
// TypeChosen returns to Idle. Other states do not move backward; awaiting
// confirmation is left via Confirm or Cancel.
func (w *Wizard) Back() bool {
	switch w.State() {
	case WizardTypeChosen:
		w.state = WizardIdle
		w.shotType = ""
		return true
	case WizardResultChosen:
		w.state = WizardTypeChosen
		w.result = ""
		return true
	}
	return false
}

// Complete reports whether all three selections are set and the wizard is
// awaiting confirmation.
func (w *Wizard) Complete() bool {
	return w.State() == WizardPlayerChosen
}

// Cancel clears every selection and returns to Idle.
func (w *Wizard) Cancel() {
	w.state = WizardIdle
	w.shotType = ""
	w.result = ""
	w.player = ""
}
