package session

import (
	"errors"
	"testing"

	"core/models"
)

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard()

	if w.State() != WizardIdle {
		t.Fatalf("new wizard state = %s, want idle", w.State())
	}

	if err := w.ChooseType(models.ShotTypeTriple); err != nil {
		t.Fatalf("ChooseType: %v", err)
	}
	if w.State() != WizardTypeChosen {
		t.Errorf("state = %s, want type_chosen", w.State())
	}

	if err := w.ChooseResult(models.ShotResultConvertido); err != nil {
		t.Fatalf("ChooseResult: %v", err)
	}
	if w.State() != WizardResultChosen {
		t.Errorf("state = %s, want result_chosen", w.State())
	}

	if err := w.ChoosePlayer("Ana"); err != nil {
		t.Fatalf("ChoosePlayer: %v", err)
	}
	if !w.Complete() {
		t.Error("wizard not complete after all three selections")
	}

	shotType, result, player := w.Selection()
	if shotType != models.ShotTypeTriple || result != models.ShotResultConvertido || player != "Ana" {
		t.Errorf("Selection() = (%s, %s, %s)", shotType, result, player)
	}
}

func TestWizardLinearity(t *testing.T) {
	// Every path to the confirmation step passes through type, result and
	// player in that order; skipping a step is rejected.
	cases := []struct {
		name string
		op   func(w *Wizard) error
	}{
		{"result before type", func(w *Wizard) error {
			return w.ChooseResult(models.ShotResultConvertido)
		}},
		{"player before type", func(w *Wizard) error {
			return w.ChoosePlayer("Ana")
		}},
		{"player before result", func(w *Wizard) error {
			if err := w.ChooseType(models.ShotTypeDoble); err != nil {
				return err
			}
			return w.ChoosePlayer("Ana")
		}},
		{"double type", func(w *Wizard) error {
			if err := w.ChooseType(models.ShotTypeDoble); err != nil {
				return err
			}
			return w.ChooseType(models.ShotTypeTriple)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWizard()
			if err := tc.op(w); !errors.Is(err, ErrWizardOrder) {
				t.Errorf("got %v, want ErrWizardOrder", err)
			}
			if w.Complete() {
				t.Error("wizard reached confirmation out of order")
			}
		})
	}
}

func TestWizardInvalidValues(t *testing.T) {
	w := NewWizard()

	if err := w.ChooseType("dunk"); err == nil {
		t.Error("unknown shot type accepted")
	}
	if w.State() != WizardIdle {
		t.Errorf("state moved to %s on invalid type", w.State())
	}

	if err := w.ChooseType(models.ShotTypeLibre); err != nil {
		t.Fatal(err)
	}
	if err := w.ChooseResult("airball"); err == nil {
		t.Error("unknown shot result accepted")
	}
}

func TestWizardBack(t *testing.T) {
	w := NewWizard()
	w.ChooseType(models.ShotTypeTriple)
	w.ChooseResult(models.ShotResultFallado)

	if !w.Back() {
		t.Fatal("Back from result_chosen refused")
	}
	if w.State() != WizardTypeChosen {
		t.Errorf("state = %s, want type_chosen", w.State())
	}
	if _, result, _ := w.Selection(); result != "" {
		t.Errorf("result not discarded: %q", result)
	}

	if !w.Back() {
		t.Fatal("Back from type_chosen refused")
	}
	if w.State() != WizardIdle {
		t.Errorf("state = %s, want idle", w.State())
	}

	if w.Back() {
		t.Error("Back from idle succeeded")
	}
}

func TestWizardNoBackFromConfirmation(t *testing.T) {
	w := NewWizard()
	w.ChooseType(models.ShotTypeTriple)
	w.ChooseResult(models.ShotResultFallado)
	w.ChoosePlayer("Leo")

	if w.Back() {
		t.Error("awaiting confirmation should only be left via confirm or cancel")
	}
}

func TestWizardCancelClearsEverything(t *testing.T) {
	w := NewWizard()
	w.ChooseType(models.ShotTypeDoble)
	w.ChooseResult(models.ShotResultConvertido)
	w.ChoosePlayer("Ana")

	w.Cancel()

	if w.State() != WizardIdle {
		t.Errorf("state = %s, want idle", w.State())
	}
	shotType, result, player := w.Selection()
	if shotType != "" || result != "" || player != "" {
		t.Errorf("selections survived cancel: (%s, %s, %s)", shotType, result, player)
	}
}
