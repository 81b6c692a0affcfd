package views

// TriggerVariant selects how the control that opens the overlay is drawn
type TriggerVariant int

const (
	TriggerDefault TriggerVariant = iota // labelled button
	TriggerCustom                        // caller-supplied element
	TriggerHidden                        // nothing; opened programmatically only
)

func (v TriggerVariant) String() string {
	switch v {
	case TriggerCustom:
		return "custom"
	case TriggerHidden:
		return "hidden"
	default:
		return "default"
	}
}

// Interactive reports whether keys sent to the trigger may open the overlay
func (v TriggerVariant) Interactive() bool {
	return v != TriggerHidden
}

// ResolveTrigger picks the single active variant. Hiding wins over a
// custom element supplied at the same time.
func ResolveTrigger(hide, hasCustom bool) TriggerVariant {
	switch {
	case hide:
		return TriggerHidden
	case hasCustom:
		return TriggerCustom
	default:
		return TriggerDefault
	}
}
