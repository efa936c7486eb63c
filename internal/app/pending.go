package app

import "errors"

var (
	ErrNoPendingAction     = errors.New("app: no pending action")
	ErrConfirmationPending = errors.New("app: confirmation pending")
	ErrWizardClosed        = errors.New("app: wizard is not open")
)

type ActionKind string

const (
	ActionDeleteSection ActionKind = "delete_section"
	ActionDeleteItem    ActionKind = "delete_item"
	ActionImport        ActionKind = "import"
	ActionReset         ActionKind = "reset"
)

// PendingAction is a destructive operation waiting for the user to confirm
// or decline it. Nothing changes until Confirm runs it.
type PendingAction struct {
	Kind      ActionKind
	SectionID string
	ItemID    string
	// Payload and Source are set for imports: the raw file bytes and where
	// they came from (a path or "stdin").
	Payload []byte
	Source  string
}

func (s *Session) request(a PendingAction) (PendingAction, error) {
	if s.pending != nil {
		return *s.pending, ErrConfirmationPending
	}
	s.pending = &a
	return a, nil
}

func (s *Session) Pending() (PendingAction, bool) {
	if s.pending == nil {
		return PendingAction{}, false
	}
	return *s.pending, true
}

// Decline drops the pending action without touching any state.
func (s *Session) Decline() error {
	if s.pending == nil {
		return ErrNoPendingAction
	}
	s.logger.Debug("pending action declined")
	s.pending = nil
	return nil
}
