package viewmodel

import "errors"

var (
	// ErrEditInProgress is returned when a second row is opened for editing.
	ErrEditInProgress = errors.New("viewmodel: another row is already being edited")
	// ErrNoEdit is returned by draft operations outside edit mode.
	ErrNoEdit = errors.New("viewmodel: no row is being edited")
	// ErrIndexOutOfRange is returned for a row index the list does not hold.
	ErrIndexOutOfRange = errors.New("viewmodel: row index out of range")
	// ErrIncompleteRecord rejects server payloads missing the identity key, so
	// a partial response can never corrupt a row.
	ErrIncompleteRecord = errors.New("viewmodel: record has no identity key")
)

// Entity is anything addressable by an identity key (category and product use
// their name).
type Entity interface {
	Key() string
}

// List mirrors one server-side collection in server order. At most one row can
// be in edit mode, holding a scratch draft that is discarded on cancel and
// only committed with the server-confirmed record.
type List[T Entity] struct {
	items     []T
	editIndex int
	draft     T
}

func NewList[T Entity]() *List[T] {
	return &List[T]{editIndex: -1}
}

// Load replaces the whole mirror with a fresh server snapshot and drops any
// edit in progress.
func (l *List[T]) Load(snapshot []T) {
	l.items = append(l.items[:0:0], snapshot...)
	l.clearEdit()
}

func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy; callers cannot mutate the mirror behind its back.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

func (l *List[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, ErrIndexOutOfRange
	}
	return l.items[index], nil
}

// Append adds a server-confirmed record to the end of the mirror.
func (l *List[T]) Append(record T) error {
	if record.Key() == "" {
		return ErrIncompleteRecord
	}
	l.items = append(l.items, record)
	return nil
}

// Remove drops the row matching key after a confirmed delete. It reports
// whether a row was removed. An edit on the removed row is dropped; an edit on
// a later row keeps following it.
func (l *List[T]) Remove(key string) bool {
	for i, item := range l.items {
		if item.Key() == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			if l.editIndex == i {
				l.clearEdit()
			} else if l.editIndex > i {
				l.editIndex--
			}
			return true
		}
	}
	return false
}

// EnterEdit puts a single row into edit mode and seeds the scratch draft from
// its current value.
func (l *List[T]) EnterEdit(index int) error {
	if l.editIndex >= 0 {
		return ErrEditInProgress
	}
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.editIndex = index
	l.draft = l.items[index]
	return nil
}

// CancelEdit discards the scratch draft and leaves the row untouched.
func (l *List[T]) CancelEdit() {
	l.clearEdit()
}

// Editing reports which row, if any, is in edit mode.
func (l *List[T]) Editing() (int, bool) {
	return l.editIndex, l.editIndex >= 0
}

// Draft returns the scratch copy being edited.
func (l *List[T]) Draft() (T, error) {
	var zero T
	if l.editIndex < 0 {
		return zero, ErrNoEdit
	}
	return l.draft, nil
}

// SetDraft replaces the scratch copy; the underlying row stays unchanged
// until CommitEdit.
func (l *List[T]) SetDraft(draft T) error {
	if l.editIndex < 0 {
		return ErrNoEdit
	}
	l.draft = draft
	return nil
}

// CommitEdit replaces the edited row with the server-confirmed record and
// clears edit mode. The local scratch draft is never written to the mirror.
func (l *List[T]) CommitEdit(confirmed T) error {
	if l.editIndex < 0 {
		return ErrNoEdit
	}
	if confirmed.Key() == "" {
		return ErrIncompleteRecord
	}
	l.items[l.editIndex] = confirmed
	l.clearEdit()
	return nil
}

func (l *List[T]) clearEdit() {
	var zero T
	l.editIndex = -1
	l.draft = zero
}
