package rut

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/atnchile/portal/pkg/logger"
)

// Field is the text input a Binding reformats.
type Field interface {
	Value() string
	SetValue(string)
}

// Caret is implemented by fields that expose a cursor.
// Fields without it are reformatted without cursor placement.
type Caret interface {
	Cursor() (int, error)
	SetCursor(pos int) error
}

// Scheduler runs fn after the current event has finished.
type Scheduler func(fn func())

// LiveFormatter reformats RUT fields while the user types or pastes.
type LiveFormatter struct {
	logger   *slog.Logger
	schedule Scheduler
}

// LiveOption configures a LiveFormatter.
type LiveOption func(*LiveFormatter)

// WithLogger sets the logger used to report recovered formatting failures.
func WithLogger(l *slog.Logger) LiveOption {
	return func(lf *LiveFormatter) {
		if l != nil {
			lf.logger = l
		}
	}
}

// WithScheduler sets how paste reformatting is deferred. Without one, each
// Binding queues the reformat until its Flush is called.
func WithScheduler(s Scheduler) LiveOption {
	return func(lf *LiveFormatter) {
		if s != nil {
			lf.schedule = s
		}
	}
}

// NewLiveFormatter creates a LiveFormatter.
func NewLiveFormatter(opts ...LiveOption) *LiveFormatter {
	lf := &LiveFormatter{logger: slog.Default()}
	for _, opt := range opts {
		opt(lf)
	}
	lf.logger = lf.logger.With(logger.Component("rut"))
	return lf
}

// Bind attaches the formatter to field. The returned Binding keeps the
// cursor bookkeeping for that field only and must be driven from the
// field's own event source.
func (lf *LiveFormatter) Bind(field Field) *Binding {
	return &Binding{lf: lf, field: field}
}

// Binding is a LiveFormatter attached to one field.
type Binding struct {
	lf      *LiveFormatter
	field   Field
	cursor  int
	length  int
	pending []func()
}

// Input reformats the field after an edit and moves the cursor past any
// separators inserted by the reformat.
func (b *Binding) Input() {
	defer b.recover("input")

	caret, hasCaret := b.field.(Caret)
	if hasCaret {
		pos, err := caret.Cursor()
		if err != nil {
			b.warn("input", fmt.Errorf("%w: %w", ErrCursorUnsupported, err))
			hasCaret = false
		}
		b.cursor = pos
	}

	value := b.field.Value()
	b.length = utf8.RuneCountInString(value)

	formatted := Format(value)
	b.field.SetValue(formatted)

	if !hasCaret {
		return
	}
	pos := NextCursor(b.cursor, b.length, len(formatted))
	if err := caret.SetCursor(pos); err != nil {
		b.warn("input", fmt.Errorf("%w: %w", ErrCursorUnsupported, err))
	}
}

// Paste reformats the field once the paste has landed. The cursor is left
// where the field puts it.
func (b *Binding) Paste() {
	fn := func() {
		defer b.recover("paste")
		b.field.SetValue(Format(b.field.Value()))
	}
	if b.lf.schedule == nil {
		b.pending = append(b.pending, fn)
		return
	}
	b.lf.schedule(fn)
}

// Flush runs the reformats queued by Paste on the calling goroutine. It is a
// no-op when the formatter was built WithScheduler.
func (b *Binding) Flush() {
	for len(b.pending) > 0 {
		fn := b.pending[0]
		b.pending = b.pending[1:]
		fn()
	}
}

// Cursor returns the cursor offset recorded before the last reformat.
func (b *Binding) Cursor() int { return b.cursor }

// Length returns the value length recorded before the last reformat.
func (b *Binding) Length() int { return b.length }

func (b *Binding) recover(event string) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	b.warn(event, err)
}

func (b *Binding) warn(event string, err error) {
	msg := "rut formatting failed"
	if errors.Is(err, ErrCursorUnsupported) {
		msg = "rut cursor placement failed"
	}
	b.lf.logger.Warn(msg, logger.Event(event), logger.Error(err))
}

// NextCursor returns the cursor offset after a value of length before was
// reformatted to length after. The cursor advances by the number of
// inserted characters and never leaves [0, after].
func NextCursor(cursor, before, after int) int {
	pos := cursor
	if after > before {
		pos += after - before
	}
	return max(0, min(pos, after))
}
