package rut_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/rut"
)

type textField struct {
	value string
}

func (f *textField) Value() string     { return f.value }
func (f *textField) SetValue(v string) { f.value = v }

type caretField struct {
	textField
	cursor    int
	setErr    error
	getErr    error
	positions []int
}

func (f *caretField) Cursor() (int, error) { return f.cursor, f.getErr }

func (f *caretField) SetCursor(pos int) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.cursor = pos
	f.positions = append(f.positions, pos)
	return nil
}

// typeChar inserts c at the cursor the way an input element does before
// notifying listeners.
func (f *caretField) typeChar(c byte) {
	f.value = f.value[:f.cursor] + string(c) + f.value[f.cursor:]
	f.cursor++
}

type panickingField struct{ textField }

func (f *panickingField) SetValue(string) { panic("detached") }

type queue struct{ pending []func() }

func (q *queue) schedule(fn func()) { q.pending = append(q.pending, fn) }

func (q *queue) flush() {
	for len(q.pending) > 0 {
		fn := q.pending[0]
		q.pending = q.pending[1:]
		fn()
	}
}

func newTestFormatter(q *queue) (*rut.LiveFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	opts := []rut.LiveOption{rut.WithLogger(log)}
	if q != nil {
		opts = append(opts, rut.WithScheduler(q.schedule))
	}
	return rut.NewLiveFormatter(opts...), &buf
}

func TestNextCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		cursor, before, after int
		want                  int
	}{
		{"grew by one", 4, 4, 5, 5},
		{"grew past end", 5, 4, 6, 6},
		{"unchanged length", 3, 5, 5, 3},
		{"shrunk keeps offset", 2, 6, 4, 2},
		{"shrunk clamps offset", 6, 6, 4, 4},
		{"negative cursor", -3, 2, 2, 0},
		{"empty result", 1, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rut.NextCursor(tt.cursor, tt.before, tt.after))
		})
	}
}

func TestBindingInput(t *testing.T) {
	t.Parallel()

	t.Run("typing keeps the cursor after the typed digit", func(t *testing.T) {
		t.Parallel()
		lf, buf := newTestFormatter(nil)
		field := &caretField{}
		b := lf.Bind(field)

		want := []struct {
			value  string
			cursor int
		}{
			{"-1", 2},
			{"1-2", 3},
			{"12-3", 4},
			{"123-4", 5},
			{"1.234-5", 7},
		}

		for i, c := range []byte("12345") {
			field.typeChar(c)
			b.Input()
			assert.Equal(t, want[i].value, field.value)
			assert.Equal(t, want[i].cursor, field.cursor)
			assert.GreaterOrEqual(t, field.cursor, 1)
		}
		assert.Empty(t, buf.String())
	})

	t.Run("records pre-format state", func(t *testing.T) {
		t.Parallel()
		lf, _ := newTestFormatter(nil)
		field := &caretField{textField: textField{value: "123456785"}, cursor: 9}
		b := lf.Bind(field)

		b.Input()

		assert.Equal(t, "12.345.678-5", field.value)
		assert.Equal(t, 9, b.Cursor())
		assert.Equal(t, 9, b.Length())
		assert.Equal(t, 12, field.cursor)
	})

	t.Run("editing in the middle keeps the offset", func(t *testing.T) {
		t.Parallel()
		lf, _ := newTestFormatter(nil)
		field := &caretField{textField: textField{value: "12.34.678-5"}, cursor: 5}
		b := lf.Bind(field)

		b.Input()

		assert.Equal(t, "1.234.678-5", field.value)
		assert.Equal(t, 5, field.cursor)
	})

	t.Run("field without caret is still formatted", func(t *testing.T) {
		t.Parallel()
		lf, buf := newTestFormatter(nil)
		field := &textField{value: "123456785"}

		lf.Bind(field).Input()

		assert.Equal(t, "12.345.678-5", field.value)
		assert.Empty(t, buf.String())
	})

	t.Run("cursor placement failure is logged and value kept", func(t *testing.T) {
		t.Parallel()
		lf, buf := newTestFormatter(nil)
		field := &caretField{textField: textField{value: "123456785"}, cursor: 9, setErr: errors.New("type=email")}

		assert.NotPanics(t, func() { lf.Bind(field).Input() })

		assert.Equal(t, "12.345.678-5", field.value)
		assert.Contains(t, buf.String(), "rut cursor placement failed")
		assert.Contains(t, buf.String(), "type=email")
	})

	t.Run("unreadable cursor skips placement", func(t *testing.T) {
		t.Parallel()
		lf, buf := newTestFormatter(nil)
		field := &caretField{textField: textField{value: "1234"}, getErr: errors.New("no selection")}

		lf.Bind(field).Input()

		assert.Equal(t, "123-4", field.value)
		assert.Empty(t, field.positions)
		assert.Contains(t, buf.String(), "rut cursor placement failed")
	})

	t.Run("panicking field is recovered", func(t *testing.T) {
		t.Parallel()
		lf, buf := newTestFormatter(nil)
		field := &panickingField{textField{value: "1234"}}

		assert.NotPanics(t, func() { lf.Bind(field).Input() })
		assert.Contains(t, buf.String(), "rut formatting failed")
		assert.Contains(t, buf.String(), "detached")
	})
}

func TestBindingPaste(t *testing.T) {
	t.Parallel()

	t.Run("formats after the scheduled tick", func(t *testing.T) {
		t.Parallel()
		q := &queue{}
		lf, _ := newTestFormatter(q)
		field := &caretField{cursor: 0}
		b := lf.Bind(field)

		b.Paste()
		field.value = "123456785"
		require.Len(t, q.pending, 1)
		assert.Equal(t, "123456785", field.value)

		q.flush()

		assert.Equal(t, "12.345.678-5", field.value)
		assert.Empty(t, field.positions)
	})

	t.Run("panicking field is recovered", func(t *testing.T) {
		t.Parallel()
		q := &queue{}
		lf, buf := newTestFormatter(q)
		field := &panickingField{textField{value: "1234"}}

		lf.Bind(field).Paste()

		assert.NotPanics(t, q.flush)
		assert.Contains(t, buf.String(), "event=paste")
	})

	t.Run("default queues until flush", func(t *testing.T) {
		t.Parallel()
		field := &caretField{cursor: 0}
		b := rut.NewLiveFormatter().Bind(field)

		b.Paste()
		field.value = "123456785"
		assert.Equal(t, "123456785", field.value)

		b.Flush()
		assert.Equal(t, "12.345.678-5", field.value)

		b.Flush()
		assert.Equal(t, "12.345.678-5", field.value)
		assert.Empty(t, field.positions)
	})

	t.Run("flush recovers panicking field", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		lf := rut.NewLiveFormatter(rut.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		b := lf.Bind(&panickingField{textField{value: "1234"}})

		b.Paste()
		assert.NotPanics(t, b.Flush)
		assert.Contains(t, buf.String(), "event=paste")
	})
}
