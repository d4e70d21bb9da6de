package keybus

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	escBinding   = key.NewBinding(key.WithKeys("esc"))
	enterBinding = key.NewBinding(key.WithKeys("enter"))
	escMsg       = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestDispatchNoSubscribers(t *testing.T) {
	b := New()
	if _, handled := b.Dispatch(escMsg); handled {
		t.Error("expected unhandled key")
	}
}

func TestDispatchMatchesBinding(t *testing.T) {
	b := New()
	var escCalls, enterCalls int
	b.Subscribe(escBinding, func(tea.KeyMsg) tea.Cmd { escCalls++; return nil })
	b.Subscribe(enterBinding, func(tea.KeyMsg) tea.Cmd { enterCalls++; return nil })

	if _, handled := b.Dispatch(escMsg); !handled {
		t.Fatal("expected esc to be handled")
	}
	if escCalls != 1 || enterCalls != 0 {
		t.Errorf("esc=%d enter=%d, want 1 and 0", escCalls, enterCalls)
	}
}

func TestDispatchNewestSubscriberWins(t *testing.T) {
	b := New()
	var order []string
	unsubOuter := b.Subscribe(escBinding, func(tea.KeyMsg) tea.Cmd { order = append(order, "outer"); return nil })
	unsubInner := b.Subscribe(escBinding, func(tea.KeyMsg) tea.Cmd { order = append(order, "inner"); return nil })

	b.Dispatch(escMsg)
	unsubInner()
	b.Dispatch(escMsg)
	unsubOuter()
	b.Dispatch(escMsg)

	want := []string{"inner", "outer"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	b := New()
	unsubA := b.Subscribe(escBinding, func(tea.KeyMsg) tea.Cmd { return nil })
	b.Subscribe(enterBinding, func(tea.KeyMsg) tea.Cmd { return nil })

	unsubA()
	unsubA()

	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	if _, handled := b.Dispatch(escMsg); handled {
		t.Error("unsubscribed binding should not be handled")
	}
}

func TestDispatchSkipsDisabledBinding(t *testing.T) {
	b := New()
	disabled := key.NewBinding(key.WithKeys("esc"), key.WithDisabled())
	b.Subscribe(disabled, func(tea.KeyMsg) tea.Cmd { return nil })

	if _, handled := b.Dispatch(escMsg); handled {
		t.Error("disabled binding should not match")
	}
}

func TestDispatchReturnsHandlerCmd(t *testing.T) {
	b := New()
	b.Subscribe(escBinding, func(tea.KeyMsg) tea.Cmd { return tea.Quit })

	cmd, handled := b.Dispatch(escMsg)
	if !handled || cmd == nil {
		t.Fatal("expected handler command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}
