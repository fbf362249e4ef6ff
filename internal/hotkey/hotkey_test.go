package hotkey

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Binding{
		"ctrl+alt+q":        {Modifiers: []string{"ctrl", "alt"}, Key: "q"},
		"Control + Shift+S": {Modifiers: []string{"ctrl", "shift"}, Key: "s"},
		"cmd+option+1":      {Modifiers: []string{"win", "alt"}, Key: "1"},
		"esc":               {Key: "esc"},
		"alt++f12":          {Modifiers: []string{"alt"}, Key: "f12"},
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "+", "ctrl+", "hyper+q", "ctrl+pageup", "ctrl+qq"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestBindingString(t *testing.T) {
	b, err := Parse("CTRL+ALT+Q")
	require.NoError(t, err)
	assert.Equal(t, "ctrl+alt+q", b.String())
}

type fakeRegistration struct {
	down         chan struct{}
	unregistered int
}

func (f *fakeRegistration) keydown() <-chan struct{} { return f.down }

func (f *fakeRegistration) unregister() error {
	f.unregistered++
	return nil
}

func TestListenInvokesCallback(t *testing.T) {
	fake := &fakeRegistration{down: make(chan struct{})}
	pressed := make(chan struct{}, 2)
	m := &Manager{reg: fake, callback: func() { pressed <- struct{}{} }}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Listen(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		fake.down <- struct{}{}
		select {
		case <-pressed:
		case <-time.After(time.Second):
			t.Fatal("callback not invoked")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after cancel")
	}

	require.NoError(t, m.Unregister())
	require.NoError(t, m.Unregister())
	assert.Equal(t, 1, fake.unregistered)
}

func TestListenStopsWhenChannelCloses(t *testing.T) {
	fake := &fakeRegistration{down: make(chan struct{})}
	close(fake.down)
	m := &Manager{reg: fake}
	m.Listen(context.Background())
}

func TestListenWithoutRegistration(t *testing.T) {
	NewManager().Listen(context.Background())
}
