package viewer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name       string
		state      State
		ev         Event
		expandable bool
		want       State
	}{
		{"click zooms", Normal, EventClick, true, Zoomed},
		{"click unzooms", Zoomed, EventClick, true, Normal},
		{"scroll unzooms", Zoomed, EventScroll, true, Normal},
		{"scroll keeps normal", Normal, EventScroll, true, Normal},
		{"none keeps zoom", Zoomed, EventNone, true, Zoomed},
		{"fixed ignores click", Normal, EventClick, false, Normal},
		{"fixed resets zoom", Zoomed, EventNone, false, Normal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Next(tc.state, tc.ev, tc.expandable))
		})
	}
}

func TestParseEvent(t *testing.T) {
	require.Equal(t, EventClick, ParseEvent("Click"))
	require.Equal(t, EventScroll, ParseEvent(" scroll "))
	require.Equal(t, EventNone, ParseEvent("hover"))
}

func TestClickScrollLifecycle(t *testing.T) {
	win := NewWindow()
	v := New(win, true)
	v.Mount()
	require.Equal(t, 0, win.Listeners())

	require.Equal(t, Zoomed, v.Click())
	require.Equal(t, 1, win.Listeners())

	win.Scroll()
	require.Equal(t, Normal, v.State())
	require.Equal(t, 0, win.Listeners())

	v.Click()
	require.Equal(t, Normal, v.Click())
	require.Equal(t, 0, win.Listeners())
}

func TestNonExpandableNeverSubscribes(t *testing.T) {
	win := NewWindow()
	v := New(win, false)
	v.Mount()
	require.Equal(t, Normal, v.Click())
	win.Scroll()
	require.Equal(t, Normal, v.State())
	require.Equal(t, 0, win.Listeners())
}

func TestReleasedOnEveryExitPath(t *testing.T) {
	t.Run("unmount", func(t *testing.T) {
		win := NewWindow()
		v := New(win, true)
		v.Mount()
		v.Click()
		v.Unmount()
		require.Equal(t, 0, win.Listeners())
		require.False(t, v.Subscribed())
	})

	t.Run("set expandable false", func(t *testing.T) {
		win := NewWindow()
		v := New(win, true)
		v.Mount()
		v.Click()
		v.SetExpandable(false)
		require.Equal(t, 0, win.Listeners())
		require.Equal(t, Normal, v.State())
	})

	t.Run("remount", func(t *testing.T) {
		win := NewWindow()
		v := New(win, true)
		v.Mount()
		v.Click()
		v.Mount()
		v.Mount()
		require.Equal(t, 1, win.Listeners())
		v.Unmount()
		require.Equal(t, 0, win.Listeners())
	})

	t.Run("unmounted click does not subscribe", func(t *testing.T) {
		win := NewWindow()
		v := New(win, true)
		require.Equal(t, Zoomed, v.Click())
		require.Equal(t, 0, win.Listeners())
		v.Mount()
		require.Equal(t, 1, win.Listeners())
	})
}

func TestReleaseIsIdempotent(t *testing.T) {
	win := NewWindow()
	release := win.OnScroll(func() {})
	other := win.OnScroll(func() {})
	release()
	release()
	require.Equal(t, 1, win.Listeners())
	other()
	require.Equal(t, 0, win.Listeners())
}

func TestManyViewersShareWindow(t *testing.T) {
	win := NewWindow()
	viewers := make([]*Viewer, 8)
	for i := range viewers {
		viewers[i] = New(win, true)
		viewers[i].Mount()
	}

	var wg sync.WaitGroup
	for _, v := range viewers {
		wg.Add(1)
		go func(v *Viewer) {
			defer wg.Done()
			v.Click()
		}(v)
	}
	wg.Wait()
	require.Equal(t, len(viewers), win.Listeners())

	win.Scroll()
	require.Equal(t, 0, win.Listeners())
	for _, v := range viewers {
		require.Equal(t, Normal, v.State())
	}
}
