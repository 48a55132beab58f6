package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusBarNoticeLifecycle(t *testing.T) {
	model, cmd := newStatusBarModel("v1.0.0").Update(statusMsg{Message: "Message sent", Err: false})
	bar := model.(statusBarModel)
	require.Equal(t, "Message sent", bar.statusMsg)
	require.False(t, bar.statusError)
	// A dismiss must be scheduled alongside every notice.
	require.NotNil(t, cmd)

	model, _ = bar.Update(clearStatusMessageMsg{})
	bar = model.(statusBarModel)
	require.Empty(t, bar.statusMsg)
	require.False(t, bar.statusError)
}

func TestStatusBarNoticeReplaced(t *testing.T) {
	model, _ := newStatusBarModel("v1.0.0").Update(statusMsg{Message: "first", Err: false})
	model, _ = model.Update(statusMsg{Message: "Invalid email", Err: true})

	bar := model.(statusBarModel)
	require.Equal(t, "Invalid email", bar.statusMsg)
	require.True(t, bar.statusError)
}
