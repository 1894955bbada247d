package printing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_RejectsEmptyInput(t *testing.T) {
	renderer, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer renderer.Close()

	_, err = renderer.Render(context.Background(), nil)
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)

	_, err = renderer.Render(context.Background(), &RenderRequest{HTML: "   "})
	require.Error(t, err)
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}

func TestBuildCompleteHTML(t *testing.T) {
	renderer := &ChromedpRenderer{config: &ChromedpConfig{}}

	wrapped := renderer.buildCompleteHTML(&RenderRequest{HTML: "<p>hello</p>", Title: "Invoice"})
	assert.True(t, strings.HasPrefix(wrapped, "<!DOCTYPE html>"))
	assert.Contains(t, wrapped, "<title>Invoice</title>")
	assert.Contains(t, wrapped, "<p>hello</p>")

	full := "<!DOCTYPE html><html><body>done</body></html>"
	assert.Equal(t, full, renderer.buildCompleteHTML(&RenderRequest{HTML: full}))
}

func TestRender_DeadlineBoundsStalledBrowser(t *testing.T) {
	renderer, err := NewChromedpRenderer(&ChromedpConfig{DefaultTimeout: 20 * time.Millisecond})
	require.NoError(t, err)
	defer renderer.Close()

	var seenDeadline bool
	renderer.run = func(ctx context.Context, actions ...chromedp.Action) error {
		_, seenDeadline = ctx.Deadline()
		<-ctx.Done()
		return ctx.Err()
	}

	_, err = renderer.Render(context.Background(), &RenderRequest{HTML: "<p>slow</p>"})
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderTimeout, renderErr.Code)
	assert.True(t, seenDeadline)
}

func TestRender_CallerCancellationStopsRun(t *testing.T) {
	renderer, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer renderer.Close()

	renderer.run = func(ctx context.Context, actions ...chromedp.Action) error {
		<-ctx.Done()
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = renderer.Render(ctx, &RenderRequest{HTML: "<p>cancelled</p>"})
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderTimeout, renderErr.Code)
}

func TestRenderError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := NewRenderError(ErrCodeRenderFailed, "boom", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
