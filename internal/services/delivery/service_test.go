package delivery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"becoming/internal/services/delivery"
)

type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(_ context.Context, url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestSend_OpensAndCopies(t *testing.T) {
	op, cb := &fakeOpener{}, &fakeClipboard{}
	svc := delivery.New(op, cb, nil)

	res, err := svc.Send(context.Background(), "me@example.com", "Subject", "Body text")
	require.NoError(t, err)
	assert.True(t, res.Opened)
	assert.True(t, res.Copied)
	require.Len(t, op.urls, 1)
	assert.Equal(t, "mailto:me@example.com?subject=Subject&body=Body%20text", op.urls[0])
	assert.Equal(t, "Body text", cb.text)
}

func TestSend_InvalidAddressDoesNothing(t *testing.T) {
	op, cb := &fakeOpener{}, &fakeClipboard{}
	_, err := delivery.New(op, cb, nil).Send(context.Background(), "nope", "s", "b")
	require.ErrorIs(t, err, delivery.ErrInvalidEmail)
	assert.Empty(t, op.urls)
	assert.Empty(t, cb.text)
}

func TestSend_ClipboardFailureIsLoggedOnly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	op, cb := &fakeOpener{}, &fakeClipboard{err: errors.New("no display")}

	res, err := delivery.New(op, cb, zap.New(core)).Send(context.Background(), "a@b", "s", "b")
	require.NoError(t, err)
	assert.True(t, res.Opened)
	assert.False(t, res.Copied)
	assert.Equal(t, 1, logs.FilterMessage("clipboard copy failed").Len())
}

func TestSend_OpenerFailureStillCopies(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	op, cb := &fakeOpener{err: errors.New("xdg-open missing")}, &fakeClipboard{}

	res, err := delivery.New(op, cb, zap.New(core)).Send(context.Background(), "a@b", "s", "body")
	require.NoError(t, err)
	assert.False(t, res.Opened)
	assert.True(t, res.Copied)
	assert.Equal(t, "body", cb.text)
	assert.Equal(t, 1, logs.FilterMessage("opening mail client failed").Len())
}

func TestSend_BothFail(t *testing.T) {
	op, cb := &fakeOpener{err: errors.New("x")}, &fakeClipboard{err: errors.New("y")}
	_, err := delivery.New(op, cb, nil).Send(context.Background(), "a@b", "s", "b")
	require.ErrorIs(t, err, delivery.ErrNotDelivered)
}
