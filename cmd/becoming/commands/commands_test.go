package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
	"becoming/internal/services/wizard"
	"becoming/internal/store"
	"becoming/internal/tui"
)

type rating struct {
	domain types.Domain
	level  types.AlignmentLevel
}

// scripted replaces the terminal wizard with one that selects and rates the
// given domains, then saves.
func scripted(t *testing.T, ratings ...rating) {
	t.Helper()
	orig := runWizard
	runWizard = func(ctx context.Context, w *wizard.Wizard, _ tui.Options, _ ...tea.ProgramOption) (domain.Answers, error) {
		for w.Step() < wizard.StepRealityCheck {
			if w.Step() == wizard.StepWhatMatters && len(w.Answers().SelectedDomains) == 0 {
				for _, r := range ratings {
					if _, err := w.ToggleDomain(r.domain); err != nil {
						return domain.Answers{}, err
					}
				}
			}
			if err := w.Continue(); err != nil {
				return domain.Answers{}, err
			}
		}
		for _, r := range ratings {
			if err := w.SetAlignment(r.domain, r.level); err != nil {
				return domain.Answers{}, err
			}
		}
		if err := w.Continue(); err != nil {
			return domain.Answers{}, err
		}
		return w.Complete(ctx)
	}
	t.Cleanup(func() { runWizard = orig })
}

func aborted(t *testing.T) {
	t.Helper()
	orig := runWizard
	runWizard = func(context.Context, *wizard.Wizard, tui.Options, ...tea.ProgramOption) (domain.Answers, error) {
		return domain.Answers{}, tui.ErrAborted
	}
	t.Cleanup(func() { runWizard = orig })
}

type fakeOpener struct{ urls []string }

func (f *fakeOpener) Open(_ context.Context, url string) error {
	f.urls = append(f.urls, url)
	return nil
}

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

func fakeDesktop(t *testing.T) (*fakeOpener, *fakeClipboard) {
	t.Helper()
	op, cb := &fakeOpener{}, &fakeClipboard{}
	opener, clip = op, cb
	t.Cleanup(func() { opener, clip = nil, nil })
	return op, cb
}

func execute(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	_ = closeApp()
	return buf.String(), err
}

func TestSummary_RedirectsToWizardWithoutRecord(t *testing.T) {
	home := t.TempDir()
	scripted(t, rating{types.DomainHealth, types.AlignmentMostly})

	out, err := execute(t, home, "summary", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "No check-in yet.")
	assert.Contains(t, out, "your top focus is **Health**")

	out, err = execute(t, home, "summary", "--plain")
	require.NoError(t, err)
	assert.NotContains(t, out, "No check-in yet.")
	assert.Contains(t, out, "## Suggested next steps")
}

func TestSummary_GlamourRendering(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BECOMING_UI_GLAMOUR_STYLE", "notty")
	scripted(t, rating{types.DomainMoney, types.AlignmentNot})

	_, err := execute(t, home, "align")
	require.NoError(t, err)
	out, err := execute(t, home, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Suggested next steps")
}

func TestAlign_AbortSavesNothing(t *testing.T) {
	home := t.TempDir()
	aborted(t)

	out, err := execute(t, home, "align")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing saved.")

	_, found, err := store.NewCheckinFileStore(home).LoadCheckin(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExport(t *testing.T) {
	home := t.TempDir()

	_, err := execute(t, home, "export")
	require.ErrorContains(t, err, "no check-in yet")

	scripted(t, rating{types.DomainHealth, types.AlignmentMostly}, rating{types.DomainGrowth, types.AlignmentNot})
	_, err = execute(t, home, "align", "--plain")
	require.NoError(t, err)

	out, err := execute(t, home, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Your Alignment Summary\n\nYour life is partially aligned.\n"))
	assert.Contains(t, out, "Health: Mostly aligned\nGrowth: Not really aligned\n")

	out, err = execute(t, home, "export", "--reflection")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Your Alignment Reflection\n"))
}

func TestExport_EmailAndCopy(t *testing.T) {
	home := t.TempDir()
	op, cb := fakeDesktop(t)
	scripted(t, rating{types.DomainRelationships, types.AlignmentSomewhat})
	_, err := execute(t, home, "align", "--plain")
	require.NoError(t, err)

	out, err := execute(t, home, "export", "--email", "me@example.com")
	require.NoError(t, err)
	require.Len(t, op.urls, 1)
	assert.True(t, strings.HasPrefix(op.urls[0], "mailto:me@example.com?subject=Your%20Becoming%20Alignment%20Summary&body=Your%20Alignment%20Summary"))
	assert.Contains(t, cb.text, "Relationships: Somewhat aligned\n")
	assert.Contains(t, out, "Opened an email to me@example.com.")

	_, err = execute(t, home, "export", "--email", "not-an-address")
	require.Error(t, err)
	assert.Len(t, op.urls, 1)

	cb.text = ""
	out, err = execute(t, home, "export", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Copied to clipboard.")
	assert.True(t, strings.HasPrefix(cb.text, "Your Alignment Summary\n"))
}

func TestCheckin_ShowsDeltasAgainstPrevious(t *testing.T) {
	home := t.TempDir()
	op, _ := fakeDesktop(t)

	scripted(t, rating{types.DomainHealth, types.AlignmentSomewhat})
	_, err := execute(t, home, "align", "--plain")
	require.NoError(t, err)

	scripted(t, rating{types.DomainHealth, types.AlignmentMostly})
	out, err := execute(t, home, "checkin", "--email", "me@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Your Alignment Reflection\n"))
	assert.Contains(t, out, "Health: Mostly aligned (↑ Improved)\n")
	assert.Contains(t, out, "Previous check-in: ")
	assert.Contains(t, out, "Continue alignment weekly.")
	require.Len(t, op.urls, 1)
	assert.Contains(t, op.urls[0], "subject=Your%20Becoming%20Alignment%20Reflection")
}

func TestSealedStore(t *testing.T) {
	home := t.TempDir()
	scripted(t, rating{types.DomainContribution, types.AlignmentMostly})

	_, err := execute(t, home, "-p", "secret", "align", "--plain")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "checkin.json.enc"))

	_, err = execute(t, home, "summary", "--plain")
	require.ErrorIs(t, err, store.ErrSealed)

	_, err = execute(t, home, "-p", "wrong", "summary", "--plain")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)

	out, err := execute(t, home, "-p", "secret", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Contribution: Mostly aligned\n")
}

func TestSQLiteDriver(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BECOMING_STORAGE_DRIVER", "sqlite")
	scripted(t, rating{types.DomainWork, types.AlignmentNot})

	_, err := execute(t, home, "align", "--plain")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, "becoming.db"))

	out, err := execute(t, home, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Work / Craft: Not really aligned\n")
}

func TestSignupAndReminder(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, home, "reminder")
	require.NoError(t, err)
	assert.Contains(t, out, "No reminders set.")

	_, err = execute(t, home, "signup", "nope")
	require.Error(t, err)

	out, err = execute(t, home, "signup", "me@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed up as me@example.com.")

	out, err = execute(t, home, "reminder")
	require.NoError(t, err)
	assert.Contains(t, out, "Next check-in reminder: ")
}
