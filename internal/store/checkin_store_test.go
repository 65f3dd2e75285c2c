package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"becoming/internal/domain"
	"becoming/internal/domain/types"
	"becoming/internal/store"
)

func sampleAnswers() domain.Answers {
	a := types.NewAnswers()
	a.ID = "c1"
	a.Identity = "builds things that last"
	a.SelectedDomains = []types.Domain{types.DomainHealth, types.DomainGrowth}
	a.DomainGoals[types.DomainHealth] = "strong and calm"
	a.YearOutcomes[types.DomainGrowth] = "ship one real project"
	a.Alignment[types.DomainHealth] = types.AlignmentMostly
	a.Alignment[types.DomainGrowth] = types.AlignmentNot
	a.Timestamp = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return a
}

func TestCheckinFileStore_SaveLoad_OK(t *testing.T) {
	ctx := context.Background()
	var s domain.CheckinStore = store.NewCheckinFileStore(t.TempDir())

	_, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	want := sampleAnswers()
	require.NoError(t, s.SaveCheckin(ctx, want))

	got, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Identity, got.Identity)
	assert.Equal(t, want.SelectedDomains, got.SelectedDomains)
	assert.Equal(t, types.AlignmentNot, got.Alignment[types.DomainGrowth])
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
}

func TestCheckinFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := store.NewCheckinFileStore(t.TempDir())

	first := sampleAnswers()
	require.NoError(t, s.SaveCheckin(ctx, first))

	second := sampleAnswers()
	second.ID = "c2"
	second.Identity = "keeps promises"
	require.NoError(t, s.SaveCheckin(ctx, second))

	got, _, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ID)
	assert.Equal(t, "keeps promises", got.Identity)
}

func TestCheckinFileStore_UsesPersistedShape(t *testing.T) {
	home := t.TempDir()
	s := store.NewCheckinFileStore(home)
	require.NoError(t, s.SaveCheckin(context.Background(), sampleAnswers()))

	raw, err := os.ReadFile(filepath.Join(home, "checkin.json"))
	require.NoError(t, err)
	for _, key := range []string{`"identity"`, `"lifeFeels"`, `"othersDescribe"`, `"selectedDomains"`,
		`"domainGoals"`, `"yearOutcomes"`, `"alignment"`, `"whatPulledOffTrack"`, `"timestamp"`} {
		assert.Contains(t, string(raw), key)
	}

	info, err := os.Stat(filepath.Join(home, "checkin.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCheckinFileStore_CorruptRecord(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "checkin.json"), []byte("{not json"), 0o600))

	_, found, err := store.NewCheckinFileStore(home).LoadCheckin(context.Background())
	require.ErrorIs(t, err, store.ErrCorruptRecord)
	assert.False(t, found)
}

func TestCheckinFileStore_NormalizesLoadedRecord(t *testing.T) {
	home := t.TempDir()
	raw := `{
  "selectedDomains": ["Health", "Health", "Money", "Nope", "Growth", "Contribution"],
  "domainGoals": {"Health": "calm", "Relationships": "stale"},
  "alignment": {"Money": "mostly", "Growth": "sideways"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "checkin.json"), []byte(raw), 0o600))

	got, found, err := store.NewCheckinFileStore(home).LoadCheckin(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []types.Domain{types.DomainHealth, types.DomainMoney, types.DomainGrowth}, got.SelectedDomains)
	assert.Equal(t, map[types.Domain]string{types.DomainHealth: "calm"}, got.DomainGoals)
	assert.Equal(t, map[types.Domain]types.AlignmentLevel{types.DomainMoney: types.AlignmentMostly}, got.Alignment)
}

func TestCheckinFileStore_Sealed_RoundTrip(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	s := store.NewCheckinFileStore(home, store.WithPassphrase("correct horse"), store.WithKDFCost(1<<10, 8, 1))
	require.True(t, s.Sealed())

	want := sampleAnswers()
	require.NoError(t, s.SaveCheckin(ctx, want))

	raw, err := os.ReadFile(filepath.Join(home, "checkin.json.enc"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), want.Identity)

	got, found, err := s.LoadCheckin(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Identity, got.Identity)
}

func TestCheckinFileStore_Sealed_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	require.NoError(t, store.NewCheckinFileStore(home, store.WithPassphrase("right"), store.WithKDFCost(1<<10, 8, 1)).
		SaveCheckin(ctx, sampleAnswers()))

	_, _, err := store.NewCheckinFileStore(home, store.WithPassphrase("wrong")).LoadCheckin(ctx)
	require.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, _, err = store.NewCheckinFileStore(home).LoadCheckin(ctx)
	require.ErrorIs(t, err, store.ErrSealed)
}

func TestCheckinFileStore_Sealed_RejectsOutOfRangeCost(t *testing.T) {
	ctx := context.Background()
	salt := make([]byte, 16)

	cases := map[string]map[string]any{
		"huge N":     {"v": 1, "salt": salt, "scrypt_N": 1 << 40, "scrypt_r": 8, "scrypt_p": 1, "cipher": []byte{1}},
		"N not pow2": {"v": 1, "salt": salt, "scrypt_N": 1000, "scrypt_r": 8, "scrypt_p": 1, "cipher": []byte{1}},
		"memory":     {"v": 1, "salt": salt, "scrypt_N": 1 << 20, "scrypt_r": 8, "scrypt_p": 1, "cipher": []byte{1}},
		"huge r*p":   {"v": 1, "salt": salt, "scrypt_N": 2, "scrypt_r": 1 << 15, "scrypt_p": 1 << 15, "cipher": []byte{1}},
		"zero p":     {"v": 1, "salt": salt, "scrypt_N": 1 << 10, "scrypt_r": 8, "scrypt_p": 0, "cipher": []byte{1}},
		"short salt": {"v": 1, "salt": []byte{1, 2}, "scrypt_N": 1 << 10, "scrypt_r": 8, "scrypt_p": 1, "cipher": []byte{1}},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			raw, err := json.Marshal(env)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(home, "checkin.json.enc"), raw, 0o600))

			_, _, err = store.NewCheckinFileStore(home, store.WithPassphrase("any")).LoadCheckin(ctx)
			require.ErrorIs(t, err, store.ErrCorruptRecord)
		})
	}
}

func TestCheckinFileStore_Sealed_RefusesOutOfRangeCostOnSave(t *testing.T) {
	s := store.NewCheckinFileStore(t.TempDir(), store.WithPassphrase("p"), store.WithKDFCost(1<<21, 8, 1))
	require.Error(t, s.SaveCheckin(context.Background(), sampleAnswers()))
}

func TestSignupFileStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	var s domain.SignupStore = store.NewSignupFileStore(t.TempDir())

	_, found, err := s.LoadSignup(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	want := domain.Signup{Email: "me@example.com", SignedUpAt: now, NextReminder: now.Add(types.ReminderInterval)}
	require.NoError(t, s.SaveSignup(ctx, want))

	got, found, err := s.LoadSignup(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want.Email, got.Email)
	assert.True(t, want.NextReminder.Equal(got.NextReminder))
}
