package environ

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{
		"SDMC_ENV=stage",
		"BITBUCKET_COMMIT=",
		"NOEQUALS",
		"WITH_EQUALS=a=b",
		"DUP=first",
		"DUP=second",
		"=C:=C:\\",
		"",
	})

	assert.Equal(t, "stage", s.Get("SDMC_ENV"))
	assert.True(t, s.Has("BITBUCKET_COMMIT"), "empty value must still count as present")
	assert.True(t, s.Has("NOEQUALS"))
	assert.Equal(t, "a=b", s.Get("WITH_EQUALS"))
	assert.Equal(t, "second", s.Get("DUP"))
	assert.Equal(t, 5, s.Len())
}

func TestSnapshotLookup(t *testing.T) {
	s := FromMap(map[string]string{"EMPTY": "", "SDMC_ENV": "stage"})

	tests := []struct {
		name      string
		key       string
		wantValue string
		wantOK    bool
	}{
		{name: "present", key: "SDMC_ENV", wantValue: "stage", wantOK: true},
		{name: "present but empty", key: "EMPTY", wantValue: "", wantOK: true},
		{name: "absent", key: "MISSING", wantValue: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := s.Lookup(tc.key)
			assert.Equal(t, tc.wantValue, v)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOK, s.Has(tc.key))
		})
	}
}

func TestSnapshotEquals(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"stage", true},
		{"Stage", false},
		{"STAGE", false},
		{"staging", false},
		{"stage ", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			s := FromMap(map[string]string{EnvSiteEnv: tc.value})
			assert.Equal(t, tc.want, s.Equals(EnvSiteEnv, "stage"))
		})
	}

	assert.False(t, Snapshot{}.Equals(EnvSiteEnv, ""), "absent key never equals, even the empty string")
}

func TestSnapshotIsolation(t *testing.T) {
	src := map[string]string{"A": "1"}
	s := FromMap(src)
	src["A"] = "changed"
	assert.Equal(t, "1", s.Get("A"), "FromMap must copy its input")

	layered := s.With(map[string]string{"A": "2", "B": "3"})
	assert.Equal(t, "1", s.Get("A"))
	assert.False(t, s.Has("B"))
	assert.Equal(t, "2", layered.Get("A"))
	assert.Equal(t, []string{"A=2", "B=3"}, layered.Environ())
}

func TestFromOS(t *testing.T) {
	t.Setenv("ENVSETTINGS_TEST_VAR", "value")

	s := FromOS()
	assert.Equal(t, "value", s.Get("ENVSETTINGS_TEST_VAR"))
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("SDMC_ENV=dev\nONLY_FIRST=yes\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("# comment\nSDMC_ENV=stage\n"), 0o600))

	base := FromMap(map[string]string{"SDMC_ENV": "local", "BASE": "kept"})

	s, err := LoadDotenv(base, first, second)
	require.NoError(t, err)
	assert.Equal(t, "stage", s.Get("SDMC_ENV"))
	assert.Equal(t, "yes", s.Get("ONLY_FIRST"))
	assert.Equal(t, "kept", s.Get("BASE"))
	assert.Equal(t, "local", base.Get("SDMC_ENV"), "base snapshot must not change")
}

func TestLoadDotenvErrors(t *testing.T) {
	_, err := LoadDotenv(Snapshot{})
	assert.ErrorIs(t, err, ErrNoDotenvFiles)

	_, err = LoadDotenv(Snapshot{}, filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read dotenv file")
}

func TestMarshalDotenv(t *testing.T) {
	out, err := MarshalDotenv(map[string]string{"B": "two", "A": "one"})
	require.NoError(t, err)
	assert.Equal(t, "A=\"one\"\nB=\"two\"", out)
}
