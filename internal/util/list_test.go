package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Go, SQL, Docker", []string{"Go", "SQL", "Docker"}},
		{"Go;SQL\nDocker", []string{"Go", "SQL", "Docker"}},
		{"  Go  ,, ,", []string{"Go"}},
		{"", []string{}},
		{"3+ years of Go, SQL fluency", []string{"3+ years of Go", "SQL fluency"}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SplitList(tc.in), "input %q", tc.in)
	}
}

func TestCleanList(t *testing.T) {
	require.Equal(t, []string{"Go", "SQL"}, CleanList([]string{" Go ", "", "SQL", "  "}))
	require.Equal(t, []string{}, CleanList(nil))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)
	require.True(t, CheckPassword(hash, "correct horse battery staple"))
	require.False(t, CheckPassword(hash, "wrong"))
}
