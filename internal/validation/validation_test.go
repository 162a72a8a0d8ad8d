package validation

import (
	"testing"

	"github.com/desertwitch/filestat/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRelativePath_Success(t *testing.T) {
	t.Parallel()

	paths := []string{
		"file",
		"dir/file",
		".",
		"./file",
		"dir/.hidden",
		"..file",
		"dir/...",
		"a\\b/c",
	}

	for _, path := range paths {
		assert.NoError(t, ValidateRelativePath(path), path)
	}
}

func TestValidateRelativePath_Fail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path string
		want error
	}{
		{"", ErrEmptySegment},
		{"/root", ErrEmptySegment},
		{"dir/", ErrEmptySegment},
		{"a//b", ErrEmptySegment},
		{"..", ErrParentSegment},
		{"../dir", ErrParentSegment},
		{"a/../b", ErrParentSegment},
		{"dir/..", ErrParentSegment},
	}

	for _, tc := range testCases {
		err := ValidateRelativePath(tc.path)

		require.ErrorIs(t, err, schema.ErrMalformedData, tc.path)
		require.ErrorIs(t, err, tc.want, tc.path)
	}
}
