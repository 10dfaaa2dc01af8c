package environment

import (
	"encoding/base64"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestResolveWith(t *testing.T) {
	tests := []struct {
		name     string
		plain    []string
		encoded  []string
		vars     map[string]string
		want     Resolved
		wantCode errors.ErrorCode
	}{
		{
			name:    "plain and base64",
			plain:   []string{"USER_NAME", "EDITOR"},
			encoded: []string{"TOKEN"},
			vars: map[string]string{
				"USER_NAME": "ann",
				"EDITOR":    "vim",
				"TOKEN":     b64("s3cr3t\nline two"),
				"UNUSED":    "ignored",
			},
			want: Resolved{"USER_NAME": "ann", "EDITOR": "vim", "TOKEN": "s3cr3t\nline two"},
		},
		{
			name: "empty lists",
			vars: map[string]string{"X": "1"},
			want: Resolved{},
		},
		{
			name:  "empty value is present",
			plain: []string{"EMPTY"},
			vars:  map[string]string{"EMPTY": ""},
			want:  Resolved{"EMPTY": ""},
		},
		{
			name:     "missing plain",
			plain:    []string{"PRESENT", "ABSENT"},
			vars:     map[string]string{"PRESENT": "x"},
			wantCode: errors.ErrMissingVariable,
		},
		{
			name:     "missing base64",
			encoded:  []string{"ABSENT"},
			vars:     map[string]string{},
			wantCode: errors.ErrMissingVariable,
		},
		{
			name:     "duplicate across lists",
			plain:    []string{"DUPLICATE_VAR"},
			encoded:  []string{"DUPLICATE_VAR"},
			vars:     map[string]string{"DUPLICATE_VAR": b64("value")},
			wantCode: errors.ErrDuplicateVariable,
		},
		{
			name:     "duplicate within plain list",
			plain:    []string{"A", "A"},
			vars:     map[string]string{"A": "1"},
			wantCode: errors.ErrDuplicateVariable,
		},
		{
			name:     "invalid base64",
			encoded:  []string{"BAD"},
			vars:     map[string]string{"BAD": "not*base64!"},
			wantCode: errors.ErrDecode,
		},
		{
			name:     "base64 of non utf8 bytes",
			encoded:  []string{"BIN"},
			vars:     map[string]string{"BIN": base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd})},
			wantCode: errors.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWith(tt.plain, tt.encoded, mapLookup(tt.vars))
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, got, "no partial mapping on failure")
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingVariableNamesTheVariable(t *testing.T) {
	_, err := ResolveWith([]string{"API_KEY"}, nil, mapLookup(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
	assert.Equal(t, "API_KEY", errors.GetErrorDetails(err)["name"])
}

func TestDuplicateDetectedBeforeLookup(t *testing.T) {
	calls := 0
	lookup := func(name string) (string, bool) {
		calls++
		return b64("v"), true
	}

	_, err := ResolveWith([]string{"DUP"}, []string{"DUP"}, lookup)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateVariable))
	assert.Equal(t, 1, calls)
}

func TestResolveReadsProcessEnvironment(t *testing.T) {
	t.Setenv("DOTLINK_TEST_PLAIN", "plain value")
	t.Setenv("DOTLINK_TEST_B64", b64("decoded value"))

	got, err := Resolve([]string{"DOTLINK_TEST_PLAIN"}, []string{"DOTLINK_TEST_B64"})
	require.NoError(t, err)
	assert.Equal(t, Resolved{
		"DOTLINK_TEST_PLAIN": "plain value",
		"DOTLINK_TEST_B64":   "decoded value",
	}, got)
}

func TestResolvedNames(t *testing.T) {
	r := Resolved{"b": "2", "a": "1", "c": "3"}
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}
