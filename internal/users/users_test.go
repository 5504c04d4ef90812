package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultUsers = []string{"iotlab", "a", "project"}

func TestIsValidUser(t *testing.T) {
	directory, err := NewFixedDirectory(defaultUsers)
	require.NoError(t, err)

	testCases := []struct {
		username string
		isValid  bool
	}{
		{"iotlab", true},
		{"a", true},
		{"project", true},
		{"IOTLAB", false},
		{"Iotlab", false},
		{" iotlab", false},
		{"iotlab ", false},
		{"", false},
		{"admin", false},
		{"<b>iotlab</b>", true},
		{"<script>alert(1)</script>", false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.isValid, directory.IsValidUser(testCase.username), "username[%s]", testCase.username)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "iotlab", Sanitize("iotlab"))
	assert.Equal(t, "iotlab", Sanitize("<b>iotlab</b>"))
	assert.NotContains(t, Sanitize(`<img src=x onerror="alert(1)">a`), "<")
	assert.Equal(t, " a ", Sanitize(" a "))
}

func TestNewFixedDirectoryValidation(t *testing.T) {
	_, err := NewFixedDirectory(nil)
	assert.Error(t, err)
	_, err = NewFixedDirectory([]string{""})
	assert.Error(t, err)
	_, err = NewFixedDirectory([]string{"<i>a</i>"})
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	directory, err := NewFixedDirectory(defaultUsers)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "iotlab", "project"}, directory.List())
}
