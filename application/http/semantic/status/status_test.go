package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	testcases := []struct {
		code     uint
		expected Class
	}{
		{code: 0, expected: ClassUnknown},
		{code: 99, expected: ClassUnknown},
		{code: 100, expected: ClassInformational},
		{code: 199, expected: ClassInformational},
		{code: 200, expected: ClassSuccessful},
		{code: 299, expected: ClassSuccessful},
		{code: 300, expected: ClassRedirection},
		{code: 399, expected: ClassRedirection},
		{code: 400, expected: ClassClientError},
		{code: 499, expected: ClassClientError},
		{code: 500, expected: ClassServerError},
		{code: 599, expected: ClassServerError},
		{code: 600, expected: ClassUnknown},
		{code: 999, expected: ClassUnknown},
	}

	for _, tc := range testcases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassOf(tc.code), "code %d", tc.code)
		})
	}
}

func TestFromCode(t *testing.T) {
	s, ok := FromCode(404)
	assert.True(t, ok)
	assert.Equal(t, NotFound, s)

	s, ok = FromCode(299)
	assert.False(t, ok)
	assert.Equal(t, Status{Code: 299}, s)
}
