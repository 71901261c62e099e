package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	_ = os.Unsetenv("BJ_TEST_KEY")
	assert.Equal(t, "fallback", Getenv("BJ_TEST_KEY", "fallback"))

	_ = os.Setenv("BJ_TEST_KEY", "value")
	defer func() { _ = os.Unsetenv("BJ_TEST_KEY") }()
	assert.Equal(t, "value", Getenv("BJ_TEST_KEY", "fallback"))
}
