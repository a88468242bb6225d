package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectionStatus_Done(t *testing.T) {
	assert.False(t, StatusRunning.Done())
	assert.True(t, StatusIdle.Done())
	assert.True(t, StatusComplete.Done())
	assert.True(t, StatusError.Done())
}
