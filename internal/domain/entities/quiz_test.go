package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	assert.False(t, IsActive(Idle{}))
	assert.False(t, IsActive(nil))
	assert.True(t, IsActive(AwaitingAnswer{Term: "gatto"}))
	assert.True(t, IsActive(AwaitingConfirmation{Term: "gatto", Candidate: "cat"}))
}
