package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecision(t *testing.T) {
	for _, raw := range []string{"DISPATCH", "DELAY", "RESCHEDULE"} {
		decision, err := ParseDecision(raw)
		assert.NoError(t, err)
		assert.Equal(t, Decision(raw), decision)
	}

	_, err := ParseDecision("CANCEL")
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = ParseDecision("dispatch")
	assert.ErrorIs(t, err, ErrInvalidDecision, "decisions are case-sensitive")
}

func TestValidReason(t *testing.T) {
	for _, reason := range Reasons() {
		assert.True(t, ValidReason(reason))
	}

	assert.False(t, ValidReason("Felt like it"))
	assert.False(t, ValidReason(""))
	assert.False(t, ValidReason("manager experience"), "catalog match is case-sensitive")
}

func TestReasons_ReturnsCopy(t *testing.T) {
	reasons := Reasons()
	assert.Len(t, reasons, 6)
	assert.Equal(t, "Manager experience", reasons[0])

	reasons[0] = "tampered"
	assert.Equal(t, "Manager experience", Reasons()[0])
}
