package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/settlement-go/pkg/utils"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, utils.Clamp(-1, 0, 5))
	assert.Equal(t, 5.0, utils.Clamp(7, 0, 5))
	assert.Equal(t, 2.5, utils.Clamp(2.5, 0, 5))
	assert.Equal(t, 3.0, utils.MinFloat(3, 4))
}

func TestGenerateID(t *testing.T) {
	id := utils.GenerateID("hauler", "north camp")
	assert.Regexp(t, regexp.MustCompile(`^hauler-north-camp-[0-9a-f]{8}$`), id)

	assert.Regexp(t, regexp.MustCompile(`^simulate-[0-9a-f]{8}$`), utils.GenerateID("simulate", ""))
	assert.NotEqual(t, utils.GenerateID("simulate", ""), utils.GenerateID("simulate", ""))
}
