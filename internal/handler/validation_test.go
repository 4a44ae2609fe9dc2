package handler

import (
	"testing"

	"selfcare_portal/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(&model.ResetPasswordRequest{Phone: "+7 (900) 123-45-67"}))
	assert.Error(t, binding.Validator.ValidateStruct(&model.ResetPasswordRequest{Phone: "89001234567"}))
	assert.Error(t, binding.Validator.ValidateStruct(&model.ResetPasswordRequest{Phone: ""}))
}
